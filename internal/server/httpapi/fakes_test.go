package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mpetrenko/videostore/internal/common"
	"github.com/mpetrenko/videostore/internal/logging"
	"github.com/mpetrenko/videostore/internal/server/config"
	"github.com/mpetrenko/videostore/internal/server/hashing"
	"github.com/mpetrenko/videostore/internal/server/models"
	"github.com/mpetrenko/videostore/internal/server/services"
)

// In-memory repositories backing a full service stack, so handler tests run
// the real validation, hashing, and cascade logic end to end.

type memUsersRepo struct {
	byEmail map[string]*models.User
	nextID  int
}

func (f *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, &common.DuplicateEmailError{Msg: "user with this email already exists"}
	}
	f.nextID++
	u.ID = fmt.Sprintf("u-%d", f.nextID)
	stored := *u
	f.byEmail[u.Email] = &stored
	return u, nil
}

func (f *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copy := *u
	return &copy, nil
}

type memCustomersRepo struct {
	byID   map[string]*models.Customer
	nextID int
}

func (f *memCustomersRepo) find(email string) *models.Customer {
	for _, c := range f.byID {
		if c.Email == email {
			return c
		}
	}
	return nil
}

func (f *memCustomersRepo) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	if f.find(c.Email) != nil {
		return nil, &common.DuplicateEmailError{Msg: "a customer with this email already exists"}
	}
	f.nextID++
	c.ID = fmt.Sprintf("c-%d", f.nextID)
	stored := *c
	f.byID[c.ID] = &stored
	return c, nil
}

func (f *memCustomersRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	out := []models.Customer{}
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (f *memCustomersRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copy := *c
	return &copy, nil
}

func (f *memCustomersRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	c := f.find(email)
	if c == nil {
		return nil, common.ErrorNotFound
	}
	copy := *c
	return &copy, nil
}

func (f *memCustomersRepo) Update(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	if _, ok := f.byID[c.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	if other := f.find(c.Email); other != nil && other.ID != c.ID {
		return nil, &common.DuplicateEmailError{Msg: "a customer with this email already exists"}
	}
	stored := *c
	f.byID[c.ID] = &stored
	return c, nil
}

func (f *memCustomersRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type memVideosRepo struct {
	byID   map[string]*models.Video
	nextID int
}

func (f *memVideosRepo) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	f.nextID++
	v.ID = fmt.Sprintf("v-%d", f.nextID)
	stored := *v
	f.byID[v.ID] = &stored
	return v, nil
}

func (f *memVideosRepo) GetAll(ctx context.Context) ([]models.Video, error) {
	out := []models.Video{}
	for _, v := range f.byID {
		out = append(out, *v)
	}
	return out, nil
}

func (f *memVideosRepo) GetByID(ctx context.Context, id string) (*models.Video, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copy := *v
	return &copy, nil
}

func (f *memVideosRepo) Update(ctx context.Context, v *models.Video) (*models.Video, error) {
	if _, ok := f.byID[v.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	stored := *v
	f.byID[v.ID] = &stored
	return v, nil
}

func (f *memVideosRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *memVideosRepo) GetByCategory(ctx context.Context, category string) ([]models.Video, error) {
	out := []models.Video{}
	for _, v := range f.byID {
		if v.Category == category {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *memVideosRepo) SearchByTitle(ctx context.Context, title string) ([]models.Video, error) {
	out := []models.Video{}
	for _, v := range f.byID {
		if strings.Contains(strings.ToLower(v.Title), strings.ToLower(title)) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *memVideosRepo) GetFeatured(ctx context.Context, category string) ([]models.Video, error) {
	out := []models.Video{}
	for _, v := range f.byID {
		if v.Category == category && v.Featured {
			out = append(out, *v)
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		EndpointAddr:      ":0",
		CORSAllowedOrigin: "http://localhost:3000",
		ShutdownTimeout:   time.Second,
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ur := &memUsersRepo{byEmail: map[string]*models.User{}}
	cr := &memCustomersRepo{byID: map[string]*models.Customer{}}
	vr := &memVideosRepo{byID: map[string]*models.Video{}}

	cs := services.NewCustomerService(cr)
	us := services.NewUserService(ur, cs, hashing.NewBcryptHasher())
	vs := services.NewVideoService(vr, cfg)

	return NewServer(cfg, logger, us, cs, vs)
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
