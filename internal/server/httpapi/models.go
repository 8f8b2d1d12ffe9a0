package httpapi

import "github.com/mpetrenko/videostore/internal/server/models"

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse always serializes "password": null so the hash can never leak
// through this type.
type userResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  *string `json:"password"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

type customerPayload struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func toCustomerPayload(c *models.Customer) customerPayload {
	return customerPayload{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

func toCustomerPayloads(cs []models.Customer) []customerPayload {
	out := make([]customerPayload, 0, len(cs))
	for i := range cs {
		out = append(out, toCustomerPayload(&cs[i]))
	}
	return out
}

type videoPayload struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Category    string  `json:"category"`
	Year        int     `json:"year"`
	Description string  `json:"description"`
	Phrase      string  `json:"phrase"`
	CardImage   string  `json:"cardImage"`
	LargePoster string  `json:"largePoster"`
	RentPrice   float64 `json:"rentPrice"`
	BuyPrice    float64 `json:"buyPrice"`
	Featured    bool    `json:"featured"`
}

func (p videoPayload) toModel() *models.Video {
	return &models.Video{
		ID:          p.ID,
		Title:       p.Title,
		Genre:       p.Genre,
		Category:    p.Category,
		Year:        p.Year,
		Description: p.Description,
		Phrase:      p.Phrase,
		CardImage:   p.CardImage,
		LargePoster: p.LargePoster,
		RentPrice:   p.RentPrice,
		BuyPrice:    p.BuyPrice,
		Featured:    p.Featured,
	}
}

func toVideoPayload(v *models.Video) videoPayload {
	return videoPayload{
		ID:          v.ID,
		Title:       v.Title,
		Genre:       v.Genre,
		Category:    v.Category,
		Year:        v.Year,
		Description: v.Description,
		Phrase:      v.Phrase,
		CardImage:   v.CardImage,
		LargePoster: v.LargePoster,
		RentPrice:   v.RentPrice,
		BuyPrice:    v.BuyPrice,
		Featured:    v.Featured,
	}
}

func toVideoPayloads(vs []models.Video) []videoPayload {
	out := make([]videoPayload, 0, len(vs))
	for i := range vs {
		out = append(out, toVideoPayload(&vs[i]))
	}
	return out
}

type posterUploadResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
}
