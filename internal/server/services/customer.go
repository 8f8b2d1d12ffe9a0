package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpetrenko/videostore/internal/common"
	"github.com/mpetrenko/videostore/internal/server/models"
	"github.com/mpetrenko/videostore/internal/server/repositories/customers"
)

// CustomerService manages customer profiles. Its Create path is also the
// cascading step of registration, so the uniqueness contract here is part of
// the identity flow.
type CustomerService struct {
	repo customers.Repository
}

func NewCustomerService(repo customers.Repository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Create persists a new profile after checking that no profile with the same
// email exists. The check and the insert are not atomic; the unique index
// backs the check up and races surface as the same DuplicateEmailError.
func (s *CustomerService) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {

	_, err := s.repo.GetByEmail(ctx, customer.Email)
	if err == nil {
		return nil, &common.DuplicateEmailError{Msg: "a customer with this email already exists"}
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking existing customer: %v", err)
	}

	return s.repo.Create(ctx, customer)
}

func (s *CustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	return s.repo.GetAll(ctx)
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Update overwrites an existing profile. A missing id yields
// common.ErrorNotFound; an email already used by another profile yields
// DuplicateEmailError from the unique index.
func (s *CustomerService) Update(ctx context.Context, id string, customer *models.Customer) (*models.Customer, error) {
	customer.ID = id
	return s.repo.Update(ctx, customer)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
