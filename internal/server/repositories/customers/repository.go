// Package customers persists profile records in the "customers" collection.
// Profiles mirror the name/email of registered users but never store a
// password; email is unique within the collection.
package customers

import (
	"context"

	"github.com/mpetrenko/videostore/internal/server/models"
)

type Repository interface {
	// Create persists a new profile record and assigns its id.
	// A duplicate email yields common.DuplicateEmailError.
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)

	// GetAll returns every profile record.
	GetAll(ctx context.Context) ([]models.Customer, error)

	// GetByID returns the profile with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Customer, error)

	// GetByEmail returns the profile with the given email, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)

	// Update overwrites the profile with the given id, or returns
	// common.ErrorNotFound when it does not exist.
	Update(ctx context.Context, customer *models.Customer) (*models.Customer, error)

	// Delete removes the profile with the given id, or returns
	// common.ErrorNotFound when it does not exist.
	Delete(ctx context.Context, id string) error
}
