// Package users persists credential records in the "users" collection.
// The collection holds exactly one record per email; the unique index is the
// authority for that invariant, and violations surface as DuplicateEmailError.
package users

import (
	"context"

	"github.com/mpetrenko/videostore/internal/server/models"
)

type Repository interface {
	// Create persists a new credential record and assigns its id.
	// A duplicate email yields common.DuplicateEmailError.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the credential record for email, or
	// common.ErrorNotFound when no record exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
