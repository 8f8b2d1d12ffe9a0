// Package services contains the business logic between the HTTP layer and
// the repositories: the identity service (registration/login), the customer
// profile service, and the video catalog service.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/mpetrenko/videostore/internal/common"
	"github.com/mpetrenko/videostore/internal/server/hashing"
	"github.com/mpetrenko/videostore/internal/server/models"
	"github.com/mpetrenko/videostore/internal/server/repositories/users"
)

var (
	nameRegexp  = regexp.MustCompile(`^[A-Za-z]+$`)
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Characters rejected in emails and passwords. Kept for compatibility
	// with the historical behavior; all store access is parameterized, so
	// this is not relied on as an injection defense.
	forbiddenRegexp = regexp.MustCompile("[<>'\"();`]")
)

// RegisterCandidate carries the registration input before validation.
type RegisterCandidate struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserService orchestrates registration and authentication. It owns the
// validation and uniqueness rules but not the storage: each repository is the
// sole authority for its own collection.
type UserService struct {
	users     users.Repository
	customers *CustomerService
	hasher    hashing.PasswordHasher
}

func NewUserService(users users.Repository, customers *CustomerService, hasher hashing.PasswordHasher) *UserService {
	return &UserService{
		users:     users,
		customers: customers,
		hasher:    hasher,
	}
}

// Register validates the candidate, checks email uniqueness, persists the
// credential record with a hashed password, and cascades creation of the
// matching customer profile. The returned record has its hash cleared.
//
// The credential insert and the profile insert are two separate writes with
// no transaction: when the profile write fails the credential record stays
// committed and the error still surfaces to the caller.
func (s *UserService) Register(ctx context.Context, candidate RegisterCandidate) (*models.User, error) {

	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}

	_, err := s.users.GetByEmail(ctx, candidate.Email)
	if err == nil {
		return nil, &common.DuplicateEmailError{Msg: "user with this email already exists"}
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking existing user: %v", err)
	}

	// Hash before any write so a failed hash never leaves a partial record.
	hash, err := s.hasher.Hash(candidate.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &models.User{
		FirstName:    candidate.FirstName,
		LastName:     candidate.LastName,
		Email:        candidate.Email,
		PasswordHash: hash,
	}

	// The pre-check above is not atomic with this insert; a concurrent
	// registration may still hit the unique index, which the repository
	// reports as the same DuplicateEmailError.
	user, err = s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FirstName: candidate.FirstName,
		LastName:  candidate.LastName,
		Email:     candidate.Email,
	}

	if _, err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password both return common.ErrInvalidCredentials so callers cannot
// tell which accounts exist. The returned record has its hash cleared.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %v", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

// validateCandidate applies the registration rules in order, failing on the
// first violation.
func validateCandidate(c RegisterCandidate) error {
	if !nameRegexp.MatchString(c.FirstName) || !nameRegexp.MatchString(c.LastName) {
		return common.NewValidationError("name must contain only letters")
	}

	if !emailRegexp.MatchString(c.Email) || forbiddenRegexp.MatchString(c.Email) {
		return common.NewValidationError("invalid or unsafe email")
	}

	// Length counts characters, not bytes, so multi-byte passwords are
	// measured the same way the caller sees them.
	if utf8.RuneCountInString(c.Password) < 6 || forbiddenRegexp.MatchString(c.Password) {
		return common.NewValidationError("password too short or contains forbidden characters")
	}

	return nil
}
