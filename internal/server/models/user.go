// Package models contains the persistent record types for the video store
// collections: users (credentials), customers (profiles), and videos.
package models

// User is a credential record in the "users" collection. Exactly one record
// exists per email; PasswordHash is never returned to API callers.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}
