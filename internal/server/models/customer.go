package models

// Customer is a profile record in the "customers" collection. It mirrors the
// name and email of a registered user but never stores a password.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}
