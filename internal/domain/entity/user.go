// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system. PasswordHash is an opaque salted
// bcrypt hash; it never leaves the service in any response payload.
type User struct {
	ID           int64     // Unique identifier, assigned by the database on creation.
	Username     string    // Unique login name, minimum length enforced at signup.
	PasswordHash string    // Salted one-way hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
