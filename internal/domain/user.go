package domain

import "time"

// User is a customer identified by email. Email is not unique at the storage
// level; lookups take the earliest created match.
type User struct {
	ID        string
	Email     string
	Name      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
