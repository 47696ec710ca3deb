package model

import "lodge/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldFullName  = "full_name"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

// User is a staff account that can sign in to the administration API.
// Guests never get accounts; the public endpoints need none.
type User struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	Role      string  `db:"role"`
	FullName  *string `db:"full_name"`
	Active    bool    `db:"active"`
	LastLogin *string `db:"last_login"`
	model.Metadata
}
