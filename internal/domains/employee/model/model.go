package model

import (
	"github.com/lib/pq"

	"lodge/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldNAS      = "nas"
	FieldFullName = "full_name"
	FieldAddress  = "address"
	FieldHotelID  = "hotel_id"
	FieldRoles    = "roles"
)

// Employee is hotel staff, keyed by NAS. Roles are free-form names such
// as Manager, Receptionist or Housekeeping.
type Employee struct {
	NAS      string         `db:"nas"`
	FullName string         `db:"full_name"`
	Address  string         `db:"address"`
	HotelID  string         `db:"hotel_id"`
	Roles    pq.StringArray `db:"roles"`
	model.Metadata
}

// ListFilter narrows employee listings. Zero values mean no constraint.
type ListFilter struct {
	HotelID string
	Role    string
}
