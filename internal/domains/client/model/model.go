package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "clients"
	EntityName = "client"

	FieldNAS          = "nas"
	FieldFullName     = "full_name"
	FieldAddress      = "address"
	FieldRegisteredAt = "registered_at"
)

// Client is a guest, keyed by their national identifier (NAS).
type Client struct {
	NAS          string    `db:"nas"`
	FullName     string    `db:"full_name"`
	Address      string    `db:"address"`
	RegisteredAt time.Time `db:"registered_at"`
	model.Metadata
}

// ListFilter narrows client listings. Zero values mean no constraint.
type ListFilter struct {
	Name string
}
