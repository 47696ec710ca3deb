package model

import (
	"github.com/lib/pq"

	"lodge/shared/model"
)

const (
	TableName  = "chains"
	EntityName = "chain"

	FieldID            = "id"
	FieldName          = "name"
	FieldHeadOffice    = "head_office"
	FieldContactEmails = "contact_emails"
	FieldContactPhones = "contact_phones"
	FieldHotelCount    = "hotel_count"
)

// Chain is the corporate owner of one or more hotels. HotelCount is
// denormalized and maintained by the hotel repository on insert/delete.
type Chain struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	HeadOffice    string         `db:"head_office"`
	ContactEmails pq.StringArray `db:"contact_emails"`
	ContactPhones pq.StringArray `db:"contact_phones"`
	HotelCount    int            `db:"hotel_count"`
	model.Metadata
}

// ListFilter narrows chain listings. Zero values mean no constraint.
type ListFilter struct {
	Name string
}
