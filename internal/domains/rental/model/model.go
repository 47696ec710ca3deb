package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "rentals"
	EntityName = "rental"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldClientNAS   = "client_nas"
	FieldEmployeeNAS = "employee_nas"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldPaymentID   = "payment_id"
)

// Rental is an active or completed stay. It is created either by
// converting a confirmed reservation or directly at the desk by an
// employee, and always references the payment taken at check-in.
type Rental struct {
	ID          string    `db:"id"`
	RoomNumber  int       `db:"room_number"`
	ClientNAS   string    `db:"client_nas"`
	EmployeeNAS string    `db:"employee_nas"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	PaymentID   string    `db:"payment_id"`
	model.Metadata
}

// ListFilter narrows rental listings. Zero values mean no constraint.
type ListFilter struct {
	ClientNAS   string
	EmployeeNAS string
	RoomNumber  int
}
