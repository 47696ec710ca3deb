package model

import (
	"slices"
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldClientNAS  = "client_nas"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldStatus     = "status"
	FieldTotalPrice = "total_price"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusConverted = "converted"
)

// BlockingStatuses are the reservation states that make a room
// unavailable. Cancelled and converted reservations never block.
var BlockingStatuses = []string{StatusPending, StatusConfirmed}

// Reservation is a guest's advance booking of a room for a date range.
// It is only ever mutated by cancel and convert; rows are archived by a
// database trigger rather than deleted.
type Reservation struct {
	ID         string    `db:"id"`
	RoomNumber int       `db:"room_number"`
	ClientNAS  string    `db:"client_nas"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Status     string    `db:"status"`
	TotalPrice float64   `db:"total_price"`
	model.Metadata
}

// IsTerminal reports whether the reservation reached a state no
// transition leaves.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCancelled || r.Status == StatusConverted
}

// Blocks reports whether the reservation takes part in overlap checks.
func (r *Reservation) Blocks() bool {
	return slices.Contains(BlockingStatuses, r.Status)
}

// ListFilter narrows reservation listings. Zero values mean no constraint.
type ListFilter struct {
	ClientNAS  string
	RoomNumber int
	Status     string
}
