package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID     = "id"
	FieldAmount = "amount"
	FieldMethod = "method"
	FieldPaidAt = "paid_at"
)

// Payment is written once when a rental is opened and never mutated.
type Payment struct {
	ID     string    `db:"id"`
	Amount float64   `db:"amount"`
	Method string    `db:"method"`
	PaidAt time.Time `db:"paid_at"`
	model.Metadata
}
