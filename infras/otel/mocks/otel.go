package mocks

import (
	"lodge/infras/otel"
)

// NewOtel returns a no-op Otel for tests.
func NewOtel() otel.Otel {
	return otel.NewNoop()
}
