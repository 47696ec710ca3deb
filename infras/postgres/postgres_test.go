package postgres_test

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"lodge/infras/postgres"
)

func TestIsConnError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil",
			err:  nil,
			want: false,
		},
		{
			name: "bad driver connection",
			err:  driver.ErrBadConn,
			want: true,
		},
		{
			name: "wrapped bad driver connection",
			err:  fmt.Errorf("failed to insert data (chain): %w", driver.ErrBadConn),
			want: true,
		},
		{
			name: "network error",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
			want: true,
		},
		{
			name: "connection failure class",
			err:  &pq.Error{Code: "08006"},
			want: true,
		},
		{
			name: "unique violation is not a connection error",
			err:  &pq.Error{Code: "23505"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("constraint broken"),
			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, postgres.IsConnError(test.err))
		})
	}
}
