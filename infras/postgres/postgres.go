package postgres

//nolint:revive
import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/shared/failure"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New dials Postgres with retries. When the database is unreachable it
// returns nil instead of failing the process; the composition layer then
// falls back to the in-memory store.
func New(config *config.Config) *Connection {
	db := createConnection(*config)
	if db == nil {
		log.Warn().Msg("Database unreachable, service will run on the in-memory store")

		return nil
	}

	return &Connection{
		Read:  db,
		Write: db,
	}
}

func createConnection(config config.Config) *sqlx.DB {
	pg := config.DB.Postgres

	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		pg.Username,
		pg.Password,
		net.JoinHostPort(pg.Host, pg.Port),
		pg.Name,
		pg.SSLMode,
	)

	for retry := range pg.MaxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", pg.Host).
				Str("port", pg.Port).
				Str("dbName", pg.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("host", pg.Host).
			Str("port", pg.Port).
			Str("dbName", pg.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	return nil
}

// WithTx runs fn inside a transaction on the write connection, rolling
// back on error or panic.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		if IsConnError(err) {
			return failure.ServiceUnavailable("store unreachable, write refused") //nolint:wrapcheck
		}

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			_ = tx.Rollback()

			return
		}

		err = tx.Commit()
		if err != nil {
			if IsConnError(err) {
				err = failure.ServiceUnavailable("store unreachable, write refused")
			} else {
				err = fmt.Errorf("failed to commit transaction: %w", err)
			}
		}
	}()

	return fn(tx)
}

// IsConnError reports whether err is a connection-class failure: the
// database went away rather than rejected the statement. Covers a bad
// driver connection, network errors, and the Postgres class 08 codes.
func IsConnError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return strings.HasPrefix(string(pqErr.Code), "08")
	}

	return false
}

// IsPqError reports whether err carries one of the given Postgres error codes.
func IsPqError(err error, codes ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	for _, code := range codes {
		if string(pqErr.Code) == code {
			return true
		}
	}

	return false
}
