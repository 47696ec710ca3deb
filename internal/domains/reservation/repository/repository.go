package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	paymentModel "lodge/internal/domains/payment/model"
	rentalModel "lodge/internal/domains/rental/model"
	"lodge/internal/domains/reservation/model"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gRepo "lodge/shared/repository"
	"lodge/shared/stay"
	"lodge/shared/timezone"
)

// Reservation owns the two compound writes of the booking lifecycle.
// CreateIfAvailable and Convert each run as one transaction so the
// availability check and the write it guards cannot be split by a
// concurrent booking.
type Reservation interface {
	CreateIfAvailable(ctx context.Context, reservation model.Reservation) error
	GetByID(ctx context.Context, id string) (model.Reservation, error)
	List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Reservation, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
	UpdateStatus(ctx context.Context, id, status, modifiedBy string) error
	Convert(ctx context.Context, reservationID string, rental rentalModel.Rental, payment paymentModel.Payment) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	rentals  gRepo.Repository[rentalModel.Rental]
	payments gRepo.Repository[paymentModel.Payment]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		rentals:    gRepo.NewRepository[rentalModel.Rental](rentalModel.EntityName, rentalModel.TableName, rentalModel.FieldID, db, otel),
		payments:   gRepo.NewRepository[paymentModel.Payment](paymentModel.EntityName, paymentModel.TableName, paymentModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func listFilterGroup(filter model.ListFilter) gDto.FilterGroup {
	group := gDto.FilterGroup{}

	if filter.ClientNAS != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldClientNAS,
			Value:    filter.ClientNAS,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if filter.RoomNumber > 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldRoomNumber,
			Value:    filter.RoomNumber,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if filter.Status != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    filter.Status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group
}

// CreateIfAvailable locks the room, re-checks the range and inserts, all
// in one transaction. The exclusion constraints on reservations and
// rentals are the backstop; a violation surfaces as stay.ErrOverlap the
// same way the explicit check does.
func (repo *repositoryImpl) CreateIfAvailable(ctx context.Context, reservation model.Reservation) error {
	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := roomRepository.LockAndCheckFree(ctx, tx, reservation.RoomNumber, reservation.StartDate, reservation.EndDate); err != nil {
			return err
		}

		return repo.InsertTx(ctx, tx, reservation)
	})

	switch {
	case postgres.IsPqError(err, constant.PqErrorCodeExclusionViolation):
		return stay.ErrOverlap
	case postgres.IsPqError(err, constant.PqErrorCodeFkViolation):
		return failure.BadRequestFromString("room or client does not exist")
	}

	return err
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Reservation, error) {
	return repo.GetAll(ctx, params, listFilterGroup(filter))
}

func (repo *repositoryImpl) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	return repo.Repository.Count(ctx, listFilterGroup(filter))
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id, status, modifiedBy string) error {
	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: modifiedBy,
	}

	return repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
}

// Convert checks the reservation in, writing the payment and the rental
// and retiring the reservation atomically.
func (repo *repositoryImpl) Convert(ctx context.Context, reservationID string, rental rentalModel.Rental, payment paymentModel.Payment) error {
	return repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		status, err := repo.lockStatus(ctx, tx, reservationID)
		if err != nil {
			return err
		}

		if !slices.Contains(model.BlockingStatuses, status) {
			return failure.InvalidState("reservation already " + status)
		}

		if err = repo.payments.InsertTx(ctx, tx, payment); err != nil {
			return err
		}

		if err = repo.rentals.InsertTx(ctx, tx, rental); err != nil {
			return err
		}

		fields := map[string]any{
			model.FieldStatus:        model.StatusConverted,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: rental.EmployeeNAS,
		}

		return repo.UpdateTx(ctx, tx, fields, shared.FilterByID(reservationID, model.FieldID, model.TableName))
	})
}

func (repo *repositoryImpl) lockStatus(ctx context.Context, tx *sqlx.Tx, id string) (string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 FOR UPDATE",
		model.FieldStatus, model.TableName, model.FieldID)

	var status string
	if err := tx.GetContext(ctx, &status, query, id); err != nil {
		return "", fmt.Errorf("failed to lock reservation %s: %w", id, err)
	}

	return status, nil
}
