package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	paymentModel "lodge/internal/domains/payment/model"
	"lodge/internal/domains/rental/model"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gRepo "lodge/shared/repository"
	"lodge/shared/stay"
)

// Rental covers walk-in stays. CreateDirect writes the payment and the
// rental in one transaction so a stay never exists without its payment.
type Rental interface {
	CreateDirect(ctx context.Context, rental model.Rental, payment paymentModel.Payment) error
	GetByID(ctx context.Context, id string) (model.Rental, error)
	List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Rental, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rental]
	payments gRepo.Repository[paymentModel.Payment]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rental {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rental](model.EntityName, model.TableName, model.FieldID, db, otel),
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

	if filter.EmployeeNAS != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldEmployeeNAS,
			Value:    filter.EmployeeNAS,
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

	return group
}

func (repo *repositoryImpl) CreateDirect(ctx context.Context, rental model.Rental, payment paymentModel.Payment) error {
	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := roomRepository.LockAndCheckFree(ctx, tx, rental.RoomNumber, rental.StartDate, rental.EndDate); err != nil {
			return err
		}

		if err := repo.payments.InsertTx(ctx, tx, payment); err != nil {
			return err
		}

		return repo.InsertTx(ctx, tx, rental)
	})

	switch {
	case postgres.IsPqError(err, constant.PqErrorCodeExclusionViolation):
		return stay.ErrOverlap
	case postgres.IsPqError(err, constant.PqErrorCodeFkViolation):
		return failure.BadRequestFromString("room, client or employee does not exist")
	}

	return err
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Rental, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Rental, error) {
	return repo.GetAll(ctx, params, listFilterGroup(filter))
}

func (repo *repositoryImpl) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	return repo.Repository.Count(ctx, listFilterGroup(filter))
}
