package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	chainModel "lodge/internal/domains/chain/model"
	"lodge/internal/domains/hotel/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gRepo "lodge/shared/repository"
)

// Hotel keeps the owning chain's hotel_count in step with inserts and
// deletes, in the same transaction.
type Hotel interface {
	Insert(ctx context.Context, hotel model.Hotel) error
	GetByID(ctx context.Context, id string) (model.Hotel, error)
	List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Hotel, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
	Update(ctx context.Context, hotel model.Hotel) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func listFilterGroup(filter model.ListFilter) gDto.FilterGroup {
	group := gDto.FilterGroup{}

	if filter.ChainID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldChainID,
			Value:    filter.ChainID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if filter.Stars > 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStars,
			Value:    filter.Stars,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if filter.Address != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldAddress,
			Value:    filter.Address,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	return group
}

func (repo *repositoryImpl) Insert(ctx context.Context, hotel model.Hotel) error {
	err := repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.InsertTx(ctx, tx, hotel); err != nil {
			return err
		}

		return repo.adjustChainCount(ctx, tx, hotel.ChainID, 1)
	})
	if postgres.IsPqError(err, constant.PqErrorCodeFkViolation) {
		return failure.BadRequestFromString("chain does not exist")
	}

	return err
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Hotel, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Hotel, error) {
	return repo.GetAll(ctx, params, listFilterGroup(filter))
}

func (repo *repositoryImpl) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	return repo.Repository.Count(ctx, listFilterGroup(filter))
}

func (repo *repositoryImpl) Update(ctx context.Context, hotel model.Hotel) error {
	return repo.UpdateRow(ctx, hotel)
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) error {
	hotel, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if hotel.ID == constant.Empty {
		return failure.NotFound("hotel not found")
	}

	err = repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		return repo.adjustChainCount(ctx, tx, hotel.ChainID, -1)
	})
	if postgres.IsPqError(err, constant.PqErrorCodeFkViolation) {
		return failure.Conflict("hotel still has rooms")
	}

	return err
}

func (repo *repositoryImpl) adjustChainCount(ctx context.Context, tx *sqlx.Tx, chainID string, delta int) error {
	query := fmt.Sprintf("UPDATE %s SET %s = %s + $1 WHERE %s = $2",
		chainModel.TableName, chainModel.FieldHotelCount, chainModel.FieldHotelCount, chainModel.FieldID)

	if _, err := tx.ExecContext(ctx, query, delta, chainID); err != nil {
		return fmt.Errorf("failed to adjust chain hotel count: %w", err)
	}

	return nil
}
