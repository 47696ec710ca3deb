package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/payment/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

// Payment is read-only; rows are written by the reservation and rental
// repositories inside their check-in transactions.
type Payment interface {
	GetByID(ctx context.Context, id string) (model.Payment, error)
	List(ctx context.Context, params gDto.QueryParams) ([]model.Payment, error)
	Count(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Payment, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) List(ctx context.Context, params gDto.QueryParams) ([]model.Payment, error) {
	return repo.GetAll(ctx, params, gDto.FilterGroup{})
}

func (repo *repositoryImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, gDto.FilterGroup{})
}
