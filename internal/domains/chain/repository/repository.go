package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/chain/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

// Chain is implemented twice, over Postgres and over the in-memory
// store. Reads return the zero value when nothing matches.
type Chain interface {
	Insert(ctx context.Context, chain model.Chain) error
	GetByID(ctx context.Context, id string) (model.Chain, error)
	List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Chain, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
	Update(ctx context.Context, chain model.Chain) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Chain]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Chain {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Chain](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func listFilterGroup(filter model.ListFilter) gDto.FilterGroup {
	group := gDto.FilterGroup{}

	if filter.Name != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldName,
			Value:    filter.Name,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	return group
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Chain, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Chain, error) {
	return repo.GetAll(ctx, params, listFilterGroup(filter))
}

func (repo *repositoryImpl) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	return repo.Repository.Count(ctx, listFilterGroup(filter))
}

func (repo *repositoryImpl) Update(ctx context.Context, chain model.Chain) error {
	return repo.UpdateRow(ctx, chain)
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) error {
	return repo.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}
