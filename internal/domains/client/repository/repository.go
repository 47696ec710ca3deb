package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/client/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gRepo "lodge/shared/repository"
)

type Client interface {
	Insert(ctx context.Context, client model.Client) error
	GetByNAS(ctx context.Context, nas string) (model.Client, error)
	List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Client, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
	Update(ctx context.Context, client model.Client) error
	Delete(ctx context.Context, nas string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, model.FieldNAS, db, otel),
		db:         db,
		otel:       otel,
	}
}

func listFilterGroup(filter model.ListFilter) gDto.FilterGroup {
	group := gDto.FilterGroup{}

	if filter.Name != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldFullName,
			Value:    filter.Name,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	return group
}

func (repo *repositoryImpl) Insert(ctx context.Context, client model.Client) error {
	err := repo.Repository.Insert(ctx, client)
	if postgres.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
		return failure.Conflict("client already registered")
	}

	return err
}

func (repo *repositoryImpl) GetByNAS(ctx context.Context, nas string) (model.Client, error) {
	return repo.Get(ctx, shared.FilterByID(nas, model.FieldNAS, model.TableName))
}

func (repo *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Client, error) {
	return repo.GetAll(ctx, params, listFilterGroup(filter))
}

func (repo *repositoryImpl) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	return repo.Repository.Count(ctx, listFilterGroup(filter))
}

func (repo *repositoryImpl) Update(ctx context.Context, client model.Client) error {
	return repo.UpdateRow(ctx, client)
}

func (repo *repositoryImpl) Delete(ctx context.Context, nas string) error {
	err := repo.Repository.Delete(ctx, shared.FilterByID(nas, model.FieldNAS, model.TableName))
	if postgres.IsPqError(err, constant.PqErrorCodeFkViolation) {
		return failure.Conflict("client still has reservations or rentals")
	}

	return err
}
