package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/employee/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gRepo "lodge/shared/repository"
)

type Employee interface {
	Insert(ctx context.Context, employee model.Employee) error
	GetByNAS(ctx context.Context, nas string) (model.Employee, error)
	List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Employee, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
	Update(ctx context.Context, employee model.Employee) error
	Delete(ctx context.Context, nas string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Employee]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Employee {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Employee](model.EntityName, model.TableName, model.FieldNAS, db, otel),
		db:         db,
		otel:       otel,
	}
}

func listFilterGroup(filter model.ListFilter) gDto.FilterGroup {
	group := gDto.FilterGroup{}

	if filter.HotelID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldHotelID,
			Value:    filter.HotelID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if filter.Role != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "role",
			Field:    model.FieldRoles,
			Value:    filter.Role,
			Operator: gDto.FilterOperatorAny,
			Table:    model.TableName,
		})
	}

	return group
}

func (repo *repositoryImpl) Insert(ctx context.Context, employee model.Employee) error {
	err := repo.Repository.Insert(ctx, employee)
	if postgres.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
		return failure.Conflict("employee already registered")
	}

	return err
}

func (repo *repositoryImpl) GetByNAS(ctx context.Context, nas string) (model.Employee, error) {
	return repo.Get(ctx, shared.FilterByID(nas, model.FieldNAS, model.TableName))
}

func (repo *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Employee, error) {
	return repo.GetAll(ctx, params, listFilterGroup(filter))
}

func (repo *repositoryImpl) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	return repo.Repository.Count(ctx, listFilterGroup(filter))
}

func (repo *repositoryImpl) Update(ctx context.Context, employee model.Employee) error {
	return repo.UpdateRow(ctx, employee)
}

func (repo *repositoryImpl) Delete(ctx context.Context, nas string) error {
	err := repo.Repository.Delete(ctx, shared.FilterByID(nas, model.FieldNAS, model.TableName))
	if postgres.IsPqError(err, constant.PqErrorCodeFkViolation) {
		return failure.Conflict("employee still referenced by rentals")
	}

	return err
}
