package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/user/model"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/failure"
	gRepo "lodge/shared/repository"
)

type User interface {
	Insert(ctx context.Context, user model.User) error
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, user model.User) error {
	err := repo.Repository.Insert(ctx, user)
	if postgres.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
		return failure.Conflict("email already in use")
	}

	return err
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.User, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return repo.Get(ctx, shared.FilterByID(email, model.FieldEmail, model.TableName))
}

func (repo *repositoryImpl) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) error {
	return repo.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}
