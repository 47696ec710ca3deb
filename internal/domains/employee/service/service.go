package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/employee/model"
	"lodge/internal/domains/employee/model/dto"
	"lodge/internal/domains/employee/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) error
	Get(ctx context.Context, nas string) (dto.EmployeeResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (dto.GetEmployeesResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest, nas string) error
	Delete(ctx context.Context, nas string) error
}

type serviceImpl struct {
	repo repository.Employee
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Employee, cfg *config.Config, otel otel.Otel) Employee {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.repo.Insert(ctx, req.ToModel(user))
}

func (s *serviceImpl) Get(ctx context.Context, nas string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.repo.GetByNAS(ctx, nas)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.NAS == constant.Empty {
		return res, failure.NotFound("employee not found") //nolint:wrapcheck
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	employees, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.FromModels(employees, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest, nas string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	employee, err := s.repo.GetByNAS(ctx, nas)
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee existence")

		return err
	}

	if employee.NAS == constant.Empty {
		return failure.NotFound("employee not found") //nolint:wrapcheck
	}

	req.ApplyTo(&employee, user)

	return s.repo.Update(ctx, employee)
}

func (s *serviceImpl) Delete(ctx context.Context, nas string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.repo.GetByNAS(ctx, nas)
	if err != nil {
		log.Error().Err(err).Msg("failed to check employee existence")

		return err
	}

	if employee.NAS == constant.Empty {
		return failure.NotFound("employee not found") //nolint:wrapcheck
	}

	return s.repo.Delete(ctx, nas)
}
