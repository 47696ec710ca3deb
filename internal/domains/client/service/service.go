package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/client/model"
	"lodge/internal/domains/client/model/dto"
	"lodge/internal/domains/client/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type Client interface {
	Create(ctx context.Context, req dto.CreateClientRequest) error
	Get(ctx context.Context, nas string) (dto.ClientResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (dto.GetClientsResponse, error)
	Update(ctx context.Context, req dto.UpdateClientRequest, nas string) error
	Delete(ctx context.Context, nas string) error
}

type serviceImpl struct {
	repo repository.Client
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Client, cfg *config.Config, otel otel.Otel) Client {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.repo.Insert(ctx, req.ToModel(user))
}

func (s *serviceImpl) Get(ctx context.Context, nas string) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	client, err := s.repo.GetByNAS(ctx, nas)
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if client.NAS == constant.Empty {
		return res, failure.NotFound("client not found") //nolint:wrapcheck
	}

	res.FromModel(client)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	clients, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	res.FromModels(clients, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientRequest, nas string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	client, err := s.repo.GetByNAS(ctx, nas)
	if err != nil {
		log.Error().Err(err).Msg("failed to check client existence")

		return err
	}

	if client.NAS == constant.Empty {
		return failure.NotFound("client not found") //nolint:wrapcheck
	}

	req.ApplyTo(&client, user)

	return s.repo.Update(ctx, client)
}

func (s *serviceImpl) Delete(ctx context.Context, nas string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	client, err := s.repo.GetByNAS(ctx, nas)
	if err != nil {
		log.Error().Err(err).Msg("failed to check client existence")

		return err
	}

	if client.NAS == constant.Empty {
		return failure.NotFound("client not found") //nolint:wrapcheck
	}

	return s.repo.Delete(ctx, nas)
}
