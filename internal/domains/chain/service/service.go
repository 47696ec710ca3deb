package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/chain/model"
	"lodge/internal/domains/chain/model/dto"
	"lodge/internal/domains/chain/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type Chain interface {
	Create(ctx context.Context, req dto.CreateChainRequest) error
	Get(ctx context.Context, id string) (dto.ChainResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (dto.GetChainsResponse, error)
	Update(ctx context.Context, req dto.UpdateChainRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Chain
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Chain, cfg *config.Config, otel otel.Otel) Chain {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateChainRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chain.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.repo.Insert(ctx, req.ToModel(user))
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ChainResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chain.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	chain, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chain")

		return res, fmt.Errorf("failed to get chain: %w", err)
	}

	if chain.ID == constant.Empty {
		return res, failure.NotFound("chain not found") //nolint:wrapcheck
	}

	res.FromModel(chain)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (res dto.GetChainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chain.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count chains")

		return res, fmt.Errorf("failed to count chains: %w", err)
	}

	chains, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chains")

		return res, fmt.Errorf("failed to get chains: %w", err)
	}

	res.FromModels(chains, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateChainRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chain.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	chain, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check chain existence")

		return err
	}

	if chain.ID == constant.Empty {
		return failure.NotFound("chain not found") //nolint:wrapcheck
	}

	req.ApplyTo(&chain, user)

	return s.repo.Update(ctx, chain)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chain.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	chain, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check chain existence")

		return err
	}

	if chain.ID == constant.Empty {
		return failure.NotFound("chain not found") //nolint:wrapcheck
	}

	return s.repo.Delete(ctx, id)
}
