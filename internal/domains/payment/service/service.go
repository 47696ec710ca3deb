package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

// Payment is read only. Rows are created by the reservation and rental
// services during check-in.
type Payment interface {
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo repository.Payment
	otel otel.Otel
}

func New(repo repository.Payment, otel otel.Otel) Payment {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") //nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	payments, err := s.repo.List(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(payments, total, params.Limit)

	return res, nil
}
