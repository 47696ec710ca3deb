package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	clientModel "lodge/internal/domains/client/model"
	clientRepo "lodge/internal/domains/client/repository"
	employeeRepo "lodge/internal/domains/employee/repository"
	paymentModel "lodge/internal/domains/payment/model"
	"lodge/internal/domains/rental/model"
	"lodge/internal/domains/rental/model/dto"
	"lodge/internal/domains/rental/repository"
	roomRepo "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	"lodge/internal/events"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/stay"
	"lodge/shared/timezone"
)

// Rental handles walk-in stays: payment first, then the stay, in one
// write. Converted reservations arrive through the reservation service
// instead.
type Rental interface {
	Create(ctx context.Context, req dto.CreateRentalRequest) (dto.RentalResponse, error)
	Get(ctx context.Context, id string) (dto.RentalResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (dto.GetRentalsResponse, error)
}

type serviceImpl struct {
	repo         repository.Rental
	roomRepo     roomRepo.Room
	clientRepo   clientRepo.Client
	employeeRepo employeeRepo.Employee
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	events       events.Publisher
}

func New(
	repo repository.Rental,
	roomRepo roomRepo.Room,
	clientRepo clientRepo.Client,
	employeeRepo employeeRepo.Employee,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	events events.Publisher,
) Rental {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		events:       events,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRentalRequest) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := stay.ParseDate(req.StartDate)
	if err != nil {
		return res, err
	}

	end, err := stay.ParseDate(req.EndDate)
	if err != nil {
		return res, err
	}

	if err = stay.ValidateRange(start, end); err != nil {
		return res, err
	}

	if start.Before(timezone.Today()) {
		return res, failure.BadRequestFromString("start date is in the past") //nolint:wrapcheck
	}

	room, err := s.roomRepo.GetByNumber(ctx, req.RoomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.HotelID == constant.Empty {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	employee, err := s.employeeRepo.GetByNAS(ctx, req.EmployeeNAS)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.NAS == constant.Empty {
		return res, failure.BadRequestFromString("employee does not exist") //nolint:wrapcheck
	}

	if err = s.ensureClient(ctx, req); err != nil {
		return res, err
	}

	now := timezone.Now()
	payment := paymentModel.Payment{
		ID:     uuid.Must(uuid.NewV7()).String(),
		Amount: stay.TotalPrice(room.Price, start, end),
		Method: req.PaymentMethod,
		PaidAt: now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  req.EmployeeNAS,
			ModifiedBy: req.EmployeeNAS,
		},
	}

	rental := req.ToModel(req.EmployeeNAS, payment.ID, start, end)

	if err = s.repo.CreateDirect(ctx, rental, payment); err != nil {
		if errors.Is(err, stay.ErrOverlap) {
			return res, failure.Conflict("room is not available for the requested dates") //nolint:wrapcheck
		}

		return res, err
	}

	s.events.RentalCreated(ctx, rental)
	s.invalidateAvailability(ctx)

	res.FromModel(rental)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental")

		return res, fmt.Errorf("failed to get rental: %w", err)
	}

	if rental.ID == constant.Empty {
		return res, failure.NotFound("rental not found") //nolint:wrapcheck
	}

	res.FromModel(rental)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (res dto.GetRentalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rentals")

		return res, fmt.Errorf("failed to count rentals: %w", err)
	}

	rentals, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rentals")

		return res, fmt.Errorf("failed to get rentals: %w", err)
	}

	res.FromModels(rentals, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) ensureClient(ctx context.Context, req dto.CreateRentalRequest) error {
	client, err := s.clientRepo.GetByNAS(ctx, req.ClientNAS)
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return fmt.Errorf("failed to get client: %w", err)
	}

	if client.NAS != constant.Empty {
		return nil
	}

	if req.FullName == constant.Empty || req.Address == constant.Empty {
		return failure.BadRequestFromString("unknown client, full_name and address are required") //nolint:wrapcheck
	}

	newClient := clientModel.Client{
		NAS:          req.ClientNAS,
		FullName:     req.FullName,
		Address:      req.Address,
		RegisteredAt: timezone.Today(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  req.EmployeeNAS,
			ModifiedBy: req.EmployeeNAS,
		},
	}

	return s.clientRepo.Insert(ctx, newClient)
}

func (s *serviceImpl) invalidateAvailability(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, roomService.CacheAvailableRooms)
	}()
}
