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
	"lodge/internal/domains/client/repository"
	employeeRepo "lodge/internal/domains/employee/repository"
	paymentModel "lodge/internal/domains/payment/model"
	rentModel "lodge/internal/domains/rental/model"
	rentalDto "lodge/internal/domains/rental/model/dto"
	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/model/dto"
	reservationRepo "lodge/internal/domains/reservation/repository"
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

// Reservation drives the booking lifecycle: pending on creation (or
// confirmed outright when a payment method guarantees the booking),
// cancelled or confirmed by explicit transition, converted at check-in.
type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (dto.GetReservationsResponse, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Convert(ctx context.Context, req dto.ConvertReservationRequest, id string) (rentalDto.RentalResponse, error)
}

type serviceImpl struct {
	repo         reservationRepo.Reservation
	roomRepo     roomRepo.Room
	clientRepo   repository.Client
	employeeRepo employeeRepo.Employee
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	events       events.Publisher
}

func New(
	repo reservationRepo.Reservation,
	roomRepo roomRepo.Room,
	clientRepo repository.Client,
	employeeRepo employeeRepo.Employee,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	events events.Publisher,
) Reservation {
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

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
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

	if err = s.ensureClient(ctx, req); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	reservation := req.ToModel(user, start, end, stay.TotalPrice(room.Price, start, end))

	if err = s.repo.CreateIfAvailable(ctx, reservation); err != nil {
		if errors.Is(err, stay.ErrOverlap) {
			return res, failure.Conflict("room is not available for the requested dates") //nolint:wrapcheck
		}

		return res, err
	}

	s.events.ReservationCreated(ctx, reservation)
	s.invalidateAvailability(ctx)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	reservations, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(reservations, total, params.Limit)

	return res, nil
}

// Confirm moves a pending reservation to confirmed. Any other starting
// state is an illegal transition.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status != model.StatusPending {
		return failure.InvalidState("only pending reservations can be confirmed") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.repo.UpdateStatus(ctx, id, model.StatusConfirmed, user)
}

// Cancel retires a pending or confirmed reservation and frees the room.
// Cancelling twice is an error, not a no-op.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}

	if reservation.IsTerminal() {
		return failure.InvalidState("reservation already " + reservation.Status) //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	if err = s.repo.UpdateStatus(ctx, id, model.StatusCancelled, user); err != nil {
		return err
	}

	reservation.Status = model.StatusCancelled
	s.events.ReservationCancelled(ctx, reservation)
	s.invalidateAvailability(ctx)

	return nil
}

// Convert checks a reservation in: the payment is taken, the rental
// opens over the reserved dates and the reservation retires. A
// reservation whose period already ended cannot be converted.
func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertReservationRequest, id string) (res rentalDto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Convert")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getExisting(ctx, id)
	if err != nil {
		return res, err
	}

	if reservation.Status != model.StatusConfirmed {
		return res, failure.InvalidState("only confirmed reservations can be converted") //nolint:wrapcheck
	}

	if reservation.EndDate.Before(timezone.Today()) {
		return res, failure.InvalidState("reservation period already ended") //nolint:wrapcheck
	}

	employee, err := s.employeeRepo.GetByNAS(ctx, req.EmployeeNAS)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.NAS == constant.Empty {
		return res, failure.BadRequestFromString("employee does not exist") //nolint:wrapcheck
	}

	now := timezone.Now()
	meta := gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: req.EmployeeNAS, ModifiedBy: req.EmployeeNAS}

	payment := paymentModel.Payment{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Amount:   reservation.TotalPrice,
		Method:   req.PaymentMethod,
		PaidAt:   now,
		Metadata: meta,
	}

	rental := rentModel.Rental{
		ID:          uuid.Must(uuid.NewV7()).String(),
		RoomNumber:  reservation.RoomNumber,
		ClientNAS:   reservation.ClientNAS,
		EmployeeNAS: req.EmployeeNAS,
		StartDate:   reservation.StartDate,
		EndDate:     reservation.EndDate,
		PaymentID:   payment.ID,
		Metadata:    meta,
	}

	if err = s.repo.Convert(ctx, id, rental, payment); err != nil {
		return res, err
	}

	reservation.Status = model.StatusConverted
	s.events.ReservationConverted(ctx, reservation)
	s.events.RentalCreated(ctx, rental)
	s.invalidateAvailability(ctx)

	res.FromModel(rental)

	return res, nil
}

func (s *serviceImpl) getExisting(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	return reservation, nil
}

// ensureClient registers an unknown client when the request carries
// enough identity to do so.
func (s *serviceImpl) ensureClient(ctx context.Context, req dto.CreateReservationRequest) error {
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
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
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
