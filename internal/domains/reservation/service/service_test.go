package service_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/config"
	"lodge/infras/memstore"
	"lodge/infras/otel/mocks"
	clientRepository "lodge/internal/domains/client/repository"
	employeeRepository "lodge/internal/domains/employee/repository"
	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/model/dto"
	reservationRepository "lodge/internal/domains/reservation/repository"
	"lodge/internal/domains/reservation/service"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/internal/events"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

const seededEmployeeNAS = "100000001"

// newService wires the reservation service over a seeded in-memory
// store, with caching and event publishing disabled.
func newService(t *testing.T) (service.Reservation, *memstore.Store) {
	t.Helper()

	store := memstore.NewSeeded()
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	svc := service.New(
		reservationRepository.NewMemory(store),
		roomRepository.NewMemory(store),
		clientRepository.NewMemory(store),
		employeeRepository.NewMemory(store),
		cfg,
		cache.NewRedisCache(nil, mockOtel),
		mockOtel,
		events.New(nil, cfg, mockOtel),
	)

	return svc, store
}

func futureDate(days int) string {
	return timezone.Format(timezone.Today().AddDate(0, 0, days), constant.DateOnlyFormat)
}

func createRequest(room int) dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		RoomNumber: room,
		ClientNAS:  "222333444",
		FullName:   "Jean Dupont",
		Address:    "12 Rue Notre-Dame, Montreal",
		StartDate:  futureDate(7),
		EndDate:    futureDate(10),
	}
}

func TestReservationService_Create(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, createRequest(101))
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, 101, res.RoomNumber)
	assert.Equal(t, 140.0*3, res.TotalPrice)
	assert.Equal(t, constant.ContextGuest, res.CreatedBy)

	_, registered := store.Clients["222333444"]
	assert.True(t, registered, "unknown client should be registered on the fly")
}

func TestReservationService_CreateConcurrent(t *testing.T) {
	svc, _ := newService(t)

	requests := []dto.CreateReservationRequest{
		createRequest(101),
		createRequest(101),
	}
	requests[0].ClientNAS = "444555666"
	requests[1].ClientNAS = "555666777"

	var wg sync.WaitGroup

	errs := make([]error, len(requests))

	for i, req := range requests {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = svc.Create(context.Background(), req)
		}()
	}

	wg.Wait()

	var successes, conflicts int

	for _, err := range errs {
		if err == nil {
			successes++

			continue
		}

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		conflicts++
	}

	assert.Equal(t, 1, successes, "exactly one of two overlapping bookings may win")
	assert.Equal(t, 1, conflicts)
}

func TestReservationService_CreateGuaranteed(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	req := createRequest(102)
	req.PaymentMethod = "card"

	res, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, res.Status, "a booking backed by a payment method starts confirmed")

	rental, err := svc.Convert(ctx, dto.ConvertReservationRequest{
		EmployeeNAS:   seededEmployeeNAS,
		PaymentMethod: "card",
	}, res.ID)
	require.NoError(t, err, "a guaranteed booking checks in without a confirmation step")
	assert.Equal(t, res.RoomNumber, rental.RoomNumber)
}

func TestReservationService_CreateOverlap(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest(101))
	require.NoError(t, err)

	overlapping := createRequest(101)
	overlapping.StartDate = futureDate(10)
	overlapping.EndDate = futureDate(12)

	_, err = svc.Create(ctx, overlapping)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	adjacent := createRequest(101)
	adjacent.StartDate = futureDate(11)
	adjacent.EndDate = futureDate(13)

	_, err = svc.Create(ctx, adjacent)
	assert.NoError(t, err, "range starting the day after checkout should be free")
}

func TestReservationService_CreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(req *dto.CreateReservationRequest)
		wantCode int
	}{
		{
			name: "start date in the past",
			mutate: func(req *dto.CreateReservationRequest) {
				req.StartDate = futureDate(-1)
				req.EndDate = futureDate(2)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "end before start",
			mutate: func(req *dto.CreateReservationRequest) {
				req.StartDate = futureDate(10)
				req.EndDate = futureDate(7)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "malformed date",
			mutate: func(req *dto.CreateReservationRequest) {
				req.StartDate = "07/10/2026"
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			mutate: func(req *dto.CreateReservationRequest) {
				req.RoomNumber = 999
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown client without identity",
			mutate: func(req *dto.CreateReservationRequest) {
				req.FullName = ""
				req.Address = ""
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest(101)
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestReservationService_ConfirmAndCancel(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, createRequest(102))
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(ctx, res.ID))

	got, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, got.Status)

	err = svc.Confirm(ctx, res.ID)
	require.Error(t, err, "confirming twice is an illegal transition")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	require.NoError(t, svc.Cancel(ctx, res.ID))

	err = svc.Cancel(ctx, res.ID)
	require.Error(t, err, "cancelling twice is an error, not a no-op")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestReservationService_CancelFreesRoom(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, createRequest(103))
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, res.ID))

	_, err = svc.Create(ctx, createRequest(103))
	assert.NoError(t, err, "cancelled reservation should not block the room")
}

func TestReservationService_Convert(t *testing.T) {
	svc, store := newService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	res, err := svc.Create(ctx, createRequest(201))
	require.NoError(t, err)
	require.NoError(t, svc.Confirm(ctx, res.ID))

	rental, err := svc.Convert(ctx, dto.ConvertReservationRequest{
		EmployeeNAS:   seededEmployeeNAS,
		PaymentMethod: "card",
	}, res.ID)
	require.NoError(t, err)

	assert.Equal(t, res.RoomNumber, rental.RoomNumber)
	assert.Equal(t, res.ClientNAS, rental.ClientNAS)
	assert.Equal(t, res.StartDate, rental.StartDate)
	assert.Equal(t, res.EndDate, rental.EndDate)
	assert.NotEmpty(t, rental.PaymentID)

	payment, ok := store.Payments[rental.PaymentID]
	require.True(t, ok, "conversion must record the payment")
	assert.Equal(t, res.TotalPrice, payment.Amount)
	assert.Equal(t, "card", payment.Method)

	got, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConverted, got.Status)

	_, err = svc.Convert(ctx, dto.ConvertReservationRequest{
		EmployeeNAS:   seededEmployeeNAS,
		PaymentMethod: "card",
	}, res.ID)
	require.Error(t, err, "a converted reservation cannot be converted again")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestReservationService_ConvertPending(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, createRequest(102))
	require.NoError(t, err)

	_, err = svc.Convert(ctx, dto.ConvertReservationRequest{
		EmployeeNAS:   seededEmployeeNAS,
		PaymentMethod: "cash",
	}, res.ID)
	require.Error(t, err, "a pending reservation must be confirmed before check-in")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestReservationService_ConvertUnknownEmployee(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, createRequest(202))
	require.NoError(t, err)
	require.NoError(t, svc.Confirm(ctx, res.ID))

	_, err = svc.Convert(ctx, dto.ConvertReservationRequest{
		EmployeeNAS:   "999999999",
		PaymentMethod: "cash",
	}, res.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestReservationService_GetAll(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, createRequest(101))
	require.NoError(t, err)

	second := createRequest(102)
	second.ClientNAS = "555666777"
	second.FullName = "Alice Roy"
	second.Address = "9 Avenue du Parc, Montreal"

	_, err = svc.Create(ctx, second)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, first.ID))

	all, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10, Page: 1}, model.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalData)

	pending, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10, Page: 1}, model.ListFilter{Status: model.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, 1, pending.TotalData)

	byClient, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10, Page: 1}, model.ListFilter{ClientNAS: "555666777"})
	require.NoError(t, err)
	assert.Equal(t, 1, byClient.TotalData)
}

func TestReservationService_GetNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), "nonexistent-id")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
