package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/config"
	"lodge/infras/memstore"
	"lodge/infras/otel/mocks"
	clientModel "lodge/internal/domains/client/model"
	clientRepository "lodge/internal/domains/client/repository"
	employeeRepository "lodge/internal/domains/employee/repository"
	"lodge/internal/domains/rental/model"
	"lodge/internal/domains/rental/model/dto"
	rentalRepository "lodge/internal/domains/rental/repository"
	"lodge/internal/domains/rental/service"
	reservationModel "lodge/internal/domains/reservation/model"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/internal/events"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/stay"
	"lodge/shared/timezone"
)

const seededEmployeeNAS = "100000001"

func newService(t *testing.T) (service.Rental, *memstore.Store) {
	t.Helper()

	store := memstore.NewSeeded()
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	svc := service.New(
		rentalRepository.NewMemory(store),
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

func createRequest(room int) dto.CreateRentalRequest {
	return dto.CreateRentalRequest{
		RoomNumber:    room,
		ClientNAS:     "333444555",
		EmployeeNAS:   seededEmployeeNAS,
		FullName:      "Luc Bergeron",
		Address:       "7 Rue Sherbrooke, Montreal",
		StartDate:     futureDate(1),
		EndDate:       futureDate(4),
		PaymentMethod: "cash",
	}
}

func TestRentalService_Create(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, createRequest(301))
	require.NoError(t, err)

	assert.Equal(t, 301, res.RoomNumber)
	assert.Equal(t, seededEmployeeNAS, res.EmployeeNAS)
	assert.NotEmpty(t, res.PaymentID)

	payment, ok := store.Payments[res.PaymentID]
	require.True(t, ok, "walk-in rental must record its payment")
	assert.Equal(t, 95.0*3, payment.Amount)
	assert.Equal(t, "cash", payment.Method)

	_, registered := store.Clients["333444555"]
	assert.True(t, registered, "unknown client should be registered on the fly")
}

func TestRentalService_CreateSameDayStart(t *testing.T) {
	svc, _ := newService(t)

	req := createRequest(302)
	req.StartDate = futureDate(0)
	req.EndDate = futureDate(2)

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err, "a walk-in starting today is the normal case")
}

func TestRentalService_CreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(req *dto.CreateRentalRequest)
		wantCode int
	}{
		{
			name: "start date in the past",
			mutate: func(req *dto.CreateRentalRequest) {
				req.StartDate = futureDate(-2)
				req.EndDate = futureDate(1)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			mutate: func(req *dto.CreateRentalRequest) {
				req.RoomNumber = 999
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown employee",
			mutate: func(req *dto.CreateRentalRequest) {
				req.EmployeeNAS = "999999999"
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown client without identity",
			mutate: func(req *dto.CreateRentalRequest) {
				req.FullName = ""
				req.Address = ""
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest(301)
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestRentalService_CreateOverlap(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	start, err := stay.ParseDate(futureDate(1))
	require.NoError(t, err)
	end, err := stay.ParseDate(futureDate(4))
	require.NoError(t, err)

	// A confirmed reservation already holds the room for the period.
	store.Clients["444555666"] = clientFixture("444555666")
	store.Reservations["res-1"] = reservationFixture(301, "444555666", start, end)

	_, err = svc.Create(ctx, createRequest(301))
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestRentalService_GetAll(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, createRequest(301))
	require.NoError(t, err)

	second := createRequest(302)
	second.ClientNAS = "666777888"
	second.FullName = "Sophie Gagnon"
	second.Address = "21 Boulevard Saint-Laurent, Montreal"

	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	all, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10, Page: 1}, model.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalData)

	byRoom, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10, Page: 1}, model.ListFilter{RoomNumber: 301})
	require.NoError(t, err)
	require.Equal(t, 1, byRoom.TotalData)
	assert.Equal(t, first.ID, byRoom.Rentals[0].ID)
}

func TestRentalService_GetNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), "nonexistent-id")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func clientFixture(nas string) clientModel.Client {
	now := timezone.Now()

	return clientModel.Client{
		NAS:          nas,
		FullName:     "Fixture Client",
		Address:      "1 Rue Test, Montreal",
		RegisteredAt: now,
		Metadata:     gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "test", ModifiedBy: "test"},
	}
}

func reservationFixture(room int, nas string, start, end time.Time) reservationModel.Reservation {
	now := timezone.Now()

	return reservationModel.Reservation{
		ID:         "res-1",
		RoomNumber: room,
		ClientNAS:  nas,
		StartDate:  start,
		EndDate:    end,
		Status:     reservationModel.StatusConfirmed,
		TotalPrice: 285,
		Metadata:   gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "test", ModifiedBy: "test"},
	}
}
