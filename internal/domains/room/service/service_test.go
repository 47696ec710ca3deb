package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/config"
	"lodge/infras/memstore"
	"lodge/infras/otel/mocks"
	"lodge/infras/s3"
	reservationModel "lodge/internal/domains/reservation/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/repository"
	"lodge/internal/domains/room/service"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/stay"
	"lodge/shared/timezone"
)

func newService(t *testing.T) (service.Room, *memstore.Store) {
	t.Helper()

	store := memstore.NewSeeded()
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	svc := service.New(
		repository.NewMemory(store),
		cfg,
		cache.NewRedisCache(nil, mockOtel),
		mockOtel,
		s3.New(cfg, mockOtel),
	)

	return svc, store
}

func futureDate(days int) string {
	return timezone.Format(timezone.Today().AddDate(0, 0, days), constant.DateOnlyFormat)
}

func availabilityRequest(mutate func(req *dto.AvailabilityRequest)) dto.AvailabilityRequest {
	req := dto.AvailabilityRequest{
		Start: futureDate(7),
		End:   futureDate(10),
	}

	if mutate != nil {
		mutate(&req)
	}

	return req
}

func TestRoomService_SearchAvailable(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.SearchAvailable(ctx, availabilityRequest(nil))
	require.NoError(t, err)
	require.Equal(t, 7, res.Total, "every seeded room is free in the far future")

	// Cheapest first, room number breaking price ties.
	assert.Equal(t, 301, res.Rooms[0].Number)
	assert.Equal(t, 95.0, res.Rooms[0].Price)
	assert.Equal(t, 202, res.Rooms[len(res.Rooms)-1].Number)

	// Hits carry hotel and chain context for the results page.
	assert.Equal(t, "Boreal Old Port", res.Rooms[0].HotelName)
	assert.Equal(t, "Boreal Stays", res.Rooms[0].ChainName)
}

func TestRoomService_SearchAvailableFilters(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		mutate      func(req *dto.AvailabilityRequest)
		wantNumbers []int
	}{
		{
			name:        "stars",
			mutate:      func(req *dto.AvailabilityRequest) { req.Stars = 5 },
			wantNumbers: []int{201, 202},
		},
		{
			name:        "minimum capacity",
			mutate:      func(req *dto.AvailabilityRequest) { req.Capacity = 4 },
			wantNumbers: []int{103, 202},
		},
		{
			name:        "price ceiling",
			mutate:      func(req *dto.AvailabilityRequest) { req.PriceMax = "140" },
			wantNumbers: []int{301, 302, 101},
		},
		{
			name:        "view",
			mutate:      func(req *dto.AvailabilityRequest) { req.View = "lake" },
			wantNumbers: []int{201, 202},
		},
		{
			name:        "location",
			mutate:      func(req *dto.AvailabilityRequest) { req.Location = "montreal" },
			wantNumbers: []int{301, 302},
		},
		{
			name:        "chain",
			mutate:      func(req *dto.AvailabilityRequest) { req.Chain = "aurora" },
			wantNumbers: []int{101, 102, 103, 201, 202},
		},
		{
			name: "combined",
			mutate: func(req *dto.AvailabilityRequest) {
				req.Chain = "aurora"
				req.Capacity = 3
				req.PriceMax = "200"
			},
			wantNumbers: []int{102},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.SearchAvailable(ctx, availabilityRequest(tt.mutate))
			require.NoError(t, err)

			numbers := make([]int, len(res.Rooms))
			for i, room := range res.Rooms {
				numbers[i] = room.Number
			}

			assert.ElementsMatch(t, tt.wantNumbers, numbers)
		})
	}
}

func TestRoomService_SearchAvailableExcludesBooked(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	start, err := stay.ParseDate(futureDate(8))
	require.NoError(t, err)
	end, err := stay.ParseDate(futureDate(9))
	require.NoError(t, err)

	now := timezone.Now()
	meta := gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "test", ModifiedBy: "test"}

	store.Reservations["res-blocking"] = reservationModel.Reservation{
		ID:         "res-blocking",
		RoomNumber: 101,
		ClientNAS:  "111222333",
		StartDate:  start,
		EndDate:    end,
		Status:     reservationModel.StatusConfirmed,
		Metadata:   meta,
	}
	store.Reservations["res-cancelled"] = reservationModel.Reservation{
		ID:         "res-cancelled",
		RoomNumber: 102,
		ClientNAS:  "111222333",
		StartDate:  start,
		EndDate:    end,
		Status:     reservationModel.StatusCancelled,
		Metadata:   meta,
	}

	res, err := svc.SearchAvailable(ctx, availabilityRequest(nil))
	require.NoError(t, err)

	numbers := make(map[int]bool, len(res.Rooms))
	for _, room := range res.Rooms {
		numbers[room.Number] = true
	}

	assert.False(t, numbers[101], "confirmed reservation inside the range blocks the room")
	assert.True(t, numbers[102], "cancelled reservation does not block the room")

	// A range ending the day before the hold starts stays bookable.
	before, err := svc.SearchAvailable(ctx, availabilityRequest(func(req *dto.AvailabilityRequest) {
		req.Start = futureDate(5)
		req.End = futureDate(7)
	}))
	require.NoError(t, err)

	found := false
	for _, room := range before.Rooms {
		if room.Number == 101 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRoomService_SearchAvailableValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *dto.AvailabilityRequest)
	}{
		{
			name: "end before start",
			mutate: func(req *dto.AvailabilityRequest) {
				req.Start = futureDate(10)
				req.End = futureDate(7)
			},
		},
		{
			name:   "malformed date",
			mutate: func(req *dto.AvailabilityRequest) { req.Start = "next tuesday" },
		},
		{
			name:   "malformed price bound",
			mutate: func(req *dto.AvailabilityRequest) { req.PriceMax = "cheap" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SearchAvailable(ctx, availabilityRequest(tt.mutate))
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
