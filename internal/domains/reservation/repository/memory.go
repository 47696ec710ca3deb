package repository

import (
	"context"
	"sort"
	"time"

	"lodge/infras/memstore"
	paymentModel "lodge/internal/domains/payment/model"
	rentalModel "lodge/internal/domains/rental/model"
	"lodge/internal/domains/reservation/model"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/stay"
	"lodge/shared/timezone"
)

type memoryImpl struct {
	store *memstore.Store
}

// NewMemory backs the reservation repository with the in-memory store.
// The store mutex is held across each compound operation, which gives
// the same no-split guarantee the SQL transactions do.
func NewMemory(store *memstore.Store) Reservation {
	return &memoryImpl{store: store}
}

func (repo *memoryImpl) CreateIfAvailable(_ context.Context, reservation model.Reservation) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	if _, ok := repo.store.Rooms[reservation.RoomNumber]; !ok {
		return failure.BadRequestFromString("room or client does not exist")
	}

	if _, ok := repo.store.Clients[reservation.ClientNAS]; !ok {
		return failure.BadRequestFromString("room or client does not exist")
	}

	if rangeTaken(repo.store, reservation.RoomNumber, reservation.StartDate, reservation.EndDate) {
		return stay.ErrOverlap
	}

	repo.store.Reservations[reservation.ID] = reservation

	return nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.Reservation, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return repo.store.Reservations[id], nil
}

func (repo *memoryImpl) List(_ context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Reservation, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	reservations := repo.collect(filter)

	sort.Slice(reservations, func(i, j int) bool {
		if !reservations[i].StartDate.Equal(reservations[j].StartDate) {
			return reservations[i].StartDate.Before(reservations[j].StartDate)
		}

		return reservations[i].ID < reservations[j].ID
	})

	return memstore.Paginate(reservations, params.Page, params.Limit), nil
}

func (repo *memoryImpl) Count(_ context.Context, filter model.ListFilter) (int, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return len(repo.collect(filter)), nil
}

func (repo *memoryImpl) UpdateStatus(_ context.Context, id, status, modifiedBy string) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	reservation, ok := repo.store.Reservations[id]
	if !ok {
		return failure.NotFound("reservation not found")
	}

	reservation.Status = status
	reservation.ModifiedAt = timezone.Now()
	reservation.ModifiedBy = modifiedBy
	repo.store.Reservations[id] = reservation

	return nil
}

func (repo *memoryImpl) Convert(_ context.Context, reservationID string, rental rentalModel.Rental, payment paymentModel.Payment) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	reservation, ok := repo.store.Reservations[reservationID]
	if !ok {
		return failure.NotFound("reservation not found")
	}

	if reservation.IsTerminal() {
		return failure.InvalidState("reservation already " + reservation.Status)
	}

	repo.store.Payments[payment.ID] = payment
	repo.store.Rentals[rental.ID] = rental

	reservation.Status = model.StatusConverted
	reservation.ModifiedAt = timezone.Now()
	reservation.ModifiedBy = rental.EmployeeNAS
	repo.store.Reservations[reservationID] = reservation

	return nil
}

func rangeTaken(store *memstore.Store, roomNumber int, start, end time.Time) bool {
	for _, reservation := range store.Reservations {
		if reservation.RoomNumber != roomNumber || !reservation.Blocks() {
			continue
		}

		if stay.Overlaps(reservation.StartDate, reservation.EndDate, start, end) {
			return true
		}
	}

	for _, rental := range store.Rentals {
		if rental.RoomNumber != roomNumber {
			continue
		}

		if stay.Overlaps(rental.StartDate, rental.EndDate, start, end) {
			return true
		}
	}

	return false
}

func (repo *memoryImpl) collect(filter model.ListFilter) []model.Reservation {
	reservations := make([]model.Reservation, 0, len(repo.store.Reservations))

	for _, reservation := range repo.store.Reservations {
		if filter.ClientNAS != "" && reservation.ClientNAS != filter.ClientNAS {
			continue
		}

		if filter.RoomNumber > 0 && reservation.RoomNumber != filter.RoomNumber {
			continue
		}

		if filter.Status != "" && reservation.Status != filter.Status {
			continue
		}

		reservations = append(reservations, reservation)
	}

	return reservations
}
