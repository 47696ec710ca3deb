package repository

import (
	"context"
	"sort"
	"time"

	"lodge/infras/memstore"
	paymentModel "lodge/internal/domains/payment/model"
	"lodge/internal/domains/rental/model"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/stay"
)

type memoryImpl struct {
	store *memstore.Store
}

// NewMemory backs the rental repository with the in-memory store.
func NewMemory(store *memstore.Store) Rental {
	return &memoryImpl{store: store}
}

func (repo *memoryImpl) CreateDirect(_ context.Context, rental model.Rental, payment paymentModel.Payment) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	if _, ok := repo.store.Rooms[rental.RoomNumber]; !ok {
		return failure.BadRequestFromString("room, client or employee does not exist")
	}

	if _, ok := repo.store.Clients[rental.ClientNAS]; !ok {
		return failure.BadRequestFromString("room, client or employee does not exist")
	}

	if _, ok := repo.store.Employees[rental.EmployeeNAS]; !ok {
		return failure.BadRequestFromString("room, client or employee does not exist")
	}

	if rangeTaken(repo.store, rental.RoomNumber, rental.StartDate, rental.EndDate) {
		return stay.ErrOverlap
	}

	repo.store.Payments[payment.ID] = payment
	repo.store.Rentals[rental.ID] = rental

	return nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.Rental, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return repo.store.Rentals[id], nil
}

func (repo *memoryImpl) List(_ context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Rental, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	rentals := repo.collect(filter)

	sort.Slice(rentals, func(i, j int) bool {
		if !rentals[i].StartDate.Equal(rentals[j].StartDate) {
			return rentals[i].StartDate.Before(rentals[j].StartDate)
		}

		return rentals[i].ID < rentals[j].ID
	})

	return memstore.Paginate(rentals, params.Page, params.Limit), nil
}

func (repo *memoryImpl) Count(_ context.Context, filter model.ListFilter) (int, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return len(repo.collect(filter)), nil
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

func (repo *memoryImpl) collect(filter model.ListFilter) []model.Rental {
	rentals := make([]model.Rental, 0, len(repo.store.Rentals))

	for _, rental := range repo.store.Rentals {
		if filter.ClientNAS != "" && rental.ClientNAS != filter.ClientNAS {
			continue
		}

		if filter.EmployeeNAS != "" && rental.EmployeeNAS != filter.EmployeeNAS {
			continue
		}

		if filter.RoomNumber > 0 && rental.RoomNumber != filter.RoomNumber {
			continue
		}

		rentals = append(rentals, rental)
	}

	return rentals
}
