package repository

import (
	"context"
	"sort"

	"lodge/infras/memstore"
	"lodge/internal/domains/payment/model"
	gDto "lodge/shared/dto"
)

type memoryImpl struct {
	store *memstore.Store
}

// NewMemory backs the payment repository with the in-memory store.
func NewMemory(store *memstore.Store) Payment {
	return &memoryImpl{store: store}
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.Payment, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return repo.store.Payments[id], nil
}

func (repo *memoryImpl) List(_ context.Context, params gDto.QueryParams) ([]model.Payment, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	payments := make([]model.Payment, 0, len(repo.store.Payments))
	for _, payment := range repo.store.Payments {
		payments = append(payments, payment)
	}

	sort.Slice(payments, func(i, j int) bool {
		if !payments[i].PaidAt.Equal(payments[j].PaidAt) {
			return payments[i].PaidAt.After(payments[j].PaidAt)
		}

		return payments[i].ID < payments[j].ID
	})

	return memstore.Paginate(payments, params.Page, params.Limit), nil
}

func (repo *memoryImpl) Count(_ context.Context) (int, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return len(repo.store.Payments), nil
}
