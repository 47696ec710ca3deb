package repository

import (
	"context"
	"sort"
	"strings"

	"lodge/infras/memstore"
	"lodge/internal/domains/client/model"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type memoryImpl struct {
	store *memstore.Store
}

// NewMemory backs the client repository with the in-memory store.
func NewMemory(store *memstore.Store) Client {
	return &memoryImpl{store: store}
}

func (repo *memoryImpl) Insert(_ context.Context, client model.Client) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	if _, exists := repo.store.Clients[client.NAS]; exists {
		return failure.Conflict("client already registered")
	}

	repo.store.Clients[client.NAS] = client

	return nil
}

func (repo *memoryImpl) GetByNAS(_ context.Context, nas string) (model.Client, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return repo.store.Clients[nas], nil
}

func (repo *memoryImpl) List(_ context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Client, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	clients := repo.collect(filter)

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].FullName < clients[j].FullName
	})

	return memstore.Paginate(clients, params.Page, params.Limit), nil
}

func (repo *memoryImpl) Count(_ context.Context, filter model.ListFilter) (int, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return len(repo.collect(filter)), nil
}

func (repo *memoryImpl) Update(_ context.Context, client model.Client) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	if _, ok := repo.store.Clients[client.NAS]; !ok {
		return failure.NotFound("client not found")
	}

	repo.store.Clients[client.NAS] = client

	return nil
}

func (repo *memoryImpl) Delete(_ context.Context, nas string) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	for _, reservation := range repo.store.Reservations {
		if reservation.ClientNAS == nas {
			return failure.Conflict("client still has reservations or rentals")
		}
	}

	for _, rental := range repo.store.Rentals {
		if rental.ClientNAS == nas {
			return failure.Conflict("client still has reservations or rentals")
		}
	}

	delete(repo.store.Clients, nas)

	return nil
}

func (repo *memoryImpl) collect(filter model.ListFilter) []model.Client {
	clients := make([]model.Client, 0, len(repo.store.Clients))

	for _, client := range repo.store.Clients {
		if filter.Name != "" && !strings.Contains(strings.ToLower(client.FullName), strings.ToLower(filter.Name)) {
			continue
		}

		clients = append(clients, client)
	}

	return clients
}
