package repository

import (
	"context"
	"sort"
	"strings"

	"lodge/infras/memstore"
	"lodge/internal/domains/hotel/model"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type memoryImpl struct {
	store *memstore.Store
}

// NewMemory backs the hotel repository with the in-memory store.
func NewMemory(store *memstore.Store) Hotel {
	return &memoryImpl{store: store}
}

func (repo *memoryImpl) Insert(_ context.Context, hotel model.Hotel) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	chain, ok := repo.store.Chains[hotel.ChainID]
	if !ok {
		return failure.BadRequestFromString("chain does not exist")
	}

	repo.store.Hotels[hotel.ID] = hotel

	chain.HotelCount++
	repo.store.Chains[chain.ID] = chain

	return nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.Hotel, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return repo.store.Hotels[id], nil
}

func (repo *memoryImpl) List(_ context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Hotel, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	hotels := repo.collect(filter)

	sort.Slice(hotels, func(i, j int) bool {
		if params.SortBy == model.FieldName {
			if params.SortDir == gDto.SortDirDesc {
				return hotels[i].Name > hotels[j].Name
			}

			return hotels[i].Name < hotels[j].Name
		}

		return hotels[i].CreatedAt.After(hotels[j].CreatedAt)
	})

	return memstore.Paginate(hotels, params.Page, params.Limit), nil
}

func (repo *memoryImpl) Count(_ context.Context, filter model.ListFilter) (int, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return len(repo.collect(filter)), nil
}

func (repo *memoryImpl) Update(_ context.Context, hotel model.Hotel) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	current, ok := repo.store.Hotels[hotel.ID]
	if !ok {
		return failure.NotFound("hotel not found")
	}

	// Moving a hotel between chains shifts both counters.
	if current.ChainID != hotel.ChainID {
		from, ok := repo.store.Chains[current.ChainID]
		if ok {
			from.HotelCount--
			repo.store.Chains[from.ID] = from
		}

		to, ok := repo.store.Chains[hotel.ChainID]
		if !ok {
			return failure.BadRequestFromString("chain does not exist")
		}

		to.HotelCount++
		repo.store.Chains[to.ID] = to
	}

	repo.store.Hotels[hotel.ID] = hotel

	return nil
}

func (repo *memoryImpl) Delete(_ context.Context, id string) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	hotel, ok := repo.store.Hotels[id]
	if !ok {
		return failure.NotFound("hotel not found")
	}

	for _, room := range repo.store.Rooms {
		if room.HotelID == id {
			return failure.Conflict("hotel still has rooms")
		}
	}

	delete(repo.store.Hotels, id)

	if chain, ok := repo.store.Chains[hotel.ChainID]; ok {
		chain.HotelCount--
		repo.store.Chains[chain.ID] = chain
	}

	return nil
}

func (repo *memoryImpl) collect(filter model.ListFilter) []model.Hotel {
	hotels := make([]model.Hotel, 0, len(repo.store.Hotels))

	for _, hotel := range repo.store.Hotels {
		if filter.ChainID != "" && hotel.ChainID != filter.ChainID {
			continue
		}

		if filter.Stars > 0 && hotel.Stars != filter.Stars {
			continue
		}

		if filter.Address != "" && !strings.Contains(strings.ToLower(hotel.Address), strings.ToLower(filter.Address)) {
			continue
		}

		hotels = append(hotels, hotel)
	}

	return hotels
}
