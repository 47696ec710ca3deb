package repository

import (
	"context"
	"sort"
	"strings"

	"lodge/infras/memstore"
	"lodge/internal/domains/chain/model"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type memoryImpl struct {
	store *memstore.Store
}

// NewMemory backs the chain repository with the in-memory store.
func NewMemory(store *memstore.Store) Chain {
	return &memoryImpl{store: store}
}

func (repo *memoryImpl) Insert(_ context.Context, chain model.Chain) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	for _, existing := range repo.store.Chains {
		if strings.EqualFold(existing.Name, chain.Name) {
			return failure.Conflict("chain name already in use")
		}
	}

	repo.store.Chains[chain.ID] = chain

	return nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.Chain, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return repo.store.Chains[id], nil
}

func (repo *memoryImpl) List(_ context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Chain, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	chains := repo.collect(filter)

	sort.Slice(chains, func(i, j int) bool {
		if params.SortBy == model.FieldName {
			if params.SortDir == gDto.SortDirDesc {
				return chains[i].Name > chains[j].Name
			}

			return chains[i].Name < chains[j].Name
		}

		return chains[i].CreatedAt.After(chains[j].CreatedAt)
	})

	return memstore.Paginate(chains, params.Page, params.Limit), nil
}

func (repo *memoryImpl) Count(_ context.Context, filter model.ListFilter) (int, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return len(repo.collect(filter)), nil
}

func (repo *memoryImpl) Update(_ context.Context, chain model.Chain) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	if _, ok := repo.store.Chains[chain.ID]; !ok {
		return failure.NotFound("chain not found")
	}

	repo.store.Chains[chain.ID] = chain

	return nil
}

func (repo *memoryImpl) Delete(_ context.Context, id string) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	for _, hotel := range repo.store.Hotels {
		if hotel.ChainID == id {
			return failure.Conflict("chain still has hotels")
		}
	}

	delete(repo.store.Chains, id)

	return nil
}

func (repo *memoryImpl) collect(filter model.ListFilter) []model.Chain {
	chains := make([]model.Chain, 0, len(repo.store.Chains))

	for _, chain := range repo.store.Chains {
		if filter.Name != "" && !strings.Contains(strings.ToLower(chain.Name), strings.ToLower(filter.Name)) {
			continue
		}

		chains = append(chains, chain)
	}

	return chains
}
