package repository

import (
	"context"
	"slices"
	"sort"

	"lodge/infras/memstore"
	"lodge/internal/domains/employee/model"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type memoryImpl struct {
	store *memstore.Store
}

// NewMemory backs the employee repository with the in-memory store.
func NewMemory(store *memstore.Store) Employee {
	return &memoryImpl{store: store}
}

func (repo *memoryImpl) Insert(_ context.Context, employee model.Employee) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	if _, exists := repo.store.Employees[employee.NAS]; exists {
		return failure.Conflict("employee already registered")
	}

	if _, ok := repo.store.Hotels[employee.HotelID]; !ok {
		return failure.BadRequestFromString("hotel does not exist")
	}

	repo.store.Employees[employee.NAS] = employee

	return nil
}

func (repo *memoryImpl) GetByNAS(_ context.Context, nas string) (model.Employee, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return repo.store.Employees[nas], nil
}

func (repo *memoryImpl) List(_ context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Employee, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	employees := repo.collect(filter)

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].FullName < employees[j].FullName
	})

	return memstore.Paginate(employees, params.Page, params.Limit), nil
}

func (repo *memoryImpl) Count(_ context.Context, filter model.ListFilter) (int, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return len(repo.collect(filter)), nil
}

func (repo *memoryImpl) Update(_ context.Context, employee model.Employee) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	if _, ok := repo.store.Employees[employee.NAS]; !ok {
		return failure.NotFound("employee not found")
	}

	if _, ok := repo.store.Hotels[employee.HotelID]; !ok {
		return failure.BadRequestFromString("hotel does not exist")
	}

	repo.store.Employees[employee.NAS] = employee

	return nil
}

func (repo *memoryImpl) Delete(_ context.Context, nas string) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	for _, rental := range repo.store.Rentals {
		if rental.EmployeeNAS == nas {
			return failure.Conflict("employee still referenced by rentals")
		}
	}

	delete(repo.store.Employees, nas)

	return nil
}

func (repo *memoryImpl) collect(filter model.ListFilter) []model.Employee {
	employees := make([]model.Employee, 0, len(repo.store.Employees))

	for _, employee := range repo.store.Employees {
		if filter.HotelID != "" && employee.HotelID != filter.HotelID {
			continue
		}

		if filter.Role != "" && !slices.Contains(employee.Roles, filter.Role) {
			continue
		}

		employees = append(employees, employee)
	}

	return employees
}
