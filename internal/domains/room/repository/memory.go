package repository

import (
	"context"
	"sort"
	"strings"

	"lodge/infras/memstore"
	"lodge/internal/domains/room/model"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/stay"
)

type memoryImpl struct {
	store *memstore.Store
}

// NewMemory backs the room repository with the in-memory store.
func NewMemory(store *memstore.Store) Room {
	return &memoryImpl{store: store}
}

func (repo *memoryImpl) Insert(_ context.Context, room model.Room) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	if _, exists := repo.store.Rooms[room.Number]; exists {
		return failure.Conflict("room number already in use")
	}

	hotel, ok := repo.store.Hotels[room.HotelID]
	if !ok {
		return failure.BadRequestFromString("hotel does not exist")
	}

	repo.store.Rooms[room.Number] = room

	hotel.RoomCount++
	repo.store.Hotels[hotel.ID] = hotel

	return nil
}

func (repo *memoryImpl) GetByNumber(_ context.Context, number int) (model.Room, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return repo.store.Rooms[number], nil
}

func (repo *memoryImpl) List(_ context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Room, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	rooms := repo.collect(filter)

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Number < rooms[j].Number
	})

	return memstore.Paginate(rooms, params.Page, params.Limit), nil
}

func (repo *memoryImpl) Count(_ context.Context, filter model.ListFilter) (int, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	return len(repo.collect(filter)), nil
}

func (repo *memoryImpl) Update(_ context.Context, room model.Room) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	current, ok := repo.store.Rooms[room.Number]
	if !ok {
		return failure.NotFound("room not found")
	}

	if current.HotelID != room.HotelID {
		if from, ok := repo.store.Hotels[current.HotelID]; ok {
			from.RoomCount--
			repo.store.Hotels[from.ID] = from
		}

		to, ok := repo.store.Hotels[room.HotelID]
		if !ok {
			return failure.BadRequestFromString("hotel does not exist")
		}

		to.RoomCount++
		repo.store.Hotels[to.ID] = to
	}

	repo.store.Rooms[room.Number] = room

	return nil
}

func (repo *memoryImpl) Delete(_ context.Context, number int) error {
	repo.store.Lock()
	defer repo.store.Unlock()

	room, ok := repo.store.Rooms[number]
	if !ok {
		return failure.NotFound("room not found")
	}

	for _, reservation := range repo.store.Reservations {
		if reservation.RoomNumber == number {
			return failure.Conflict("room still has reservations or rentals")
		}
	}

	for _, rental := range repo.store.Rentals {
		if rental.RoomNumber == number {
			return failure.Conflict("room still has reservations or rentals")
		}
	}

	delete(repo.store.Rooms, number)

	if hotel, ok := repo.store.Hotels[room.HotelID]; ok {
		hotel.RoomCount--
		repo.store.Hotels[hotel.ID] = hotel
	}

	return nil
}

func (repo *memoryImpl) FindAvailable(_ context.Context, query model.AvailabilityQuery) ([]model.AvailableRoom, error) {
	repo.store.RLock()
	defer repo.store.RUnlock()

	rooms := []model.AvailableRoom{}

	for _, room := range repo.store.Rooms {
		hotel, ok := repo.store.Hotels[room.HotelID]
		if !ok {
			continue
		}

		chain := repo.store.Chains[hotel.ChainID]

		if !matchesQuery(room, hotel.Address, hotel.Stars, chain.Name, query) {
			continue
		}

		if roomTaken(repo.store, room.Number, query) {
			continue
		}

		rooms = append(rooms, model.AvailableRoom{
			Number:       room.Number,
			HotelID:      room.HotelID,
			Price:        room.Price,
			Capacity:     room.Capacity,
			Area:         room.Area,
			View:         room.View,
			Amenities:    room.Amenities,
			Extensible:   room.Extensible,
			Image:        room.Image,
			HotelName:    hotel.Name,
			HotelAddress: hotel.Address,
			Stars:        hotel.Stars,
			ChainName:    chain.Name,
		})
	}

	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Price != rooms[j].Price {
			return rooms[i].Price < rooms[j].Price
		}

		return rooms[i].Number < rooms[j].Number
	})

	return rooms, nil
}

func matchesQuery(room model.Room, hotelAddress string, stars int, chainName string, query model.AvailabilityQuery) bool {
	if query.Location != "" && !strings.Contains(strings.ToLower(hotelAddress), strings.ToLower(query.Location)) {
		return false
	}

	if query.Chain != "" && !strings.Contains(strings.ToLower(chainName), strings.ToLower(query.Chain)) {
		return false
	}

	if query.Stars > 0 && stars != query.Stars {
		return false
	}

	if query.Capacity > 0 && room.Capacity < query.Capacity {
		return false
	}

	if query.View != "" && room.View != query.View {
		return false
	}

	if query.PriceMin != nil && room.Price < *query.PriceMin {
		return false
	}

	if query.PriceMax != nil && room.Price > *query.PriceMax {
		return false
	}

	if query.AreaMin != nil && room.Area < *query.AreaMin {
		return false
	}

	if query.AreaMax != nil && room.Area > *query.AreaMax {
		return false
	}

	return true
}

func roomTaken(store *memstore.Store, number int, query model.AvailabilityQuery) bool {
	for _, reservation := range store.Reservations {
		if reservation.RoomNumber != number || !reservation.Blocks() {
			continue
		}

		if stay.Overlaps(reservation.StartDate, reservation.EndDate, query.Start, query.End) {
			return true
		}
	}

	for _, rental := range store.Rentals {
		if rental.RoomNumber != number {
			continue
		}

		if stay.Overlaps(rental.StartDate, rental.EndDate, query.Start, query.End) {
			return true
		}
	}

	return false
}

func (repo *memoryImpl) collect(filter model.ListFilter) []model.Room {
	rooms := make([]model.Room, 0, len(repo.store.Rooms))

	for _, room := range repo.store.Rooms {
		if filter.HotelID != "" && room.HotelID != filter.HotelID {
			continue
		}

		if filter.Capacity > 0 && room.Capacity < filter.Capacity {
			continue
		}

		if filter.View != "" && room.View != filter.View {
			continue
		}

		rooms = append(rooms, room)
	}

	return rooms
}
