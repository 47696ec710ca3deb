package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	chainModel "lodge/internal/domains/chain/model"
	clientModel "lodge/internal/domains/client/model"
	employeeModel "lodge/internal/domains/employee/model"
	hotelModel "lodge/internal/domains/hotel/model"
	paymentModel "lodge/internal/domains/payment/model"
	rentalModel "lodge/internal/domains/rental/model"
	reservationModel "lodge/internal/domains/reservation/model"
	roomModel "lodge/internal/domains/room/model"
	userModel "lodge/internal/domains/user/model"
	"lodge/shared/model"
	"lodge/shared/password"
)

// Store is the in-memory backend used when no database connection is
// available. Every map is guarded by the single mutex; repositories
// take it for the whole of any compound operation so availability
// checks and the writes that depend on them stay atomic.
type Store struct {
	sync.RWMutex

	Chains       map[string]chainModel.Chain
	Hotels       map[string]hotelModel.Hotel
	Rooms        map[int]roomModel.Room
	Clients      map[string]clientModel.Client
	Employees    map[string]employeeModel.Employee
	Users        map[string]userModel.User
	Reservations map[string]reservationModel.Reservation
	Rentals      map[string]rentalModel.Rental
	Payments     map[string]paymentModel.Payment
}

// Paginate slices items the way LIMIT/OFFSET would. A non-positive
// limit returns everything.
func Paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}

	offset := 0
	if page > 1 {
		offset = (page - 1) * limit
	}

	if offset >= len(items) {
		return []T{}
	}

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}

func New() *Store {
	return &Store{
		Chains:       make(map[string]chainModel.Chain),
		Hotels:       make(map[string]hotelModel.Hotel),
		Rooms:        make(map[int]roomModel.Room),
		Clients:      make(map[string]clientModel.Client),
		Employees:    make(map[string]employeeModel.Employee),
		Users:        make(map[string]userModel.User),
		Reservations: make(map[string]reservationModel.Reservation),
		Rentals:      make(map[string]rentalModel.Rental),
		Payments:     make(map[string]paymentModel.Payment),
	}
}

// NewSeeded returns a store preloaded with a small demo dataset so the
// service is usable out of the box: two chains, three hotels, a handful
// of rooms and one administrator account (admin@lodge.local / admin).
func NewSeeded() *Store {
	s := New()
	now := time.Now().UTC()
	meta := model.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "seed", ModifiedBy: "seed"}

	aurora := chainModel.Chain{
		ID:            uuid.NewString(),
		Name:          "Aurora Hotels",
		HeadOffice:    "1200 Bay Street, Toronto",
		ContactEmails: pq.StringArray{"contact@aurorahotels.example"},
		ContactPhones: pq.StringArray{"+1-416-555-0180"},
		HotelCount:    2,
		Metadata:      meta,
	}
	boreal := chainModel.Chain{
		ID:            uuid.NewString(),
		Name:          "Boreal Stays",
		HeadOffice:    "88 Rue Wellington, Montreal",
		ContactEmails: pq.StringArray{"hello@borealstays.example"},
		ContactPhones: pq.StringArray{"+1-514-555-0122"},
		HotelCount:    1,
		Metadata:      meta,
	}
	s.Chains[aurora.ID] = aurora
	s.Chains[boreal.ID] = boreal

	hotels := []hotelModel.Hotel{
		{ID: uuid.NewString(), Name: "Aurora Downtown", Address: "10 King Street, Toronto", Stars: 4, RoomCount: 3, ChainID: aurora.ID, Metadata: meta},
		{ID: uuid.NewString(), Name: "Aurora Lakeside", Address: "2 Harbour Square, Toronto", Stars: 5, RoomCount: 2, ChainID: aurora.ID, Metadata: meta},
		{ID: uuid.NewString(), Name: "Boreal Old Port", Address: "300 Rue Saint-Paul, Montreal", Stars: 3, RoomCount: 2, ChainID: boreal.ID, Metadata: meta},
	}
	for _, h := range hotels {
		s.Hotels[h.ID] = h
	}

	rooms := []roomModel.Room{
		{Number: 101, HotelID: hotels[0].ID, Price: 140, Capacity: 2, Area: 24, View: "city", Amenities: "wifi,tv", Extensible: false, Metadata: meta},
		{Number: 102, HotelID: hotels[0].ID, Price: 185, Capacity: 3, Area: 32, View: "city", Amenities: "wifi,tv,minibar", Extensible: true, Metadata: meta},
		{Number: 103, HotelID: hotels[0].ID, Price: 260, Capacity: 4, Area: 45, View: "park", Amenities: "wifi,tv,minibar,balcony", Extensible: true, Metadata: meta},
		{Number: 201, HotelID: hotels[1].ID, Price: 320, Capacity: 2, Area: 38, View: "lake", Amenities: "wifi,tv,minibar", Extensible: false, Metadata: meta},
		{Number: 202, HotelID: hotels[1].ID, Price: 410, Capacity: 4, Area: 60, View: "lake", Amenities: "wifi,tv,minibar,kitchenette", Extensible: true, Metadata: meta},
		{Number: 301, HotelID: hotels[2].ID, Price: 95, Capacity: 2, Area: 20, View: "street", Amenities: "wifi", Extensible: false, Metadata: meta},
		{Number: 302, HotelID: hotels[2].ID, Price: 130, Capacity: 3, Area: 28, View: "courtyard", Amenities: "wifi,tv", Extensible: true, Metadata: meta},
	}
	for _, r := range rooms {
		s.Rooms[r.Number] = r
	}

	s.Employees["100000001"] = employeeModel.Employee{
		NAS:      "100000001",
		FullName: "Marie Tremblay",
		Address:  "45 Rue Berri, Montreal",
		HotelID:  hotels[2].ID,
		Roles:    pq.StringArray{"Manager"},
		Metadata: meta,
	}

	hash, err := password.Hash("admin")
	if err != nil {
		log.Warn().Err(err).Msg("[memstore] seed admin password hash failed, account disabled")
	}
	adminName := "Administrator"
	admin := userModel.User{
		ID:       uuid.NewString(),
		Email:    "admin@lodge.local",
		Password: hash,
		Role:     "admin",
		FullName: &adminName,
		Active:   err == nil,
		Metadata: meta,
	}
	s.Users[admin.ID] = admin

	return s
}
