package di

import (
	"lodge/infras/memstore"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	chainRepository "lodge/internal/domains/chain/repository"
	clientRepository "lodge/internal/domains/client/repository"
	employeeRepository "lodge/internal/domains/employee/repository"
	hotelRepository "lodge/internal/domains/hotel/repository"
	paymentRepository "lodge/internal/domains/payment/repository"
	rentalRepository "lodge/internal/domains/rental/repository"
	reservationRepository "lodge/internal/domains/reservation/repository"
	roomRepository "lodge/internal/domains/room/repository"
	userRepository "lodge/internal/domains/user/repository"
)

// Every repository picks its backend here: Postgres when the connection
// came up, the seeded in-memory store otherwise. Services never know
// which one they got.

func ProvideStore() *memstore.Store {
	return memstore.NewSeeded()
}

func ProvideChainRepository(conn *postgres.Connection, store *memstore.Store, otl otel.Otel) chainRepository.Chain {
	if conn == nil {
		return chainRepository.NewMemory(store)
	}

	return chainRepository.New(conn, otl)
}

func ProvideHotelRepository(conn *postgres.Connection, store *memstore.Store, otl otel.Otel) hotelRepository.Hotel {
	if conn == nil {
		return hotelRepository.NewMemory(store)
	}

	return hotelRepository.New(conn, otl)
}

func ProvideRoomRepository(conn *postgres.Connection, store *memstore.Store, otl otel.Otel) roomRepository.Room {
	if conn == nil {
		return roomRepository.NewMemory(store)
	}

	return roomRepository.New(conn, otl)
}

func ProvideClientRepository(conn *postgres.Connection, store *memstore.Store, otl otel.Otel) clientRepository.Client {
	if conn == nil {
		return clientRepository.NewMemory(store)
	}

	return clientRepository.New(conn, otl)
}

func ProvideEmployeeRepository(conn *postgres.Connection, store *memstore.Store, otl otel.Otel) employeeRepository.Employee {
	if conn == nil {
		return employeeRepository.NewMemory(store)
	}

	return employeeRepository.New(conn, otl)
}

func ProvideUserRepository(conn *postgres.Connection, store *memstore.Store, otl otel.Otel) userRepository.User {
	if conn == nil {
		return userRepository.NewMemory(store)
	}

	return userRepository.New(conn, otl)
}

func ProvideReservationRepository(conn *postgres.Connection, store *memstore.Store, otl otel.Otel) reservationRepository.Reservation {
	if conn == nil {
		return reservationRepository.NewMemory(store)
	}

	return reservationRepository.New(conn, otl)
}

func ProvideRentalRepository(conn *postgres.Connection, store *memstore.Store, otl otel.Otel) rentalRepository.Rental {
	if conn == nil {
		return rentalRepository.NewMemory(store)
	}

	return rentalRepository.New(conn, otl)
}

func ProvidePaymentRepository(conn *postgres.Connection, store *memstore.Store, otl otel.Otel) paymentRepository.Payment {
	if conn == nil {
		return paymentRepository.NewMemory(store)
	}

	return paymentRepository.New(conn, otl)
}
