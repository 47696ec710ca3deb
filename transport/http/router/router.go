package router

import (
	"github.com/go-chi/chi/v5"

	"lodge/internal/handlers/auth"
	"lodge/internal/handlers/chain"
	"lodge/internal/handlers/client"
	"lodge/internal/handlers/employee"
	"lodge/internal/handlers/hotel"
	"lodge/internal/handlers/payment"
	"lodge/internal/handlers/rental"
	"lodge/internal/handlers/reservation"
	"lodge/internal/handlers/room"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Chain       chain.Handler
	Hotel       hotel.Handler
	Room        room.Handler
	Client      client.Handler
	Employee    employee.Handler
	Reservation reservation.Handler
	Rental      rental.Handler
	Payment     payment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Chain.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Rental.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
