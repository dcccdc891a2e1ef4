package router

import (
	"ehotel/internal/handlers/booking"
	"ehotel/internal/handlers/catalog"
	"ehotel/internal/handlers/customer"
	"ehotel/internal/handlers/employee"
	"ehotel/internal/handlers/hotel"
	"ehotel/internal/handlers/hotelchain"
	"ehotel/internal/handlers/payment"
	"ehotel/internal/handlers/rental"
	"ehotel/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	HotelChain hotelchain.Handler
	Hotel      hotel.Handler
	Room       room.Handler
	Customer   customer.Handler
	Employee   employee.Handler
	Booking    booking.Handler
	Rental     rental.Handler
	Payment    payment.Handler
	Catalog    catalog.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.HotelChain.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Rental.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
