package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	rentalModel "lodge/internal/domains/rental/model"
	reservationModel "lodge/internal/domains/reservation/model"
	"lodge/shared/constant"
	"lodge/shared/timezone"
)

const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationCancelled = "reservation.cancelled"
	TypeReservationConverted = "reservation.converted"
	TypeRentalCreated        = "rental.created"
)

// BookingEvent is the payload pushed to the booking topic for every
// lifecycle change. Downstream consumers drive emails and reporting.
type BookingEvent struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	RoomNumber int       `json:"room_number"`
	ClientNAS  string    `json:"client_nas"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher fans booking lifecycle changes out to Kafka. Publishing is
// fire-and-forget; a broker outage never fails a booking.
type Publisher interface {
	ReservationCreated(ctx context.Context, reservation reservationModel.Reservation)
	ReservationCancelled(ctx context.Context, reservation reservationModel.Reservation)
	ReservationConverted(ctx context.Context, reservation reservationModel.Reservation)
	RentalCreated(ctx context.Context, rental rentalModel.Rental)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otl otel.Otel) Publisher {
	if !cfg.Kafka.Enable || client == nil {
		log.Info().Msg("Kafka disabled, booking events will not be published")

		return noopPublisher{}
	}

	return &publisherImpl{client: client, cfg: cfg, otel: otl}
}

func (p *publisherImpl) ReservationCreated(ctx context.Context, reservation reservationModel.Reservation) {
	p.publish(ctx, reservationEvent(TypeReservationCreated, reservation))
}

func (p *publisherImpl) ReservationCancelled(ctx context.Context, reservation reservationModel.Reservation) {
	p.publish(ctx, reservationEvent(TypeReservationCancelled, reservation))
}

func (p *publisherImpl) ReservationConverted(ctx context.Context, reservation reservationModel.Reservation) {
	p.publish(ctx, reservationEvent(TypeReservationConverted, reservation))
}

func (p *publisherImpl) RentalCreated(ctx context.Context, rental rentalModel.Rental) {
	p.publish(ctx, BookingEvent{
		Type:       TypeRentalCreated,
		ID:         rental.ID,
		RoomNumber: rental.RoomNumber,
		ClientNAS:  rental.ClientNAS,
		StartDate:  rental.StartDate,
		EndDate:    rental.EndDate,
		OccurredAt: timezone.Now(),
	})
}

func (p *publisherImpl) publish(ctx context.Context, event BookingEvent) {
	go func() {
		c, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
		defer scope.End()

		message := kafka.Message{Key: event.ID, Value: event}

		if err := p.client.SendMessages(c, p.cfg.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Str("type", event.Type).Str("id", event.ID).Msg("failed to publish booking event")
			scope.TraceError(err)
		}
	}()
}

func reservationEvent(eventType string, reservation reservationModel.Reservation) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		ID:         reservation.ID,
		RoomNumber: reservation.RoomNumber,
		ClientNAS:  reservation.ClientNAS,
		StartDate:  reservation.StartDate,
		EndDate:    reservation.EndDate,
		OccurredAt: timezone.Now(),
	}
}

type noopPublisher struct{}

func (noopPublisher) ReservationCreated(context.Context, reservationModel.Reservation)   {}
func (noopPublisher) ReservationCancelled(context.Context, reservationModel.Reservation) {}
func (noopPublisher) ReservationConverted(context.Context, reservationModel.Reservation) {}
func (noopPublisher) RentalCreated(context.Context, rentalModel.Rental)                  {}
