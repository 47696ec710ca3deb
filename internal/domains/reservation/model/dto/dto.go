package dto

import (
	"time"

	"github.com/google/uuid"

	"lodge/internal/domains/reservation/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

// CreateReservationRequest books a room for a client. Unknown clients
// are registered on the fly when full_name and address are present.
// A payment_method marks the booking as guaranteed: it starts confirmed
// and can be checked in without a separate confirmation step.
type CreateReservationRequest struct {
	RoomNumber    int    `json:"room_number"    validate:"required,min=1"`
	ClientNAS     string `json:"client_nas"     validate:"required,len=9,numeric"`
	FullName      string `json:"full_name"      validate:"omitempty,max=100"`
	Address       string `json:"address"        validate:"omitempty,max=255"`
	StartDate     string `json:"start_date"     validate:"required"`
	EndDate       string `json:"end_date"       validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash card transfer"`
}

// ToModel builds the reservation: confirmed when a payment method backs
// it, pending otherwise. Reservation ids are time ordered so listings
// sort naturally by creation.
func (c *CreateReservationRequest) ToModel(user string, start, end time.Time, totalPrice float64) model.Reservation {
	status := model.StatusPending
	if c.PaymentMethod != constant.Empty {
		status = model.StatusConfirmed
	}

	return model.Reservation{
		ID:         uuid.Must(uuid.NewV7()).String(),
		RoomNumber: c.RoomNumber,
		ClientNAS:  c.ClientNAS,
		StartDate:  start,
		EndDate:    end,
		Status:     status,
		TotalPrice: totalPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ConvertReservationRequest struct {
	EmployeeNAS   string `json:"employee_nas"   validate:"required,len=9,numeric"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card transfer"`
}

type ReservationResponse struct {
	ID         string  `json:"id"`
	RoomNumber int     `json:"room_number"`
	ClientNAS  string  `json:"client_nas"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.ClientNAS = model.ClientNAS
	r.StartDate = timezone.Format(model.StartDate, constant.DateOnlyFormat)
	r.EndDate = timezone.Format(model.EndDate, constant.DateOnlyFormat)
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
