package dto

import (
	"time"

	"github.com/google/uuid"

	"lodge/internal/domains/rental/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

// CreateRentalRequest is the walk-in path: a guest at the desk with no
// reservation. When the client is unknown, full_name and address let the
// receptionist register them on the spot.
type CreateRentalRequest struct {
	RoomNumber    int    `json:"room_number"    validate:"required,min=1"`
	ClientNAS     string `json:"client_nas"     validate:"required,len=9,numeric"`
	EmployeeNAS   string `json:"employee_nas"   validate:"required,len=9,numeric"`
	FullName      string `json:"full_name"      validate:"omitempty,max=100"`
	Address       string `json:"address"        validate:"omitempty,max=255"`
	StartDate     string `json:"start_date"     validate:"required"`
	EndDate       string `json:"end_date"       validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card transfer"`
}

func (c *CreateRentalRequest) ToModel(employeeNAS, paymentID string, start, end time.Time) model.Rental {
	return model.Rental{
		ID:          uuid.Must(uuid.NewV7()).String(),
		RoomNumber:  c.RoomNumber,
		ClientNAS:   c.ClientNAS,
		EmployeeNAS: employeeNAS,
		StartDate:   start,
		EndDate:     end,
		PaymentID:   paymentID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  employeeNAS,
			ModifiedBy: employeeNAS,
		},
	}
}

type RentalResponse struct {
	ID          string `json:"id"`
	RoomNumber  int    `json:"room_number"`
	ClientNAS   string `json:"client_nas"`
	EmployeeNAS string `json:"employee_nas"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PaymentID   string `json:"payment_id"`
	gDto.Metadata
}

func (r *RentalResponse) FromModel(model model.Rental) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.ClientNAS = model.ClientNAS
	r.EmployeeNAS = model.EmployeeNAS
	r.StartDate = timezone.Format(model.StartDate, constant.DateOnlyFormat)
	r.EndDate = timezone.Format(model.EndDate, constant.DateOnlyFormat)
	r.PaymentID = model.PaymentID
	r.Metadata.FromModel(model.Metadata)
}

type GetRentalsResponse struct {
	Rentals   []RentalResponse `json:"rentals"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetRentalsResponse) FromModels(models []model.Rental, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rentals = make([]RentalResponse, len(models))
	for i, mod := range models {
		r.Rentals[i].FromModel(mod)
	}
}
