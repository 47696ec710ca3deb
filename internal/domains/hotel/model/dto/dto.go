package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/hotel/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateHotelRequest struct {
	Name    string `json:"name"     validate:"required,max=100"`
	Address string `json:"address"  validate:"required,max=255"`
	Stars   int    `json:"stars"    validate:"required,min=1,max=5"`
	ChainID string `json:"chain_id" validate:"required,uuid"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Address: c.Address,
		Stars:   c.Stars,
		ChainID: c.ChainID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name    string `json:"name"    validate:"omitempty,max=100"`
	Address string `json:"address" validate:"omitempty,max=255"`
	Stars   int    `json:"stars"   validate:"omitempty,min=1,max=5"`
}

func (u *UpdateHotelRequest) ApplyTo(hotel *model.Hotel, user string) {
	if u.Name != "" {
		hotel.Name = u.Name
	}

	if u.Address != "" {
		hotel.Address = u.Address
	}

	if u.Stars > 0 {
		hotel.Stars = u.Stars
	}

	hotel.ModifiedAt = timezone.Now()
	hotel.ModifiedBy = user
}

type HotelResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Stars     int    `json:"stars"`
	RoomCount int    `json:"room_count"`
	ChainID   string `json:"chain_id"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Stars = model.Stars
	r.RoomCount = model.RoomCount
	r.ChainID = model.ChainID
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
