package dto

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/stay"
	"lodge/shared/timezone"
)

type CreateRoomRequest struct {
	Number     int                   `json:"number"     validate:"required,min=1"`
	HotelID    string                `json:"hotel_id"   validate:"required,uuid"`
	Price      float64               `json:"price"      validate:"required,gt=0"`
	Capacity   int                   `json:"capacity"   validate:"required,min=1"`
	Area       float64               `json:"area"       validate:"omitempty,gt=0"`
	View       string                `json:"view"       validate:"omitempty,max=50"`
	Amenities  string                `json:"amenities"  validate:"omitempty,max=500"`
	Extensible bool                  `json:"extensible" validate:"omitempty"`
	Damages    *string               `json:"damages"    validate:"omitempty,max=500"`
	Image      *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user, imageURL string) model.Room {
	return model.Room{
		Number:     c.Number,
		HotelID:    c.HotelID,
		Price:      c.Price,
		Capacity:   c.Capacity,
		Area:       c.Area,
		View:       c.View,
		Amenities:  c.Amenities,
		Extensible: c.Extensible,
		Damages:    c.Damages,
		Image:      imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Price      *float64              `json:"price"      validate:"omitempty,gt=0"`
	Capacity   *int                  `json:"capacity"   validate:"omitempty,min=1"`
	Area       *float64              `json:"area"       validate:"omitempty,gt=0"`
	View       *string               `json:"view"       validate:"omitempty,max=50"`
	Amenities  *string               `json:"amenities"  validate:"omitempty,max=500"`
	Extensible *bool                 `json:"extensible" validate:"omitempty"`
	Damages    *string               `json:"damages"    validate:"omitempty,max=500"`
	Image      *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

func (u *UpdateRoomRequest) ApplyTo(room *model.Room, user string) {
	if u.Price != nil {
		room.Price = *u.Price
	}

	if u.Capacity != nil {
		room.Capacity = *u.Capacity
	}

	if u.Area != nil {
		room.Area = *u.Area
	}

	if u.View != nil {
		room.View = *u.View
	}

	if u.Amenities != nil {
		room.Amenities = *u.Amenities
	}

	if u.Extensible != nil {
		room.Extensible = *u.Extensible
	}

	if u.Damages != nil {
		room.Damages = u.Damages
	}

	room.ModifiedAt = timezone.Now()
	room.ModifiedBy = user
}

type RoomResponse struct {
	Number     int     `json:"number"`
	HotelID    string  `json:"hotel_id"`
	Price      float64 `json:"price"`
	Capacity   int     `json:"capacity"`
	Area       float64 `json:"area"`
	View       string  `json:"view"`
	Amenities  string  `json:"amenities"`
	Extensible bool    `json:"extensible"`
	Damages    *string `json:"damages,omitempty"`
	Image      string  `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.Number = model.Number
	r.HotelID = model.HotelID
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Area = model.Area
	r.View = model.View
	r.Amenities = model.Amenities
	r.Extensible = model.Extensible
	r.Damages = model.Damages
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// AvailabilityRequest carries the public room search. Start and end are
// calendar dates; everything else is an optional conjunctive filter.
type AvailabilityRequest struct {
	Start    string `json:"start"     validate:"required"`
	End      string `json:"end"       validate:"required"`
	Location string `json:"location"  validate:"omitempty,max=100"`
	Chain    string `json:"chain"     validate:"omitempty,max=100"`
	Stars    int    `json:"stars"     validate:"omitempty,min=1,max=5"`
	Capacity int    `json:"capacity"  validate:"omitempty,min=1"`
	View     string `json:"view"      validate:"omitempty,max=50"`
	PriceMin string `json:"price_min" validate:"omitempty"`
	PriceMax string `json:"price_max" validate:"omitempty"`
	AreaMin  string `json:"area_min"  validate:"omitempty"`
	AreaMax  string `json:"area_max"  validate:"omitempty"`
}

// FromRequest populates the search from URL query parameters.
func (a *AvailabilityRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	a.Start = query.Get("start")
	a.End = query.Get("end")
	a.Location = query.Get("location")
	a.Chain = query.Get("chain")
	a.View = query.Get("view")
	a.PriceMin = query.Get("price_min")
	a.PriceMax = query.Get("price_max")
	a.AreaMin = query.Get("area_min")
	a.AreaMax = query.Get("area_max")

	if stars, err := strconv.Atoi(query.Get("stars")); err == nil {
		a.Stars = stars
	}

	if capacity, err := strconv.Atoi(query.Get("capacity")); err == nil {
		a.Capacity = capacity
	}
}

// ToQuery validates and parses the request into the repository query.
func (a *AvailabilityRequest) ToQuery() (model.AvailabilityQuery, error) {
	start, err := stay.ParseDate(a.Start)
	if err != nil {
		return model.AvailabilityQuery{}, err
	}

	end, err := stay.ParseDate(a.End)
	if err != nil {
		return model.AvailabilityQuery{}, err
	}

	if err = stay.ValidateRange(start, end); err != nil {
		return model.AvailabilityQuery{}, err
	}

	query := model.AvailabilityQuery{
		Start:    start,
		End:      end,
		Location: a.Location,
		Chain:    a.Chain,
		Stars:    a.Stars,
		Capacity: a.Capacity,
		View:     a.View,
	}

	if query.PriceMin, err = parseOptionalFloat(a.PriceMin); err != nil {
		return model.AvailabilityQuery{}, err
	}

	if query.PriceMax, err = parseOptionalFloat(a.PriceMax); err != nil {
		return model.AvailabilityQuery{}, err
	}

	if query.AreaMin, err = parseOptionalFloat(a.AreaMin); err != nil {
		return model.AvailabilityQuery{}, err
	}

	if query.AreaMax, err = parseOptionalFloat(a.AreaMax); err != nil {
		return model.AvailabilityQuery{}, err
	}

	return query, nil
}

func parseOptionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid numeric filter: " + value) //nolint:wrapcheck
	}

	return &parsed, nil
}

type SearchAvailableResponse struct {
	Rooms []model.AvailableRoom `json:"rooms"`
	Total int                   `json:"total"`
}

func (r *SearchAvailableResponse) FromModels(models []model.AvailableRoom) {
	r.Rooms = models
	r.Total = len(models)
}
