package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldNumber     = "number"
	FieldHotelID    = "hotel_id"
	FieldPrice      = "price"
	FieldCapacity   = "capacity"
	FieldArea       = "area"
	FieldView       = "view"
	FieldAmenities  = "amenities"
	FieldExtensible = "extensible"
	FieldDamages    = "damages"
	FieldImage      = "image"
)

// Room is keyed by its number, the natural key carried over from the
// hotel's own numbering. Nightly price and the physical attributes drive
// the availability search.
type Room struct {
	Number     int     `db:"number"`
	HotelID    string  `db:"hotel_id"`
	Price      float64 `db:"price"`
	Capacity   int     `db:"capacity"`
	Area       float64 `db:"area"`
	View       string  `db:"view"`
	Amenities  string  `db:"amenities"`
	Extensible bool    `db:"extensible"`
	Damages    *string `db:"damages"`
	Image      string  `db:"image"`
	model.Metadata
}

// ListFilter narrows plain room listings. Zero values mean no constraint.
type ListFilter struct {
	HotelID  string
	Capacity int
	View     string
}

// AvailabilityQuery is the full search contract: a date range plus
// conjunctive optional filters. Nil range bounds mean unbounded.
type AvailabilityQuery struct {
	Start    time.Time
	End      time.Time
	Location string
	Chain    string
	Stars    int
	Capacity int
	View     string
	PriceMin *float64
	PriceMax *float64
	AreaMin  *float64
	AreaMax  *float64
}

// AvailableRoom is a search hit enriched with hotel and chain context.
type AvailableRoom struct {
	Number       int     `db:"number"        json:"number"`
	HotelID      string  `db:"hotel_id"      json:"hotel_id"`
	Price        float64 `db:"price"         json:"price"`
	Capacity     int     `db:"capacity"      json:"capacity"`
	Area         float64 `db:"area"          json:"area"`
	View         string  `db:"view"          json:"view"`
	Amenities    string  `db:"amenities"     json:"amenities"`
	Extensible   bool    `db:"extensible"    json:"extensible"`
	Image        string  `db:"image"         json:"image"`
	HotelName    string  `db:"hotel_name"    json:"hotel_name"`
	HotelAddress string  `db:"hotel_address" json:"hotel_address"`
	Stars        int     `db:"stars"         json:"stars"`
	ChainName    string  `db:"chain_name"    json:"chain_name"`
}
