package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID        = "id"
	FieldName      = "name"
	FieldAddress   = "address"
	FieldStars     = "stars"
	FieldRoomCount = "room_count"
	FieldChainID   = "chain_id"
)

type Hotel struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Address   string `db:"address"`
	Stars     int    `db:"stars"`
	RoomCount int    `db:"room_count"`
	ChainID   string `db:"chain_id"`
	model.Metadata
}

// ListFilter narrows hotel listings. Zero values mean no constraint.
type ListFilter struct {
	ChainID string
	Stars   int
	Address string
}
