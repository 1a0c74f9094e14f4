package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID                  = "id"
	FieldHotelID             = "hotel_id"
	FieldRoomNumber          = "room_number"
	FieldFloor               = "floor"
	FieldCapacity            = "capacity"
	FieldPrice               = "price"
	FieldSeaView             = "sea_view"
	FieldMountainView        = "mountain_view"
	FieldExtendable          = "extendable"
	FieldDamaged             = "damaged"
	FieldAmenities           = "amenities"
	FieldDescription         = "description"
	FieldLastMaintenanceDate = "last_maintenance_date"
	FieldImage               = "image"
)

type Room struct {
	ID                  string     `db:"id"`
	HotelID             string     `db:"hotel_id"`
	RoomNumber          string     `db:"room_number"`
	Floor               int        `db:"floor"`
	Capacity            int        `db:"capacity"`
	Price               float64    `db:"price"`
	SeaView             bool       `db:"sea_view"`
	MountainView        bool       `db:"mountain_view"`
	Extendable          bool       `db:"extendable"`
	Damaged             bool       `db:"damaged"`
	Amenities           string     `db:"amenities"`
	Description         string     `db:"description"`
	LastMaintenanceDate *time.Time `db:"last_maintenance_date"`
	Image               string     `db:"image"`
	model.Metadata
}

// AvailableRoom is the joined row returned by the availability search.
type AvailableRoom struct {
	ID           string  `db:"id"`
	HotelID      string  `db:"hotel_id"`
	HotelName    string  `db:"hotel_name"`
	HotelRating  int     `db:"hotel_rating"`
	HotelCity    string  `db:"hotel_city"`
	ChainName    *string `db:"chain_name"`
	RoomNumber   string  `db:"room_number"`
	Floor        int     `db:"floor"`
	Capacity     int     `db:"capacity"`
	Price        float64 `db:"price"`
	SeaView      bool    `db:"sea_view"`
	MountainView bool    `db:"mountain_view"`
	Extendable   bool    `db:"extendable"`
	Amenities    string  `db:"amenities"`
	Description  string  `db:"description"`
	Image        string  `db:"image"`
}
