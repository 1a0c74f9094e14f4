package model

import "lodge/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID            = "id"
	FieldChainID       = "chain_id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldRating        = "rating"
	FieldNumberOfRooms = "number_of_rooms"
	FieldStreet        = "street"
	FieldCity          = "city"
	FieldState         = "state"
	FieldZip           = "zip"
)

type Hotel struct {
	ID            string  `db:"id"`
	ChainID       *string `db:"chain_id"`
	Name          string  `db:"name"`
	Email         string  `db:"email"`
	Phone         string  `db:"phone"`
	Rating        int     `db:"rating"`
	NumberOfRooms int     `db:"number_of_rooms"`
	Street        string  `db:"street"`
	City          string  `db:"city"`
	State         string  `db:"state"`
	Zip           string  `db:"zip"`
	model.Metadata
}
