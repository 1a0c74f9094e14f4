package model

import "lodge/shared/model"

const (
	TableName  = "hotel_chains"
	EntityName = "chain"

	FieldID     = "id"
	FieldName   = "name"
	FieldEmail  = "email"
	FieldPhone  = "phone"
	FieldStreet = "street"
	FieldCity   = "city"
	FieldState  = "state"
	FieldZip    = "zip"
)

type Chain struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Phone  string `db:"phone"`
	Street string `db:"street"`
	City   string `db:"city"`
	State  string `db:"state"`
	Zip    string `db:"zip"`
	model.Metadata
}
