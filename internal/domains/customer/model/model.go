package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID               = "id"
	FieldFirstName        = "first_name"
	FieldMiddleName       = "middle_name"
	FieldLastName         = "last_name"
	FieldStreet           = "street"
	FieldCity             = "city"
	FieldState            = "state"
	FieldZip              = "zip"
	FieldIDType           = "id_type"
	FieldIDNumber         = "id_number"
	FieldRegistrationDate = "registration_date"
)

type Customer struct {
	ID               string    `db:"id"`
	FirstName        string    `db:"first_name"`
	MiddleName       *string   `db:"middle_name"`
	LastName         string    `db:"last_name"`
	Street           string    `db:"street"`
	City             string    `db:"city"`
	State            string    `db:"state"`
	Zip              string    `db:"zip"`
	IDType           string    `db:"id_type"`
	IDNumber         string    `db:"id_number"`
	RegistrationDate time.Time `db:"registration_date"`
	model.Metadata
}
