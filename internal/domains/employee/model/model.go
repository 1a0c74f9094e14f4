package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldSSN        = "ssn"
	FieldFirstName  = "first_name"
	FieldMiddleName = "middle_name"
	FieldLastName   = "last_name"
	FieldStreet     = "street"
	FieldCity       = "city"
	FieldState      = "state"
	FieldZip        = "zip"
	FieldRole       = "role"
	FieldSalary     = "salary"
	FieldHireDate   = "hire_date"
	FieldHotelID    = "hotel_id"
	FieldPassword   = "password"
)

type Employee struct {
	SSN        string    `db:"ssn"`
	FirstName  string    `db:"first_name"`
	MiddleName *string   `db:"middle_name"`
	LastName   string    `db:"last_name"`
	Street     string    `db:"street"`
	City       string    `db:"city"`
	State      string    `db:"state"`
	Zip        string    `db:"zip"`
	Role       string    `db:"role"`
	Salary     float64   `db:"salary"`
	HireDate   time.Time `db:"hire_date"`
	HotelID    string    `db:"hotel_id"`
	Password   string    `db:"password"`
	model.Metadata
}
