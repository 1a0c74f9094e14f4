package dto

import (
	"lodge/internal/domains/customer/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	FirstName  string  `json:"first_name"  validate:"required,max=50"`
	MiddleName *string `json:"middle_name" validate:"omitempty,max=50"`
	LastName   string  `json:"last_name"   validate:"required,max=50"`
	Street     string  `json:"street"      validate:"omitempty,max=100"`
	City       string  `json:"city"        validate:"omitempty,max=50"`
	State      string  `json:"state"       validate:"omitempty,max=50"`
	Zip        string  `json:"zip"         validate:"omitempty,max=10"`
	IDType     string  `json:"id_type"     validate:"required,oneof=ssn sin driving_license passport"`
	IDNumber   string  `json:"id_number"   validate:"required,max=50"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:               uuid.NewString(),
		FirstName:        c.FirstName,
		MiddleName:       c.MiddleName,
		LastName:         c.LastName,
		Street:           c.Street,
		City:             c.City,
		State:            c.State,
		Zip:              c.Zip,
		IDType:           c.IDType,
		IDNumber:         c.IDNumber,
		RegistrationDate: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	FirstName  string  `db:"first_name"  json:"first_name"  validate:"omitempty,max=50"`
	MiddleName *string `db:"middle_name" json:"middle_name" validate:"omitempty,max=50"`
	LastName   string  `db:"last_name"   json:"last_name"   validate:"omitempty,max=50"`
	Street     string  `db:"street"      json:"street"      validate:"omitempty,max=100"`
	City       string  `db:"city"        json:"city"        validate:"omitempty,max=50"`
	State      string  `db:"state"       json:"state"       validate:"omitempty,max=50"`
	Zip        string  `db:"zip"         json:"zip"         validate:"omitempty,max=10"`
}

type CustomerResponse struct {
	ID               string  `json:"id"`
	FirstName        string  `json:"first_name"`
	MiddleName       *string `json:"middle_name,omitempty"`
	LastName         string  `json:"last_name"`
	Street           string  `json:"street"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Zip              string  `json:"zip"`
	IDType           string  `json:"id_type"`
	IDNumber         string  `json:"id_number"`
	RegistrationDate string  `json:"registration_date"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.MiddleName = model.MiddleName
	r.LastName = model.LastName
	r.Street = model.Street
	r.City = model.City
	r.State = model.State
	r.Zip = model.Zip
	r.IDType = model.IDType
	r.IDNumber = model.IDNumber
	r.RegistrationDate = timezone.Format(model.RegistrationDate, constant.CalendarDateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
