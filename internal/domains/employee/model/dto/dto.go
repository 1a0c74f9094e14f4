package dto

import (
	"time"

	"lodge/internal/domains/employee/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateEmployeeRequest struct {
	SSN        string  `json:"ssn"         validate:"required,len=9,numeric"`
	FirstName  string  `json:"first_name"  validate:"required,max=50"`
	MiddleName *string `json:"middle_name" validate:"omitempty,max=50"`
	LastName   string  `json:"last_name"   validate:"required,max=50"`
	Street     string  `json:"street"      validate:"omitempty,max=100"`
	City       string  `json:"city"        validate:"omitempty,max=50"`
	State      string  `json:"state"       validate:"omitempty,max=50"`
	Zip        string  `json:"zip"         validate:"omitempty,max=10"`
	Role       string  `json:"role"        validate:"required,oneof=manager receptionist"`
	Salary     float64 `json:"salary"      validate:"required,gt=0"`
	HireDate   string  `json:"hire_date"   validate:"required,datetime=2006-01-02"`
	HotelID    string  `json:"hotel_id"    validate:"required,uuid"`
	Password   string  `json:"password"    validate:"required,min=8,max=72"`
}

func (e *CreateEmployeeRequest) ToModel(hashedPassword, user string) model.Employee {
	hireDate, _ := timezone.Parse(constant.CalendarDateFormat, e.HireDate)

	return model.Employee{
		SSN:        e.SSN,
		FirstName:  e.FirstName,
		MiddleName: e.MiddleName,
		LastName:   e.LastName,
		Street:     e.Street,
		City:       e.City,
		State:      e.State,
		Zip:        e.Zip,
		Role:       e.Role,
		Salary:     e.Salary,
		HireDate:   hireDate,
		HotelID:    e.HotelID,
		Password:   hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	FirstName  string  `db:"first_name"  json:"first_name"  validate:"omitempty,max=50"`
	MiddleName *string `db:"middle_name" json:"middle_name" validate:"omitempty,max=50"`
	LastName   string  `db:"last_name"   json:"last_name"   validate:"omitempty,max=50"`
	Street     string  `db:"street"      json:"street"      validate:"omitempty,max=100"`
	City       string  `db:"city"        json:"city"        validate:"omitempty,max=50"`
	State      string  `db:"state"       json:"state"       validate:"omitempty,max=50"`
	Zip        string  `db:"zip"         json:"zip"         validate:"omitempty,max=10"`
	Role       string  `db:"role"        json:"role"        validate:"omitempty,oneof=manager receptionist"`
	Salary     float64 `db:"salary"      json:"salary"      validate:"omitempty,gt=0"`
	HotelID    string  `db:"hotel_id"    json:"hotel_id"    validate:"omitempty,uuid"`
}

type UpdateEmployeePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type EmployeeResponse struct {
	SSN        string  `json:"ssn"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Zip        string  `json:"zip"`
	Role       string  `json:"role"`
	Salary     float64 `json:"salary"`
	HireDate   string  `json:"hire_date"`
	HotelID    string  `json:"hotel_id"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.SSN = model.SSN
	r.FirstName = model.FirstName
	r.MiddleName = model.MiddleName
	r.LastName = model.LastName
	r.Street = model.Street
	r.City = model.City
	r.State = model.State
	r.Zip = model.Zip
	r.Role = model.Role
	r.Salary = model.Salary
	r.HotelID = model.HotelID

	if !model.HireDate.Equal(time.Time{}) {
		r.HireDate = timezone.Format(model.HireDate, constant.CalendarDateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
