package dto

import (
	"lodge/internal/domains/hotel/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	ChainID       *string `json:"chain_id"        validate:"omitempty,uuid"`
	Name          string  `json:"name"            validate:"required,max=100"`
	Email         string  `json:"email"           validate:"omitempty,email"`
	Phone         string  `json:"phone"           validate:"omitempty,max=20"`
	Rating        int     `json:"rating"          validate:"required,min=1,max=5"`
	NumberOfRooms int     `json:"number_of_rooms" validate:"omitempty,min=0"`
	Street        string  `json:"street"          validate:"omitempty,max=100"`
	City          string  `json:"city"            validate:"omitempty,max=50"`
	State         string  `json:"state"           validate:"omitempty,max=50"`
	Zip           string  `json:"zip"             validate:"omitempty,max=10"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:            uuid.NewString(),
		ChainID:       c.ChainID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Rating:        c.Rating,
		NumberOfRooms: c.NumberOfRooms,
		Street:        c.Street,
		City:          c.City,
		State:         c.State,
		Zip:           c.Zip,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name          string `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Email         string `db:"email"           json:"email"           validate:"omitempty,email"`
	Phone         string `db:"phone"           json:"phone"           validate:"omitempty,max=20"`
	Rating        *int   `db:"rating"          json:"rating"          validate:"omitempty,min=1,max=5"`
	NumberOfRooms *int   `db:"number_of_rooms" json:"number_of_rooms" validate:"omitempty,min=0"`
	Street        string `db:"street"          json:"street"          validate:"omitempty,max=100"`
	City          string `db:"city"            json:"city"            validate:"omitempty,max=50"`
	State         string `db:"state"           json:"state"           validate:"omitempty,max=50"`
	Zip           string `db:"zip"             json:"zip"             validate:"omitempty,max=10"`
}

type HotelResponse struct {
	ID            string  `json:"id"`
	ChainID       *string `json:"chain_id,omitempty"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Rating        int     `json:"rating"`
	NumberOfRooms int     `json:"number_of_rooms"`
	Street        string  `json:"street"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Zip           string  `json:"zip"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.ChainID = model.ChainID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Rating = model.Rating
	r.NumberOfRooms = model.NumberOfRooms
	r.Street = model.Street
	r.City = model.City
	r.State = model.State
	r.Zip = model.Zip
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
