package dto

import (
	"lodge/internal/domains/chain/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateChainRequest struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Email  string `json:"email"  validate:"omitempty,email"`
	Phone  string `json:"phone"  validate:"omitempty,max=20"`
	Street string `json:"street" validate:"omitempty,max=100"`
	City   string `json:"city"   validate:"omitempty,max=50"`
	State  string `json:"state"  validate:"omitempty,max=50"`
	Zip    string `json:"zip"    validate:"omitempty,max=10"`
}

func (c *CreateChainRequest) ToModel(user string) model.Chain {
	return model.Chain{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Street: c.Street,
		City:   c.City,
		State:  c.State,
		Zip:    c.Zip,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateChainRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Email  string `db:"email"  json:"email"  validate:"omitempty,email"`
	Phone  string `db:"phone"  json:"phone"  validate:"omitempty,max=20"`
	Street string `db:"street" json:"street" validate:"omitempty,max=100"`
	City   string `db:"city"   json:"city"   validate:"omitempty,max=50"`
	State  string `db:"state"  json:"state"  validate:"omitempty,max=50"`
	Zip    string `db:"zip"    json:"zip"    validate:"omitempty,max=10"`
}

type ChainResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	gDto.Metadata
}

func (r *ChainResponse) FromModel(model model.Chain) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Street = model.Street
	r.City = model.City
	r.State = model.State
	r.Zip = model.Zip
	r.Metadata.FromModel(model.Metadata)
}

type GetChainsResponse struct {
	Chains    []ChainResponse `json:"chains"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetChainsResponse) FromModels(models []model.Chain, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Chains = make([]ChainResponse, len(models))
	for i, mod := range models {
		r.Chains[i].FromModel(mod)
	}
}
