package dto

import (
	"lodge/internal/domains/client/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateClientRequest struct {
	NAS      string `json:"nas"       validate:"required,len=9,numeric"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Address  string `json:"address"   validate:"required,max=255"`
}

func (c *CreateClientRequest) ToModel(user string) model.Client {
	return model.Client{
		NAS:          c.NAS,
		FullName:     c.FullName,
		Address:      c.Address,
		RegisteredAt: timezone.Today(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClientRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Address  string `json:"address"   validate:"omitempty,max=255"`
}

func (u *UpdateClientRequest) ApplyTo(client *model.Client, user string) {
	if u.FullName != "" {
		client.FullName = u.FullName
	}

	if u.Address != "" {
		client.Address = u.Address
	}

	client.ModifiedAt = timezone.Now()
	client.ModifiedBy = user
}

type ClientResponse struct {
	NAS          string `json:"nas"`
	FullName     string `json:"full_name"`
	Address      string `json:"address"`
	RegisteredAt string `json:"registered_at"`
	gDto.Metadata
}

func (r *ClientResponse) FromModel(model model.Client) {
	r.NAS = model.NAS
	r.FullName = model.FullName
	r.Address = model.Address
	r.RegisteredAt = timezone.Format(model.RegisteredAt, constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}
