package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"lodge/internal/domains/chain/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateChainRequest struct {
	Name          string   `json:"name"           validate:"required,max=100"`
	HeadOffice    string   `json:"head_office"    validate:"required,max=255"`
	ContactEmails []string `json:"contact_emails" validate:"required,min=1,dive,email"`
	ContactPhones []string `json:"contact_phones" validate:"required,min=1,dive,max=30"`
}

func (c *CreateChainRequest) ToModel(user string) model.Chain {
	return model.Chain{
		ID:            uuid.NewString(),
		Name:          c.Name,
		HeadOffice:    c.HeadOffice,
		ContactEmails: pq.StringArray(c.ContactEmails),
		ContactPhones: pq.StringArray(c.ContactPhones),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateChainRequest struct {
	Name          string   `json:"name"           validate:"omitempty,max=100"`
	HeadOffice    string   `json:"head_office"    validate:"omitempty,max=255"`
	ContactEmails []string `json:"contact_emails" validate:"omitempty,min=1,dive,email"`
	ContactPhones []string `json:"contact_phones" validate:"omitempty,min=1,dive,max=30"`
}

// ApplyTo merges the provided fields onto the current row.
func (u *UpdateChainRequest) ApplyTo(chain *model.Chain, user string) {
	if u.Name != "" {
		chain.Name = u.Name
	}

	if u.HeadOffice != "" {
		chain.HeadOffice = u.HeadOffice
	}

	if len(u.ContactEmails) > 0 {
		chain.ContactEmails = pq.StringArray(u.ContactEmails)
	}

	if len(u.ContactPhones) > 0 {
		chain.ContactPhones = pq.StringArray(u.ContactPhones)
	}

	chain.ModifiedAt = timezone.Now()
	chain.ModifiedBy = user
}

type ChainResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	HeadOffice    string   `json:"head_office"`
	ContactEmails []string `json:"contact_emails"`
	ContactPhones []string `json:"contact_phones"`
	HotelCount    int      `json:"hotel_count"`
	gDto.Metadata
}

func (r *ChainResponse) FromModel(model model.Chain) {
	r.ID = model.ID
	r.Name = model.Name
	r.HeadOffice = model.HeadOffice
	r.ContactEmails = model.ContactEmails
	r.ContactPhones = model.ContactPhones
	r.HotelCount = model.HotelCount
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
