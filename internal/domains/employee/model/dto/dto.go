package dto

import (
	"github.com/lib/pq"

	"lodge/internal/domains/employee/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateEmployeeRequest struct {
	NAS      string   `json:"nas"       validate:"required,len=9,numeric"`
	FullName string   `json:"full_name" validate:"required,max=100"`
	Address  string   `json:"address"   validate:"required,max=255"`
	HotelID  string   `json:"hotel_id"  validate:"required,uuid"`
	Roles    []string `json:"roles"     validate:"required,min=1,dive,max=50"`
}

func (c *CreateEmployeeRequest) ToModel(user string) model.Employee {
	return model.Employee{
		NAS:      c.NAS,
		FullName: c.FullName,
		Address:  c.Address,
		HotelID:  c.HotelID,
		Roles:    pq.StringArray(c.Roles),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	FullName string   `json:"full_name" validate:"omitempty,max=100"`
	Address  string   `json:"address"   validate:"omitempty,max=255"`
	HotelID  string   `json:"hotel_id"  validate:"omitempty,uuid"`
	Roles    []string `json:"roles"     validate:"omitempty,min=1,dive,max=50"`
}

func (u *UpdateEmployeeRequest) ApplyTo(employee *model.Employee, user string) {
	if u.FullName != "" {
		employee.FullName = u.FullName
	}

	if u.Address != "" {
		employee.Address = u.Address
	}

	if u.HotelID != "" {
		employee.HotelID = u.HotelID
	}

	if len(u.Roles) > 0 {
		employee.Roles = pq.StringArray(u.Roles)
	}

	employee.ModifiedAt = timezone.Now()
	employee.ModifiedBy = user
}

type EmployeeResponse struct {
	NAS      string   `json:"nas"`
	FullName string   `json:"full_name"`
	Address  string   `json:"address"`
	HotelID  string   `json:"hotel_id"`
	Roles    []string `json:"roles"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.NAS = model.NAS
	r.FullName = model.FullName
	r.Address = model.Address
	r.HotelID = model.HotelID
	r.Roles = model.Roles
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
