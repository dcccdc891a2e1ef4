package dto

import (
	"ehotel/internal/domains/employee/model"
	"ehotel/shared"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type CreateEmployeeRequest struct {
	SIN          string `json:"sin"           validate:"required,sin"`
	Firstname    string `json:"firstname"     validate:"required,min=2,max=50"`
	Lastname     string `json:"lastname"      validate:"required,min=2,max=50"`
	Role         string `json:"role"          validate:"required,max=100"`
	StreetNumber int    `json:"street_number" validate:"required"`
	StreetName   string `json:"street_name"   validate:"required,min=2,max=50"`
	City         string `json:"city"          validate:"required,min=2,max=50"`
	PostalCode   string `json:"postal_code"   validate:"required,postal_code"`
	Country      string `json:"country"       validate:"required,max=100"`
	HotelID      int    `json:"hotel_id"      validate:"omitempty"`
}

func (c *CreateEmployeeRequest) ToModel() model.Employee {
	var hotelID *int
	if c.HotelID != 0 {
		hotelID = &c.HotelID
	}

	return model.Employee{
		SIN:          c.SIN,
		Firstname:    c.Firstname,
		Lastname:     c.Lastname,
		Role:         c.Role,
		StreetNumber: c.StreetNumber,
		StreetName:   c.StreetName,
		City:         c.City,
		PostalCode:   c.PostalCode,
		Country:      c.Country,
		HotelID:      hotelID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateEmployeeRequest struct {
	Firstname    string `db:"firstname"     json:"firstname"     validate:"omitempty,min=2,max=50"`
	Lastname     string `db:"lastname"      json:"lastname"      validate:"omitempty,min=2,max=50"`
	Role         string `db:"role"          json:"role"          validate:"omitempty,max=100"`
	StreetNumber int    `db:"street_number" json:"street_number" validate:"omitempty"`
	StreetName   string `db:"street_name"   json:"street_name"   validate:"omitempty,min=2,max=50"`
	City         string `db:"city"          json:"city"          validate:"omitempty,min=2,max=50"`
	PostalCode   string `db:"postal_code"   json:"postal_code"   validate:"omitempty,postal_code"`
	Country      string `db:"country"       json:"country"       validate:"omitempty,max=100"`
	HotelID      int    `db:"hotel_id"      json:"hotel_id"      validate:"omitempty"`
}

type EmployeeResponse struct {
	SIN          string `json:"sin"`
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Role         string `json:"role"`
	StreetNumber int    `json:"street_number"`
	StreetName   string `json:"street_name"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	HotelID      int    `json:"hotel_id,omitempty"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.SIN = model.SIN
	r.Firstname = model.Firstname
	r.Lastname = model.Lastname
	r.Role = model.Role
	r.StreetNumber = model.StreetNumber
	r.StreetName = model.StreetName
	r.City = model.City
	r.PostalCode = model.PostalCode
	r.Country = model.Country

	if model.HotelID != nil {
		r.HotelID = *model.HotelID
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
