package dto

import (
	"time"

	"ehotel/internal/domains/customer/model"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type CreateCustomerRequest struct {
	SIN          string `json:"sin"           validate:"required,sin"`
	Firstname    string `json:"firstname"     validate:"required,min=2,max=50"`
	Lastname     string `json:"lastname"      validate:"required,min=2,max=50"`
	CheckInDate  string `json:"check_in_date" validate:"omitempty"`
	StreetNumber int    `json:"street_number" validate:"required"`
	StreetName   string `json:"street_name"   validate:"required,min=2,max=50"`
	City         string `json:"city"          validate:"required,min=2,max=50"`
	PostalCode   string `json:"postal_code"   validate:"required,postal_code"`
	Country      string `json:"country"       validate:"required,max=100"`
}

func (c *CreateCustomerRequest) ToModel() (model.Customer, error) {
	var checkInDate *time.Time

	if c.CheckInDate != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
		if err != nil {
			return model.Customer{}, err //nolint:wrapcheck
		}

		checkInDate = &parsed
	}

	return model.Customer{
		SIN:          c.SIN,
		Firstname:    c.Firstname,
		Lastname:     c.Lastname,
		CheckInDate:  checkInDate,
		StreetNumber: c.StreetNumber,
		StreetName:   c.StreetName,
		City:         c.City,
		PostalCode:   c.PostalCode,
		Country:      c.Country,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type UpdateCustomerRequest struct {
	Firstname    string `db:"firstname"     json:"firstname"     validate:"omitempty,min=2,max=50"`
	Lastname     string `db:"lastname"      json:"lastname"      validate:"omitempty,min=2,max=50"`
	CheckInDate  string `db:"check_in_date" json:"check_in_date" validate:"omitempty"`
	StreetNumber int    `db:"street_number" json:"street_number" validate:"omitempty"`
	StreetName   string `db:"street_name"   json:"street_name"   validate:"omitempty,min=2,max=50"`
	City         string `db:"city"          json:"city"          validate:"omitempty,min=2,max=50"`
	PostalCode   string `db:"postal_code"   json:"postal_code"   validate:"omitempty,postal_code"`
	Country      string `db:"country"       json:"country"       validate:"omitempty,max=100"`
}

type CustomerResponse struct {
	SIN          string `json:"sin"`
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	CheckInDate  string `json:"check_in_date,omitempty"`
	StreetNumber int    `json:"street_number"`
	StreetName   string `json:"street_name"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.SIN = model.SIN
	r.Firstname = model.Firstname
	r.Lastname = model.Lastname

	if model.CheckInDate != nil {
		r.CheckInDate = timezone.Format(*model.CheckInDate, constant.DateOnlyFormat)
	}

	r.StreetNumber = model.StreetNumber
	r.StreetName = model.StreetName
	r.City = model.City
	r.PostalCode = model.PostalCode
	r.Country = model.Country
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
