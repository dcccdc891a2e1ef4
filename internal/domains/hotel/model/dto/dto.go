package dto

import (
	"ehotel/internal/domains/hotel/model"
	"ehotel/shared"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type CreateHotelRequest struct {
	Name         string `json:"name"          validate:"required,min=2,max=50"`
	RoomsNumber  int    `json:"rooms_number"  validate:"omitempty,min=0"`
	StarRating   int    `json:"star_rating"   validate:"required,min=1,max=5"`
	Email        string `json:"email"         validate:"required,email,max=100"`
	StreetNumber int    `json:"street_number" validate:"required"`
	StreetName   string `json:"street_name"   validate:"required,min=2,max=50"`
	City         string `json:"city"          validate:"required,min=2,max=50"`
	PostalCode   string `json:"postal_code"   validate:"required,postal_code"`
	Country      string `json:"country"       validate:"required,max=100"`
	ChainID      int    `json:"chain_id"      validate:"required"`
	ManagerSIN   string `json:"manager_sin"   validate:"omitempty,sin"`
}

func (c *CreateHotelRequest) ToModel(id int) model.Hotel {
	var managerSIN *string
	if c.ManagerSIN != "" {
		managerSIN = &c.ManagerSIN
	}

	return model.Hotel{
		ID:           id,
		Name:         c.Name,
		RoomsNumber:  c.RoomsNumber,
		StarRating:   c.StarRating,
		Email:        c.Email,
		StreetNumber: c.StreetNumber,
		StreetName:   c.StreetName,
		City:         c.City,
		PostalCode:   c.PostalCode,
		Country:      c.Country,
		ChainID:      c.ChainID,
		ManagerSIN:   managerSIN,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateHotelRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,min=2,max=50"`
	RoomsNumber  int    `db:"rooms_number"  json:"rooms_number"  validate:"omitempty,min=0"`
	StarRating   int    `db:"star_rating"   json:"star_rating"   validate:"omitempty,min=1,max=5"`
	Email        string `db:"email"         json:"email"         validate:"omitempty,email,max=100"`
	StreetNumber int    `db:"street_number" json:"street_number" validate:"omitempty"`
	StreetName   string `db:"street_name"   json:"street_name"   validate:"omitempty,min=2,max=50"`
	City         string `db:"city"          json:"city"          validate:"omitempty,min=2,max=50"`
	PostalCode   string `db:"postal_code"   json:"postal_code"   validate:"omitempty,postal_code"`
	Country      string `db:"country"       json:"country"       validate:"omitempty,max=100"`
	ChainID      int    `db:"chain_id"      json:"chain_id"      validate:"omitempty"`
	ManagerSIN   string `db:"manager_sin"   json:"manager_sin"   validate:"omitempty,sin"`
}

type AddHotelPhoneRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
}

func (c *AddHotelPhoneRequest) ToModel(hotelID int) model.HotelPhone {
	return model.HotelPhone{
		PhoneNumber: c.PhoneNumber,
		HotelID:     hotelID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type HotelResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	RoomsNumber  int    `json:"rooms_number"`
	StarRating   int    `json:"star_rating"`
	Email        string `json:"email"`
	StreetNumber int    `json:"street_number"`
	StreetName   string `json:"street_name"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	ChainID      int    `json:"chain_id"`
	ManagerSIN   string `json:"manager_sin,omitempty"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomsNumber = model.RoomsNumber
	r.StarRating = model.StarRating
	r.Email = model.Email
	r.StreetNumber = model.StreetNumber
	r.StreetName = model.StreetName
	r.City = model.City
	r.PostalCode = model.PostalCode
	r.Country = model.Country
	r.ChainID = model.ChainID

	if model.ManagerSIN != nil {
		r.ManagerSIN = *model.ManagerSIN
	}

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

type GetHotelPhonesResponse struct {
	Phones []string `json:"phones"`
}

func (r *GetHotelPhonesResponse) FromModels(models []model.HotelPhone) {
	r.Phones = make([]string, len(models))
	for i, phone := range models {
		r.Phones[i] = phone.PhoneNumber
	}
}
