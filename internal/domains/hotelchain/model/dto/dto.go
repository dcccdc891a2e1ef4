package dto

import (
	"ehotel/internal/domains/hotelchain/model"
	"ehotel/shared"
	gDto "ehotel/shared/dto"
)

type ChainResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	HotelsNumber int    `json:"hotels_number"`
	gDto.Metadata
}

func (r *ChainResponse) FromModel(model model.HotelChain) {
	r.ID = model.ID
	r.Name = model.Name
	r.HotelsNumber = model.HotelsNumber
	r.Metadata.FromModel(model.Metadata)
}

type OfficeResponse struct {
	ID           int    `json:"id"`
	StreetNumber int    `json:"street_number"`
	StreetName   string `json:"street_name"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// ChainDetailResponse carries the chain together with its contact satellites.
type ChainDetailResponse struct {
	ChainResponse
	Emails  []string         `json:"emails"`
	Phones  []string         `json:"phones"`
	Offices []OfficeResponse `json:"offices"`
}

func (r *ChainDetailResponse) FromModels(chain model.HotelChain, emails []model.ChainEmail, phones []model.ChainPhone, offices []model.ChainOffice) {
	r.ChainResponse.FromModel(chain)

	r.Emails = make([]string, len(emails))
	for i, email := range emails {
		r.Emails[i] = email.Email
	}

	r.Phones = make([]string, len(phones))
	for i, phone := range phones {
		r.Phones[i] = phone.PhoneNumber
	}

	r.Offices = make([]OfficeResponse, len(offices))
	for i, office := range offices {
		r.Offices[i] = OfficeResponse{
			ID:           office.ID,
			StreetNumber: office.StreetNumber,
			StreetName:   office.StreetName,
			City:         office.City,
			PostalCode:   office.PostalCode,
			Country:      office.Country,
		}
	}
}

type GetChainsResponse struct {
	Chains    []ChainResponse `json:"chains"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetChainsResponse) FromModels(models []model.HotelChain, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Chains = make([]ChainResponse, len(models))
	for i, mod := range models {
		r.Chains[i].FromModel(mod)
	}
}
