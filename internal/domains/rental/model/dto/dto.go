package dto

import (
	"ehotel/internal/domains/rental/model"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/timezone"
)

type RentalResponse struct {
	ID          int    `json:"id"`
	CustomerSIN string `json:"customer_sin"`
	RoomID      int    `json:"room_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	gDto.Metadata
}

func (r *RentalResponse) FromModel(model model.Rental) {
	r.ID = model.ID
	r.CustomerSIN = model.CustomerSIN
	r.RoomID = model.RoomID
	r.StartDate = timezone.Format(model.StartDate, constant.DateOnlyFormat)
	r.EndDate = timezone.Format(model.EndDate, constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetRentalsResponse struct {
	Rentals   []RentalResponse `json:"rentals"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetRentalsResponse) FromModels(models []model.Rental, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rentals = make([]RentalResponse, len(models))
	for i, mod := range models {
		r.Rentals[i].FromModel(mod)
	}
}
