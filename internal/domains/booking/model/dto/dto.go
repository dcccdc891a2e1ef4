package dto

import (
	"errors"

	"ehotel/internal/domains/booking/model"
	customerModel "ehotel/internal/domains/customer/model"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

var errEndBeforeStart = errors.New("end date must not be before start date")

// CreateBookingRequest carries the stay and the guest's details in one
// submission. When the customer already exists on file, the submitted
// name and address are discarded in favour of the stored record.
type CreateBookingRequest struct {
	CustomerSIN  string `json:"customer_sin"  validate:"required,sin"`
	Firstname    string `json:"firstname"     validate:"required,min=2,max=50"`
	Lastname     string `json:"lastname"      validate:"required,min=2,max=50"`
	StreetNumber int    `json:"street_number" validate:"required"`
	StreetName   string `json:"street_name"   validate:"required,min=2,max=50"`
	City         string `json:"city"          validate:"required,min=2,max=50"`
	PostalCode   string `json:"postal_code"   validate:"required,postal_code"`
	Country      string `json:"country"       validate:"required,max=100"`
	RoomID       int    `json:"room_id"       validate:"required"`
	StartDate    string `json:"start_date"    validate:"required"`
	EndDate      string `json:"end_date"      validate:"required"`
}

// ToModel parses the stay range; a reversed range is rejected here, never in
// the store.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	startDate, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	endDate, err := timezone.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	if endDate.Before(startDate) {
		return model.Booking{}, errEndBeforeStart
	}

	return model.Booking{
		CustomerSIN: c.CustomerSIN,
		RoomID:      c.RoomID,
		StartDate:   startDate,
		EndDate:     endDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

// ToCustomerModel builds the customer created inline when the SIN is new.
func (c *CreateBookingRequest) ToCustomerModel() customerModel.Customer {
	return customerModel.Customer{
		SIN:          c.CustomerSIN,
		Firstname:    c.Firstname,
		Lastname:     c.Lastname,
		StreetNumber: c.StreetNumber,
		StreetName:   c.StreetName,
		City:         c.City,
		PostalCode:   c.PostalCode,
		Country:      c.Country,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type BookingResponse struct {
	ID          int    `json:"id"`
	CustomerSIN string `json:"customer_sin"`
	RoomID      int    `json:"room_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerSIN = model.CustomerSIN
	r.RoomID = model.RoomID
	r.StartDate = timezone.Format(model.StartDate, constant.DateOnlyFormat)
	r.EndDate = timezone.Format(model.EndDate, constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// CheckInResponse reports whether a booking was actually converted. A missing
// booking is a quiet no-op, not an error.
type CheckInResponse struct {
	CheckedIn bool   `json:"checked_in"`
	Message   string `json:"message"`
}
