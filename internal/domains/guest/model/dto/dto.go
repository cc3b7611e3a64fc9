package dto

import (
	"math"
	"time"

	"github.com/google/uuid"

	"lodge/internal/domains/guest/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type RegisterGuestRequest struct {
	Name            string  `json:"name"             validate:"required,max=100"`
	Phone           string  `json:"phone"            validate:"required,max=20"`
	IDNumber        string  `json:"id_number"        validate:"required,max=50"`
	Checkin         string  `json:"checkin"          validate:"required"`
	Checkout        string  `json:"checkout"         validate:"required"`
	CheckinTime     string  `json:"checkin_time"     validate:"omitempty"`
	Purpose         string  `json:"purpose"          validate:"omitempty,max=100"`
	RoomID          string  `json:"room_id"          validate:"omitempty,uuid"`
	Occupants       int     `json:"occupants"        validate:"required,gte=1"`
	DiscountPercent float64 `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
	DiscountFlat    int64   `json:"discount_flat"    validate:"omitempty,gte=0"`
}

// Interval parses and orders the requested stay.
func (r *RegisterGuestRequest) Interval() (checkin, checkout time.Time, err error) {
	checkin, err = time.Parse(constant.DateFormat, r.Checkin)
	if err != nil {
		return checkin, checkout, failure.BadRequestFromString("invalid checkin date format, expected RFC3339") //nolint:wrapcheck
	}

	checkout, err = time.Parse(constant.DateFormat, r.Checkout)
	if err != nil {
		return checkin, checkout, failure.BadRequestFromString("invalid checkout date format, expected RFC3339") //nolint:wrapcheck
	}

	if checkout.Before(checkin) {
		return checkin, checkout, failure.BadRequestFromString("checkout must not be before checkin") //nolint:wrapcheck
	}

	return checkin, checkout, nil
}

// TotalDays bills at least one day; partial days round up.
func TotalDays(checkin, checkout time.Time) int {
	days := int(math.Ceil(checkout.Sub(checkin).Hours() / 24))

	return max(1, days)
}

// Bill computes base, discount and total amounts for a nightly price. A flat
// discount wins over a percentage when both are given; the total never goes
// negative.
func (r *RegisterGuestRequest) Bill(price int64, checkin, checkout time.Time) (days int, base, discount, total int64) {
	days = TotalDays(checkin, checkout)
	base = price * int64(days)

	switch {
	case r.DiscountFlat > 0:
		discount = r.DiscountFlat
	case r.DiscountPercent > 0:
		discount = int64(math.Round(float64(base) * r.DiscountPercent / 100))
	}

	if discount > base {
		discount = base
	}

	return days, base, discount, base - discount
}

func (r *RegisterGuestRequest) ToModel(user string, checkin, checkout time.Time, days int, base, discount, total int64) model.Guest {
	var roomID *string
	if r.RoomID != "" {
		id := r.RoomID
		roomID = &id
	}

	return model.Guest{
		ID:             uuid.NewString(),
		Name:           r.Name,
		Phone:          r.Phone,
		IDNumber:       r.IDNumber,
		CheckinAt:      checkin,
		CheckoutAt:     checkout,
		CheckinTime:    r.CheckinTime,
		Purpose:        r.Purpose,
		RoomID:         roomID,
		Occupants:      r.Occupants,
		TotalDays:      days,
		BaseAmount:     base,
		DiscountAmount: discount,
		TotalAmount:    total,
		Status:         model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	Name        string `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Phone       string `db:"phone"        json:"phone"        validate:"omitempty,max=20"`
	IDNumber    string `db:"id_number"    json:"id_number"    validate:"omitempty,max=50"`
	CheckinTime string `db:"checkin_time" json:"checkin_time" validate:"omitempty"`
	Purpose     string `db:"purpose"      json:"purpose"      validate:"omitempty,max=100"`
	Occupants   *int   `db:"occupants"    json:"occupants"    validate:"omitempty,gte=1"`
}

type GuestResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	IDNumber       string  `json:"id_number"`
	Checkin        string  `json:"checkin"`
	Checkout       string  `json:"checkout"`
	CheckinTime    string  `json:"checkin_time,omitempty"`
	Purpose        string  `json:"purpose,omitempty"`
	RoomID         *string `json:"room_id,omitempty"`
	Occupants      int     `json:"occupants"`
	TotalDays      int     `json:"total_days"`
	BaseAmount     int64   `json:"base_amount"`
	DiscountAmount int64   `json:"discount_amount"`
	TotalAmount    int64   `json:"total_amount"`
	Status         string  `json:"status"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(mod model.Guest) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Phone = mod.Phone
	r.IDNumber = mod.IDNumber
	r.Checkin = timezone.Format(mod.CheckinAt, constant.DateFormat)
	r.Checkout = timezone.Format(mod.CheckoutAt, constant.DateFormat)
	r.CheckinTime = mod.CheckinTime
	r.Purpose = mod.Purpose
	r.RoomID = mod.RoomID
	r.Occupants = mod.Occupants
	r.TotalDays = mod.TotalDays
	r.BaseAmount = mod.BaseAmount
	r.DiscountAmount = mod.DiscountAmount
	r.TotalAmount = mod.TotalAmount
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
