package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/settings/model"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateSettingsRequest struct {
	LodgeName    string  `json:"lodge_name"    validate:"required,max=100"`
	Address      string  `json:"address"       validate:"omitempty,max=300"`
	Contact      string  `json:"contact"       validate:"omitempty,max=50"`
	TaxRate      float64 `json:"tax_rate"      validate:"omitempty,gte=0,lte=100"`
	Currency     string  `json:"currency"      validate:"omitempty,max=10"`
	SMSTemplate  string  `json:"sms_template"  validate:"omitempty,max=500"`
	CheckinTime  string  `json:"checkin_time"  validate:"omitempty"`
	CheckoutTime string  `json:"checkout_time" validate:"omitempty"`
}

func (c *CreateSettingsRequest) ToModel(user string) model.Settings {
	currency := c.Currency
	if currency == "" {
		currency = "INR"
	}

	return model.Settings{
		ID:            uuid.NewString(),
		LodgeName:     c.LodgeName,
		Address:       c.Address,
		Contact:       c.Contact,
		TaxRate:       c.TaxRate,
		Currency:      currency,
		SMSTemplate:   c.SMSTemplate,
		CheckinTime:   c.CheckinTime,
		CheckoutTime:  c.CheckoutTime,
		SetupComplete: true,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateSettingsRequest struct {
	LodgeName    string   `db:"lodge_name"    json:"lodge_name"    validate:"omitempty,max=100"`
	Address      string   `db:"address"       json:"address"       validate:"omitempty,max=300"`
	Contact      string   `db:"contact"       json:"contact"       validate:"omitempty,max=50"`
	TaxRate      *float64 `db:"tax_rate"      json:"tax_rate"      validate:"omitempty,gte=0,lte=100"`
	Currency     string   `db:"currency"      json:"currency"      validate:"omitempty,max=10"`
	SMSTemplate  string   `db:"sms_template"  json:"sms_template"  validate:"omitempty,max=500"`
	CheckinTime  string   `db:"checkin_time"  json:"checkin_time"  validate:"omitempty"`
	CheckoutTime string   `db:"checkout_time" json:"checkout_time" validate:"omitempty"`
}

type SettingsResponse struct {
	ID            string  `json:"id"`
	LodgeName     string  `json:"lodge_name"`
	Address       string  `json:"address,omitempty"`
	Contact       string  `json:"contact,omitempty"`
	TaxRate       float64 `json:"tax_rate"`
	Currency      string  `json:"currency"`
	SMSTemplate   string  `json:"sms_template,omitempty"`
	CheckinTime   string  `json:"checkin_time,omitempty"`
	CheckoutTime  string  `json:"checkout_time,omitempty"`
	SetupComplete bool    `json:"setup_complete"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(mod model.Settings) {
	r.ID = mod.ID
	r.LodgeName = mod.LodgeName
	r.Address = mod.Address
	r.Contact = mod.Contact
	r.TaxRate = mod.TaxRate
	r.Currency = mod.Currency
	r.SMSTemplate = mod.SMSTemplate
	r.CheckinTime = mod.CheckinTime
	r.CheckoutTime = mod.CheckoutTime
	r.SetupComplete = mod.SetupComplete
	r.Metadata.FromModel(mod.Metadata)
}
