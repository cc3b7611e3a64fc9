package model

import "lodge/shared/model"

const (
	TableName  = "settings"
	EntityName = "settings"

	FieldID            = "id"
	FieldLodgeName     = "lodge_name"
	FieldAddress       = "address"
	FieldContact       = "contact"
	FieldTaxRate       = "tax_rate"
	FieldCurrency      = "currency"
	FieldSMSTemplate   = "sms_template"
	FieldCheckinTime   = "checkin_time"
	FieldCheckoutTime  = "checkout_time"
	FieldSetupComplete = "setup_complete"
	FieldActive        = "active"
)

// Settings is the property profile. At most one row is active; onboarding
// creates it and admins update it afterwards.
type Settings struct {
	ID            string  `db:"id"`
	LodgeName     string  `db:"lodge_name"`
	Address       string  `db:"address"`
	Contact       string  `db:"contact"`
	TaxRate       float64 `db:"tax_rate"`
	Currency      string  `db:"currency"`
	SMSTemplate   string  `db:"sms_template"`
	CheckinTime   string  `db:"checkin_time"`
	CheckoutTime  string  `db:"checkout_time"`
	SetupComplete bool    `db:"setup_complete"`
	Active        bool    `db:"active"`
	model.Metadata
}
