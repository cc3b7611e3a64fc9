package template

import (
	"strings"

	"lodge/shared/failure"
)

const (
	BookingConfirmation  = "booking_confirmation"
	PaymentConfirmation  = "payment_confirmation"
	CheckoutConfirmation = "checkout_confirmation"
)

// Template is a fixed, versioned message body. Placeholders use the [VAR]
// form; Required lists every variable the body references.
type Template struct {
	ID       string
	Version  int
	Body     string
	Required []string
}

var registry = map[string]Template{
	BookingConfirmation: {
		ID:       BookingConfirmation,
		Version:  1,
		Body:     "Dear [NAME], your booking at [LODGE] is confirmed. Room [ROOM], check-in [CHECKIN], check-out [CHECKOUT]. Total: [AMOUNT].",
		Required: []string{"NAME", "LODGE", "ROOM", "CHECKIN", "CHECKOUT", "AMOUNT"},
	},
	PaymentConfirmation: {
		ID:       PaymentConfirmation,
		Version:  1,
		Body:     "Dear [NAME], we received your payment of [AMOUNT] at [LODGE]. Thank you.",
		Required: []string{"NAME", "AMOUNT", "LODGE"},
	},
	CheckoutConfirmation: {
		ID:       CheckoutConfirmation,
		Version:  1,
		Body:     "Dear [NAME], you have been checked out of [LODGE]. We hope to see you again.",
		Required: []string{"NAME", "LODGE"},
	},
}

// Lookup returns the template for the given ID.
func Lookup(id string) (Template, error) {
	tpl, ok := registry[id]
	if !ok {
		return Template{}, failure.NotFound("notification template") //nolint:wrapcheck
	}

	return tpl, nil
}

// Render substitutes every [VAR] placeholder. Variables must cover the
// template's required list; extras are ignored.
func (t Template) Render(vars map[string]string) (string, error) {
	missing := []string{}

	for _, name := range t.Required {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return "", failure.BadRequestFromString("missing template variables: " + strings.Join(missing, ", ")) //nolint:wrapcheck
	}

	message := t.Body
	for name, value := range vars {
		message = strings.ReplaceAll(message, "["+name+"]", value)
	}

	return message, nil
}

// RenderBody renders an override body (e.g. the SMS template configured in
// settings) with the same placeholder rules but no required-variable check.
func RenderBody(body string, vars map[string]string) string {
	for name, value := range vars {
		body = strings.ReplaceAll(body, "["+name+"]", value)
	}

	return body
}
