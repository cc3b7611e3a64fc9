package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/payment/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreatePaymentRequest struct {
	GuestID string `json:"guest_id" validate:"required,uuid"`
	Amount  int64  `json:"amount"   validate:"required,gte=0"`
	Method  string `json:"method"   validate:"omitempty,oneof=cash qr"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	method := c.Method
	if method == "" {
		method = model.MethodCash
	}

	return model.Payment{
		ID:      uuid.NewString(),
		GuestID: c.GuestID,
		Amount:  c.Amount,
		Method:  method,
		Status:  model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// NewPendingPayment is the payment row the booking workflow creates alongside
// a guest registration.
func NewPendingPayment(guestID string, amount int64, user string) model.Payment {
	return model.Payment{
		ID:      uuid.NewString(),
		GuestID: guestID,
		Amount:  amount,
		Method:  model.MethodCash,
		Status:  model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MarkPaidRequest struct {
	Method string `json:"method" validate:"required,oneof=cash qr"`
}

type PaymentResponse struct {
	ID      string `json:"id"`
	GuestID string `json:"guest_id"`
	Amount  int64  `json:"amount"`
	Method  string `json:"method"`
	Status  string `json:"status"`
	PaidAt  string `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(mod model.Payment) {
	r.ID = mod.ID
	r.GuestID = mod.GuestID
	r.Amount = mod.Amount
	r.Method = mod.Method
	r.Status = mod.Status

	if mod.PaidAt != nil {
		r.PaidAt = timezone.Format(*mod.PaidAt, constant.DateFormat)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

// Paid returns the update map for settling a payment.
func Paid(method, user string) map[string]any {
	now := timezone.Now()

	return map[string]any{
		model.FieldStatus:        model.StatusPaid,
		model.FieldMethod:        method,
		model.FieldPaidAt:        now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}
}
