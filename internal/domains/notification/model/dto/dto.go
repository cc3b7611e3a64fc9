package dto

import (
	"lodge/internal/domains/notification/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"
)

type SendRequest struct {
	TemplateID string            `json:"template_id" validate:"required"`
	Phone      string            `json:"phone"       validate:"required,max=20"`
	Variables  map[string]string `json:"variables"   validate:"omitempty"`
	GuestID    *string           `json:"guest_id"    validate:"omitempty,uuid"`
}

type SendResponse struct {
	Status    string `json:"status"`
	Phone     string `json:"phone"`
	MessageID string `json:"message_id,omitempty"`
}

type NotificationResponse struct {
	ID      string  `json:"id"`
	GuestID *string `json:"guest_id,omitempty"`
	Phone   string  `json:"phone"`
	Message string  `json:"message"`
	Status  string  `json:"status"`
	SentAt  string  `json:"sent_at,omitempty"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(mod model.NotificationLog) {
	r.ID = mod.ID
	r.GuestID = mod.GuestID
	r.Phone = mod.Phone
	r.Message = mod.Message
	r.Status = mod.Status

	if mod.SentAt != nil {
		r.SentAt = timezone.Format(*mod.SentAt, constant.DateFormat)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.NotificationLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
