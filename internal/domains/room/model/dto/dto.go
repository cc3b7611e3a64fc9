package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber  string                `json:"room_number" validate:"required,max=20"`
	RoomType    string                `json:"room_type"   validate:"required,max=50"`
	Price       int64                 `json:"price"       validate:"required,gte=0"`
	Status      string                `json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Photo       *multipart.FileHeader `json:"photo"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	PhotoFile   multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user, photoURL string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		RoomType:    c.RoomType,
		Price:       c.Price,
		Status:      status,
		PhotoURL:    photoURL,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomType    string                `db:"room_type"   json:"room_type"   validate:"omitempty,max=50"`
	Price       *int64                `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Status      string                `db:"status"      json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=500"`
	Photo       *multipart.FileHeader `json:"photo"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	PhotoFile   multipart.File        `json:"-"`
}

type AvailableRoomsRequest struct {
	Checkin  string `json:"checkin"  validate:"required"`
	Checkout string `json:"checkout" validate:"required"`
}

type RoomResponse struct {
	ID          string `json:"id"`
	RoomNumber  string `json:"room_number"`
	RoomType    string `json:"room_type"`
	Price       int64  `json:"price"`
	Status      string `json:"status"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Description string `json:"description,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.RoomNumber = mod.RoomNumber
	r.RoomType = mod.RoomType
	r.Price = mod.Price
	r.Status = mod.Status
	r.PhotoURL = mod.PhotoURL
	r.Description = mod.Description
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailableRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
