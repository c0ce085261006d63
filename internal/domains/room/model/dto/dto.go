package dto

import (
	"github.com/minhquach8/hotel-booking/internal/domains/room/model"
)

type RoomResponse struct {
	ID          int64   `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceNZD    float64 `json:"price_nzd"`
	Image       *string `json:"image"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Name = model.Name
	r.Description = model.Description
	r.PriceNZD = model.PriceNZD

	if model.Image.Valid {
		image := model.Image.String
		r.Image = &image
	}
}

type GetRoomsResponse struct {
	Count int            `json:"count"`
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Count = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
