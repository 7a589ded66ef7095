package domain

import "time"

type Room struct {
	ID            int64     `json:"id"`
	HotelID       int64     `json:"hotel_id"`
	Quantity      int64     `json:"quantity"`
	RoomType      string    `json:"room_type"`
	Accommodation string    `json:"accommodation"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Hotel is only populated by list reads; it is attached whatever its status.
	Hotel *Hotel `json:"hotel,omitempty"`
}

func (r Room) Deleted() bool { return r.Status == StatusDeleted }
