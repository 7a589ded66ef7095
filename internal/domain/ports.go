package domain

import (
	"context"
	"time"
)

type HotelRepository interface {
	// Write paths
	InsertHotel(ctx context.Context, h *Hotel) error
	UpdateHotel(ctx context.Context, h Hotel) error
	// SoftDeleteHotel flags the hotel and all of its rooms DELETED atomically.
	SoftDeleteHotel(ctx context.Context, id int64, at time.Time) error

	// Read paths
	FindHotelByID(ctx context.Context, id int64) (Hotel, error)
	FindHotels(ctx context.Context, q HotelQuery) ([]Hotel, error)
}

type RoomRepository interface {
	InsertRoom(ctx context.Context, r *Room) error
	UpdateRoom(ctx context.Context, r Room) error

	FindRoomByID(ctx context.Context, id int64) (Room, error)
	FindRooms(ctx context.Context, q RoomQuery) ([]Room, error)
	SumRoomQuantity(ctx context.Context, hotelID int64) (int64, error)
}

// Locker serializes check-then-write sequences across processes.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// Queries

type HotelQuery struct {
	ExcludeDeleted bool
}

// RoomQuery is a conjunction; nil fields are not filtered on.
type RoomQuery struct {
	HotelID        *int64
	RoomType       *string
	Accommodation  *string
	ExcludeID      *int64
	ExcludeDeleted bool
	WithHotel      bool
	Limit          int // 0 = unlimited
}
