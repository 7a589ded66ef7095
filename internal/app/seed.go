package app

import (
	"context"
	"errors"
	"fmt"

	"hotel_inventory/internal/domain"
)

// HotelSeed is one entry of a seed file: a hotel and the rooms to create under it.
type HotelSeed struct {
	HotelInput
	Rooms []RoomSeed `json:"rooms"`
}

// RoomSeed omits hotel_id; it is taken from the hotel created for the entry.
type RoomSeed struct {
	Quantity      *int64 `json:"quantity"`
	RoomType      string `json:"room_type"`
	Accommodation string `json:"accommodation"`
}

type SeedResult struct {
	HotelID      int64
	Name         string
	RoomsCreated int
	RoomsSkipped int
}

type SeedService struct {
	hotels *HotelService
	rooms  *RoomService
}

func NewSeedService(h *HotelService, r *RoomService) *SeedService {
	return &SeedService{hotels: h, rooms: r}
}

// SeedHotel creates the hotel and then its rooms. A hotel that cannot be created
// aborts the entry; duplicate rooms are skipped and counted, any other room
// failure is returned with the partial result.
func (s *SeedService) SeedHotel(ctx context.Context, hs HotelSeed) (SeedResult, error) {
	h, err := s.hotels.Create(ctx, hs.HotelInput)
	if err != nil {
		return SeedResult{Name: hs.Name}, fmt.Errorf("create hotel %q: %w", hs.Name, err)
	}
	res := SeedResult{HotelID: h.ID, Name: h.Name}

	for i, rs := range hs.Rooms {
		_, err := s.rooms.Create(ctx, RoomInput{
			HotelID:       &h.ID,
			Quantity:      rs.Quantity,
			RoomType:      rs.RoomType,
			Accommodation: rs.Accommodation,
		})
		switch {
		case err == nil:
			res.RoomsCreated++
		case errors.Is(err, domain.ErrConflict):
			res.RoomsSkipped++
		default:
			return res, fmt.Errorf("create room #%d of hotel %q: %w", i, h.Name, err)
		}
	}
	return res, nil
}
