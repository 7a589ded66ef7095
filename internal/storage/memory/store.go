// Package memory is an in-process implementation of the hotel and room
// repositories. It enforces the same constraints as the MySQL schema.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"hotel_inventory/internal/domain"
)

type Store struct {
	mu        sync.RWMutex
	hotels    map[int64]domain.Hotel
	rooms     map[int64]domain.Room
	nextHotel int64
	nextRoom  int64
}

func New() *Store {
	return &Store{hotels: map[int64]domain.Hotel{}, rooms: map[int64]domain.Room{}}
}

// ---- hotels ----

func (s *Store) InsertHotel(ctx context.Context, h *domain.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkHotelUnique(*h, 0); err != nil {
		return err
	}
	s.nextHotel++
	h.ID = s.nextHotel
	s.hotels[h.ID] = *h
	return nil
}

func (s *Store) UpdateHotel(ctx context.Context, h domain.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[h.ID]; !ok {
		return domain.NotFound("hotel %d not found", h.ID)
	}
	if err := s.checkHotelUnique(h, h.ID); err != nil {
		return err
	}
	s.hotels[h.ID] = h
	return nil
}

func (s *Store) SoftDeleteHotel(ctx context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hotels[id]
	if !ok {
		return domain.NotFound("hotel %d not found", id)
	}
	h.Status, h.UpdatedAt = domain.StatusDeleted, at
	s.hotels[id] = h
	for rid, r := range s.rooms {
		if r.HotelID == id && !r.Deleted() {
			r.Status, r.UpdatedAt = domain.StatusDeleted, at
			s.rooms[rid] = r
		}
	}
	return nil
}

func (s *Store) FindHotelByID(ctx context.Context, id int64) (domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.NotFound("hotel %d not found", id)
	}
	return h, nil
}

func (s *Store) FindHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Hotel, 0, len(s.hotels))
	for _, h := range s.hotels {
		if q.ExcludeDeleted && h.Deleted() {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// name and tax_id are unique across all rows, deleted ones included
func (s *Store) checkHotelUnique(h domain.Hotel, self int64) error {
	for id, other := range s.hotels {
		if id == self {
			continue
		}
		if other.Name == h.Name {
			return domain.Conflict("the name has already been taken")
		}
		if other.TaxID == h.TaxID {
			return domain.Conflict("the tax_id has already been taken")
		}
	}
	return nil
}

// ---- rooms ----

func (s *Store) InsertRoom(ctx context.Context, r *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkRoom(*r, 0); err != nil {
		return err
	}
	s.nextRoom++
	r.ID = s.nextRoom
	r.Hotel = nil
	s.rooms[r.ID] = *r
	return nil
}

func (s *Store) UpdateRoom(ctx context.Context, r domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[r.ID]; !ok {
		return domain.NotFound("room %d not found", r.ID)
	}
	if err := s.checkRoom(r, r.ID); err != nil {
		return err
	}
	r.Hotel = nil
	s.rooms[r.ID] = r
	return nil
}

func (s *Store) FindRoomByID(ctx context.Context, id int64) (domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	if !ok {
		return domain.Room{}, domain.NotFound("room %d not found", id)
	}
	return r, nil
}

func (s *Store) FindRooms(ctx context.Context, q domain.RoomQuery) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Room{}
	for _, r := range s.rooms {
		if matchRoom(r, q) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	if q.WithHotel {
		for i := range out {
			if h, ok := s.hotels[out[i].HotelID]; ok {
				out[i].Hotel = &h
			}
		}
	}
	return out, nil
}

func (s *Store) SumRoomQuantity(ctx context.Context, hotelID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, r := range s.rooms {
		if r.HotelID == hotelID {
			total += r.Quantity
		}
	}
	return total, nil
}

func matchRoom(r domain.Room, q domain.RoomQuery) bool {
	switch {
	case q.ExcludeDeleted && r.Deleted():
		return false
	case q.HotelID != nil && r.HotelID != *q.HotelID:
		return false
	case q.RoomType != nil && r.RoomType != *q.RoomType:
		return false
	case q.Accommodation != nil && r.Accommodation != *q.Accommodation:
		return false
	case q.ExcludeID != nil && r.ID == *q.ExcludeID:
		return false
	}
	return true
}

// checkRoom mirrors the INT UNSIGNED quantity column, the foreign key on
// hotel_id and the unique active index.
func (s *Store) checkRoom(r domain.Room, self int64) error {
	if r.Quantity < 0 || r.Quantity > math.MaxUint32 {
		return domain.Validation("out of range value for column 'quantity'")
	}
	if _, ok := s.hotels[r.HotelID]; !ok {
		return domain.Validation("the selected hotel_id is invalid")
	}
	if r.Deleted() {
		return nil
	}
	for id, other := range s.rooms {
		if id == self || other.Deleted() {
			continue
		}
		if other.HotelID == r.HotelID && other.RoomType == r.RoomType && other.Accommodation == r.Accommodation {
			return domain.Conflict("a room with the same type and accommodation already exists for this hotel")
		}
	}
	return nil
}
