package app

import (
	"context"
	"fmt"
	"time"

	"hotel_inventory/internal/domain"
)

const duplicateRoomMsg = "a room with the same type and accommodation already exists for this hotel"

type RoomService struct {
	repo    domain.RoomRepository
	hotels  domain.HotelRepository
	lock    domain.Locker // optional
	lockTTL time.Duration
	now     func() time.Time
}

func NewRoomService(r domain.RoomRepository, h domain.HotelRepository, l domain.Locker, lockTTL time.Duration) *RoomService {
	if lockTTL <= 0 {
		lockTTL = 5 * time.Second
	}
	return &RoomService{repo: r, hotels: h, lock: l, lockTTL: lockTTL, now: utcNow}
}

// Create persists a new ACTIVE room after checking that no non-deleted room of
// the same hotel shares its type and accommodation. Hotel existence is not
// probed; the repository rejects dangling hotel ids.
func (s *RoomService) Create(ctx context.Context, in RoomInput) (domain.Room, error) {
	in.normalize()
	if err := validateInput(in); err != nil {
		return domain.Room{}, err
	}

	release, err := s.guard(ctx, *in.HotelID)
	if err != nil {
		return domain.Room{}, err
	}
	defer release()

	if err := s.ensureUnique(ctx, in, nil); err != nil {
		return domain.Room{}, err
	}
	now := s.now()
	r := domain.Room{Status: domain.StatusActive, CreatedAt: now, UpdatedAt: now}
	applyRoomInput(&r, in)
	if err := s.repo.InsertRoom(ctx, &r); err != nil {
		return domain.Room{}, err
	}
	observeEntity("room", "created")
	return r, nil
}

// Update replaces every mutable field; the duplicate check ignores the room itself.
func (s *RoomService) Update(ctx context.Context, id int64, in RoomInput) (domain.Room, error) {
	r, err := s.repo.FindRoomByID(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	in.normalize()
	if err := validateInput(in); err != nil {
		return domain.Room{}, err
	}

	release, err := s.guard(ctx, *in.HotelID)
	if err != nil {
		return domain.Room{}, err
	}
	defer release()

	if err := s.ensureUnique(ctx, in, &id); err != nil {
		return domain.Room{}, err
	}
	applyRoomInput(&r, in)
	r.UpdatedAt = s.now()
	if err := s.repo.UpdateRoom(ctx, r); err != nil {
		return domain.Room{}, err
	}
	observeEntity("room", "updated")
	return r, nil
}

// List returns non-deleted rooms, each with its hotel attached.
func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	return s.repo.FindRooms(ctx, domain.RoomQuery{ExcludeDeleted: true, WithHotel: true})
}

func (s *RoomService) Get(ctx context.Context, id int64) (domain.Room, error) {
	r, err := s.repo.FindRoomByID(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	if r.Deleted() {
		return domain.Room{}, domain.NotFound("room %d not found", id)
	}
	return r, nil
}

func (s *RoomService) SoftDelete(ctx context.Context, id int64) (domain.Room, error) {
	r, err := s.repo.FindRoomByID(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	r.Status = domain.StatusDeleted
	r.UpdatedAt = s.now()
	if err := s.repo.UpdateRoom(ctx, r); err != nil {
		return domain.Room{}, err
	}
	observeEntity("room", "deleted")
	return r, nil
}

// TotalQuantityForHotel sums quantity over every room of the hotel, DELETED
// rooms included. The hotel must exist but may itself be deleted.
func (s *RoomService) TotalQuantityForHotel(ctx context.Context, hotelID int64) (int64, error) {
	if _, err := s.hotels.FindHotelByID(ctx, hotelID); err != nil {
		return 0, err
	}
	return s.repo.SumRoomQuantity(ctx, hotelID)
}

func (s *RoomService) ensureUnique(ctx context.Context, in RoomInput, self *int64) error {
	existing, err := s.repo.FindRooms(ctx, domain.RoomQuery{
		HotelID:        in.HotelID,
		RoomType:       &in.RoomType,
		Accommodation:  &in.Accommodation,
		ExcludeID:      self,
		ExcludeDeleted: true,
		Limit:          1,
	})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return domain.Conflict(duplicateRoomMsg)
	}
	return nil
}

// guard serializes room writes of one hotel when a locker is configured.
func (s *RoomService) guard(ctx context.Context, hotelID int64) (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	return s.lock.Acquire(ctx, fmt.Sprintf("lock:rooms:hotel:%d", hotelID), s.lockTTL)
}

func applyRoomInput(r *domain.Room, in RoomInput) {
	r.HotelID = *in.HotelID
	r.Quantity = *in.Quantity
	r.RoomType = in.RoomType
	r.Accommodation = in.Accommodation
}
