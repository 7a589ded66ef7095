package app

import (
	"context"
	"time"

	"hotel_inventory/internal/domain"
)

type HotelService struct {
	repo domain.HotelRepository
	now  func() time.Time
}

func NewHotelService(r domain.HotelRepository) *HotelService {
	return &HotelService{repo: r, now: utcNow}
}

func utcNow() time.Time { return time.Now().UTC().Truncate(time.Second) }

// Create persists a new ACTIVE hotel. Name and tax_id uniqueness is left to the
// repository, which rejects collisions with any existing row whatever its status.
func (s *HotelService) Create(ctx context.Context, in HotelInput) (domain.Hotel, error) {
	in.normalize()
	if err := validateInput(in); err != nil {
		return domain.Hotel{}, err
	}
	now := s.now()
	h := domain.Hotel{Status: domain.StatusActive, CreatedAt: now, UpdatedAt: now}
	applyHotelInput(&h, in)
	if err := s.repo.InsertHotel(ctx, &h); err != nil {
		return domain.Hotel{}, err
	}
	observeEntity("hotel", "created")
	return h, nil
}

// Update replaces every mutable field. The hotel is looked up regardless of status
// and its status is carried over untouched.
func (s *HotelService) Update(ctx context.Context, id int64, in HotelInput) (domain.Hotel, error) {
	h, err := s.repo.FindHotelByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	in.normalize()
	if err := validateInput(in); err != nil {
		return domain.Hotel{}, err
	}
	applyHotelInput(&h, in)
	h.UpdatedAt = s.now()
	if err := s.repo.UpdateHotel(ctx, h); err != nil {
		return domain.Hotel{}, err
	}
	observeEntity("hotel", "updated")
	return h, nil
}

func (s *HotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.FindHotels(ctx, domain.HotelQuery{ExcludeDeleted: true})
}

func (s *HotelService) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	h, err := s.repo.FindHotelByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if h.Deleted() {
		return domain.Hotel{}, domain.NotFound("hotel %d not found", id)
	}
	return h, nil
}

// SoftDelete flags the hotel DELETED together with its rooms and returns the
// flagged record. Deleting an already deleted hotel is not an error.
func (s *HotelService) SoftDelete(ctx context.Context, id int64) (domain.Hotel, error) {
	h, err := s.repo.FindHotelByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	now := s.now()
	if err := s.repo.SoftDeleteHotel(ctx, id, now); err != nil {
		return domain.Hotel{}, err
	}
	h.Status = domain.StatusDeleted
	h.UpdatedAt = now
	observeEntity("hotel", "deleted")
	return h, nil
}

func applyHotelInput(h *domain.Hotel, in HotelInput) {
	h.Name = in.Name
	h.Address = in.Address
	h.City = in.City
	h.TaxID = *in.TaxID
	h.TaxVerificationDigit = *in.TaxVerificationDigit
	h.RoomCountDeclared = *in.RoomCountDeclared
}
