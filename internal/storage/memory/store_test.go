package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_inventory/internal/domain"
	"hotel_inventory/internal/storage/memory"
)

func mustHotel(t *testing.T, s *memory.Store, name string, tax int64) domain.Hotel {
	t.Helper()
	h := domain.Hotel{Name: name, Address: "Calle 1", City: "Cartagena", TaxID: tax, Status: domain.StatusActive}
	if err := s.InsertHotel(context.Background(), &h); err != nil {
		t.Fatalf("InsertHotel: %v", err)
	}
	return h
}

func TestStore_HotelUniqueAcrossStatuses(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	h := mustHotel(t, s, "Plaza", 900111)
	if err := s.SoftDeleteHotel(ctx, h.ID, time.Now()); err != nil {
		t.Fatalf("SoftDeleteHotel: %v", err)
	}

	dupName := domain.Hotel{Name: "Plaza", TaxID: 1}
	if err := s.InsertHotel(ctx, &dupName); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict on name, got %v", err)
	}
	dupTax := domain.Hotel{Name: "Other", TaxID: 900111}
	if err := s.InsertHotel(ctx, &dupTax); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict on tax_id, got %v", err)
	}

	// updating a row with its own values is not a collision
	h.City = "Bogotá"
	if err := s.UpdateHotel(ctx, h); err != nil {
		t.Fatalf("self update: %v", err)
	}
}

func TestStore_RoomConstraints(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	h := mustHotel(t, s, "Plaza", 900111)

	orphan := domain.Room{HotelID: 999, RoomType: "Suite", Accommodation: "Doble", Status: domain.StatusActive}
	if err := s.InsertRoom(ctx, &orphan); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected FK validation error, got %v", err)
	}

	r1 := domain.Room{HotelID: h.ID, Quantity: 3, RoomType: "Suite", Accommodation: "Doble", Status: domain.StatusActive}
	if err := s.InsertRoom(ctx, &r1); err != nil {
		t.Fatalf("InsertRoom: %v", err)
	}
	r2 := r1
	r2.ID = 0
	if err := s.InsertRoom(ctx, &r2); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected active-key conflict, got %v", err)
	}

	r1.Status = domain.StatusDeleted
	if err := s.UpdateRoom(ctx, r1); err != nil {
		t.Fatalf("UpdateRoom: %v", err)
	}
	if err := s.InsertRoom(ctx, &r2); err != nil {
		t.Fatalf("deleted row must free the key: %v", err)
	}

	total, err := s.SumRoomQuantity(ctx, h.ID)
	if err != nil || total != 6 {
		t.Fatalf("sum includes deleted rows: got %d, %v", total, err)
	}
}

func TestStore_FindRoomsFiltersAndJoin(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	h := mustHotel(t, s, "Plaza", 900111)
	for _, acc := range []string{"Sencilla", "Doble", "Triple"} {
		r := domain.Room{HotelID: h.ID, Quantity: 1, RoomType: "Estándar", Accommodation: acc, Status: domain.StatusActive}
		if err := s.InsertRoom(ctx, &r); err != nil {
			t.Fatalf("InsertRoom: %v", err)
		}
	}
	if err := s.SoftDeleteHotel(ctx, h.ID, time.Now()); err != nil {
		t.Fatalf("SoftDeleteHotel: %v", err)
	}

	live, _ := s.FindRooms(ctx, domain.RoomQuery{ExcludeDeleted: true})
	if len(live) != 0 {
		t.Fatalf("hotel delete should cascade to rooms, %d left", len(live))
	}

	all, _ := s.FindRooms(ctx, domain.RoomQuery{HotelID: &h.ID, WithHotel: true, Limit: 2})
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Fatalf("limit/order: %+v", all)
	}
	if all[0].Hotel == nil || all[0].Hotel.Status != domain.StatusDeleted {
		t.Fatalf("joined hotel should be attached as-is: %+v", all[0].Hotel)
	}

	self := int64(1)
	acc := "Sencilla"
	rest, _ := s.FindRooms(ctx, domain.RoomQuery{Accommodation: &acc, ExcludeID: &self})
	if len(rest) != 0 {
		t.Fatalf("ExcludeID not honored: %+v", rest)
	}
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	if _, err := s.FindHotelByID(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("hotel: %v", err)
	}
	if _, err := s.FindRoomByID(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("room: %v", err)
	}
	if err := s.SoftDeleteHotel(ctx, 1, time.Now()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete: %v", err)
	}
}

func TestStore_RoomQuantityRange(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	h := mustHotel(t, s, "Plaza", 900111)

	for _, q := range []int64{-1, 4294967296} {
		r := domain.Room{HotelID: h.ID, Quantity: q, RoomType: "Suite", Accommodation: "Doble", Status: domain.StatusActive}
		if err := s.InsertRoom(ctx, &r); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("quantity %d: expected validation error, got %v", q, err)
		}
	}
	r := domain.Room{HotelID: h.ID, Quantity: 4294967295, RoomType: "Suite", Accommodation: "Doble", Status: domain.StatusActive}
	if err := s.InsertRoom(ctx, &r); err != nil {
		t.Fatalf("max quantity: %v", err)
	}
}
