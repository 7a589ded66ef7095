package mysql

import (
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"

	"hotel_inventory/internal/domain"
)

func TestBuildRoomQuery_DuplicateProbe(t *testing.T) {
	hotel, self := int64(4), int64(9)
	typ, acc := "Suite", "Doble"
	q, args := buildRoomQuery(domain.RoomQuery{
		HotelID:        &hotel,
		RoomType:       &typ,
		Accommodation:  &acc,
		ExcludeID:      &self,
		ExcludeDeleted: true,
		Limit:          1,
	})
	want := "SELECT " + roomColumns + " FROM rooms r WHERE r.status <> 'DELETED' AND r.hotel_id = ? AND r.room_type = ? AND r.accommodation = ? AND r.id <> ? ORDER BY r.id LIMIT 1"
	if q != want {
		t.Fatalf("query:\n got %s\nwant %s", q, want)
	}
	if !reflect.DeepEqual(args, []any{hotel, typ, acc, self}) {
		t.Fatalf("args: %+v", args)
	}
}

func TestBuildRoomQuery_ListWithHotel(t *testing.T) {
	q, args := buildRoomQuery(domain.RoomQuery{ExcludeDeleted: true, WithHotel: true})
	want := "SELECT " + roomColumns + ", " + joinedHotelColumns +
		" FROM rooms r LEFT JOIN hotels h ON h.id = r.hotel_id WHERE r.status <> 'DELETED' ORDER BY r.id"
	if q != want {
		t.Fatalf("query:\n got %s\nwant %s", q, want)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %+v", args)
	}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind domain.Kind
		msg  string
	}{
		{"no rows", sql.ErrNoRows, domain.KindNotFound, "hotel not found"},
		{"dup name", &gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Plaza' for key 'hotels.uq_hotels_name'"}, domain.KindConflict, "the name has already been taken"},
		{"dup tax", &gomysql.MySQLError{Number: 1062, Message: "Duplicate entry '900111' for key 'hotels.uq_hotels_tax_id'"}, domain.KindConflict, "the tax_id has already been taken"},
		{"dup room", &gomysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-Suite-Doble-1' for key 'rooms.uq_rooms_active'"}, domain.KindConflict, "a room with the same type and accommodation already exists for this hotel"},
		{"fk", &gomysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, domain.KindValidation, "the selected hotel_id is invalid"},
		{"other", fmt.Errorf("wrapped: %w", errors.New("connection refused")), domain.KindStorage, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translate(tc.err, "hotel")
			if k := domain.KindOf(got); k != tc.kind {
				t.Fatalf("kind: got %s want %s (%v)", k, tc.kind, got)
			}
			if tc.msg != "" && got.Error() != tc.msg {
				t.Fatalf("msg: got %q want %q", got.Error(), tc.msg)
			}
		})
	}
	if translate(nil, "hotel") != nil {
		t.Fatalf("nil must stay nil")
	}
}
