package mysql

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"hotel_inventory/internal/domain"
)

func (r *Repo) InsertRoom(ctx context.Context, rm *domain.Room) error {
	res, err := r.db.ExecContext(ctx, insertRoomSQL,
		rm.HotelID,
		rm.Quantity,
		rm.RoomType,
		rm.Accommodation,
		string(rm.Status),
		rm.CreatedAt,
		rm.UpdatedAt,
	)
	if err != nil {
		return translate(err, "room")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Storage("room id", err)
	}
	rm.ID = id
	return nil
}

func (r *Repo) UpdateRoom(ctx context.Context, rm domain.Room) error {
	_, err := r.db.ExecContext(ctx, updateRoomSQL,
		rm.HotelID,
		rm.Quantity,
		rm.RoomType,
		rm.Accommodation,
		string(rm.Status),
		rm.UpdatedAt,
		rm.ID,
	)
	return translate(err, "room")
}

func (r *Repo) FindRoomByID(ctx context.Context, id int64) (domain.Room, error) {
	var rm domain.Room
	var status string
	err := r.db.QueryRowContext(ctx, getRoomSQL, id).Scan(
		&rm.ID, &rm.HotelID, &rm.Quantity, &rm.RoomType, &rm.Accommodation,
		&status, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return domain.Room{}, translate(err, "room")
	}
	rm.Status = domain.Status(status)
	return rm, nil
}

// buildRoomQuery renders q as a SELECT with positional args.
func buildRoomQuery(q domain.RoomQuery) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(roomColumns)
	if q.WithHotel {
		b.WriteString(", ")
		b.WriteString(joinedHotelColumns)
		b.WriteString(" FROM rooms r LEFT JOIN hotels h ON h.id = r.hotel_id")
	} else {
		b.WriteString(" FROM rooms r")
	}

	var where []string
	var args []any
	if q.ExcludeDeleted {
		where = append(where, "r.status <> 'DELETED'")
	}
	if q.HotelID != nil {
		where = append(where, "r.hotel_id = ?")
		args = append(args, *q.HotelID)
	}
	if q.RoomType != nil {
		where = append(where, "r.room_type = ?")
		args = append(args, *q.RoomType)
	}
	if q.Accommodation != nil {
		where = append(where, "r.accommodation = ?")
		args = append(args, *q.Accommodation)
	}
	if q.ExcludeID != nil {
		where = append(where, "r.id <> ?")
		args = append(args, *q.ExcludeID)
	}
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY r.id")
	if q.Limit > 0 {
		b.WriteString(" LIMIT " + strconv.Itoa(q.Limit))
	}
	return b.String(), args
}

func (r *Repo) FindRooms(ctx context.Context, q domain.RoomQuery) ([]domain.Room, error) {
	query, args := buildRoomQuery(q)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "room")
	}
	defer rows.Close()

	out := []domain.Room{}
	for rows.Next() {
		var rm domain.Room
		var status string
		dest := []any{
			&rm.ID, &rm.HotelID, &rm.Quantity, &rm.RoomType, &rm.Accommodation,
			&status, &rm.CreatedAt, &rm.UpdatedAt,
		}
		var (
			hID, hTax, hDigit, hCount sql.NullInt64
			hName, hAddr, hCity       sql.NullString
			hStatus                   sql.NullString
			hCreated, hUpdated        sql.NullTime
		)
		if q.WithHotel {
			dest = append(dest, &hID, &hName, &hAddr, &hCity, &hTax, &hDigit, &hCount, &hStatus, &hCreated, &hUpdated)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, translate(err, "room")
		}
		rm.Status = domain.Status(status)
		if q.WithHotel && hID.Valid {
			rm.Hotel = &domain.Hotel{
				ID:                   hID.Int64,
				Name:                 hName.String,
				Address:              hAddr.String,
				City:                 hCity.String,
				TaxID:                hTax.Int64,
				TaxVerificationDigit: hDigit.Int64,
				RoomCountDeclared:    hCount.Int64,
				Status:               domain.Status(hStatus.String),
				CreatedAt:            hCreated.Time,
				UpdatedAt:            hUpdated.Time,
			}
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "room")
	}
	return out, nil
}

func (r *Repo) SumRoomQuantity(ctx context.Context, hotelID int64) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, sumRoomQuantitySQL, hotelID).Scan(&total); err != nil {
		return 0, translate(err, "room")
	}
	return total, nil
}
