package mysql

import (
	"context"
	"database/sql"
	"time"

	"hotel_inventory/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHotel(s rowScanner) (domain.Hotel, error) {
	var h domain.Hotel
	var status string
	err := s.Scan(
		&h.ID,
		&h.Name,
		&h.Address,
		&h.City,
		&h.TaxID,
		&h.TaxVerificationDigit,
		&h.RoomCountDeclared,
		&status,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	h.Status = domain.Status(status)
	return h, err
}

func (r *Repo) InsertHotel(ctx context.Context, h *domain.Hotel) error {
	res, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.Name,
		h.Address,
		h.City,
		h.TaxID,
		h.TaxVerificationDigit,
		h.RoomCountDeclared,
		string(h.Status),
		h.CreatedAt,
		h.UpdatedAt,
	)
	if err != nil {
		return translate(err, "hotel")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Storage("hotel id", err)
	}
	h.ID = id
	return nil
}

func (r *Repo) UpdateHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, updateHotelSQL,
		h.Name,
		h.Address,
		h.City,
		h.TaxID,
		h.TaxVerificationDigit,
		h.RoomCountDeclared,
		string(h.Status),
		h.UpdatedAt,
		h.ID,
	)
	return translate(err, "hotel")
}

// SoftDeleteHotel flags the hotel and its live rooms in one transaction.
func (r *Repo) SoftDeleteHotel(ctx context.Context, id int64, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translate(err, "hotel")
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, softDeleteHotelSQL, at, id)
	if err != nil {
		return translate(err, "hotel")
	}
	// affected rows are 0 both for a missing id and an unchanged row; disambiguate
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM hotels WHERE id = ?", id).Scan(&one); err != nil {
			return translate(err, "hotel")
		}
	}
	if _, err := tx.ExecContext(ctx, softDeleteHotelRoomsSQL, at, id); err != nil {
		return translate(err, "room")
	}
	return translate(tx.Commit(), "hotel")
}

func (r *Repo) FindHotelByID(ctx context.Context, id int64) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, id))
	if err != nil {
		return domain.Hotel{}, translate(err, "hotel")
	}
	return h, nil
}

func (r *Repo) FindHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	query := listHotelsSQL
	if q.ExcludeDeleted {
		query += " WHERE status <> 'DELETED'"
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translate(err, "hotel")
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, translate(err, "hotel")
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "hotel")
	}
	return out, nil
}
