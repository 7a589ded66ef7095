package domain

import "time"

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

type Hotel struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Address              string    `json:"address"`
	City                 string    `json:"city"`
	TaxID                int64     `json:"tax_id"`
	TaxVerificationDigit int64     `json:"tax_verification_digit"`
	RoomCountDeclared    int64     `json:"room_count_declared"` // stated capacity, not derived from rooms
	Status               Status    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (h Hotel) Deleted() bool { return h.Status == StatusDeleted }
