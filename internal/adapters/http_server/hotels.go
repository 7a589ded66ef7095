package httpserver

import (
	"net/http"

	"hotel_inventory/internal/app"
)

type hotelRequest struct {
	Name                 string  `json:"name"`
	Address              string  `json:"address"`
	City                 string  `json:"city"`
	TaxID                *number `json:"tax_id"`
	TaxVerificationDigit *number `json:"tax_verification_digit"`
	RoomCountDeclared    *number `json:"room_count_declared"`
}

func (req hotelRequest) input() app.HotelInput {
	return app.HotelInput{
		Name:                 req.Name,
		Address:              req.Address,
		City:                 req.City,
		TaxID:                req.TaxID.ptr(),
		TaxVerificationDigit: req.TaxVerificationDigit.ptr(),
		RoomCountDeclared:    req.RoomCountDeclared.ptr(),
	}
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req hotelRequest
	if err := decode(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	hotel, err := h.Hotels.Create(r.Context(), req.input())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Message: "Hotel created successfully", Data: hotel})
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "hotel")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	var req hotelRequest
	if err := decode(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	hotel, err := h.Hotels.Update(r.Context(), id, req.input())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Message: "Hotel updated successfully", Data: hotel})
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Data: hotels})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "hotel")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	hotel, err := h.Hotels.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Data: hotel})
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "hotel")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	hotel, err := h.Hotels.SoftDelete(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Message: "Hotel deleted successfully.", Data: hotel})
}
