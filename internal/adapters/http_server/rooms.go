package httpserver

import (
	"net/http"

	"hotel_inventory/internal/app"
)

type roomRequest struct {
	HotelID       *number `json:"hotel_id"`
	Quantity      *number `json:"quantity"`
	RoomType      string  `json:"room_type"`
	Accommodation string  `json:"accommodation"`
}

func (req roomRequest) input() app.RoomInput {
	return app.RoomInput{
		HotelID:       req.HotelID.ptr(),
		Quantity:      req.Quantity.ptr(),
		RoomType:      req.RoomType,
		Accommodation: req.Accommodation,
	}
}

type totalBody struct {
	Total int64 `json:"total"`
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if err := decode(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	room, err := h.Rooms.Create(r.Context(), req.input())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Message: "Room created successfully", Data: room})
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "room")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	var req roomRequest
	if err := decode(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	room, err := h.Rooms.Update(r.Context(), id, req.input())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Message: "Room updated successfully", Data: room})
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Data: rooms})
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "room")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	room, err := h.Rooms.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Data: room})
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "room")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	room, err := h.Rooms.SoftDelete(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Message: "Room deleted successfully.", Data: room})
}

func (h *Handlers) totalRooms(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "hotel")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	total, err := h.Rooms.TotalQuantityForHotel(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totalBody{Total: total})
}
