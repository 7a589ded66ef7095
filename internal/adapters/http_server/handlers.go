package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_inventory/internal/adapters/observability"
	"hotel_inventory/internal/app"
	"hotel_inventory/internal/domain"
)

type Handlers struct {
	Hotels *app.HotelService
	Rooms  *app.RoomService
}

type envelope struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Route("/v1/hotels", func(r chi.Router) {
		r.Post("/", h.createHotel)
		r.Get("/", h.listHotels)
		r.Get("/{id}", h.getHotel)
		r.Put("/{id}", h.updateHotel)
		r.Delete("/{id}", h.deleteHotel)
		r.Get("/{id}/rooms/total", h.totalRooms)
	})
	s.mux.Route("/v1/rooms", func(r chi.Router) {
		r.Post("/", h.createRoom)
		r.Get("/", h.listRooms)
		r.Get("/{id}", h.getRoom)
		r.Put("/{id}", h.updateRoom)
		r.Delete("/{id}", h.deleteRoom)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// statusFor maps error kinds to HTTP statuses. Conflicts answer 400, which is
// what clients of the duplicate-room check already expect.
func statusFor(k domain.Kind) int {
	switch k {
	case domain.KindValidation:
		return http.StatusUnprocessableEntity
	case domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)
	observability.ObserveError(string(kind))
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeError(w, status, err.Error())
}

// pathID parses {id}. Anything that is not a positive integer cannot name a
// record, so it is reported as not found.
func pathID(r *http.Request, what string) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NotFound("%s %s not found", what, raw)
	}
	return id, nil
}

// decode reads a JSON body; malformed payloads are validation failures.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return domain.Validation("malformed JSON body: %v", err)
	}
	return nil
}
