package responselog

import (
	"encoding/json"
	"net/http"

	"prompt-console/internal/domain"

	"github.com/go-chi/chi/v5"
)

// Handler is the http api layer for the response log.
type Handler struct {
	store Store
}

// NewHandler creates a new handler injecting the store.
func NewHandler(store Store) *Handler {
	return &Handler{
		store: store,
	}
}

// RegisterRoutes attaches the response log endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/responses", h.handleListResponses)
	r.Delete("/responses", h.handleClearResponses)
}

// listResponsesResponse is the DTO for the log contents.
type listResponsesResponse struct {
	Responses []domain.ResponseRecord `json:"responses"`
}

// handleListResponses returns the log newest-first, which is how the
// console renders it. The store itself keeps insertion order.
func (h *Handler) handleListResponses(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Snapshot()

	reversed := make([]domain.ResponseRecord, 0, len(snapshot))
	for i := len(snapshot) - 1; i >= 0; i-- {
		reversed = append(reversed, snapshot[i])
	}

	writeJSON(w, http.StatusOK, listResponsesResponse{Responses: reversed})
}

// handleClearResponses empties the log.
func (h *Handler) handleClearResponses(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
