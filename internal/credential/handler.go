package credential

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the http api layer for credential handling.
type Handler struct {
	service Service
}

// NewHandler creates a new handler injecting the service.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches the credential endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/credential", h.handleGetCredential)
	r.Put("/credential", h.handlePutCredential)
	r.Post("/credential/validate", h.handleValidate)
}

// --- DTOs ---

// credentialPayload carries the key in both directions.
type credentialPayload struct {
	APIKey string `json:"api_key"`
}

// --- Handlers ---

// handleGetCredential returns the stored key, empty when none is saved.
func (h *Handler) handleGetCredential(w http.ResponseWriter, r *http.Request) {
	key, err := h.service.LoadKey(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not load api key")
		return
	}

	writeJSON(w, http.StatusOK, credentialPayload{APIKey: key})
}

// handlePutCredential stores the supplied key for later sessions.
func (h *Handler) handlePutCredential(w http.ResponseWriter, r *http.Request) {
	var req credentialPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.service.SaveKey(r.Context(), req.APIKey); err != nil {
		writeError(w, http.StatusInternalServerError, "Could not save api key")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleValidate probes the remote service with the supplied key. The
// response is always 200; the caller branches on the status field.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req credentialPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result := h.service.Validate(r.Context(), req.APIKey)

	writeJSON(w, http.StatusOK, result)
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
