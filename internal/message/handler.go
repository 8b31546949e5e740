package message

import (
	"encoding/json"
	"errors"
	"net/http"

	"prompt-console/internal/credential"
	"prompt-console/internal/domain"
	"prompt-console/internal/responselog"

	"github.com/go-chi/chi/v5"
)

// Handler is the http api layer for sending prompts. It owns the glue the
// send service stays out of: loading the stored key, gating on it, and
// appending every attempt to the response log.
type Handler struct {
	service     Service
	credentials credential.Service
	responses   responselog.Store
}

// NewHandler creates a new handler injecting its collaborators.
func NewHandler(s Service, credentials credential.Service, responses responselog.Store) *Handler {
	return &Handler{
		service:     s,
		credentials: credentials,
		responses:   responses,
	}
}

// RegisterRoutes attaches the message endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/messages", h.handleSendMessage)
}

// --- DTOs ---

// sendMessageRequest is the DTO for what the console sends.
type sendMessageRequest struct {
	Prompt string `json:"prompt"`
}

// sendMessageResponse wraps the record that was appended to the log.
type sendMessageResponse struct {
	Record domain.ResponseRecord `json:"record"`
}

// --- Handlers ---

// handleSendMessage sends the prompt with the stored key and logs the
// outcome. Failed sends still append a record so the attempt stays visible.
func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	apiKey, err := h.credentials.LoadKey(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not load api key")
		return
	}
	if apiKey == "" {
		writeError(w, http.StatusConflict, "No api key is stored")
		return
	}

	text, err := h.service.Send(r.Context(), apiKey, req.Prompt)
	if err != nil {
		var sendErr *domain.SendError
		if !errors.As(err, &sendErr) {
			sendErr = &domain.SendError{Kind: domain.SendErrorTransport, Message: err.Error()}
		}

		// A rejected precondition never became a request, so there is no
		// attempt to log.
		if sendErr.Kind == domain.SendErrorPrecondition {
			writeError(w, http.StatusBadRequest, sendErr.Message)
			return
		}

		record := h.responses.Append(domain.ResponseRecord{
			Query:  req.Prompt,
			Kind:   domain.ResponseKindText,
			Text:   sendErr.Message,
			Failed: true,
		})

		// An empty result is a completed request with nothing to show,
		// not an upstream failure.
		status := http.StatusBadGateway
		if sendErr.Kind == domain.SendErrorEmptyResult {
			status = http.StatusOK
		}
		writeJSON(w, status, sendMessageResponse{Record: record})
		return
	}

	record := h.responses.Append(domain.ResponseRecord{
		Query: req.Prompt,
		Kind:  domain.ResponseKindText,
		Text:  text,
	})

	writeJSON(w, http.StatusOK, sendMessageResponse{Record: record})
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
