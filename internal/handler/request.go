package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/logger"
	"github.com/thj-dnt/clockwork-banker/internal/request"
)

type FreeTextRequest struct {
	UserID        string `json:"user_id" validate:"required,max=100"`
	CharacterName string `json:"character_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Items         string `json:"items" validate:"required,max=4000"`
	Notes         string `json:"notes" validate:"max=1000"`
}

type MessageRefRequest struct {
	MessageID string `json:"message_id" validate:"required,max=32"`
	ThreadID  string `json:"thread_id" validate:"max=32"`
}

// RequestListResponse lists the active requests
type RequestListResponse struct {
	Count    int              `json:"count"`
	Requests []domain.Request `json:"requests"`
}

// parseRequestID extracts the numeric request id from the URL
func parseRequestID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// HandleRequestSubmit creates a request from free-form item text
// @Summary Submit a free-text request
// @Description Parses one item per line and resolves each against the index
// @Tags requests
// @Accept json
// @Produce json
// @Param request body FreeTextRequest true "Request details"
// @Success 201 {object} domain.Request
// @Failure 400 {object} ErrorResponse "No parseable items"
// @Router /requests [post]
func HandleRequestSubmit(requests request.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req FreeTextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode request submission", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request submission", "error", err)
			respondValidationError(w, err)
			return
		}

		created, err := requests.SubmitFreeText(r.Context(), req.UserID, req.CharacterName, req.Items, req.Notes)
		if err != nil {
			log.Warn("Request submission failed", "error", err, "userID", req.UserID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleRequestList lists active requests ordered by id
// @Summary List active requests
// @Tags requests
// @Produce json
// @Success 200 {object} RequestListResponse
// @Router /requests [get]
func HandleRequestList(requests request.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := requests.Active(r.Context())
		if active == nil {
			active = []domain.Request{}
		}
		respondJSON(w, http.StatusOK, RequestListResponse{Count: len(active), Requests: active})
	}
}

// HandleRequestGet returns one active request
// @Summary Get a request
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} domain.Request
// @Failure 404 {object} ErrorResponse
// @Router /requests/{id} [get]
func HandleRequestGet(requests request.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseRequestID(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid request id")
			return
		}

		req, err := requests.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, req)
	}
}

// HandleRequestMessageRef records the Discord message posted for a request
// @Summary Attach Discord message reference
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body MessageRefRequest true "Message reference"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /requests/{id}/message [put]
func HandleRequestMessageRef(requests request.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := parseRequestID(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid request id")
			return
		}

		var req MessageRefRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode message ref request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid message ref request", "error", err)
			respondValidationError(w, err)
			return
		}

		if err := requests.SetMessageRef(r.Context(), id, req.MessageID, req.ThreadID); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Message reference recorded"})
	}
}
