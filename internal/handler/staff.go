package handler

import (
	"encoding/json"
	"net/http"

	"github.com/thj-dnt/clockwork-banker/internal/logger"
	"github.com/thj-dnt/clockwork-banker/internal/request"
)

type FulfillRequest struct {
	Staff string `json:"staff" validate:"required,max=100"`
}

type DenyRequest struct {
	Staff      string `json:"staff" validate:"required,max=100"`
	Reason     string `json:"reason" validate:"required,max=500"`
	StaffNotes string `json:"staff_notes" validate:"max=1000"`
}

type PartialRequest struct {
	Staff            string `json:"staff" validate:"required,max=100"`
	SentItems        string `json:"sent_items" validate:"max=2000"`
	UnavailableItems string `json:"unavailable_items" validate:"max=2000"`
	StaffNotes       string `json:"staff_notes" validate:"max=1000"`
}

// HandleRequestFulfill marks a request fulfilled and closes it
// @Summary Fulfill a request
// @Tags staff
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body FulfillRequest true "Fulfillment details"
// @Success 200 {object} domain.Request
// @Failure 404 {object} ErrorResponse
// @Router /requests/{id}/fulfill [post]
func HandleRequestFulfill(requests request.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := parseRequestID(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid request id")
			return
		}

		var req FulfillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode fulfill request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid fulfill request", "error", err)
			respondValidationError(w, err)
			return
		}

		resolved, err := requests.Fulfill(r.Context(), id, req.Staff)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resolved)
	}
}

// HandleRequestDeny marks a request denied and closes it
// @Summary Deny a request
// @Tags staff
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body DenyRequest true "Denial details"
// @Success 200 {object} domain.Request
// @Failure 404 {object} ErrorResponse
// @Router /requests/{id}/deny [post]
func HandleRequestDeny(requests request.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := parseRequestID(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid request id")
			return
		}

		var req DenyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode deny request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid deny request", "error", err)
			respondValidationError(w, err)
			return
		}

		resolved, err := requests.Deny(r.Context(), id, req.Staff, req.Reason, req.StaffNotes)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resolved)
	}
}

// HandleRequestPartial records a partial fulfillment; the request stays open
// @Summary Partially fulfill a request
// @Tags staff
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body PartialRequest true "Partial fulfillment details"
// @Success 200 {object} domain.Request
// @Failure 404 {object} ErrorResponse
// @Router /requests/{id}/partial [post]
func HandleRequestPartial(requests request.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := parseRequestID(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid request id")
			return
		}

		var req PartialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode partial request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid partial request", "error", err)
			respondValidationError(w, err)
			return
		}

		updated, err := requests.Partial(r.Context(), id, req.Staff, req.SentItems, req.UnavailableItems, req.StaffNotes)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}
