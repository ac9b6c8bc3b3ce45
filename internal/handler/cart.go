package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thj-dnt/clockwork-banker/internal/cart"
	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/inventory"
	"github.com/thj-dnt/clockwork-banker/internal/logger"
	"github.com/thj-dnt/clockwork-banker/internal/request"
)

type CartAddRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=200,excludesall=\x00\n\r\t"`
	Quality  string `json:"quality" validate:"quality"`
	Quantity int    `json:"quantity"`
}

type CartSubmitRequest struct {
	UserID        string `json:"user_id" validate:"required,max=100"`
	CharacterName string `json:"character_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// CartResponse is the cart state returned after any cart operation
type CartResponse struct {
	UserID string            `json:"user_id"`
	Lines  []domain.CartLine `json:"lines"`
	Total  int               `json:"total"`
}

func cartResponse(c domain.Cart) CartResponse {
	if c.Lines == nil {
		c.Lines = []domain.CartLine{}
	}
	return CartResponse{UserID: c.UserID, Lines: c.Lines, Total: c.TotalQuantity()}
}

// HandleCartAdd adds an inventory item to the user's cart
// @Summary Add item to cart
// @Description Resolves the item against the index and consolidates duplicate lines
// @Tags cart
// @Accept json
// @Produce json
// @Param request body CartAddRequest true "Cart line"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart [post]
func HandleCartAdd(carts cart.Service, inv inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CartAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode cart add request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid cart add request", "error", err)
			respondValidationError(w, err)
			return
		}

		// Cart lines carry the canonical name and id from the index so a
		// later submission never needs re-resolution.
		item, found := inv.Lookup(r.Context(), req.Name)
		if !found {
			respondServiceError(w, domain.ErrItemNotFound)
			return
		}

		quality := domain.QualityRaw
		if req.Quality != "" {
			quality, _ = domain.ParseQuality(req.Quality)
		}

		updated, err := carts.Add(r.Context(), req.UserID, domain.CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Quality:  quality,
			Quantity: req.Quantity,
		})
		if err != nil {
			log.Error("Failed to add cart line", "error", err, "userID", req.UserID)
			respondServiceError(w, err)
			return
		}

		log.Info("Item added to cart", "userID", req.UserID, "item", item.Name, "quality", quality)
		respondJSON(w, http.StatusOK, cartResponse(updated))
	}
}

// HandleCartGet returns the user's cart
// @Summary Get cart
// @Tags cart
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} CartResponse
// @Router /cart/{userID} [get]
func HandleCartGet(carts cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		respondJSON(w, http.StatusOK, cartResponse(carts.Get(r.Context(), userID)))
	}
}

// HandleCartClear empties the user's cart
// @Summary Clear cart
// @Tags cart
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Router /cart/{userID} [delete]
func HandleCartClear(carts cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		carts.Clear(r.Context(), userID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Cart cleared"})
	}
}

// HandleCartSubmit converts the cart into a pending bank request
// @Summary Submit cart as request
// @Description Creates a pending request from the cart and empties it
// @Tags cart
// @Accept json
// @Produce json
// @Param request body CartSubmitRequest true "Submission details"
// @Success 201 {object} domain.Request
// @Failure 400 {object} ErrorResponse "Cart is empty"
// @Router /cart/submit [post]
func HandleCartSubmit(requests request.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CartSubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode cart submit request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid cart submit request", "error", err)
			respondValidationError(w, err)
			return
		}

		created, err := requests.SubmitCart(r.Context(), req.UserID, req.CharacterName)
		if err != nil {
			log.Warn("Cart submission failed", "error", err, "userID", req.UserID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}
