package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thj-dnt/clockwork-banker/internal/inventory"
	"github.com/thj-dnt/clockwork-banker/internal/logger"
	"github.com/thj-dnt/clockwork-banker/internal/repository"
)

type FileUpsertRequest struct {
	Content string `json:"content" validate:"required"`
}

// FileInfo summarizes one stored inventory dump
type FileInfo struct {
	Name      string    `json:"name"`
	Size      int       `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileListResponse lists the stored inventory dumps
type FileListResponse struct {
	Count int        `json:"count"`
	Files []FileInfo `json:"files"`
}

// HandleBankRefresh rebuilds the inventory index from stored dumps
// @Summary Rebuild the inventory index
// @Description Reloads all stored dumps and rosters, then swaps in the new index
// @Tags bank
// @Produce json
// @Success 200 {object} IndexStatusResponse
// @Failure 500 {object} ErrorResponse
// @Router /bank/refresh [post]
func HandleBankRefresh(inv inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := inv.Refresh(r.Context()); err != nil {
			log.Error("Index refresh failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to rebuild inventory index")
			return
		}

		idx := inv.Snapshot()
		respondJSON(w, http.StatusOK, IndexStatusResponse{
			Files:   idx.FileCount(),
			Items:   idx.ItemCount(),
			Spells:  idx.SpellCount(),
			BuiltAt: idx.BuiltAt(),
		})
	}
}

// HandleFileList lists stored inventory dumps
// @Summary List inventory dumps
// @Tags bank
// @Produce json
// @Success 200 {object} FileListResponse
// @Failure 500 {object} ErrorResponse
// @Router /bank/files [get]
func HandleFileList(files repository.InventoryFiles) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		stored, err := files.GetAll(r.Context())
		if err != nil {
			log.Error("Failed to list inventory files", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		infos := make([]FileInfo, 0, len(stored))
		for _, f := range stored {
			infos = append(infos, FileInfo{Name: f.Name, Size: len(f.Content), UpdatedAt: f.UpdatedAt})
		}
		respondJSON(w, http.StatusOK, FileListResponse{Count: len(infos), Files: infos})
	}
}

// HandleFileUpsert stores or replaces one inventory dump
// @Summary Store an inventory dump
// @Description Saves the raw dump text; takes effect on the next refresh
// @Tags bank
// @Accept json
// @Produce json
// @Param name path string true "Filename"
// @Param request body FileUpsertRequest true "Dump content"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bank/files/{name} [put]
func HandleFileUpsert(files repository.InventoryFiles) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		name := chi.URLParam(r, "name")
		if name == "" {
			respondError(w, http.StatusBadRequest, "Missing filename")
			return
		}

		var req FileUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode file upsert request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid file upsert request", "error", err)
			respondValidationError(w, err)
			return
		}

		if err := files.Upsert(r.Context(), name, req.Content); err != nil {
			log.Error("Failed to store inventory file", "error", err, "file", name)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		log.Info("Inventory file stored", "file", name, "bytes", len(req.Content))
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "File stored"})
	}
}

// HandleFileDelete removes one inventory dump
// @Summary Delete an inventory dump
// @Tags bank
// @Produce json
// @Param name path string true "Filename"
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /bank/files/{name} [delete]
func HandleFileDelete(files repository.InventoryFiles) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		name := chi.URLParam(r, "name")
		if name == "" {
			respondError(w, http.StatusBadRequest, "Missing filename")
			return
		}

		if err := files.Delete(r.Context(), name); err != nil {
			log.Error("Failed to delete inventory file", "error", err, "file", name)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		log.Info("Inventory file deleted", "file", name)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "File deleted"})
	}
}
