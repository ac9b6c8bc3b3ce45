package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/inventory"
	"github.com/thj-dnt/clockwork-banker/internal/logger"
)

// SearchResponse carries the matches for one search query
type SearchResponse struct {
	Query string        `json:"query"`
	Count int           `json:"count"`
	Items []domain.Item `json:"items"`
}

// IndexStatusResponse describes the currently published index
type IndexStatusResponse struct {
	Files   int       `json:"files"`
	Items   int       `json:"items"`
	Spells  int       `json:"spells"`
	BuiltAt time.Time `json:"built_at"`
}

// HandleBankSearch searches the inventory index
// @Summary Search the guild bank
// @Description Substring item search, or spell-by-class with "spell <class>"
// @Tags bank
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /bank/search [get]
func HandleBankSearch(inv inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			respondError(w, http.StatusBadRequest, "Missing query parameter 'q'")
			return
		}

		items := inv.Search(r.Context(), query)

		log.Debug("Bank search completed", "query", query, "results", len(items))

		if items == nil {
			items = []domain.Item{}
		}
		respondJSON(w, http.StatusOK, SearchResponse{
			Query: query,
			Count: len(items),
			Items: items,
		})
	}
}

// HandleIndexStatus reports the published index snapshot
// @Summary Inventory index status
// @Description Returns file, item, and spell counts for the live index
// @Tags bank
// @Produce json
// @Success 200 {object} IndexStatusResponse
// @Router /bank/status [get]
func HandleIndexStatus(inv inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idx := inv.Snapshot()
		respondJSON(w, http.StatusOK, IndexStatusResponse{
			Files:   idx.FileCount(),
			Items:   idx.ItemCount(),
			Spells:  idx.SpellCount(),
			BuiltAt: idx.BuiltAt(),
		})
	}
}
