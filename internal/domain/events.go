package domain

// Event type constants shared between publishers and subscribers.
const (
	EventTypeSearchPerformed  = "bank.search_performed"
	EventTypeItemCarted       = "bank.item_carted"
	EventTypeRequestSubmitted = "bank.request_submitted"
	EventTypeRequestFulfilled = "bank.request_fulfilled"
	EventTypeRequestDenied    = "bank.request_denied"
	EventTypeRequestPartial   = "bank.request_partial"
	EventTypeIndexRebuilt     = "bank.index_rebuilt"
)

// SearchPerformedPayload is the typed payload for search events.
type SearchPerformedPayload struct {
	Query       string `json:"query"`
	ResultCount int    `json:"result_count"`
	SpellSearch bool   `json:"spell_search"`
	Timestamp   int64  `json:"timestamp"`
}

// RequestEventPayload is the typed payload for request lifecycle events.
// Source is "cart" or "freetext" on submission events, empty otherwise.
type RequestEventPayload struct {
	RequestID int    `json:"request_id"`
	UserID    string `json:"user_id"`
	Staff     string `json:"staff,omitempty"`
	Source    string `json:"source,omitempty"`
	ItemCount int    `json:"item_count"`
	Timestamp int64  `json:"timestamp"`
}

// IndexRebuiltPayload is the typed payload for index rebuild events.
type IndexRebuiltPayload struct {
	Files     int   `json:"files"`
	Items     int   `json:"items"`
	Spells    int   `json:"spells"`
	Timestamp int64 `json:"timestamp"`
}
