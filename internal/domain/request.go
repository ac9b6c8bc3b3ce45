package domain

import "time"

// RequestStatus is the lifecycle state of a bank request.
type RequestStatus string

const (
	RequestPending            RequestStatus = "pending"
	RequestFulfilled          RequestStatus = "fulfilled"
	RequestDenied             RequestStatus = "denied"
	RequestPartiallyFulfilled RequestStatus = "partially_fulfilled"
)

// Terminal reports whether the status removes the request from the active
// set. Partial fulfillment is not terminal; the request stays open for a
// later fulfill or deny.
func (s RequestStatus) Terminal() bool {
	return s == RequestFulfilled || s == RequestDenied
}

// LineStatus is the per-line resolution outcome for a requested item,
// independent of the request's own status.
type LineStatus string

const (
	// LineConfirmed means the name hit the inventory index exactly.
	LineConfirmed LineStatus = "confirmed"
	// LineSuggested means only a fuzzy containment match was found;
	// SuggestedMatch carries the canonical name for staff review.
	LineSuggested LineStatus = "suggested"
	// LineNeedsVerification means nothing in the index matched.
	LineNeedsVerification LineStatus = "needs_verification"
)

// RequestLine is a cart line tagged with its resolution outcome.
type RequestLine struct {
	CartLine
	Status         LineStatus `json:"status"`
	SuggestedMatch string     `json:"suggested_match,omitempty"`
}

// Request is a submitted bank request owned by the request lifecycle.
// MessageID and ThreadID track the Discord message the staff works from.
type Request struct {
	ID            int           `json:"id"`
	UserID        string        `json:"user_id"`
	CharacterName string        `json:"character_name"`
	Items         []RequestLine `json:"items"`
	Notes         string        `json:"notes,omitempty"`
	RequestedAt   time.Time     `json:"requested_at"`
	Status        RequestStatus `json:"status"`

	FulfilledBy  string `json:"fulfilled_by,omitempty"`
	DeniedBy     string `json:"denied_by,omitempty"`
	DenialReason string `json:"denial_reason,omitempty"`
	PartialBy    string `json:"partial_by,omitempty"`
	StaffNotes   string `json:"staff_notes,omitempty"`

	// Free-text item lists recorded verbatim by a partial fulfillment.
	SentItems        string `json:"sent_items,omitempty"`
	UnavailableItems string `json:"unavailable_items,omitempty"`

	MessageID string `json:"message_id,omitempty"`
	ThreadID  string `json:"thread_id,omitempty"`
}

// LinesWithStatus filters the request's items by resolution outcome.
func (r Request) LinesWithStatus(status LineStatus) []RequestLine {
	var lines []RequestLine
	for _, l := range r.Items {
		if l.Status == status {
			lines = append(lines, l)
		}
	}
	return lines
}
