package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

// Search cache tuning. Results are tiny (25 items max) so the cache can be
// generous; the TTL keeps staff from seeing a stale bank for long.
const (
	searchCacheSize = 256
	searchCacheTTL  = 2 * time.Minute
)

// APIClient handles communication with the banker core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	searches *searchCache
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey:   apiKey,
		searches: newSearchCache(searchCacheSize, searchCacheTTL),
	}
}

// CartState mirrors the cart payload returned by the API
type CartState struct {
	UserID string            `json:"user_id"`
	Lines  []domain.CartLine `json:"lines"`
	Total  int               `json:"total"`
}

// IndexStatus mirrors the index status payload returned by the API
type IndexStatus struct {
	Files   int       `json:"files"`
	Items   int       `json:"items"`
	Spells  int       `json:"spells"`
	BuiltAt time.Time `json:"built_at"`
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, path)

	// Retry configuration
	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeOrError decodes a JSON response into out, surfacing the API's error
// message on non-2xx statuses.
func decodeOrError(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("API error: %s", errResp.Error)
		}
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Search queries the bank inventory, serving repeats from the local cache
func (c *APIClient) Search(query string) ([]domain.Item, error) {
	if items, ok := c.searches.Get(query); ok {
		return items, nil
	}

	params := url.Values{}
	params.Set("q", query)

	resp, err := c.doRequest(http.MethodGet, "/api/v1/bank/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var searchResp struct {
		Items []domain.Item `json:"items"`
	}
	if err := decodeOrError(resp, &searchResp); err != nil {
		return nil, err
	}

	c.searches.Set(query, searchResp.Items)
	return searchResp.Items, nil
}

// GetIndexStatus reports the live index counts
func (c *APIClient) GetIndexStatus() (IndexStatus, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/bank/status", nil)
	if err != nil {
		return IndexStatus{}, err
	}

	var status IndexStatus
	if err := decodeOrError(resp, &status); err != nil {
		return IndexStatus{}, err
	}
	return status, nil
}

// RefreshIndex rebuilds the inventory index and drops the local search cache
func (c *APIClient) RefreshIndex() (IndexStatus, error) {
	resp, err := c.doRequest(http.MethodPost, "/api/v1/bank/refresh", nil)
	if err != nil {
		return IndexStatus{}, err
	}

	var status IndexStatus
	if err := decodeOrError(resp, &status); err != nil {
		return IndexStatus{}, err
	}

	c.searches.Clear()
	return status, nil
}

// AddToCart adds one item line to the user's cart
func (c *APIClient) AddToCart(userID, name, quality string, quantity int) (CartState, error) {
	req := map[string]interface{}{
		"user_id":  userID,
		"name":     name,
		"quality":  quality,
		"quantity": quantity,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/cart", req)
	if err != nil {
		return CartState{}, err
	}

	var cart CartState
	if err := decodeOrError(resp, &cart); err != nil {
		return CartState{}, err
	}
	return cart, nil
}

// GetCart retrieves the user's cart
func (c *APIClient) GetCart(userID string) (CartState, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/cart/"+url.PathEscape(userID), nil)
	if err != nil {
		return CartState{}, err
	}

	var cart CartState
	if err := decodeOrError(resp, &cart); err != nil {
		return CartState{}, err
	}
	return cart, nil
}

// ClearCart empties the user's cart
func (c *APIClient) ClearCart(userID string) error {
	resp, err := c.doRequest(http.MethodDelete, "/api/v1/cart/"+url.PathEscape(userID), nil)
	if err != nil {
		return err
	}
	return decodeOrError(resp, nil)
}

// SubmitCart converts the user's cart into a pending request
func (c *APIClient) SubmitCart(userID, characterName string) (domain.Request, error) {
	req := map[string]string{
		"user_id":        userID,
		"character_name": characterName,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/cart/submit", req)
	if err != nil {
		return domain.Request{}, err
	}

	var created domain.Request
	if err := decodeOrError(resp, &created); err != nil {
		return domain.Request{}, err
	}
	return created, nil
}

// SubmitRequest creates a request from free-form item text
func (c *APIClient) SubmitRequest(userID, characterName, items, notes string) (domain.Request, error) {
	req := map[string]string{
		"user_id":        userID,
		"character_name": characterName,
		"items":          items,
		"notes":          notes,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/requests", req)
	if err != nil {
		return domain.Request{}, err
	}

	var created domain.Request
	if err := decodeOrError(resp, &created); err != nil {
		return domain.Request{}, err
	}
	return created, nil
}

// ListRequests returns the active requests ordered by id
func (c *APIClient) ListRequests() ([]domain.Request, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/requests", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Requests []domain.Request `json:"requests"`
	}
	if err := decodeOrError(resp, &listResp); err != nil {
		return nil, err
	}
	return listResp.Requests, nil
}

// GetRequest returns one active request by id
func (c *APIClient) GetRequest(id int) (domain.Request, error) {
	resp, err := c.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/requests/%d", id), nil)
	if err != nil {
		return domain.Request{}, err
	}

	var req domain.Request
	if err := decodeOrError(resp, &req); err != nil {
		return domain.Request{}, err
	}
	return req, nil
}

// SetMessageRef records the posted Discord message for a request
func (c *APIClient) SetMessageRef(id int, messageID, threadID string) error {
	req := map[string]string{
		"message_id": messageID,
		"thread_id":  threadID,
	}

	resp, err := c.doRequest(http.MethodPut, fmt.Sprintf("/api/v1/requests/%d/message", id), req)
	if err != nil {
		return err
	}
	return decodeOrError(resp, nil)
}

// FulfillRequest marks a request fulfilled
func (c *APIClient) FulfillRequest(id int, staff string) (domain.Request, error) {
	req := map[string]string{"staff": staff}

	resp, err := c.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/requests/%d/fulfill", id), req)
	if err != nil {
		return domain.Request{}, err
	}

	var resolved domain.Request
	if err := decodeOrError(resp, &resolved); err != nil {
		return domain.Request{}, err
	}
	return resolved, nil
}

// DenyRequest marks a request denied
func (c *APIClient) DenyRequest(id int, staff, reason, staffNotes string) (domain.Request, error) {
	req := map[string]string{
		"staff":       staff,
		"reason":      reason,
		"staff_notes": staffNotes,
	}

	resp, err := c.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/requests/%d/deny", id), req)
	if err != nil {
		return domain.Request{}, err
	}

	var resolved domain.Request
	if err := decodeOrError(resp, &resolved); err != nil {
		return domain.Request{}, err
	}
	return resolved, nil
}

// PartialRequest records a partial fulfillment; the request stays open
func (c *APIClient) PartialRequest(id int, staff, sentItems, unavailableItems, staffNotes string) (domain.Request, error) {
	req := map[string]string{
		"staff":             staff,
		"sent_items":        sentItems,
		"unavailable_items": unavailableItems,
		"staff_notes":       staffNotes,
	}

	resp, err := c.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/requests/%d/partial", id), req)
	if err != nil {
		return domain.Request{}, err
	}

	var updated domain.Request
	if err := decodeOrError(resp, &updated); err != nil {
		return domain.Request{}, err
	}
	return updated, nil
}

// UploadFile stores or replaces one inventory dump
func (c *APIClient) UploadFile(name, content string) error {
	req := map[string]string{"content": content}

	resp, err := c.doRequest(http.MethodPut, "/api/v1/bank/files/"+url.PathEscape(name), req)
	if err != nil {
		return err
	}
	return decodeOrError(resp, nil)
}

// DeleteFile removes one inventory dump
func (c *APIClient) DeleteFile(name string) error {
	resp, err := c.doRequest(http.MethodDelete, "/api/v1/bank/files/"+url.PathEscape(name), nil)
	if err != nil {
		return err
	}
	return decodeOrError(resp, nil)
}
