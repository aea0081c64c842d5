package webcat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/opacgo/opacapp/internal/model"
)

const defaultUserAgent = "OpacApp/1.0"

// Retry behavior for transient failures
const (
	maxRetries   = 1
	retryBackoff = 2 * time.Second
)

// Client talks to libraries running the JSON web catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a web catalog client for the given base URL.
func NewClient(baseURL string, httpClient *http.Client, userAgent string) *Client {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// Search runs one catalog search and returns a single result page.
func (c *Client) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	params := url.Values{}
	for field, term := range query.Terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		params.Set(string(field), term)
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	if query.PerPage > 0 {
		params.Set("count", strconv.Itoa(query.PerPage))
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/api/search", params, nil)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return mapSearch(&resp), nil
}

// Detail fetches the full record for a catalog item.
func (c *Client) Detail(ctx context.Context, id string) (*model.Detail, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/record/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse record response: %w", err)
	}
	return mapDetail(&resp), nil
}

// AccountData fetches current loans and reservations for an account.
func (c *Client) AccountData(ctx context.Context, account *model.Account) (*model.AccountData, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/account", nil, account)
	if err != nil {
		return nil, err
	}

	var resp accountResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse account response: %w", err)
	}
	return mapAccount(&resp, time.Now()), nil
}

// Renew extends the loan identified by prolongID.
func (c *Client) Renew(ctx context.Context, account *model.Account, prolongID string) error {
	params := url.Values{}
	params.Set("id", prolongID)
	_, err := c.doRequest(ctx, http.MethodPost, "/api/account/renew", params, account)
	return err
}

// CancelReservation cancels the reservation identified by cancelID.
func (c *Client) CancelReservation(ctx context.Context, account *model.Account, cancelID string) error {
	params := url.Values{}
	params.Set("id", cancelID)
	_, err := c.doRequest(ctx, http.MethodPost, "/api/account/cancel", params, account)
	return err
}

// doRequest performs one HTTP request with retry on transient failures.
// account is optional; when set the request carries basic auth.
func (c *Client) doRequest(ctx context.Context, method, path string, params url.Values, account *model.Account) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			log.Printf("Retrying %s %s, attempt %d", method, path, attempt+1)
		}

		body, retryable, err := c.doOnce(ctx, method, path, params, account)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, params url.Values, account *model.Account) ([]byte, bool, error) {
	reqURL := c.baseURL + path
	var reqBody io.Reader
	if params != nil {
		if method == http.MethodGet {
			reqURL += "?" + params.Encode()
		} else {
			reqBody = strings.NewReader(params.Encode())
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if account != nil {
		req.SetBasicAuth(account.Username, account.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, model.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, false, model.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, model.ErrNotFound
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("server error: %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return nil, false, fmt.Errorf("catalog error: %s", errResp.Error)
		}
		return nil, false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, false, nil
}
