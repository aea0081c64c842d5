package sru

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/opacgo/opacapp/internal/model"
)

const defaultUserAgent = "OpacApp/1.0"

// defaultPageSize is the number of records requested per result page when the
// query does not set its own
const defaultPageSize = 20

// Client talks to SRU 1.1 endpoints and maps Dublin Core records into the
// domain model. SRU is a search protocol only; it has no account surface.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates an SRU client for the given endpoint URL.
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

// Search runs one searchRetrieve operation and returns a single result page.
func (c *Client) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = defaultPageSize
	}

	params := url.Values{}
	params.Set("operation", "searchRetrieve")
	params.Set("version", "1.1")
	params.Set("recordSchema", "dc")
	params.Set("query", buildCQL(query))
	params.Set("startRecord", strconv.Itoa((page-1)*perPage+1))
	params.Set("maximumRecords", strconv.Itoa(perPage))

	resp, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	if resp.Diagnostics.Message != "" {
		return nil, fmt.Errorf("sru diagnostic: %s", resp.Diagnostics.Message)
	}

	items := make([]*model.MediaItem, 0, len(resp.Records))
	for _, rec := range resp.Records {
		items = append(items, mapRecord(rec))
	}

	pageCount := (resp.NumberOfRecords + perPage - 1) / perPage
	return &model.SearchResult{
		Items:      items,
		Page:       page,
		PageCount:  pageCount,
		TotalCount: resp.NumberOfRecords,
	}, nil
}

// Detail fetches a single record by identifier.
func (c *Client) Detail(ctx context.Context, id string) (*model.Detail, error) {
	params := url.Values{}
	params.Set("operation", "searchRetrieve")
	params.Set("version", "1.1")
	params.Set("recordSchema", "dc")
	params.Set("query", fmt.Sprintf("identifier=%s", id))
	params.Set("maximumRecords", "1")

	resp, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(resp.Records) == 0 {
		return nil, model.ErrNotFound
	}

	rec := resp.Records[0]
	return &model.Detail{
		Item:        *mapRecord(rec),
		Description: rec.Data.Description,
	}, nil
}

// buildCQL translates the query's field terms into a CQL expression
func buildCQL(query model.SearchQuery) string {
	var clauses []string
	for field, term := range query.Terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		quoted := `"` + strings.ReplaceAll(term, `"`, ``) + `"`
		switch field {
		case model.FieldTitle:
			clauses = append(clauses, "dc.title="+quoted)
		case model.FieldAuthor:
			clauses = append(clauses, "dc.creator="+quoted)
		case model.FieldISBN:
			clauses = append(clauses, "dc.identifier="+quoted)
		default:
			clauses = append(clauses, quoted)
		}
	}
	return strings.Join(clauses, " and ")
}

func (c *Client) fetch(ctx context.Context, params url.Values) (*searchRetrieveResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, model.ErrServerOffline
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", httpResp.StatusCode)
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp searchRetrieveResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse sru response: %w", err)
	}
	return &resp, nil
}

// mapRecord converts a Dublin Core record to a domain media item
func mapRecord(rec sruRecord) *model.MediaItem {
	item := &model.MediaItem{
		ID:     rec.Identifier,
		Status: model.StatusUnknown,
	}
	if len(rec.Data.Titles) > 0 {
		item.Title = rec.Data.Titles[0]
	}
	if len(rec.Data.Creators) > 0 {
		item.Author = rec.Data.Creators[0]
	}
	if len(rec.Data.Dates) > 0 {
		item.Year = rec.Data.Dates[0]
	}
	if len(rec.Data.Types) > 0 {
		item.Type = mapDCType(rec.Data.Types[0])
	}
	for _, ident := range rec.Data.Identifiers {
		if isbn, ok := strings.CutPrefix(ident, "urn:isbn:"); ok {
			item.ISBN = isbn
			break
		}
	}
	if item.ID == "" && len(rec.Data.Identifiers) > 0 {
		item.ID = rec.Data.Identifiers[0]
	}
	return item
}

func mapDCType(t string) model.MediaType {
	switch strings.ToLower(t) {
	case "text", "book":
		return model.MediaBook
	case "sound", "audio":
		return model.MediaAudio
	case "movingimage", "video":
		return model.MediaMovie
	default:
		return model.MediaUnknown
	}
}
