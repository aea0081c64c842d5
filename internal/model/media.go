package model

import (
	"fmt"
	"strings"
)

// MediaType is a coarse classification of catalog items
type MediaType string

const (
	MediaBook    MediaType = "book"
	MediaEBook   MediaType = "ebook"
	MediaAudio   MediaType = "audio"
	MediaMovie   MediaType = "movie"
	MediaUnknown MediaType = ""
)

// MediaItem represents a single entry in a library catalog
type MediaItem struct {
	ID       string
	Title    string
	Author   string
	Year     string
	Type     MediaType
	Status   MediaStatus
	CoverURL string
	Branch   string
	ISBN     string
}

// GetDisplayTitle returns title, ISBN, or ID in order of preference
func (mi *MediaItem) GetDisplayTitle() string {
	if mi.Title != "" {
		return mi.Title
	}
	if mi.ISBN != "" {
		return "ISBN " + mi.ISBN
	}
	return mi.ID
}

// GetSubtitle returns the author/year line shown under the title
func (mi *MediaItem) GetSubtitle() string {
	parts := make([]string, 0, 2)
	if mi.Author != "" {
		parts = append(parts, mi.Author)
	}
	if mi.Year != "" {
		parts = append(parts, mi.Year)
	}
	return strings.Join(parts, " "+MiddleDot+" ")
}

// SearchField names an indexed catalog field
type SearchField string

const (
	FieldFree   SearchField = "free"
	FieldTitle  SearchField = "title"
	FieldAuthor SearchField = "author"
	FieldISBN   SearchField = "isbn"
)

// SearchQuery describes one catalog search request
type SearchQuery struct {
	Terms   map[SearchField]string
	Page    int // 1-based
	PerPage int // results per page, backend default when zero
}

// NewFreeQuery builds a free-text query for the given page
func NewFreeQuery(text string, page int) SearchQuery {
	return SearchQuery{
		Terms: map[SearchField]string{FieldFree: text},
		Page:  page,
	}
}

// IsEmpty reports whether the query carries no search terms
func (q SearchQuery) IsEmpty() bool {
	for _, v := range q.Terms {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// SearchResult is one page of catalog search results
type SearchResult struct {
	Items      []*MediaItem
	Page       int
	PageCount  int
	TotalCount int
}

// Detail is the full record for a single catalog item
type Detail struct {
	Item        MediaItem
	Description string
	Copies      []Copy
	Reservable  bool
}

// Copy is one physical or digital copy of an item at a branch
type Copy struct {
	Branch     string
	ShelfMark  string
	Status     MediaStatus
	ReturnDate string
}

// GetTotalString formats the result count for the UI, e.g. "132 results"
func (sr *SearchResult) GetTotalString() string {
	if sr.TotalCount < 0 {
		return "—"
	}
	return fmt.Sprintf("%d results", sr.TotalCount)
}
