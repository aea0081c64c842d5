package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/opacgo/opacapp/internal/catalog/source/sru"
	"github.com/opacgo/opacapp/internal/catalog/source/webcat"
	"github.com/opacgo/opacapp/internal/model"
)

// CatalogSource combines the operations a library backend must implement.
// Backends without account access return model.ErrNotSupported from the
// account operations.
type CatalogSource interface {
	// Search runs one catalog search and returns a single result page
	Search(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error)

	// Detail fetches the full record for a catalog item
	Detail(ctx context.Context, id string) (*model.Detail, error)

	// AccountData fetches current loans and reservations for an account
	AccountData(ctx context.Context, account *model.Account) (*model.AccountData, error)

	// Renew extends the loan identified by prolongID
	Renew(ctx context.Context, account *model.Account, prolongID string) error

	// CancelReservation cancels the reservation identified by cancelID
	CancelReservation(ctx context.Context, account *model.Account, cancelID string) error
}

// Options tunes the HTTP behavior of created backends.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// NewClient creates a CatalogSource for the given library, switching on its
// API kind. This factory abstracts away the specific backend implementation.
func NewClient(lib *model.Library, opts Options) (CatalogSource, error) {
	if lib == nil {
		return nil, fmt.Errorf("library is nil")
	}
	if lib.BaseURL == "" {
		return nil, fmt.Errorf("library %s has no base URL", lib.ID)
	}

	httpClient := &http.Client{Timeout: opts.Timeout}
	if opts.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	switch lib.API {
	case model.APIWebCat:
		return webcat.NewClient(lib.BaseURL, httpClient, opts.UserAgent), nil

	case model.APISRU:
		return &sruSource{client: sru.NewClient(lib.BaseURL, httpClient, opts.UserAgent)}, nil

	default:
		return nil, fmt.Errorf("unknown library API kind: %s", lib.API)
	}
}

// sruSource adapts the search-only SRU client to the full CatalogSource
// surface; account operations are not part of the SRU protocol.
type sruSource struct {
	client *sru.Client
}

func (s *sruSource) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	return s.client.Search(ctx, query)
}

func (s *sruSource) Detail(ctx context.Context, id string) (*model.Detail, error) {
	return s.client.Detail(ctx, id)
}

func (s *sruSource) AccountData(ctx context.Context, account *model.Account) (*model.AccountData, error) {
	return nil, model.ErrNotSupported
}

func (s *sruSource) Renew(ctx context.Context, account *model.Account, prolongID string) error {
	return model.ErrNotSupported
}

func (s *sruSource) CancelReservation(ctx context.Context, account *model.Account, cancelID string) error {
	return model.ErrNotSupported
}
