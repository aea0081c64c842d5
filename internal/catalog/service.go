package catalog

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/opacgo/opacapp/internal/catalog/source"
	"github.com/opacgo/opacapp/internal/model"
)

// UpdateKind tells the UI what part of the app state changed
type UpdateKind int

const (
	// UpdateSearchStarted means a search request went out
	UpdateSearchStarted UpdateKind = iota

	// UpdateSearchFinished carries a result page or a search error
	UpdateSearchFinished

	// UpdateDetailFinished carries a full record or a fetch error
	UpdateDetailFinished

	// UpdateAccountFinished carries an account snapshot or a fetch error
	UpdateAccountFinished

	// UpdateOperationFinished reports the outcome of a renew/cancel operation
	UpdateOperationFinished
)

// Update is one state change pushed to the UI callback
type Update struct {
	Kind    UpdateKind
	Result  *model.SearchResult
	Detail  *model.Detail
	Account *model.AccountData
	Err     error
}

// Service orchestrates catalog access for the UI: it owns the active backend,
// runs searches and account operations in the background, cancels superseded
// searches, and pushes results through a single update callback.
type Service struct {
	mu       sync.RWMutex
	opts     source.Options
	library  *model.Library
	backend  source.CatalogSource
	account  *model.Account
	onUpdate func(*Update)

	searchCancel context.CancelFunc
	lastResult   *model.SearchResult

	// newSource is swappable for tests
	newSource func(lib *model.Library, opts source.Options) (source.CatalogSource, error)
}

// NewService creates a catalog service with the given HTTP options.
func NewService(opts source.Options) *Service {
	return &Service{
		opts:      opts,
		newSource: source.NewClient,
	}
}

// SetUpdateCallback sets the callback function for state updates.
func (s *Service) SetUpdateCallback(callback func(*Update)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetLibrary switches the service to a different library system. Any
// in-flight search is canceled and previous results are dropped.
func (s *Service) SetLibrary(lib *model.Library) error {
	backend, err := s.newSource(lib, s.opts)
	if err != nil {
		return fmt.Errorf("failed to create backend for %s: %w", lib.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.searchCancel != nil {
		s.searchCancel()
		s.searchCancel = nil
	}
	s.library = lib
	s.backend = backend
	s.lastResult = nil
	s.account = nil
	return nil
}

// Library returns the currently selected library.
func (s *Service) Library() *model.Library {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.library
}

// SetAccount selects the account used for account operations.
func (s *Service) SetAccount(account *model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
}

// Account returns the currently selected account.
func (s *Service) Account() *model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

// SupportsAccount reports whether the selected library has account access.
func (s *Service) SupportsAccount() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.library != nil && s.library.SupportsAccount
}

// Search runs a catalog search in the background. A newer search cancels any
// older one still in flight; only the newest result reaches the callback.
func (s *Service) Search(query model.SearchQuery) {
	s.mu.Lock()
	backend := s.backend
	if backend == nil {
		s.mu.Unlock()
		s.notify(&Update{Kind: UpdateSearchFinished, Err: fmt.Errorf("no library selected")})
		return
	}
	if s.searchCancel != nil {
		s.searchCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.searchCancel = cancel
	s.mu.Unlock()

	s.notify(&Update{Kind: UpdateSearchStarted})

	go func() {
		defer cancel()
		result, err := backend.Search(ctx, query)
		if ctx.Err() == context.Canceled {
			// A newer search superseded this one
			return
		}
		if err != nil {
			log.Printf("Search failed: %v", err)
			s.notify(&Update{Kind: UpdateSearchFinished, Err: err})
			return
		}

		s.mu.Lock()
		s.lastResult = result
		s.mu.Unlock()
		s.notify(&Update{Kind: UpdateSearchFinished, Result: result})
	}()
}

// LastResult returns the most recent search result page, or nil.
func (s *Service) LastResult() *model.SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastResult
}

// Filter narrows the last result page with local fuzzy matching, ranked by
// match quality. An empty filter returns the page unchanged.
func (s *Service) Filter(text string) []*model.MediaItem {
	s.mu.RLock()
	result := s.lastResult
	s.mu.RUnlock()
	if result == nil {
		return nil
	}
	if text == "" {
		return result.Items
	}

	targets := make([]string, len(result.Items))
	for i, item := range result.Items {
		targets[i] = item.GetDisplayTitle() + " " + item.Author
	}

	ranks := fuzzy.RankFindNormalizedFold(text, targets)
	sort.Sort(ranks)

	matched := make([]*model.MediaItem, 0, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, result.Items[rank.OriginalIndex])
	}
	return matched
}

// Detail fetches the full record for a catalog item in the background.
func (s *Service) Detail(id string) {
	s.mu.RLock()
	backend := s.backend
	s.mu.RUnlock()
	if backend == nil {
		s.notify(&Update{Kind: UpdateDetailFinished, Err: fmt.Errorf("no library selected")})
		return
	}

	go func() {
		detail, err := backend.Detail(context.Background(), id)
		if err != nil {
			log.Printf("Detail fetch failed for %s: %v", id, err)
			s.notify(&Update{Kind: UpdateDetailFinished, Err: err})
			return
		}
		s.notify(&Update{Kind: UpdateDetailFinished, Detail: detail})
	}()
}

// FetchAccount loads the selected account's loans and reservations in the
// background.
func (s *Service) FetchAccount() {
	backend, account, err := s.accountBackend()
	if err != nil {
		s.notify(&Update{Kind: UpdateAccountFinished, Err: err})
		return
	}

	go func() {
		data, err := backend.AccountData(context.Background(), account)
		if err != nil {
			log.Printf("Account fetch failed: %v", err)
			s.notify(&Update{Kind: UpdateAccountFinished, Err: err})
			return
		}
		s.notify(&Update{Kind: UpdateAccountFinished, Account: data})
	}()
}

// Renew extends a loan in the background and refreshes the account snapshot
// on success.
func (s *Service) Renew(prolongID string) {
	s.runAccountOperation(func(ctx context.Context, backend source.CatalogSource, account *model.Account) error {
		return backend.Renew(ctx, account, prolongID)
	})
}

// CancelReservation cancels a reservation in the background and refreshes
// the account snapshot on success.
func (s *Service) CancelReservation(cancelID string) {
	s.runAccountOperation(func(ctx context.Context, backend source.CatalogSource, account *model.Account) error {
		return backend.CancelReservation(ctx, account, cancelID)
	})
}

func (s *Service) runAccountOperation(op func(context.Context, source.CatalogSource, *model.Account) error) {
	backend, account, err := s.accountBackend()
	if err != nil {
		s.notify(&Update{Kind: UpdateOperationFinished, Err: err})
		return
	}

	go func() {
		if err := op(context.Background(), backend, account); err != nil {
			log.Printf("Account operation failed: %v", err)
			s.notify(&Update{Kind: UpdateOperationFinished, Err: err})
			return
		}
		s.notify(&Update{Kind: UpdateOperationFinished})
		s.FetchAccount()
	}()
}

func (s *Service) accountBackend() (source.CatalogSource, *model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.backend == nil {
		return nil, nil, fmt.Errorf("no library selected")
	}
	if s.account == nil {
		return nil, nil, fmt.Errorf("no account selected")
	}
	return s.backend, s.account, nil
}

// notify calls the update callback if set
func (s *Service) notify(update *Update) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(update)
	}
}
