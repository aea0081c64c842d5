package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/opacgo/opacapp/internal/catalog/source"
	"github.com/opacgo/opacapp/internal/model"
)

// stubBackend answers searches from canned data
type stubBackend struct {
	mu          sync.Mutex
	searchDelay time.Duration
	searchErr   error
	result      *model.SearchResult
	detail      *model.Detail
	accountData *model.AccountData
	renewed     []string
	canceled    []string
}

func (b *stubBackend) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	if b.searchDelay > 0 {
		select {
		case <-time.After(b.searchDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if b.searchErr != nil {
		return nil, b.searchErr
	}
	return b.result, nil
}

func (b *stubBackend) Detail(ctx context.Context, id string) (*model.Detail, error) {
	if b.detail == nil {
		return nil, model.ErrNotFound
	}
	return b.detail, nil
}

func (b *stubBackend) AccountData(ctx context.Context, account *model.Account) (*model.AccountData, error) {
	if b.accountData == nil {
		return nil, model.ErrAuthFailed
	}
	return b.accountData, nil
}

func (b *stubBackend) Renew(ctx context.Context, account *model.Account, prolongID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.renewed = append(b.renewed, prolongID)
	return nil
}

func (b *stubBackend) CancelReservation(ctx context.Context, account *model.Account, cancelID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.canceled = append(b.canceled, cancelID)
	return nil
}

// collector gathers updates from the service callback
type collector struct {
	mu      sync.Mutex
	updates []*Update
}

func (c *collector) callback(u *Update) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, u)
}

func (c *collector) waitFor(t *testing.T, kind UpdateKind) *Update {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		for _, u := range c.updates {
			if u.Kind == kind {
				c.mu.Unlock()
				return u
			}
		}
		c.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for update kind %d", kind)
	return nil
}

func newTestService(backend *stubBackend) (*Service, *collector) {
	service := NewService(source.Options{})
	service.newSource = func(lib *model.Library, opts source.Options) (source.CatalogSource, error) {
		return backend, nil
	}

	c := &collector{}
	service.SetUpdateCallback(c.callback)
	service.SetLibrary(&model.Library{ID: "test-lib", BaseURL: "https://x", SupportsAccount: true})
	return service, c
}

func testResult() *model.SearchResult {
	return &model.SearchResult{
		Items: []*model.MediaItem{
			{ID: "1", Title: "Der Prozess", Author: "Kafka, Franz"},
			{ID: "2", Title: "Die Verwandlung", Author: "Kafka, Franz"},
			{ID: "3", Title: "Effi Briest", Author: "Fontane, Theodor"},
		},
		Page:       1,
		PageCount:  1,
		TotalCount: 3,
	}
}

func TestSearch_DeliversResult(t *testing.T) {
	backend := &stubBackend{result: testResult()}
	service, c := newTestService(backend)

	service.Search(model.NewFreeQuery("kafka", 1))

	update := c.waitFor(t, UpdateSearchFinished)
	if update.Err != nil {
		t.Fatalf("Search update carried error: %v", update.Err)
	}
	if len(update.Result.Items) != 3 {
		t.Errorf("Expected 3 items, got %d", len(update.Result.Items))
	}
	if service.LastResult() != update.Result {
		t.Error("LastResult should return the delivered result")
	}
}

func TestSearch_ErrorReachesCallback(t *testing.T) {
	backend := &stubBackend{searchErr: errors.New("boom")}
	service, c := newTestService(backend)

	service.Search(model.NewFreeQuery("kafka", 1))

	update := c.waitFor(t, UpdateSearchFinished)
	if update.Err == nil {
		t.Error("Expected error in search update")
	}
	if service.LastResult() != nil {
		t.Error("Failed search should not set LastResult")
	}
}

func TestSearch_WithoutLibrary(t *testing.T) {
	service := NewService(source.Options{})
	c := &collector{}
	service.SetUpdateCallback(c.callback)

	service.Search(model.NewFreeQuery("kafka", 1))

	update := c.waitFor(t, UpdateSearchFinished)
	if update.Err == nil {
		t.Error("Search without a library should report an error")
	}
}

func TestFilter(t *testing.T) {
	backend := &stubBackend{result: testResult()}
	service, c := newTestService(backend)
	service.Search(model.NewFreeQuery("", 1))
	c.waitFor(t, UpdateSearchFinished)

	matched := service.Filter("kafka")
	if len(matched) != 2 {
		t.Fatalf("Expected 2 Kafka matches, got %d", len(matched))
	}
	for _, item := range matched {
		if item.Author != "Kafka, Franz" {
			t.Errorf("Unexpected match: %+v", item)
		}
	}

	if got := service.Filter(""); len(got) != 3 {
		t.Errorf("Empty filter should return all items, got %d", len(got))
	}
}

func TestDetail(t *testing.T) {
	backend := &stubBackend{
		detail: &model.Detail{Item: model.MediaItem{ID: "1", Title: "Der Prozess"}},
	}
	service, c := newTestService(backend)

	service.Detail("1")

	update := c.waitFor(t, UpdateDetailFinished)
	if update.Err != nil {
		t.Fatalf("Detail update carried error: %v", update.Err)
	}
	if update.Detail.Item.Title != "Der Prozess" {
		t.Errorf("Detail title = %s", update.Detail.Item.Title)
	}
}

func TestFetchAccount(t *testing.T) {
	backend := &stubBackend{
		accountData: &model.AccountData{
			Lent: []*model.LentItem{{Title: "Der Prozess"}},
		},
	}
	service, c := newTestService(backend)

	// Without an account the operation fails fast
	service.FetchAccount()
	if update := c.waitFor(t, UpdateAccountFinished); update.Err == nil {
		t.Error("FetchAccount without account should report an error")
	}

	service.SetAccount(&model.Account{ID: "a1", Username: "u", Password: "p"})
	service.FetchAccount()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		var ok bool
		for _, u := range c.updates {
			if u.Kind == UpdateAccountFinished && u.Err == nil {
				ok = true
			}
		}
		c.mu.Unlock()
		if ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Timed out waiting for successful account update")
}

func TestRenew_RefreshesAccount(t *testing.T) {
	backend := &stubBackend{
		accountData: &model.AccountData{},
	}
	service, c := newTestService(backend)
	service.SetAccount(&model.Account{ID: "a1", Username: "u", Password: "p"})

	service.Renew("p1")

	if update := c.waitFor(t, UpdateOperationFinished); update.Err != nil {
		t.Fatalf("Renew update carried error: %v", update.Err)
	}
	c.waitFor(t, UpdateAccountFinished)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.renewed) != 1 || backend.renewed[0] != "p1" {
		t.Errorf("Renewed IDs = %v, expected [p1]", backend.renewed)
	}
}

func TestSetLibrary_DropsState(t *testing.T) {
	backend := &stubBackend{result: testResult()}
	service, c := newTestService(backend)
	service.SetAccount(&model.Account{ID: "a1"})
	service.Search(model.NewFreeQuery("kafka", 1))
	c.waitFor(t, UpdateSearchFinished)

	err := service.SetLibrary(&model.Library{ID: "other", BaseURL: "https://y"})
	if err != nil {
		t.Fatalf("SetLibrary() returned error: %v", err)
	}

	if service.LastResult() != nil {
		t.Error("Switching libraries should drop previous results")
	}
	if service.Account() != nil {
		t.Error("Switching libraries should drop the selected account")
	}
}

func TestSupportsAccount(t *testing.T) {
	backend := &stubBackend{}
	service, _ := newTestService(backend)

	if !service.SupportsAccount() {
		t.Error("Library with account support should report true")
	}

	service.SetLibrary(&model.Library{ID: "sru-lib", BaseURL: "https://y", SupportsAccount: false})
	if service.SupportsAccount() {
		t.Error("Library without account support should report false")
	}
}
