package storage

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/opacgo/opacapp/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), []byte("test-device-secret"))
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAccountRoundTrip(t *testing.T) {
	store := newTestStore(t)

	account := &model.Account{
		ID:        "acc-1",
		LibraryID: "de-berlin-voebb",
		Label:     "My Card",
		Username:  "12345678",
		Password:  "s3cret",
		CreatedAt: time.Now(),
	}
	if err := store.SaveAccount(account); err != nil {
		t.Fatalf("SaveAccount() returned error: %v", err)
	}

	loaded, ok := store.GetAccount("acc-1")
	if !ok {
		t.Fatal("GetAccount() should find the saved account")
	}
	if loaded.Username != "12345678" {
		t.Errorf("Username = %s, expected 12345678", loaded.Username)
	}
	if loaded.Password != "s3cret" {
		t.Errorf("Password should round-trip through sealing, got '%s'", loaded.Password)
	}
}

func TestPasswordNotStoredInPlaintext(t *testing.T) {
	store := newTestStore(t)

	account := &model.Account{
		ID:        "acc-1",
		LibraryID: "de-berlin-voebb",
		Username:  "12345678",
		Password:  "hunter2-plaintext-marker",
		CreatedAt: time.Now(),
	}
	if err := store.SaveAccount(account); err != nil {
		t.Fatalf("SaveAccount() returned error: %v", err)
	}

	var raw []byte
	store.db.View(func(tx *bolt.Tx) error {
		raw = append([]byte(nil), tx.Bucket(bucketAccounts).Get([]byte("acc-1"))...)
		return nil
	})
	if bytes.Contains(raw, []byte("hunter2-plaintext-marker")) {
		t.Error("Stored record must not contain the plaintext password")
	}

	var rec map[string]any
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("Stored record should be JSON: %v", err)
	}
	if _, exists := rec["sealed_password"]; !exists {
		t.Error("Stored record should carry a sealed password")
	}
}

func TestListAccounts_OrderedByCreation(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"newer", "oldest", "middle"} {
		offsets := map[string]int{"oldest": 0, "middle": 1, "newer": 2}
		account := &model.Account{
			ID:        id,
			LibraryID: "lib",
			Username:  "u",
			CreatedAt: base.AddDate(0, 0, offsets[id]),
		}
		if err := store.SaveAccount(account); err != nil {
			t.Fatalf("SaveAccount(%d) returned error: %v", i, err)
		}
	}

	accounts, err := store.ListAccounts()
	if err != nil {
		t.Fatalf("ListAccounts() returned error: %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("Expected 3 accounts, got %d", len(accounts))
	}
	expected := []string{"oldest", "middle", "newer"}
	for i, id := range expected {
		if accounts[i].ID != id {
			t.Errorf("accounts[%d].ID = %s, expected %s", i, accounts[i].ID, id)
		}
	}
}

func TestDeleteAccount(t *testing.T) {
	store := newTestStore(t)

	account := &model.Account{ID: "acc-1", LibraryID: "lib", Username: "u", CreatedAt: time.Now()}
	if err := store.SaveAccount(account); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteAccount("acc-1"); err != nil {
		t.Fatalf("DeleteAccount() returned error: %v", err)
	}
	if _, ok := store.GetAccount("acc-1"); ok {
		t.Error("Deleted account should not be found")
	}
}

func TestStarredItems(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []*model.StarredItem{
		{ID: "s1", LibraryID: "lib-a", MediaID: "m1", Title: "First", StarredAt: base},
		{ID: "s2", LibraryID: "lib-a", MediaID: "m2", Title: "Second", StarredAt: base.AddDate(0, 0, 1)},
		{ID: "s3", LibraryID: "lib-b", MediaID: "m1", Title: "Other library", StarredAt: base},
	}
	for _, item := range items {
		if err := store.Star(item); err != nil {
			t.Fatalf("Star() returned error: %v", err)
		}
	}

	if !store.IsStarred("lib-a", "m1") {
		t.Error("m1 in lib-a should be starred")
	}
	if store.IsStarred("lib-a", "m9") {
		t.Error("m9 should not be starred")
	}

	starred, err := store.ListStarred("lib-a")
	if err != nil {
		t.Fatalf("ListStarred() returned error: %v", err)
	}
	if len(starred) != 2 {
		t.Fatalf("Expected 2 starred items for lib-a, got %d", len(starred))
	}
	if starred[0].Title != "Second" {
		t.Errorf("Newest star should come first, got '%s'", starred[0].Title)
	}

	if err := store.Unstar("lib-a", "m1"); err != nil {
		t.Fatalf("Unstar() returned error: %v", err)
	}
	if store.IsStarred("lib-a", "m1") {
		t.Error("Unstarred item should no longer be starred")
	}
}

func TestStar_ReplacesDuplicate(t *testing.T) {
	store := newTestStore(t)

	first := &model.StarredItem{ID: "s1", LibraryID: "lib", MediaID: "m1", Title: "Old", StarredAt: time.Now()}
	second := &model.StarredItem{ID: "s2", LibraryID: "lib", MediaID: "m1", Title: "New", StarredAt: time.Now()}
	if err := store.Star(first); err != nil {
		t.Fatal(err)
	}
	if err := store.Star(second); err != nil {
		t.Fatal(err)
	}

	starred, err := store.ListStarred("lib")
	if err != nil {
		t.Fatal(err)
	}
	if len(starred) != 1 {
		t.Fatalf("Expected a single star per item, got %d", len(starred))
	}
	if starred[0].Title != "New" {
		t.Errorf("Duplicate star should replace the record, got '%s'", starred[0].Title)
	}
}

func TestSealOpen_RejectsTamperedData(t *testing.T) {
	key := deriveKey([]byte("secret"))

	sealed, err := seal([]byte("payload"), &key)
	if err != nil {
		t.Fatalf("seal() returned error: %v", err)
	}

	plaintext, err := open(sealed, &key)
	if err != nil {
		t.Fatalf("open() returned error: %v", err)
	}
	if string(plaintext) != "payload" {
		t.Errorf("Round trip = '%s', expected 'payload'", plaintext)
	}

	sealed[len(sealed)-1] ^= 0xff
	if _, err := open(sealed, &key); err == nil {
		t.Error("open() should reject tampered data")
	}

	if _, err := open([]byte("short"), &key); err == nil {
		t.Error("open() should reject truncated data")
	}

	otherKey := deriveKey([]byte("different-secret"))
	fresh, _ := seal([]byte("payload"), &key)
	if _, err := open(fresh, &otherKey); err == nil {
		t.Error("open() should reject the wrong key")
	}
}
