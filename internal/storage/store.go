package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/opacgo/opacapp/internal/model"
)

// Bucket names
var (
	bucketAccounts = []byte("accounts")
	bucketStarred  = []byte("starred")
)

// Store persists accounts and starred items in a local BoltDB file. Account
// passwords are sealed with a device secret before they touch disk.
type Store struct {
	db  *bolt.DB
	key [32]byte
}

// accountRecord wraps an Account for persistence with its sealed password.
type accountRecord struct {
	model.Account
	SealedPassword []byte `json:"sealed_password,omitempty"`
}

// Open opens (or creates) the store under dir using the given device secret.
func Open(dir string, deviceSecret []byte) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "opacapp.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketAccounts, bucketStarred} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, key: deriveKey(deviceSecret)}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// === Accounts ===

// SaveAccount inserts or updates an account.
func (s *Store) SaveAccount(account *model.Account) error {
	rec := accountRecord{Account: *account}
	if account.Password != "" {
		sealed, err := seal([]byte(account.Password), &s.key)
		if err != nil {
			return fmt.Errorf("failed to seal password: %w", err)
		}
		rec.SealedPassword = sealed
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAccounts).Put([]byte(account.ID), data)
	})
}

// GetAccount returns the account with the given ID, with its password opened.
func (s *Store) GetAccount(id string) (*model.Account, bool) {
	var raw []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketAccounts).Get([]byte(id)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if raw == nil {
		return nil, false
	}

	account, err := s.decodeAccount(raw)
	if err != nil {
		return nil, false
	}
	return account, true
}

// ListAccounts returns all accounts ordered by creation time.
func (s *Store) ListAccounts() ([]*model.Account, error) {
	var accounts []*model.Account
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAccounts).ForEach(func(_, v []byte) error {
			account, err := s.decodeAccount(v)
			if err != nil {
				return err
			}
			accounts = append(accounts, account)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	return accounts, nil
}

// DeleteAccount removes the account with the given ID.
func (s *Store) DeleteAccount(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAccounts).Delete([]byte(id))
	})
}

func (s *Store) decodeAccount(data []byte) (*model.Account, error) {
	var rec accountRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	account := rec.Account
	if len(rec.SealedPassword) > 0 {
		plaintext, err := open(rec.SealedPassword, &s.key)
		if err != nil {
			return nil, err
		}
		account.Password = string(plaintext)
	}
	return &account, nil
}

// === Starred items ===

// starKey builds the bucket key for a starred item.
func starKey(libraryID, mediaID string) []byte {
	return []byte(libraryID + "/" + mediaID)
}

// Star bookmarks a catalog entry. Starring the same entry twice replaces the
// stored record, keeping one star per item.
func (s *Store) Star(item *model.StarredItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketStarred).Put(starKey(item.LibraryID, item.MediaID), data)
	})
}

// Unstar removes a bookmark.
func (s *Store) Unstar(libraryID, mediaID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketStarred).Delete(starKey(libraryID, mediaID))
	})
}

// IsStarred reports whether a catalog entry is bookmarked.
func (s *Store) IsStarred(libraryID, mediaID string) bool {
	var starred bool
	s.db.View(func(tx *bolt.Tx) error {
		starred = tx.Bucket(bucketStarred).Get(starKey(libraryID, mediaID)) != nil
		return nil
	})
	return starred
}

// ListStarred returns bookmarks for one library, newest first.
func (s *Store) ListStarred(libraryID string) ([]*model.StarredItem, error) {
	var items []*model.StarredItem
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketStarred).ForEach(func(_, v []byte) error {
			var item model.StarredItem
			if err := json.Unmarshal(v, &item); err != nil {
				return err
			}
			if item.LibraryID == libraryID {
				items = append(items, &item)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].StarredAt.After(items[j].StarredAt)
	})
	return items, nil
}
