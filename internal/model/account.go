package model

import "time"

// Account holds the credentials for one library card
type Account struct {
	ID        string    `json:"id"` // uuid
	LibraryID string    `json:"library_id"`
	Label     string    `json:"label"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // persisted sealed, never serialized as-is
	CreatedAt time.Time `json:"created_at"`
}

// GetDisplayLabel returns label or username in order of preference
func (a *Account) GetDisplayLabel() string {
	if a.Label != "" {
		return a.Label
	}
	return a.Username
}

// LentItem is one currently borrowed item on an account
type LentItem struct {
	Title     string
	Author    string
	Deadline  time.Time
	Renewable bool
	ProlongID string // backend token used to renew this loan
}

// DaysLeft returns whole days until the return deadline, negative when overdue
func (li *LentItem) DaysLeft(now time.Time) int {
	return int(li.Deadline.Sub(now).Hours() / 24)
}

// IsOverdue reports whether the deadline has passed
func (li *LentItem) IsOverdue(now time.Time) bool {
	return now.After(li.Deadline)
}

// ReservedItem is one open reservation on an account
type ReservedItem struct {
	Title      string
	Author     string
	ReadyAt    string // branch/date text from the backend, free-form
	Cancelable bool
	CancelID   string
}

// AccountData is a snapshot of an account's loans and reservations
type AccountData struct {
	Lent        []*LentItem
	Reserved    []*ReservedItem
	PendingFees string
	ValidUntil  string
	FetchedAt   time.Time
}

// StarredItem is a catalog entry the user bookmarked locally
type StarredItem struct {
	ID        string    `json:"id"` // uuid
	LibraryID string    `json:"library_id"`
	MediaID   string    `json:"media_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	StarredAt time.Time `json:"starred_at"`
}
