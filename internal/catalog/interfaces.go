package catalog

import (
	"github.com/opacgo/opacapp/internal/model"
)

// Browser defines the interface for the catalog service.
type Browser interface {
	SetUpdateCallback(func(*Update))
	SetLibrary(lib *model.Library) error
	Library() *model.Library
	SetAccount(account *model.Account)
	Account() *model.Account
	SupportsAccount() bool

	Search(query model.SearchQuery)
	LastResult() *model.SearchResult
	Filter(text string) []*model.MediaItem
	Detail(id string)

	FetchAccount()
	Renew(prolongID string)
	CancelReservation(cancelID string)
}
