package webcat

import (
	"time"

	"github.com/opacgo/opacapp/internal/model"
)

// deadlineFormat is the date layout the web catalog uses for loans
const deadlineFormat = "2006-01-02"

// mapStatus converts the catalog's status strings to the domain enum
func mapStatus(status string) model.MediaStatus {
	switch status {
	case "available":
		return model.StatusAvailable
	case "lent":
		return model.StatusLent
	case "ordered":
		return model.StatusOrdered
	default:
		return model.StatusUnknown
	}
}

// mapMediaType converts the catalog's type strings to the domain enum
func mapMediaType(t string) model.MediaType {
	switch t {
	case "book":
		return model.MediaBook
	case "ebook":
		return model.MediaEBook
	case "audio", "cd":
		return model.MediaAudio
	case "movie", "dvd":
		return model.MediaMovie
	default:
		return model.MediaUnknown
	}
}

// mapRecord converts one record DTO to a domain media item
func mapRecord(r recordDTO) *model.MediaItem {
	return &model.MediaItem{
		ID:       r.ID,
		Title:    r.Title,
		Author:   r.Author,
		Year:     r.Year,
		Type:     mapMediaType(r.Type),
		Status:   mapStatus(r.Status),
		CoverURL: r.CoverURL,
		Branch:   r.Branch,
		ISBN:     r.ISBN,
	}
}

// mapSearch converts a search reply to a domain result page
func mapSearch(resp *searchResponse) *model.SearchResult {
	items := make([]*model.MediaItem, 0, len(resp.Records))
	for _, r := range resp.Records {
		items = append(items, mapRecord(r))
	}
	return &model.SearchResult{
		Items:      items,
		Page:       resp.Page,
		PageCount:  resp.Pages,
		TotalCount: resp.Total,
	}
}

// mapDetail converts a detail reply to a full domain record
func mapDetail(resp *detailResponse) *model.Detail {
	copies := make([]model.Copy, 0, len(resp.Copies))
	for _, c := range resp.Copies {
		copies = append(copies, model.Copy{
			Branch:     c.Branch,
			ShelfMark:  c.ShelfMark,
			Status:     mapStatus(c.Status),
			ReturnDate: c.ReturnDate,
		})
	}
	return &model.Detail{
		Item:        *mapRecord(resp.recordDTO),
		Description: resp.Description,
		Copies:      copies,
		Reservable:  resp.Reservable,
	}
}

// mapAccount converts an account reply to a domain snapshot
func mapAccount(resp *accountResponse, now time.Time) *model.AccountData {
	lent := make([]*model.LentItem, 0, len(resp.Lent))
	for _, l := range resp.Lent {
		deadline, err := time.Parse(deadlineFormat, l.Deadline)
		if err != nil {
			deadline = time.Time{}
		}
		lent = append(lent, &model.LentItem{
			Title:     l.Title,
			Author:    l.Author,
			Deadline:  deadline,
			Renewable: l.Renewable,
			ProlongID: l.ProlongID,
		})
	}

	reserved := make([]*model.ReservedItem, 0, len(resp.Reserved))
	for _, r := range resp.Reserved {
		reserved = append(reserved, &model.ReservedItem{
			Title:      r.Title,
			Author:     r.Author,
			ReadyAt:    r.ReadyAt,
			Cancelable: r.Cancelable,
			CancelID:   r.CancelID,
		})
	}

	return &model.AccountData{
		Lent:        lent,
		Reserved:    reserved,
		PendingFees: resp.PendingFees,
		ValidUntil:  resp.ValidUntil,
		FetchedAt:   now,
	}
}
