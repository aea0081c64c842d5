package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/opacgo/opacapp/internal/catalog"
	"github.com/opacgo/opacapp/internal/model"
	"github.com/opacgo/opacapp/internal/storage"
)

// StarredPage lists locally bookmarked catalog items of the selected
// library. Entries survive offline; tapping one fetches its current record
// from the catalog.
type StarredPage struct {
	localization *Localization
	store        *storage.Store
	catalogSvc   catalog.Browser

	items   []*model.StarredItem
	list    *widget.List
	content *fyne.Container
}

// NewStarredPage creates the starred items page
func NewStarredPage(localization *Localization, store *storage.Store, svc catalog.Browser) *StarredPage {
	p := &StarredPage{
		localization: localization,
		store:        store,
		catalogSvc:   svc,
	}

	p.list = widget.NewList(
		func() int { return len(p.items) },
		func() fyne.CanvasObject { return p.createRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { p.updateRow(id, obj) },
	)
	p.content = container.NewBorder(nil, nil, nil, nil, p.list)
	p.Reload()
	return p
}

// Container returns the page content
func (p *StarredPage) Container() fyne.CanvasObject {
	return p.content
}

// Reload reads the starred items of the selected library from the store
func (p *StarredPage) Reload() {
	lib := p.catalogSvc.Library()
	if lib == nil {
		p.items = nil
		p.list.Refresh()
		return
	}

	items, err := p.store.ListStarred(lib.ID)
	if err != nil {
		log.Printf("Failed to list starred items: %v", err)
		return
	}
	p.items = items
	p.list.Refresh()
}

func (p *StarredPage) createRow() fyne.CanvasObject {
	title := widget.NewLabel("")
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis
	author := widget.NewLabel("")
	author.Truncation = fyne.TextTruncateEllipsis

	unstarBtn := widget.NewButton(IconStarred, nil)
	unstarBtn.Importance = widget.LowImportance
	detailsBtn := widget.NewButton(p.localization.GetText(KeyDetails), nil)

	return container.NewBorder(nil, nil, nil,
		container.NewHBox(unstarBtn, detailsBtn),
		container.NewVBox(title, author),
	)
}

func (p *StarredPage) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(p.items) {
		return
	}
	item := p.items[id]

	border := obj.(*fyne.Container)
	labels := border.Objects[0].(*fyne.Container)
	buttons := border.Objects[1].(*fyne.Container)

	labels.Objects[0].(*widget.Label).SetText(item.Title)
	labels.Objects[1].(*widget.Label).SetText(item.Author)

	unstarBtn := buttons.Objects[0].(*widget.Button)
	unstarBtn.OnTapped = func() {
		if err := p.store.Unstar(item.LibraryID, item.MediaID); err != nil {
			log.Printf("Failed to unstar %s: %v", item.MediaID, err)
			return
		}
		p.Reload()
	}

	detailsBtn := buttons.Objects[1].(*widget.Button)
	detailsBtn.OnTapped = func() {
		p.catalogSvc.Detail(item.MediaID)
	}
}
