package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/opacgo/opacapp/internal/libraries"
	"github.com/opacgo/opacapp/internal/model"
)

// LibraryPicker is a searchable dialog over the bundled library registry.
// Typing narrows the list with fuzzy matching on name and city.
type LibraryPicker struct {
	registry *libraries.Registry
	shown    []*model.Library
	list     *widget.List
	dialog   dialog.Dialog
	onPick   func(*model.Library)
}

// ShowLibraryPicker opens the library selection dialog
func ShowLibraryPicker(window fyne.Window, registry *libraries.Registry, localization *Localization, onPick func(*model.Library)) {
	p := &LibraryPicker{
		registry: registry,
		shown:    registry.All(),
		onPick:   onPick,
	}

	filterEntry := widget.NewEntry()
	filterEntry.SetPlaceHolder(localization.GetText(KeySearch))

	p.list = widget.NewList(
		func() int { return len(p.shown) },
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			name.TextStyle = fyne.TextStyle{Bold: true}
			name.Truncation = fyne.TextTruncateEllipsis
			place := widget.NewLabel("")
			place.Truncation = fyne.TextTruncateEllipsis
			return container.NewVBox(name, place)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(p.shown) {
				return
			}
			lib := p.shown[id]
			box := obj.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(lib.Name)
			box.Objects[1].(*widget.Label).SetText(lib.City + MiddleDotSeparator + lib.Country)
		},
	)

	p.list.OnSelected = func(id widget.ListItemID) {
		if id >= len(p.shown) {
			return
		}
		lib := p.shown[id]
		p.dialog.Hide()
		if p.onPick != nil {
			p.onPick(lib)
		}
	}

	filterEntry.OnChanged = func(text string) {
		if text == "" {
			p.shown = p.registry.All()
		} else {
			p.shown = p.registry.Filter(text)
		}
		p.list.UnselectAll()
		p.list.Refresh()
	}

	content := container.NewBorder(filterEntry, nil, nil, nil, p.list)
	p.dialog = dialog.NewCustom(localization.GetText(KeyChooseLibrary), localization.GetText(KeyCancel), content, window)
	p.dialog.Resize(fyne.NewSize(PickerDialogWidth, PickerDialogHeight))
	p.dialog.Show()
}
