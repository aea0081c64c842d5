package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/opacgo/opacapp/internal/model"
)

// ResultRow represents a compact search result row widget
type ResultRow struct {
	widget.BaseWidget

	item         *model.MediaItem
	starred      bool
	localization *Localization

	// UI components
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	statusLabel   *widget.Label

	// Action buttons
	starBtn    *widget.Button
	detailsBtn *widget.Button

	// Callbacks
	onDetails    func(id string)
	onToggleStar func(item *model.MediaItem)
}

// NewResultRow creates a new result row widget
func NewResultRow(item *model.MediaItem, localization *Localization) *ResultRow {
	if item == nil {
		item = &model.MediaItem{ID: "placeholder"}
	}

	rr := &ResultRow{
		item:         item,
		localization: localization,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromItem()
	return rr
}

// SetCallbacks sets the action callbacks
func (rr *ResultRow) SetCallbacks(
	onDetails func(id string),
	onToggleStar func(item *model.MediaItem),
) {
	rr.onDetails = onDetails
	rr.onToggleStar = onToggleStar
}

// UpdateItem updates the row with new item data
func (rr *ResultRow) UpdateItem(item *model.MediaItem, starred bool) {
	if item == nil {
		return
	}
	rr.item = item
	rr.starred = starred
	rr.updateFromItem()
	rr.Refresh()
}

// createUI creates the UI components
func (rr *ResultRow) createUI() {
	rr.titleLabel = widget.NewLabel("")
	rr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	rr.titleLabel.Alignment = fyne.TextAlignLeading

	rr.subtitleLabel = widget.NewLabel("")
	rr.subtitleLabel.Truncation = fyne.TextTruncateEllipsis
	rr.subtitleLabel.Alignment = fyne.TextAlignLeading

	rr.statusLabel = widget.NewLabel("")
	rr.statusLabel.Alignment = fyne.TextAlignTrailing

	rr.starBtn = widget.NewButton(IconStar, func() {
		if rr.onToggleStar != nil {
			rr.onToggleStar(rr.item)
		}
	})
	rr.starBtn.Importance = widget.LowImportance

	rr.detailsBtn = widget.NewButton(rr.localization.GetText(KeyDetails), func() {
		if rr.onDetails != nil {
			rr.onDetails(rr.item.ID)
		}
	})
	rr.detailsBtn.Importance = widget.MediumImportance
}

// updateFromItem updates UI components based on item state
func (rr *ResultRow) updateFromItem() {
	if rr.item == nil {
		return
	}

	rr.titleLabel.SetText(rr.item.GetDisplayTitle())
	rr.subtitleLabel.SetText(rr.item.GetSubtitle())

	// Update status label color and text
	switch rr.item.Status {
	case model.StatusAvailable:
		rr.statusLabel.Importance = widget.SuccessImportance
		rr.statusLabel.SetText(rr.item.Status.String())
	case model.StatusLent:
		rr.statusLabel.Importance = widget.DangerImportance
		rr.statusLabel.SetText(rr.item.Status.String())
	case model.StatusOrdered:
		rr.statusLabel.Importance = widget.WarningImportance
		rr.statusLabel.SetText(rr.item.Status.String())
	default:
		rr.statusLabel.Importance = widget.MediumImportance
		rr.statusLabel.SetText(DashPlaceholder)
	}

	if rr.starred {
		rr.starBtn.SetText(IconStarred)
	} else {
		rr.starBtn.SetText(IconStar)
	}
}

// CreateRenderer creates the widget renderer
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	return &resultRowRenderer{row: rr}
}

// resultRowRenderer renders the result row widget
type resultRowRenderer struct {
	row    *ResultRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *resultRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		if size.Width < RowMinWidth {
			size.Width = RowMinWidth
		}
		if size.Height < RowMinHeight {
			size.Height = RowMinHeight
		}
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *resultRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *resultRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *resultRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *resultRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *resultRowRenderer) createLayout() {
	rr := r.row

	// Left side: title over author/year
	leftSide := container.NewVBox(rr.titleLabel, rr.subtitleLabel)

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Right cluster: status near the buttons, buttons flush to the edge
	actionRow := container.NewHBox(rr.starBtn, rr.detailsBtn)
	rightSide := fixedWidth(StatusLabelWidth, rr.statusLabel)
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, rightSide)

	separator := widget.NewSeparator()

	mainContent := container.NewBorder(nil, nil, nil, rightCluster, leftSide)

	r.layout = container.NewVBox(
		mainContent,
		separator,
	)

	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}
