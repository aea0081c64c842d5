package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/opacgo/opacapp/internal/catalog"
	"github.com/opacgo/opacapp/internal/config"
	"github.com/opacgo/opacapp/internal/libraries"
	"github.com/opacgo/opacapp/internal/model"
	"github.com/opacgo/opacapp/internal/motion"
	"github.com/opacgo/opacapp/internal/storage"
)

// Page names for drawer navigation
const (
	PageSearch  = "search"
	PageAccount = "account"
	PageStarred = "starred"
	PageInfo    = "info"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	registry     *libraries.Registry
	store        *storage.Store
	catalogSvc   catalog.Browser
	mobile       *MobileUI

	// Search page
	searchEntry  *widget.Entry
	searchBtn    *widget.Button
	filterEntry  *widget.Entry
	resultList   *widget.List
	resultStatus *widget.Label
	prevBtn      *widget.Button
	nextBtn      *widget.Button
	pageLabel    *widget.Label
	shown        []*model.MediaItem
	lastQuery    string
	page         int

	// Navigation
	drawer      *Drawer
	contentArea *fyne.Container
	currentPage string
	titleLabel  *widget.Label
	searchPage  fyne.CanvasObject

	// Pages
	accountPage *AccountPage
	starredPage *StarredPage
	infoPage    *InfoPage

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, registry *libraries.Registry, store *storage.Store, svc catalog.Browser) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		registry:     registry,
		store:        store,
		catalogSvc:   svc,
		mobile:       NewMobileUI(app),
		currentPage:  PageSearch,
	}

	// Restore the last selected library and account
	if id := settings.GetSelectedLibrary(); id != "" {
		if lib, ok := registry.Get(id); ok {
			if err := svc.SetLibrary(lib); err != nil {
				log.Printf("Failed to restore library %s: %v", id, err)
			}
		}
	}
	if id := settings.GetActiveAccount(); id != "" {
		if account, ok := store.GetAccount(id); ok {
			svc.SetAccount(account)
		}
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Route catalog state changes into the UI
	ui.catalogSvc.SetUpdateCallback(ui.onCatalogUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Title reflecting the selected library
	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ui.refreshTitle()

	// Drawer toggle
	menuBtn := widget.NewButton(IconMenu, func() {
		ui.drawer.Toggle()
	})
	menuBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Logo next to the menu button, text-only fallback when missing
	leading := container.NewHBox(menuBtn, ui.titleLabel)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(24, 24))
		logoImage.FillMode = canvas.ImageFillContain
		leading = container.NewHBox(menuBtn, logoImage, ui.titleLabel)
	}

	topBar := container.NewBorder(nil, nil, leading, settingsBtn)

	// Notification panel under the top bar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topBar, ui.notificationContainer)

	// Build pages
	ui.searchPage = ui.buildSearchPage()
	ui.accountPage = NewAccountPage(ui.window, ui.localization, ui.store, ui.catalogSvc, ui.onAccountChanged)
	ui.starredPage = NewStarredPage(ui.localization, ui.store, ui.catalogSvc)
	ui.infoPage = NewInfoPage(ui.window, ui.settings, ui.localization)
	ui.infoPage.SetLibrary(ui.catalogSvc.Library())

	ui.contentArea = container.NewStack(ui.searchPage)

	// Drawer with navigation entries, animated by the interruptible slide
	tracker := motion.NewTracker(motion.NewFyneDriver())
	tracker.SetDuration(DrawerSlideDuration)
	ui.drawer = NewDrawer(ui.buildDrawerPanel(), tracker)

	body := container.NewBorder(topCombined, nil, nil, nil, ui.contentArea)

	// Edge swipes toggle the drawer, even while a slide is in flight
	swipeable := NewSwipeableWidget(body, func(g GestureType) {
		switch g {
		case GestureSwipeRight:
			ui.drawer.Open()
		case GestureSwipeLeft:
			ui.drawer.Close()
		}
	})

	content := container.NewStack(swipeable, ui.drawer.Overlay())
	ui.window.SetContent(content)
	ui.drawer.SetSize(ui.window.Canvas().Size())

	log.Printf("UI setup completed")
}

// buildDrawerPanel creates the navigation drawer content
func (ui *RootUI) buildDrawerPanel() fyne.CanvasObject {
	header := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	header.TextStyle = fyne.TextStyle{Bold: true}

	navButton := func(icon, key, page string) *widget.Button {
		btn := widget.NewButton(icon+"  "+ui.localization.GetText(key), func() {
			ui.showPage(page)
			ui.drawer.Close()
		})
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		return btn
	}

	librariesBtn := widget.NewButton(IconBook+"  "+ui.localization.GetText(KeyLibraries), func() {
		ui.drawer.Close()
		ui.onChooseLibrary()
	})
	librariesBtn.Alignment = widget.ButtonAlignLeading
	librariesBtn.Importance = widget.LowImportance

	panel := container.NewVBox(
		header,
		widget.NewSeparator(),
		navButton(IconSearch, KeySearch, PageSearch),
		navButton(IconAccount, KeyAccount, PageAccount),
		navButton(IconStarred, KeyStarred, PageStarred),
		navButton(IconInfo, KeyLibraryInfo, PageInfo),
		widget.NewSeparator(),
		librariesBtn,
	)

	// Opaque background so list content does not bleed through
	bg := canvas.NewRectangle(NewCompactTheme().Color(theme.ColorNameBackground, fyne.CurrentApp().Settings().ThemeVariant()))
	return container.NewStack(bg, panel)
}

// buildSearchPage creates the search page layout
func (ui *RootUI) buildSearchPage() fyne.CanvasObject {
	ui.searchEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeyEnterSearch))
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance

	searchRow := container.NewBorder(nil, nil, nil, ui.searchBtn, ui.searchEntry)

	ui.filterEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeyFilterResults))
	ui.filterEntry.OnChanged = ui.onFilterChanged

	ui.resultStatus = widget.NewLabel("")

	ui.resultList = widget.NewList(
		func() int { return len(ui.shown) },
		func() fyne.CanvasObject { return ui.createResultItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateResultItem(id, obj) },
	)

	// Pager
	ui.prevBtn = widget.NewButton(ui.localization.GetText(KeyPrevPage), func() { ui.gotoPage(ui.page - 1) })
	ui.nextBtn = widget.NewButton(ui.localization.GetText(KeyNextPage), func() { ui.gotoPage(ui.page + 1) })
	ui.pageLabel = widget.NewLabel("")
	ui.prevBtn.Disable()
	ui.nextBtn.Disable()
	pager := container.NewHBox(ui.prevBtn, ui.pageLabel, ui.nextBtn)

	top := container.NewVBox(searchRow, ui.filterEntry, ui.resultStatus)
	bottom := container.NewCenter(pager)

	return container.NewBorder(top, bottom, nil, nil, ui.resultList)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterSearch))
	ui.filterEntry.SetPlaceHolder(ui.localization.GetText(KeyFilterResults))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.prevBtn.SetText(ui.localization.GetText(KeyPrevPage))
	ui.nextBtn.SetText(ui.localization.GetText(KeyNextPage))
	ui.resultList.Refresh()
}

// refreshTitle shows the selected library in the top bar
func (ui *RootUI) refreshTitle() {
	if lib := ui.catalogSvc.Library(); lib != nil {
		ui.titleLabel.SetText(lib.DisplayName())
	} else {
		ui.titleLabel.SetText(ui.localization.GetText(KeyNoLibrarySelected))
	}
}

// showPage switches the visible content page
func (ui *RootUI) showPage(page string) {
	ui.currentPage = page

	var obj fyne.CanvasObject
	switch page {
	case PageAccount:
		ui.accountPage.Rebuild()
		obj = ui.accountPage.Container()
	case PageStarred:
		ui.starredPage.Reload()
		obj = ui.starredPage.Container()
	case PageInfo:
		ui.infoPage.Reload()
		obj = ui.infoPage.Container()
	default:
		obj = ui.searchPage
	}

	ui.contentArea.Objects = []fyne.CanvasObject{obj}
	ui.contentArea.Refresh()
}

// onChooseLibrary opens the picker and switches the catalog backend
func (ui *RootUI) onChooseLibrary() {
	ShowLibraryPicker(ui.window, ui.registry, ui.localization, func(lib *model.Library) {
		if err := ui.catalogSvc.SetLibrary(lib); err != nil {
			log.Printf("Failed to switch library to %s: %v", lib.ID, err)
			dialog.ShowError(err, ui.window)
			return
		}
		ui.settings.SetSelectedLibrary(lib.ID)
		ui.settings.SetActiveAccount("")
		ui.catalogSvc.SetAccount(nil)

		ui.shown = nil
		ui.page = 0
		ui.resultStatus.SetText("")
		ui.pageLabel.SetText("")
		ui.prevBtn.Disable()
		ui.nextBtn.Disable()
		ui.resultList.Refresh()

		ui.refreshTitle()
		ui.infoPage.SetLibrary(lib)
		ui.showPage(PageSearch)

		log.Printf("Switched library to %s (%s)", lib.ID, lib.API)
	})
}

// onSearchClick handles the search button click
func (ui *RootUI) onSearchClick() {
	text := strings.TrimSpace(ui.searchEntry.Text)
	if text == "" {
		return
	}
	if ui.catalogSvc.Library() == nil {
		ui.showNotification(ui.localization.GetText(KeyNoLibrarySelected), false)
		ui.onChooseLibrary()
		return
	}

	ui.lastQuery = text
	ui.page = 1
	log.Printf("Searching for %q", text)
	query := model.NewFreeQuery(text, ui.page)
	query.PerPage = ui.settings.GetResultsPerPage()
	ui.catalogSvc.Search(query)
}

// gotoPage requests another page of the current search
func (ui *RootUI) gotoPage(page int) {
	if ui.lastQuery == "" || page < 1 {
		return
	}
	ui.page = page
	query := model.NewFreeQuery(ui.lastQuery, page)
	query.PerPage = ui.settings.GetResultsPerPage()
	ui.catalogSvc.Search(query)
}

// onFilterChanged narrows the displayed page locally
func (ui *RootUI) onFilterChanged(text string) {
	ui.shown = ui.catalogSvc.Filter(strings.TrimSpace(text))
	ui.resultList.Refresh()
}

// createResultItem creates a new result row widget
func (ui *RootUI) createResultItem() fyne.CanvasObject {
	row := NewResultRow(&model.MediaItem{ID: "placeholder"}, ui.localization)
	row.SetCallbacks(ui.onShowDetail, ui.onToggleStar)
	return row
}

// updateResultItem updates a result row with current data
func (ui *RootUI) updateResultItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.shown) {
		return
	}
	mediaItem := ui.shown[id]
	if mediaItem == nil {
		return
	}

	if row, ok := item.(*ResultRow); ok {
		row.SetCallbacks(ui.onShowDetail, ui.onToggleStar)

		starred := false
		if lib := ui.catalogSvc.Library(); lib != nil {
			starred = ui.store.IsStarred(lib.ID, mediaItem.ID)
		}
		row.UpdateItem(mediaItem, starred)
	}
}

// onShowDetail fetches and shows the full record for an item
func (ui *RootUI) onShowDetail(id string) {
	log.Printf("Fetching detail for %s", id)
	ui.showNotification(ui.localization.GetText(KeyLoading), true)
	ui.catalogSvc.Detail(id)
}

// onToggleStar bookmarks or unbookmarks an item locally
func (ui *RootUI) onToggleStar(item *model.MediaItem) {
	lib := ui.catalogSvc.Library()
	if lib == nil {
		return
	}

	if ui.store.IsStarred(lib.ID, item.ID) {
		if err := ui.store.Unstar(lib.ID, item.ID); err != nil {
			log.Printf("Failed to unstar %s: %v", item.ID, err)
			return
		}
	} else {
		starred := &model.StarredItem{
			ID:        uuid.NewString(),
			LibraryID: lib.ID,
			MediaID:   item.ID,
			Title:     item.GetDisplayTitle(),
			Author:    item.Author,
			StarredAt: time.Now(),
		}
		if err := ui.store.Star(starred); err != nil {
			log.Printf("Failed to star %s: %v", item.ID, err)
			return
		}
	}
	ui.resultList.Refresh()
}

// onAccountChanged persists the new active account selection
func (ui *RootUI) onAccountChanged(account *model.Account) {
	if account == nil {
		ui.settings.SetActiveAccount("")
		return
	}
	ui.settings.SetActiveAccount(account.ID)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// onCatalogUpdate handles state changes pushed by the catalog service
func (ui *RootUI) onCatalogUpdate(update *catalog.Update) {
	switch update.Kind {
	case catalog.UpdateSearchStarted:
		ui.showNotification(ui.localization.GetText(KeySearching), true)

	case catalog.UpdateSearchFinished:
		if update.Err != nil {
			log.Printf("Search failed: %v", update.Err)
			ui.showNotification(ui.localization.GetText(KeySearchFailed)+": "+update.Err.Error(), false)
			return
		}
		ui.hideNotification()
		fyne.Do(func() {
			ui.applySearchResult(update.Result)
		})

	case catalog.UpdateDetailFinished:
		ui.hideNotification()
		if update.Err != nil {
			log.Printf("Detail fetch failed: %v", update.Err)
			fyne.Do(func() {
				dialog.ShowError(update.Err, ui.window)
			})
			return
		}
		fyne.Do(func() {
			ui.showDetailDialog(update.Detail)
		})

	case catalog.UpdateAccountFinished:
		fyne.Do(func() {
			if update.Err != nil {
				ui.accountPage.SetError(update.Err)
				return
			}
			ui.accountPage.SetData(update.Account)
		})

	case catalog.UpdateOperationFinished:
		fyne.Do(func() {
			if update.Err != nil {
				log.Printf("Account operation failed: %v", update.Err)
				widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyOperationFailed)+": "+update.Err.Error()), ui.window.Canvas())
				return
			}
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyOperationDone)), ui.window.Canvas())
		})
	}
}

// applySearchResult renders a new result page
func (ui *RootUI) applySearchResult(result *model.SearchResult) {
	ui.shown = result.Items
	ui.filterEntry.SetText("")

	if len(result.Items) == 0 {
		ui.resultStatus.SetText(ui.localization.GetText(KeyNoResults))
	} else {
		ui.resultStatus.SetText(result.GetTotalString())
	}

	ui.page = result.Page
	if result.PageCount > 0 {
		ui.pageLabel.SetText(fmt.Sprintf(PageLabelFormat, result.Page, result.PageCount))
	} else {
		ui.pageLabel.SetText("")
	}

	if result.Page > 1 {
		ui.prevBtn.Enable()
	} else {
		ui.prevBtn.Disable()
	}
	if result.PageCount > result.Page {
		ui.nextBtn.Enable()
	} else {
		ui.nextBtn.Disable()
	}

	ui.resultList.Refresh()
}

// showDetailDialog shows the full record with its copies
func (ui *RootUI) showDetailDialog(detail *model.Detail) {
	title := widget.NewLabel(detail.Item.GetDisplayTitle())
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Wrapping = fyne.TextWrapWord

	subtitle := widget.NewLabel(detail.Item.GetSubtitle())

	body := container.NewVBox(title, subtitle)

	if detail.Description != "" {
		desc := widget.NewLabel(detail.Description)
		desc.Wrapping = fyne.TextWrapWord
		body.Add(widget.NewSeparator())
		body.Add(desc)
	}

	if len(detail.Copies) > 0 {
		body.Add(widget.NewSeparator())
		copiesHeader := widget.NewLabel(ui.localization.GetText(KeyCopies))
		copiesHeader.TextStyle = fyne.TextStyle{Bold: true}
		body.Add(copiesHeader)

		for _, c := range detail.Copies {
			status := widget.NewLabel(c.Status.String())
			switch c.Status {
			case model.StatusAvailable:
				status.Importance = widget.SuccessImportance
			case model.StatusLent:
				status.Importance = widget.DangerImportance
			}
			line := c.Branch
			if c.ShelfMark != "" {
				line += MiddleDotSeparator + c.ShelfMark
			}
			if c.ReturnDate != "" {
				line += MiddleDotSeparator + c.ReturnDate
			}
			body.Add(container.NewBorder(nil, nil, widget.NewLabel(line), status))
		}
	}

	scroll := container.NewVScroll(body)
	d := dialog.NewCustom(ui.localization.GetText(KeyDetails), IconClose, scroll, ui.window)
	d.Resize(fyne.NewSize(DetailDialogWidth, DetailDialogHeight))
	d.Show()
}

// showNotification displays a message in the notification panel. When
// spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}
