package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/opacgo/opacapp/internal/catalog"
	"github.com/opacgo/opacapp/internal/model"
	"github.com/opacgo/opacapp/internal/storage"
)

// AccountPage shows the signed-in account's loans and reservations and lets
// the user renew loans or cancel reservations. Accounts are persisted in the
// local store with sealed passwords.
type AccountPage struct {
	window       fyne.Window
	localization *Localization
	store        *storage.Store
	catalogSvc   catalog.Browser

	data    *model.AccountData
	content *fyne.Container

	headerLabel *widget.Label
	lentList    *fyne.Container
	reservedBox *fyne.Container
	refreshBtn  *widget.Button
	signOutBtn  *widget.Button
	spinner     *widget.ProgressBarInfinite

	// onAccountChanged fires after sign-in or sign-out so the shell can
	// persist the active account
	onAccountChanged func(*model.Account)
}

// NewAccountPage creates the account page
func NewAccountPage(window fyne.Window, localization *Localization, store *storage.Store, svc catalog.Browser, onAccountChanged func(*model.Account)) *AccountPage {
	p := &AccountPage{
		window:           window,
		localization:     localization,
		store:            store,
		catalogSvc:       svc,
		onAccountChanged: onAccountChanged,
	}
	p.createUI()
	p.Rebuild()
	return p
}

// Container returns the page content
func (p *AccountPage) Container() fyne.CanvasObject {
	return p.content
}

func (p *AccountPage) createUI() {
	p.headerLabel = widget.NewLabel("")
	p.headerLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.lentList = container.NewVBox()
	p.reservedBox = container.NewVBox()

	p.spinner = widget.NewProgressBarInfinite()
	p.spinner.Hide()

	p.refreshBtn = widget.NewButton(p.localization.GetText(KeyRefresh), p.Refresh)
	p.signOutBtn = widget.NewButton(p.localization.GetText(KeyRemoveAccount), p.onSignOut)

	lentHeader := widget.NewLabel(p.localization.GetText(KeyLent))
	lentHeader.TextStyle = fyne.TextStyle{Bold: true}
	reservedHeader := widget.NewLabel(p.localization.GetText(KeyReserved))
	reservedHeader.TextStyle = fyne.TextStyle{Bold: true}

	body := container.NewVBox(
		container.NewBorder(nil, nil, p.headerLabel, container.NewHBox(p.refreshBtn, p.signOutBtn)),
		p.spinner,
		widget.NewSeparator(),
		lentHeader,
		p.lentList,
		widget.NewSeparator(),
		reservedHeader,
		p.reservedBox,
	)
	p.content = container.NewVBox(body)
}

// Rebuild switches between the signed-out and signed-in layouts
func (p *AccountPage) Rebuild() {
	account := p.catalogSvc.Account()

	if !p.catalogSvc.SupportsAccount() {
		label := widget.NewLabel(p.localization.GetText(KeyAccountUnsupported))
		label.Alignment = fyne.TextAlignCenter
		p.content.Objects = []fyne.CanvasObject{container.NewCenter(label)}
		p.content.Refresh()
		return
	}

	if account == nil {
		p.showSignedOut()
		return
	}

	p.headerLabel.SetText(IconAccount + " " + account.GetDisplayLabel())
	p.renderData()
}

func (p *AccountPage) showSignedOut() {
	label := widget.NewLabel(p.localization.GetText(KeyNoAccount))
	label.Alignment = fyne.TextAlignCenter
	addBtn := widget.NewButton(p.localization.GetText(KeyAddAccount), p.showSignInDialog)
	addBtn.Importance = widget.HighImportance

	p.content.Objects = []fyne.CanvasObject{container.NewVBox(label, container.NewCenter(addBtn))}
	p.content.Refresh()
}

// showSignInDialog collects card credentials and persists them sealed
func (p *AccountPage) showSignInDialog() {
	usernameEntry := widget.NewEntry()
	usernameEntry.SetPlaceHolder(p.localization.GetText(KeyUsername))
	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder(p.localization.GetText(KeyPassword))
	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder(p.localization.GetText(KeyAccountLabel))

	form := container.NewVBox(
		widget.NewLabel(p.localization.GetText(KeyUsername)),
		usernameEntry,
		widget.NewLabel(p.localization.GetText(KeyPassword)),
		passwordEntry,
		labelEntry,
	)

	dialog.ShowCustomConfirm(
		p.localization.GetText(KeySignIn),
		p.localization.GetText(KeySave),
		p.localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed || usernameEntry.Text == "" {
				return
			}
			lib := p.catalogSvc.Library()
			if lib == nil {
				return
			}

			account := &model.Account{
				ID:        uuid.NewString(),
				LibraryID: lib.ID,
				Label:     labelEntry.Text,
				Username:  usernameEntry.Text,
				Password:  passwordEntry.Text,
				CreatedAt: time.Now(),
			}
			if err := p.store.SaveAccount(account); err != nil {
				log.Printf("Failed to save account: %v", err)
				dialog.ShowError(err, p.window)
				return
			}

			p.catalogSvc.SetAccount(account)
			if p.onAccountChanged != nil {
				p.onAccountChanged(account)
			}
			p.Rebuild()
			p.Refresh()
		},
		p.window,
	)
}

func (p *AccountPage) onSignOut() {
	account := p.catalogSvc.Account()
	if account == nil {
		return
	}
	if err := p.store.DeleteAccount(account.ID); err != nil {
		log.Printf("Failed to delete account %s: %v", account.ID, err)
	}
	p.catalogSvc.SetAccount(nil)
	p.data = nil
	if p.onAccountChanged != nil {
		p.onAccountChanged(nil)
	}
	p.Rebuild()
}

// Refresh asks the catalog service for a fresh account snapshot
func (p *AccountPage) Refresh() {
	if p.catalogSvc.Account() == nil {
		return
	}
	p.spinner.Show()
	p.catalogSvc.FetchAccount()
}

// SetData renders a new account snapshot pushed by the catalog service
func (p *AccountPage) SetData(data *model.AccountData) {
	p.data = data
	p.spinner.Hide()
	p.renderData()
}

// SetError shows a fetch error in place of the lists
func (p *AccountPage) SetError(err error) {
	p.spinner.Hide()
	label := widget.NewLabel(IconError + " " + err.Error())
	label.Wrapping = fyne.TextWrapWord
	p.lentList.Objects = []fyne.CanvasObject{label}
	p.reservedBox.Objects = nil
	p.lentList.Refresh()
	p.reservedBox.Refresh()
}

func (p *AccountPage) renderData() {
	account := p.catalogSvc.Account()
	if account == nil {
		return
	}

	header := container.NewBorder(nil, nil, p.headerLabel, container.NewHBox(p.refreshBtn, p.signOutBtn))
	lentHeader := widget.NewLabel(p.localization.GetText(KeyLent))
	lentHeader.TextStyle = fyne.TextStyle{Bold: true}
	reservedHeader := widget.NewLabel(p.localization.GetText(KeyReserved))
	reservedHeader.TextStyle = fyne.TextStyle{Bold: true}

	p.lentList.Objects = nil
	p.reservedBox.Objects = nil

	if p.data != nil {
		now := time.Now()
		for _, item := range p.data.Lent {
			p.lentList.Add(p.buildLentRow(item, now))
		}
		for _, item := range p.data.Reserved {
			p.reservedBox.Add(p.buildReservedRow(item))
		}
		if len(p.data.Lent) == 0 {
			p.lentList.Add(widget.NewLabel(DashPlaceholder))
		}
		if len(p.data.Reserved) == 0 {
			p.reservedBox.Add(widget.NewLabel(DashPlaceholder))
		}
	}

	body := container.NewVBox(
		header,
		p.spinner,
		widget.NewSeparator(),
		lentHeader,
		p.lentList,
		widget.NewSeparator(),
		reservedHeader,
		p.reservedBox,
	)

	if p.data != nil && p.data.PendingFees != "" {
		body.Add(widget.NewSeparator())
		body.Add(widget.NewLabel(p.data.PendingFees))
	}

	p.content.Objects = []fyne.CanvasObject{container.NewVScroll(body)}
	p.content.Refresh()
}

func (p *AccountPage) buildLentRow(item *model.LentItem, now time.Time) fyne.CanvasObject {
	title := widget.NewLabel(item.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	var deadlineText string
	if item.IsOverdue(now) {
		deadlineText = p.localization.GetText(KeyOverdue)
	} else {
		deadlineText = fmt.Sprintf(p.localization.GetText(KeyDueIn), item.DaysLeft(now))
	}
	deadline := widget.NewLabel(item.Deadline.Format("2006-01-02") + MiddleDotSeparator + deadlineText)
	if item.IsOverdue(now) {
		deadline.Importance = widget.DangerImportance
	}

	var actions fyne.CanvasObject
	if item.Renewable {
		prolongID := item.ProlongID
		renewBtn := widget.NewButton(p.localization.GetText(KeyRenew), func() {
			p.spinner.Show()
			p.catalogSvc.Renew(prolongID)
		})
		actions = renewBtn
	} else {
		actions = widget.NewLabel("")
	}

	return container.NewBorder(nil, nil, nil, actions, container.NewVBox(title, deadline))
}

func (p *AccountPage) buildReservedRow(item *model.ReservedItem) fyne.CanvasObject {
	title := widget.NewLabel(item.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	info := widget.NewLabel(item.ReadyAt)

	var actions fyne.CanvasObject
	if item.Cancelable {
		cancelID := item.CancelID
		cancelBtn := widget.NewButton(p.localization.GetText(KeyCancelReservation), func() {
			p.spinner.Show()
			p.catalogSvc.CancelReservation(cancelID)
		})
		actions = cancelBtn
	} else {
		actions = widget.NewLabel("")
	}

	return container.NewBorder(nil, nil, nil, actions, container.NewVBox(title, info))
}
