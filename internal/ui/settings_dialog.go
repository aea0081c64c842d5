package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/opacgo/opacapp/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	perPageEntry  *widget.Entry
	languageSel   *widget.Select
	externalCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(window, settings, localization, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Results per page
	sd.perPageEntry = widget.NewEntry()
	sd.perPageEntry.SetPlaceHolder("10-100")

	// Language selection
	languageOptions := []string{"system"}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSel = widget.NewSelect(languageOptions, nil)
	sd.languageSel.PlaceHolder = sd.localization.GetText(KeyLanguage)

	// Info page behavior
	sd.externalCheck = widget.NewCheck(sd.localization.GetText(KeyOpenInfoExternally), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyResultsPerPage)+":"),
		sd.perPageEntry,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSel,

		widget.NewSeparator(),
		sd.externalCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.perPageEntry.SetText(strconv.Itoa(sd.settings.GetResultsPerPage()))
	sd.languageSel.SetSelected(sd.settings.GetLanguage())
	sd.externalCheck.SetChecked(sd.settings.GetOpenInfoExternally())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if perPage, err := strconv.Atoi(sd.perPageEntry.Text); err == nil {
		sd.settings.SetResultsPerPage(perPage)
	}

	if sd.languageSel.Selected != "" {
		sd.settings.SetLanguage(sd.languageSel.Selected)
	}

	sd.settings.SetOpenInfoExternally(sd.externalCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
