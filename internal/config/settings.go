package config

import (
	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// Settings keys for Fyne preferences
const (
	KeySelectedLibrary  = "selected_library"
	KeyActiveAccount    = "active_account"
	KeyLanguage         = "app_language"
	KeyResultsPerPage   = "results_per_page"
	KeyOpenInfoExternal = "open_info_externally"
	KeyDeviceSecret     = "device_secret"
)

// Default values
const (
	DefaultResultsPerPage   = 20
	DefaultLanguage         = "system"
	DefaultOpenInfoExternal = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSelectedLibrary returns the ID of the library the user picked
func (s *Settings) GetSelectedLibrary() string {
	return s.app.Preferences().String(KeySelectedLibrary)
}

// SetSelectedLibrary sets the selected library ID
func (s *Settings) SetSelectedLibrary(id string) {
	s.app.Preferences().SetString(KeySelectedLibrary, id)
}

// GetActiveAccount returns the ID of the active library card account
func (s *Settings) GetActiveAccount() string {
	return s.app.Preferences().String(KeyActiveAccount)
}

// SetActiveAccount sets the active account ID
func (s *Settings) SetActiveAccount(id string) {
	s.app.Preferences().SetString(KeyActiveAccount, id)
}

// GetResultsPerPage returns how many search results one page shows
func (s *Settings) GetResultsPerPage() int {
	value := s.app.Preferences().Int(KeyResultsPerPage)
	if value <= 0 {
		s.SetResultsPerPage(DefaultResultsPerPage)
		return DefaultResultsPerPage
	}
	return value
}

// SetResultsPerPage sets the search page size
func (s *Settings) SetResultsPerPage(count int) {
	if count < 10 {
		count = 10
	}
	if count > 100 {
		count = 100
	}
	s.app.Preferences().SetInt(KeyResultsPerPage, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetOpenInfoExternally returns whether library info pages open in the
// system browser instead of the in-app view
func (s *Settings) GetOpenInfoExternally() bool {
	return s.app.Preferences().BoolWithFallback(KeyOpenInfoExternal, DefaultOpenInfoExternal)
}

// SetOpenInfoExternally sets how library info pages are opened
func (s *Settings) SetOpenInfoExternally(external bool) {
	s.app.Preferences().SetBool(KeyOpenInfoExternal, external)
}

// GetDeviceSecret returns this installation's secret used to seal stored
// credentials, generating it on first use
func (s *Settings) GetDeviceSecret() []byte {
	secret := s.app.Preferences().String(KeyDeviceSecret)
	if secret == "" {
		secret = uuid.NewString()
		s.app.Preferences().SetString(KeyDeviceSecret, secret)
	}
	return []byte(secret)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"de":     "Deutsch",
	}
}
