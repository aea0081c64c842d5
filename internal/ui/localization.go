package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySearch             = "search"
	KeyEnterSearch        = "enter_search"
	KeyFilterResults      = "filter_results"
	KeyNoResults          = "no_results"
	KeySearching          = "searching"
	KeySearchFailed       = "search_failed"
	KeyLibraries          = "libraries"
	KeyChooseLibrary      = "choose_library"
	KeyNoLibrarySelected  = "no_library_selected"
	KeyAccount            = "account"
	KeyStarred            = "starred"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyResultsPerPage     = "results_per_page"
	KeyOpenInfoExternally = "open_info_externally"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyLoading            = "loading"
	KeyRetry              = "retry"
	KeyDetails            = "details"
	KeyCopies             = "copies"
	KeyStar               = "star"
	KeyUnstar             = "unstar"
	KeyRenew              = "renew"
	KeyRenewed            = "renewed"
	KeyCancelReservation  = "cancel_reservation"
	KeyLent               = "lent_items"
	KeyReserved           = "reserved_items"
	KeyDueIn              = "due_in"
	KeyOverdue            = "overdue"
	KeyRefresh            = "refresh"
	KeySignIn             = "sign_in"
	KeyUsername           = "username"
	KeyPassword           = "password"
	KeyAccountLabel       = "account_label"
	KeyAddAccount         = "add_account"
	KeyRemoveAccount      = "remove_account"
	KeyNoAccount          = "no_account"
	KeyAccountUnsupported = "account_unsupported"
	KeyAuthFailed         = "auth_failed"
	KeyLibraryInfo        = "library_info"
	KeyInfoUnsupported    = "info_unsupported"
	KeyOpenInBrowser      = "open_in_browser"
	KeyServerOffline      = "server_offline"
	KeyPrevPage           = "prev_page"
	KeyNextPage           = "next_page"
	KeySettingsSaved      = "settings_saved"
	KeyOperationDone      = "operation_done"
	KeyOperationFailed    = "operation_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "OpacApp",
		KeySearch:             "Search",
		KeyEnterSearch:        "Search title, author, ISBN...",
		KeyFilterResults:      "Filter results",
		KeyNoResults:          "No results",
		KeySearching:          "Searching...",
		KeySearchFailed:       "Search failed",
		KeyLibraries:          "Libraries",
		KeyChooseLibrary:      "Choose a library",
		KeyNoLibrarySelected:  "No library selected",
		KeyAccount:            "Account",
		KeyStarred:            "Starred",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyResultsPerPage:     "Results per page",
		KeyOpenInfoExternally: "Open info pages in browser",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyLoading:            "Loading...",
		KeyRetry:              "Retry",
		KeyDetails:            "Details",
		KeyCopies:             "Copies",
		KeyStar:               "Star",
		KeyUnstar:             "Unstar",
		KeyRenew:              "Renew",
		KeyRenewed:            "Loan renewed",
		KeyCancelReservation:  "Cancel reservation",
		KeyLent:               "On loan",
		KeyReserved:           "Reserved",
		KeyDueIn:              "due in %d days",
		KeyOverdue:            "overdue",
		KeyRefresh:            "Refresh",
		KeySignIn:             "Sign in",
		KeyUsername:           "Card number",
		KeyPassword:           "Password",
		KeyAccountLabel:       "Label (optional)",
		KeyAddAccount:         "Add account",
		KeyRemoveAccount:      "Remove account",
		KeyNoAccount:          "No account configured",
		KeyAccountUnsupported: "This library has no account access",
		KeyAuthFailed:         "Sign-in failed, check card number and password",
		KeyLibraryInfo:        "Library information",
		KeyInfoUnsupported:    "This library has no information page",
		KeyOpenInBrowser:      "Open in browser",
		KeyServerOffline:      "Server not reachable",
		KeyPrevPage:           "Previous",
		KeyNextPage:           "Next",
		KeySettingsSaved:      "Settings saved",
		KeyOperationDone:      "Done",
		KeyOperationFailed:    "Operation failed",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:           "OpacApp",
		KeySearch:             "Suchen",
		KeyEnterSearch:        "Titel, Autor, ISBN suchen...",
		KeyFilterResults:      "Ergebnisse filtern",
		KeyNoResults:          "Keine Treffer",
		KeySearching:          "Suche läuft...",
		KeySearchFailed:       "Suche fehlgeschlagen",
		KeyLibraries:          "Bibliotheken",
		KeyChooseLibrary:      "Bibliothek wählen",
		KeyNoLibrarySelected:  "Keine Bibliothek gewählt",
		KeyAccount:            "Konto",
		KeyStarred:            "Merkliste",
		KeySettings:           "Einstellungen",
		KeyFile:               "Datei",
		KeyLanguage:           "Sprache",
		KeyResultsPerPage:     "Treffer pro Seite",
		KeyOpenInfoExternally: "Infoseiten im Browser öffnen",
		KeySave:               "Speichern",
		KeyCancel:             "Abbrechen",
		KeyLoading:            "Lädt...",
		KeyRetry:              "Erneut versuchen",
		KeyDetails:            "Details",
		KeyCopies:             "Exemplare",
		KeyStar:               "Merken",
		KeyUnstar:             "Entfernen",
		KeyRenew:              "Verlängern",
		KeyRenewed:            "Ausleihe verlängert",
		KeyCancelReservation:  "Vormerkung stornieren",
		KeyLent:               "Ausgeliehen",
		KeyReserved:           "Vorgemerkt",
		KeyDueIn:              "fällig in %d Tagen",
		KeyOverdue:            "überfällig",
		KeyRefresh:            "Aktualisieren",
		KeySignIn:             "Anmelden",
		KeyUsername:           "Ausweisnummer",
		KeyPassword:           "Passwort",
		KeyAccountLabel:       "Bezeichnung (optional)",
		KeyAddAccount:         "Konto hinzufügen",
		KeyRemoveAccount:      "Konto entfernen",
		KeyNoAccount:          "Kein Konto eingerichtet",
		KeyAccountUnsupported: "Diese Bibliothek bietet keinen Kontozugriff",
		KeyAuthFailed:         "Anmeldung fehlgeschlagen, Ausweisnummer und Passwort prüfen",
		KeyLibraryInfo:        "Bibliotheksinformation",
		KeyInfoUnsupported:    "Diese Bibliothek hat keine Informationsseite",
		KeyOpenInBrowser:      "Im Browser öffnen",
		KeyServerOffline:      "Server nicht erreichbar",
		KeyPrevPage:           "Zurück",
		KeyNextPage:           "Weiter",
		KeySettingsSaved:      "Einstellungen gespeichert",
		KeyOperationDone:      "Erledigt",
		KeyOperationFailed:    "Vorgang fehlgeschlagen",
	}
}
