package model

import "strings"

// APIKind identifies which catalog backend a library speaks
type APIKind string

const (
	// APIWebCat is the JSON web catalog API
	APIWebCat APIKind = "webcat"

	// APISRU is the SRU/XML search protocol (search only, no account access)
	APISRU APIKind = "sru"
)

// Library describes one library system the app can connect to
type Library struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Country         string  `json:"country"`
	API             APIKind `json:"api"`
	BaseURL         string  `json:"baseurl"`
	InformationURL  string  `json:"information"` // absolute, relative to BaseURL, or empty
	SupportsAccount bool    `json:"account_supported"`
}

// InfoURL resolves the library's information page URL. Relative paths are
// resolved against BaseURL. Returns "" when the library has no info page.
func (l *Library) InfoURL() string {
	if l.InformationURL == "" || l.InformationURL == "null" {
		return ""
	}
	if strings.HasPrefix(l.InformationURL, "http") {
		return l.InformationURL
	}
	return strings.TrimRight(l.BaseURL, "/") + "/" + strings.TrimLeft(l.InformationURL, "/")
}

// DisplayName returns the name shown in the library picker
func (l *Library) DisplayName() string {
	if l.City != "" && !strings.Contains(l.Name, l.City) {
		return l.City + " " + MiddleDot + " " + l.Name
	}
	return l.Name
}

// MiddleDot separates parts of composed display strings
const MiddleDot = "·"
