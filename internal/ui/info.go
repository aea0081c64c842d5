package ui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/opacgo/opacapp/internal/config"
	"github.com/opacgo/opacapp/internal/model"
	"github.com/opacgo/opacapp/internal/platform"
)

// InfoPage shows the information page of the selected library. Depending on
// settings the page either opens in the system browser or is probed and
// linked in-app. States: unsupported when the library has no info URL,
// loading while the probe runs, then content or an error with retry.
type InfoPage struct {
	localization *Localization
	settings     *config.Settings
	window       fyne.Window

	library *model.Library
	content *fyne.Container

	httpClient *http.Client
}

// NewInfoPage creates the info page container
func NewInfoPage(window fyne.Window, settings *config.Settings, localization *Localization) *InfoPage {
	p := &InfoPage{
		localization: localization,
		settings:     settings,
		window:       window,
		content:      container.NewVBox(),
		httpClient:   &http.Client{Timeout: InfoProbeTimeout},
	}
	p.showUnsupported()
	return p
}

// Container returns the page content
func (p *InfoPage) Container() fyne.CanvasObject {
	return p.content
}

// SetLibrary switches the page to another library and reloads it
func (p *InfoPage) SetLibrary(lib *model.Library) {
	p.library = lib
	p.Reload()
}

// Reload rebuilds the page for the current library
func (p *InfoPage) Reload() {
	if p.library == nil || p.library.InfoURL() == "" {
		p.showUnsupported()
		return
	}

	infoURL := p.library.InfoURL()

	if p.settings.GetOpenInfoExternally() {
		p.showExternal(infoURL)
		return
	}

	p.showLoading()
	go p.probe(infoURL)
}

// probe checks that the info page is reachable before offering it
func (p *InfoPage) probe(infoURL string) {
	resp, err := p.httpClient.Get(infoURL)
	if err != nil {
		log.Printf("Info page probe failed for %s: %v", infoURL, err)
		fyne.Do(func() { p.showError(infoURL, model.ErrServerOffline) })
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1))

	if resp.StatusCode >= 400 {
		log.Printf("Info page probe for %s returned %d", infoURL, resp.StatusCode)
		fyne.Do(func() { p.showError(infoURL, fmt.Errorf("server returned %s", resp.Status)) })
		return
	}

	fyne.Do(func() { p.showContent(infoURL) })
}

func (p *InfoPage) showUnsupported() {
	label := widget.NewLabel(p.localization.GetText(KeyInfoUnsupported))
	label.Alignment = fyne.TextAlignCenter
	p.setContent(container.NewCenter(label))
}

func (p *InfoPage) showLoading() {
	spinner := widget.NewProgressBarInfinite()
	label := widget.NewLabel(p.localization.GetText(KeyLoading))
	label.Alignment = fyne.TextAlignCenter
	p.setContent(container.NewVBox(label, spinner))
}

// showExternal hands the URL to the system browser and leaves a fallback
// link on the page
func (p *InfoPage) showExternal(infoURL string) {
	if err := platform.OpenURLInBrowser(infoURL); err != nil {
		log.Printf("Failed to open %s in browser: %v", infoURL, err)
		p.showError(infoURL, err)
		return
	}
	p.showContent(infoURL)
}

func (p *InfoPage) showContent(infoURL string) {
	title := widget.NewLabel(p.localization.GetText(KeyLibraryInfo))
	title.TextStyle = fyne.TextStyle{Bold: true}

	name := widget.NewLabel(p.library.DisplayName())

	parsed, err := url.Parse(infoURL)
	var link fyne.CanvasObject
	if err == nil {
		link = widget.NewHyperlink(infoURL, parsed)
	} else {
		link = widget.NewLabel(infoURL)
	}

	openBtn := widget.NewButton(p.localization.GetText(KeyOpenInBrowser), func() {
		if err := platform.OpenURLInBrowser(infoURL); err != nil {
			log.Printf("Failed to open %s in browser: %v", infoURL, err)
			widget.ShowPopUp(widget.NewLabel(err.Error()), p.window.Canvas())
		}
	})

	p.setContent(container.NewVBox(title, widget.NewSeparator(), name, link, openBtn))
}

func (p *InfoPage) showError(infoURL string, err error) {
	message := err.Error()
	if errors.Is(err, model.ErrServerOffline) {
		message = p.localization.GetText(KeyServerOffline)
	}

	label := widget.NewLabel(IconError + " " + message)
	label.Wrapping = fyne.TextWrapWord

	retryBtn := widget.NewButton(p.localization.GetText(KeyRetry), p.Reload)
	openBtn := widget.NewButton(p.localization.GetText(KeyOpenInBrowser), func() {
		if err := platform.OpenURLInBrowser(infoURL); err != nil {
			widget.ShowPopUp(widget.NewLabel(err.Error()), p.window.Canvas())
		}
	})

	p.setContent(container.NewVBox(label, container.NewHBox(retryBtn, openBtn)))
}

func (p *InfoPage) setContent(obj fyne.CanvasObject) {
	p.content.Objects = []fyne.CanvasObject{obj}
	p.content.Refresh()
}
