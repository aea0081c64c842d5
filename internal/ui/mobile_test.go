package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestCreateMobileEntry(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	m := NewMobileUI(app)
	entry := m.CreateMobileEntry("Search the catalog")
	if entry.PlaceHolder != "Search the catalog" {
		t.Errorf("PlaceHolder = %q, expected the given placeholder", entry.PlaceHolder)
	}
}

func TestIsMobileDevice(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	// The test driver is a desktop device
	if NewMobileUI(app).IsMobileDevice() {
		t.Error("IsMobileDevice() = true under the test driver")
	}
}
