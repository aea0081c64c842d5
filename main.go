package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/opacgo/opacapp/internal/catalog"
	"github.com/opacgo/opacapp/internal/catalog/source"
	"github.com/opacgo/opacapp/internal/config"
	"github.com/opacgo/opacapp/internal/libraries"
	"github.com/opacgo/opacapp/internal/platform"
	"github.com/opacgo/opacapp/internal/storage"
	"github.com/opacgo/opacapp/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.opacgo.opacapp"
	AppName = "OpacApp"

	WindowWidth  = 420
	WindowHeight = 720
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Advanced options from the optional config file
	advanced, err := config.LoadAdvanced()
	if err != nil {
		log.Printf("Falling back to default advanced config: %v", err)
		advanced = config.DefaultAdvanced()
	}

	// Library registry, optionally extended from a local directory
	var registry *libraries.Registry
	if advanced.ExtraRegistryDir != "" {
		registry, err = libraries.LoadWithExtra(advanced.ExtraRegistryDir)
	} else {
		registry, err = libraries.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load library registry: %v", err)
	}

	// Local store for accounts and starred items
	dataDir, err := platform.GetDataDir()
	if err != nil {
		log.Fatalf("Failed to resolve data directory: %v", err)
	}
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	settings := config.NewSettings(myApp)
	store, err := storage.Open(dataDir, settings.GetDeviceSecret())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	// Catalog service
	catalogSvc := catalog.NewService(source.Options{
		Timeout:   advanced.HTTPTimeout,
		UserAgent: advanced.UserAgent,
	})

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, registry, store, catalogSvc)

	// Show and run
	myWindow.ShowAndRun()
}
