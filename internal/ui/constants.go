package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconMenu     = "☰"
	IconClose    = "×"
	IconError    = "❌"
	IconSearch   = "🔍"
	IconStar     = "☆"
	IconStarred  = "★"
	IconBook     = "📖"
	IconInfo     = "ℹ"
	IconLanguage = "🌐"
	IconAccount  = "👤"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	PageLabelFormat    = "%d / %d"
)

// Layout sizing (result rows / lists / drawer)
const (
	StatusLabelWidth float32 = 96
	YearLabelWidth   float32 = 48

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 64
	RowDefaultH  float32 = 60

	DrawerWidth float32 = 280
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 380
	PickerDialogWidth    float32 = 420
	PickerDialogHeight   float32 = 480
	DetailDialogWidth    float32 = 460
	DetailDialogHeight   float32 = 420
)

// Drawer motion timing
const (
	DrawerSlideDuration = 250 * time.Millisecond
)

// Debounce durations
const (
	FilterDebounce = 150 * time.Millisecond
)

// Info page fetch behavior
const (
	InfoProbeTimeout = 10 * time.Second
)
