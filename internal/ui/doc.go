package ui

// Package ui contains the Fyne-based user interface for the application.
// It wires user interactions to the catalog service and renders search
// results, account data, starred items, and settings. The navigation drawer
// slides with interruptible motions so a tap mid-flight reverses the panel
// from wherever it currently is. All UI strings are localized via
// Localization.
