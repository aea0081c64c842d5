package platform

// Package platform contains OS/platform integration glue: application data
// directory resolution, Android detection, and opening URLs in the system
// browser.
