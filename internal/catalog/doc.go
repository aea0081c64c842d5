package catalog

// Package catalog implements the core catalog access pipeline on top of the
// per-library backends in catalog/source. It manages the active library and
// account, runs searches and account operations off the UI thread, cancels
// superseded searches, and propagates results to the UI via a callback.
