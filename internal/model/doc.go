package model

// Package model defines domain data structures used across the app: library
// definitions, catalog media items, user accounts, and status enums.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
