package storage

// Package storage is the app's local persistence layer: a single BoltDB file
// holding library card accounts and starred catalog entries. Passwords are
// sealed with NaCl secretbox under a per-device secret, so the database file
// alone does not expose credentials.
