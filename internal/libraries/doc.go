package libraries

// Package libraries is the registry of supported library systems. Definitions
// ship embedded in the binary as JSON, one file per library, and can be
// supplemented from a local directory for unreleased or private systems.
