package model

// MediaStatus represents the availability of a catalog item
type MediaStatus string

const (
	// StatusUnknown means the catalog did not report availability
	StatusUnknown MediaStatus = "Unknown"

	// StatusAvailable means the item can be borrowed right now
	StatusAvailable MediaStatus = "Available"

	// StatusLent means all copies are currently lent out
	StatusLent MediaStatus = "Lent"

	// StatusOrdered means the item is on order and not yet in the catalog
	StatusOrdered MediaStatus = "Ordered"
)

// String returns the string representation of MediaStatus
func (ms MediaStatus) String() string {
	return string(ms)
}

// IsKnown returns true if the catalog reported any availability at all
func (ms MediaStatus) IsKnown() bool {
	return ms != StatusUnknown && ms != ""
}

// IsBorrowable returns true if a reservation or loan makes sense for the item
func (ms MediaStatus) IsBorrowable() bool {
	return ms == StatusAvailable || ms == StatusLent
}
