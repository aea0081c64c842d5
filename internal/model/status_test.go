package model

import "testing"

func TestMediaStatus_IsKnown(t *testing.T) {
	tests := []struct {
		status   MediaStatus
		expected bool
	}{
		{StatusUnknown, false},
		{MediaStatus(""), false},
		{StatusAvailable, true},
		{StatusLent, true},
		{StatusOrdered, true},
	}

	for _, test := range tests {
		result := test.status.IsKnown()
		if result != test.expected {
			t.Errorf("MediaStatus(%s).IsKnown() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestMediaStatus_IsBorrowable(t *testing.T) {
	tests := []struct {
		status   MediaStatus
		expected bool
	}{
		{StatusUnknown, false},
		{StatusAvailable, true},
		{StatusLent, true},
		{StatusOrdered, false},
	}

	for _, test := range tests {
		result := test.status.IsBorrowable()
		if result != test.expected {
			t.Errorf("MediaStatus(%s).IsBorrowable() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestMediaStatus_String(t *testing.T) {
	status := StatusAvailable
	expected := "Available"
	result := status.String()

	if result != expected {
		t.Errorf("MediaStatus.String() = %s, expected %s", result, expected)
	}
}
