package model

import (
	"testing"
	"time"
)

func TestMediaItem_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		isbn     string
		id       string
		expected string
	}{
		{"Der Prozess", "9783150096765", "rec-1", "Der Prozess"},
		{"", "9783150096765", "rec-1", "ISBN 9783150096765"},
		{"", "", "rec-1", "rec-1"},
	}

	for _, test := range tests {
		item := &MediaItem{
			Title: test.title,
			ISBN:  test.isbn,
			ID:    test.id,
		}
		result := item.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s', isbn='%s' = '%s', expected '%s'",
				test.title, test.isbn, result, test.expected)
		}
	}
}

func TestMediaItem_GetSubtitle(t *testing.T) {
	tests := []struct {
		author   string
		year     string
		expected string
	}{
		{"Kafka, Franz", "1925", "Kafka, Franz · 1925"},
		{"Kafka, Franz", "", "Kafka, Franz"},
		{"", "1925", "1925"},
		{"", "", ""},
	}

	for _, test := range tests {
		item := &MediaItem{Author: test.author, Year: test.year}
		result := item.GetSubtitle()
		if result != test.expected {
			t.Errorf("GetSubtitle() with author='%s', year='%s' = '%s', expected '%s'",
				test.author, test.year, result, test.expected)
		}
	}
}

func TestSearchQuery_IsEmpty(t *testing.T) {
	if !NewFreeQuery("   ", 1).IsEmpty() {
		t.Error("Query with only whitespace should be empty")
	}
	if NewFreeQuery("kafka", 1).IsEmpty() {
		t.Error("Query with terms should not be empty")
	}
	if !(SearchQuery{}).IsEmpty() {
		t.Error("Zero query should be empty")
	}
}

func TestLibrary_InfoURL(t *testing.T) {
	tests := []struct {
		information string
		baseurl     string
		expected    string
	}{
		{"https://example.org/info", "https://opac.example.org", "https://example.org/info"},
		{"/about.html", "https://opac.example.org/", "https://opac.example.org/about.html"},
		{"", "https://opac.example.org", ""},
		{"null", "https://opac.example.org", ""},
	}

	for _, test := range tests {
		lib := &Library{InformationURL: test.information, BaseURL: test.baseurl}
		result := lib.InfoURL()
		if result != test.expected {
			t.Errorf("InfoURL() with information='%s' = '%s', expected '%s'",
				test.information, result, test.expected)
		}
	}
}

func TestLentItem_Deadline(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	due := &LentItem{Deadline: now.AddDate(0, 0, 7)}
	if due.DaysLeft(now) != 7 {
		t.Errorf("DaysLeft() = %d, expected 7", due.DaysLeft(now))
	}
	if due.IsOverdue(now) {
		t.Error("Item due in 7 days should not be overdue")
	}

	overdue := &LentItem{Deadline: now.AddDate(0, 0, -2)}
	if !overdue.IsOverdue(now) {
		t.Error("Item due 2 days ago should be overdue")
	}
}

func TestAccount_GetDisplayLabel(t *testing.T) {
	withLabel := &Account{Label: "City Library", Username: "12345"}
	if withLabel.GetDisplayLabel() != "City Library" {
		t.Errorf("Expected label to win, got '%s'", withLabel.GetDisplayLabel())
	}

	noLabel := &Account{Username: "12345"}
	if noLabel.GetDisplayLabel() != "12345" {
		t.Errorf("Expected username fallback, got '%s'", noLabel.GetDisplayLabel())
	}
}
