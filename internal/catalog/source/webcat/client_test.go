package webcat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opacgo/opacapp/internal/model"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("free"); got != "kafka" {
			t.Errorf("free term = %s, expected kafka", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %s, expected 2", got)
		}
		w.Write([]byte(`{
			"total": 42,
			"page": 2,
			"pages": 3,
			"records": [
				{"id": "rec-1", "title": "Der Prozess", "author": "Kafka, Franz",
				 "year": "1925", "mediatype": "book", "status": "available"},
				{"id": "rec-2", "title": "Das Schloss", "status": "lent"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), "")
	result, err := client.Search(context.Background(), model.NewFreeQuery("kafka", 2))
	if err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}

	if result.TotalCount != 42 || result.PageCount != 3 || result.Page != 2 {
		t.Errorf("Paging = %d/%d total %d, expected 2/3 total 42",
			result.Page, result.PageCount, result.TotalCount)
	}
	if len(result.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(result.Items))
	}

	first := result.Items[0]
	if first.Title != "Der Prozess" || first.Status != model.StatusAvailable || first.Type != model.MediaBook {
		t.Errorf("First item mapped wrong: %+v", first)
	}
	if result.Items[1].Status != model.StatusLent {
		t.Errorf("Second item status = %s, expected Lent", result.Items[1].Status)
	}
}

func TestSearchPageSize(t *testing.T) {
	var gotCount string
	var countSet bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCount = r.URL.Query().Get("count")
		_, countSet = r.URL.Query()["count"]
		w.Write([]byte(`{"total": 0, "page": 1, "pages": 0, "records": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), "")

	query := model.NewFreeQuery("kafka", 1)
	query.PerPage = 50
	if _, err := client.Search(context.Background(), query); err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}
	if gotCount != "50" {
		t.Errorf("count = %s, expected 50", gotCount)
	}

	// Zero means the backend picks its own page size
	if _, err := client.Search(context.Background(), model.NewFreeQuery("kafka", 1)); err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}
	if countSet {
		t.Errorf("count = %s, expected no count parameter without a page size", gotCount)
	}
}

func TestDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/record/rec-1" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": "rec-1", "title": "Der Prozess", "description": "Roman.",
			"reservable": true,
			"copies": [
				{"branch": "Zentrale", "shelfmark": "Ka 12", "status": "available"},
				{"branch": "West", "status": "lent", "returndate": "2025-09-01"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), "")
	detail, err := client.Detail(context.Background(), "rec-1")
	if err != nil {
		t.Fatalf("Detail() returned error: %v", err)
	}

	if detail.Item.Title != "Der Prozess" || !detail.Reservable {
		t.Errorf("Detail mapped wrong: %+v", detail)
	}
	if len(detail.Copies) != 2 {
		t.Fatalf("Expected 2 copies, got %d", len(detail.Copies))
	}
	if detail.Copies[1].Status != model.StatusLent || detail.Copies[1].ReturnDate != "2025-09-01" {
		t.Errorf("Second copy mapped wrong: %+v", detail.Copies[1])
	}
}

func TestAccountData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "12345" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{
			"lent": [
				{"title": "Der Prozess", "deadline": "2025-09-15", "renewable": true, "prolong_id": "p1"}
			],
			"reservations": [
				{"title": "Das Schloss", "cancelable": true, "cancel_id": "c1"}
			],
			"fees": "2,50 EUR"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), "")
	account := &model.Account{Username: "12345", Password: "secret"}

	data, err := client.AccountData(context.Background(), account)
	if err != nil {
		t.Fatalf("AccountData() returned error: %v", err)
	}
	if len(data.Lent) != 1 || len(data.Reserved) != 1 {
		t.Fatalf("Expected 1 loan and 1 reservation, got %d/%d", len(data.Lent), len(data.Reserved))
	}

	loan := data.Lent[0]
	expected := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	if !loan.Deadline.Equal(expected) {
		t.Errorf("Deadline = %v, expected %v", loan.Deadline, expected)
	}
	if !loan.Renewable || loan.ProlongID != "p1" {
		t.Errorf("Loan mapped wrong: %+v", loan)
	}
	if data.PendingFees != "2,50 EUR" {
		t.Errorf("Fees = %s, expected 2,50 EUR", data.PendingFees)
	}

	// Wrong credentials surface as ErrAuthFailed
	bad := &model.Account{Username: "12345", Password: "wrong"}
	if _, err := client.AccountData(context.Background(), bad); !errors.Is(err, model.ErrAuthFailed) {
		t.Errorf("Expected ErrAuthFailed, got %v", err)
	}
}

func TestDetail_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), "")
	if _, err := client.Detail(context.Background(), "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRenew(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/account/renew" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		r.ParseForm()
		gotID = r.PostForm.Get("id")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), "")
	account := &model.Account{Username: "u", Password: "p"}
	if err := client.Renew(context.Background(), account, "p1"); err != nil {
		t.Fatalf("Renew() returned error: %v", err)
	}
	if gotID != "p1" {
		t.Errorf("Renew posted id = %s, expected p1", gotID)
	}
}

func TestMapStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected model.MediaStatus
	}{
		{"available", model.StatusAvailable},
		{"lent", model.StatusLent},
		{"ordered", model.StatusOrdered},
		{"weird", model.StatusUnknown},
		{"", model.StatusUnknown},
	}

	for _, test := range tests {
		result := mapStatus(test.raw)
		if result != test.expected {
			t.Errorf("mapStatus(%s) = %s, expected %s", test.raw, result, test.expected)
		}
	}
}
