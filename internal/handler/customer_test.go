package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/custview/custview/internal/model"
	"github.com/custview/custview/internal/service"
	"github.com/custview/custview/internal/testutil"
)

type mockCustomerLister struct {
	customers []*model.Customer
	err       error
	lastInput service.ListCustomersInput
}

func (m *mockCustomerLister) ListCustomers(ctx context.Context, input service.ListCustomersInput) ([]*model.Customer, error) {
	m.lastInput = input
	if m.err != nil {
		return nil, m.err
	}
	return m.customers, nil
}

func newTestCustomerHandler(lister CustomerLister) (*CustomerHandler, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return NewCustomerHandler(lister, logger), &buf
}

func TestCustomerHandler_List(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	lister := &mockCustomerLister{customers: testutil.NewTestCustomers(t, 3, base)}
	h, _ := newTestCustomerHandler(lister)

	req := httptest.NewRequest(http.MethodGet, "/customers?page=2&sortBy=time", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var body []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body) != 3 {
		t.Fatalf("expected 3 records, got %d", len(body))
	}
	for i, row := range body {
		if row["sno"] != float64(i+1) {
			t.Errorf("record %d sno = %v, want %d", i, row["sno"], i+1)
		}
		for _, key := range []string{"customer_name", "age", "phone", "location", "created_at"} {
			if _, ok := row[key]; !ok {
				t.Errorf("record %d missing %s", i, key)
			}
		}
	}

	if lister.lastInput.Page != 2 || lister.lastInput.SortBy != "time" {
		t.Errorf("input = %+v, want page 2 sortBy time", lister.lastInput)
	}
}

func TestCustomerHandler_List_EmptyIsArray(t *testing.T) {
	t.Parallel()

	h, _ := newTestCustomerHandler(&mockCustomerLister{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}

func TestCustomerHandler_List_LenientParams(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantSortBy string
	}{
		{"absent", "/customers", 0, ""},
		{"non-numeric page", "/customers?page=abc&sortBy=date", 0, "date"},
		{"negative page", "/customers?page=-4", -4, ""},
		{"unknown sort key", "/customers?page=1&sortBy=age", 1, "age"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lister := &mockCustomerLister{}
			h, _ := newTestCustomerHandler(lister)

			rec := httptest.NewRecorder()
			h.List(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rec.Code)
			}
			if lister.lastInput.Page != tt.wantPage || lister.lastInput.SortBy != tt.wantSortBy {
				t.Errorf("input = %+v, want page %d sortBy %q", lister.lastInput, tt.wantPage, tt.wantSortBy)
			}
		})
	}
}

func TestCustomerHandler_List_StoreFailure(t *testing.T) {
	t.Parallel()

	h, logs := newTestCustomerHandler(&mockCustomerLister{err: errors.New("list customers: connection refused")})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Internal Server Error"}` {
		t.Errorf("body = %s", got)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal error detail leaked to client")
	}
	if !strings.Contains(logs.String(), "connection refused") {
		t.Errorf("expected error to be logged, got %s", logs.String())
	}
}
