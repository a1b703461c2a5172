package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestHandler_Routes(t *testing.T) {
	h := New()

	tests := []struct {
		name       string
		method     string
		target     string
		serve      http.HandlerFunc
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:       "info names the service",
			method:     http.MethodGet,
			target:     "/",
			serve:      h.Info,
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"service": "custview", "version": Version},
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			target:     "/customers/7",
			serve:      h.NotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]string{"error": "resource not found"},
		},
		{
			name:       "write to the read-only list",
			method:     http.MethodPost,
			target:     "/customers",
			serve:      h.MethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   map[string]string{"error": "method not allowed"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			tt.serve(rec, httptest.NewRequest(tt.method, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			// Error bodies share the single-key shape of the 500 body.
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if !reflect.DeepEqual(body, tt.wantBody) {
				t.Errorf("body = %v, want %v", body, tt.wantBody)
			}
		})
	}
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()

	writeJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want headers already sent as 200", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "" {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}
