package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCustomer_WireFieldNames(t *testing.T) {
	c := Customer{
		Sno:          7,
		CustomerName: "Asha Rao",
		Age:          31,
		Phone:        "555-0107",
		Location:     "Springfield",
		CreatedAt:    time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC),
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"sno", "customer_name", "age", "phone", "location", "created_at"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing field %q in %s", key, data)
		}
	}

	if len(fields) != 6 {
		t.Errorf("expected 6 fields, got %d: %s", len(fields), data)
	}

	if fields["created_at"] != "2024-03-09T14:05:00Z" {
		t.Errorf("created_at = %v, want RFC 3339", fields["created_at"])
	}
}
