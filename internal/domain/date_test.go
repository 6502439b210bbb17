package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"2025-03-04", "2025-03-04", false},
		{" 2025-12-31 ", "2025-12-31", false},
		{"2025-03-04T23:15:00-07:00", "2025-03-04", false},
		{"3/4/2025", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		CheckDate Date `json:"checkDate"`
	}

	if err := json.Unmarshal([]byte(`{"checkDate":"2025-03-04"}`), &payload); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
	if !payload.CheckDate.Time.Equal(want) {
		t.Errorf("CheckDate = %v, want %v", payload.CheckDate.Time, want)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"checkDate":"2025-03-04"}` {
		t.Errorf("Marshal() = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"checkDate":""}`), &payload); err != nil {
		t.Fatalf("Unmarshal(empty) error = %v", err)
	}
	if !payload.CheckDate.IsZero() {
		t.Errorf("empty checkDate should leave a zero Date, got %v", payload.CheckDate)
	}
}
