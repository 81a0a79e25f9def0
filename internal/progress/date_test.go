package progress

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year != 2026 || d.Month != time.August || d.Day != 30 {
		t.Errorf("ParseDate = %+v", d)
	}
	if d.String() != "2026-08-30" {
		t.Errorf("String() = %q", d.String())
	}

	if _, err := ParseDate("30/08/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDaysSince(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2026-08-30", "2026-08-30", 0},
		{"2026-08-30", "2026-08-29", 1},
		{"2026-08-29", "2026-08-30", -1},
		{"2026-09-01", "2026-08-30", 2},
		{"2026-03-01", "2026-02-28", 1},  // non-leap year
		{"2024-03-01", "2024-02-28", 2},  // leap year
		{"2027-01-01", "2026-12-31", 1},  // year boundary
	}
	for _, tt := range tests {
		a, _ := ParseDate(tt.a)
		b, _ := ParseDate(tt.b)
		if got := a.DaysSince(b); got != tt.want {
			t.Errorf("%s.DaysSince(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddDays(t *testing.T) {
	d := NewDate(2026, time.December, 31)
	if got := d.AddDays(1).String(); got != "2027-01-01" {
		t.Errorf("AddDays(1) = %s", got)
	}
	if got := d.AddDays(-31).String(); got != "2026-11-30" {
		t.Errorf("AddDays(-31) = %s", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.August, 30)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2026-08-30"` {
		t.Errorf("marshal = %s", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %+v, want %+v", back, d)
	}

	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !zero.IsZero() {
		t.Error("empty string should decode to zero date")
	}

	raw, _ = json.Marshal(Date{})
	if string(raw) != `""` {
		t.Errorf("zero date marshals to %s, want \"\"", raw)
	}
}
