package biztime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid date", "2026-03-02", "2026-03-02", false},
		{"leap day", "2024-02-29", "2024-02-29", false},
		{"invalid month", "2026-13-01", "", true},
		{"invalid day", "2026-02-30", "", true},
		{"wrong separator", "2026/03/02", "", true},
		{"timestamp rejected", "2026-03-02T10:00:00Z", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParseDate("2026-03-02")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2026-03-02"` {
		t.Errorf("Marshal = %s, want %q", data, `"2026-03-02"`)
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !got.Equal(d) {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDateUnmarshalRejectsTimestamp(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2026-03-02T08:00:00Z"`), &d)
	if err == nil {
		t.Fatal("expected error for timestamp input")
	}
}

func TestDateUnmarshalRejectsNumber(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`1740000000`), &d)
	if err == nil {
		t.Fatal("expected error for numeric input")
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustParseDate("2026-03-02") // Monday

	if got := d.AddDays(1).String(); got != "2026-03-03" {
		t.Errorf("AddDays(1) = %s, want 2026-03-03", got)
	}
	if got := d.AddDays(-2).String(); got != "2026-02-28" {
		t.Errorf("AddDays(-2) = %s, want 2026-02-28", got)
	}
	if got := d.Weekday(); got != time.Monday {
		t.Errorf("Weekday() = %v, want Monday", got)
	}
	if got := d.DaysUntil(MustParseDate("2026-03-06")); got != 4 {
		t.Errorf("DaysUntil = %d, want 4", got)
	}
	if got := d.DaysUntil(MustParseDate("2026-02-27")); got != -3 {
		t.Errorf("DaysUntil backwards = %d, want -3", got)
	}
}

func TestDateComparisons(t *testing.T) {
	a := MustParseDate("2026-03-02")
	b := MustParseDate("2026-03-05")

	if !a.Before(b) {
		t.Error("a should be before b")
	}
	if !b.After(a) {
		t.Error("b should be after a")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare ordering wrong")
	}
	if a.Equal(b) {
		t.Error("a should not equal b")
	}

	var zero Date
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if a.IsZero() {
		t.Error("parsed date should not report IsZero")
	}
}

func TestDateOfUsesBusinessTimezone(t *testing.T) {
	MustInit("")

	// 2026-03-02 17:30 UTC is already 2026-03-03 01:30 in Asia/Singapore (UTC+8)
	instant := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	if got := DateOf(instant).String(); got != "2026-03-03" {
		t.Errorf("DateOf = %s, want 2026-03-03", got)
	}

	earlier := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	if got := DateOf(earlier).String(); got != "2026-03-02" {
		t.Errorf("DateOf = %s, want 2026-03-02", got)
	}
}
