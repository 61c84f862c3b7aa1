package dateindex

import (
	"testing"
	"time"
)

// TestDayIndexSameLocalDay checks that any time of day yields the same index.
func TestDayIndexSameLocalDay(t *testing.T) {
	epoch := time.Date(2024, time.April, 25, 0, 0, 0, 0, time.Local)
	times := []time.Time{
		time.Date(2024, time.May, 2, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.May, 2, 9, 30, 0, 0, time.Local),
		time.Date(2024, time.May, 2, 23, 59, 59, 0, time.Local),
	}
	want := 7
	for _, tm := range times {
		if got := DayIndex(tm, epoch); got != want {
			t.Errorf("DayIndex(%v) = %d, want %d", tm, got, want)
		}
	}
}

// TestDayIndexBoundaries checks epoch day, the day before and the day after.
func TestDayIndexBoundaries(t *testing.T) {
	epoch := time.Date(2024, time.April, 25, 0, 0, 0, 0, time.Local)
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, time.April, 25, 12, 0, 0, 0, time.Local), 0},
		{time.Date(2024, time.April, 26, 0, 0, 0, 0, time.Local), 1},
		{time.Date(2024, time.April, 24, 23, 0, 0, 0, time.Local), -1},
		{time.Date(2024, time.March, 26, 6, 0, 0, 0, time.Local), -30},
		{time.Date(2025, time.April, 25, 1, 0, 0, 0, time.Local), 365},
	}
	for _, tt := range tests {
		if got := DayIndex(tt.date, epoch); got != tt.want {
			t.Errorf("DayIndex(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

// TestDayIndexAddInverse checks that adding N days shifts the index by N.
func TestDayIndexAddInverse(t *testing.T) {
	epoch := time.Date(2024, time.April, 25, 0, 0, 0, 0, time.Local)
	base := time.Date(2024, time.October, 10, 15, 4, 5, 0, time.Local)
	baseIdx := DayIndex(base, epoch)
	for n := -40; n <= 40; n += 5 {
		shifted := base.AddDate(0, 0, n)
		if got := DayIndex(shifted, epoch); got != baseIdx+n {
			t.Errorf("DayIndex(base+%d days) = %d, want %d", n, got, baseIdx+n)
		}
	}
}

// TestToISODate checks zero-padded local formatting.
func TestToISODate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, time.April, 25, 0, 0, 0, 0, time.Local), "2024-04-25"},
		{time.Date(2024, time.April, 25, 23, 59, 59, 0, time.Local), "2024-04-25"},
		{time.Date(2026, time.January, 3, 8, 0, 0, 0, time.Local), "2026-01-03"},
		{time.Date(999, time.December, 31, 12, 0, 0, 0, time.Local), "0999-12-31"},
	}
	for _, tt := range tests {
		if got := ToISODate(tt.date); got != tt.want {
			t.Errorf("ToISODate(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

// TestParseISODateRoundTrip checks parse then format is the identity.
func TestParseISODateRoundTrip(t *testing.T) {
	for _, s := range []string{"2024-04-25", "2026-08-31", "1999-01-01"} {
		d, err := ParseISODate(s)
		if err != nil {
			t.Fatalf("ParseISODate(%q) failed: %v", s, err)
		}
		if got := ToISODate(d); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

// TestParseISODateInvalid checks malformed inputs are rejected.
func TestParseISODateInvalid(t *testing.T) {
	for _, s := range []string{"", "2024-4-25", "25-04-2024", "2024-04-25T00:00:00Z", "not-a-date"} {
		if _, err := ParseISODate(s); err == nil {
			t.Errorf("ParseISODate(%q) succeeded, want error", s)
		}
	}
}

// TestDaysBetweenSign checks the sign convention.
func TestDaysBetweenSign(t *testing.T) {
	a := time.Date(2024, time.June, 1, 3, 0, 0, 0, time.Local)
	b := time.Date(2024, time.June, 4, 22, 0, 0, 0, time.Local)
	if got := DaysBetween(b, a); got != 3 {
		t.Errorf("DaysBetween(b, a) = %d, want 3", got)
	}
	if got := DaysBetween(a, b); got != -3 {
		t.Errorf("DaysBetween(a, b) = %d, want -3", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween(a, a) = %d, want 0", got)
	}
}
