package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
		ok    bool
	}{
		{"plain date", "2024-03-15", "2024-03-15", true},
		{"rfc3339 timestamp", "2024-03-15T10:30:00Z", "2024-03-15", true},
		{"empty", "", "", false},
		{"garbage", "15/03/2024", "", false},
		{"partial", "2024-03", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDate(tt.value)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && FormatDate(parsed) != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.value, FormatDate(parsed), tt.want)
			}
		})
	}
}

func TestDiffInDays(t *testing.T) {
	day := func(value string) time.Time {
		parsed, ok := ParseDate(value)
		if !ok {
			t.Fatalf("bad fixture date %q", value)
		}
		return parsed
	}

	tests := []struct {
		name   string
		future string
		past   string
		want   int
	}{
		{"same day", "2024-01-10", "2024-01-10", 0},
		{"one day ahead", "2024-01-11", "2024-01-10", 1},
		{"one day behind", "2024-01-09", "2024-01-10", -1},
		{"across month", "2024-02-05", "2024-01-29", 7},
		{"across year", "2025-01-02", "2024-12-31", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiffInDays(day(tt.future), day(tt.past)); got != tt.want {
				t.Errorf("DiffInDays(%s, %s) = %d, want %d", tt.future, tt.past, got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	start, _ := ParseDate("2024-01-29")
	if got := FormatDate(AddDays(start, 28)); got != "2024-02-26" {
		t.Errorf("AddDays 28 from 2024-01-29 = %s, want 2024-02-26", got)
	}
	if got := FormatDate(AddDays(start, -30)); got != "2023-12-30" {
		t.Errorf("AddDays -30 from 2024-01-29 = %s, want 2023-12-30", got)
	}
}
