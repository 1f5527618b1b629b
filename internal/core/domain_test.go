package core

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
	}{
		{"100", 10000},
		{"100.50", 10050},
		{"₹ 1,234.50", 123450},
		{"-50", -5000},
		{"Rs. 20", 2000},
		{"", 0},
		{"abc", 0},
		{"...", 0},
		{"0", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got.Cents != tc.cents {
			t.Fatalf("ParseAmount(%q) = %d cents, want %d", tc.in, got.Cents, tc.cents)
		}
	}
}

func TestMonthKey(t *testing.T) {
	cases := []struct {
		in  string
		key string
		ok  bool
	}{
		{"2026-01-25", "Jan 2026", true},
		{"2026-12-01", "Dec 2026", true},
		{"2026/03/07", "Mar 2026", true},
		{"2026-02-10T09:30:00Z", "Feb 2026", true},
		{"not a date", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		key, ok := MonthKey(tc.in)
		if ok != tc.ok || key != tc.key {
			t.Fatalf("MonthKey(%q) = (%q, %v), want (%q, %v)", tc.in, key, ok, tc.key, tc.ok)
		}
	}
}

func TestParseMonthKeyRoundTrip(t *testing.T) {
	key, ok := MonthKey("2026-07-14")
	if !ok {
		t.Fatalf("expected parseable date")
	}
	parsed, ok := ParseMonthKey(key)
	if !ok {
		t.Fatalf("ParseMonthKey(%q) failed", key)
	}
	if parsed.Format("Jan 2006") != key {
		t.Fatalf("round trip mismatch: %q -> %q", key, parsed.Format("Jan 2006"))
	}
}

func TestMoneyMarshalJSON(t *testing.T) {
	cases := []struct {
		m    Money
		want string
	}{
		{Money{Cents: 10000}, "100"},
		{Money{Cents: 10050}, "100.5"},
		{Money{Cents: -5000}, "-50"},
		{Money{Cents: 0}, "0"},
	}
	for _, tc := range cases {
		got, err := tc.m.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal %d cents: %v", tc.m.Cents, err)
		}
		if string(got) != tc.want {
			t.Fatalf("marshal %d cents = %s, want %s", tc.m.Cents, got, tc.want)
		}
	}
}

func TestNormalizeDescription(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "general"},
		{"   ", "general"},
		{"Diesel", "diesel"},
		{"  Mill Repair  ", "mill repair"},
	}
	for _, tc := range cases {
		if got := NormalizeDescription(tc.in); got != tc.want {
			t.Fatalf("NormalizeDescription(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
