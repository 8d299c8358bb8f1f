package ranking

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		input    string
		expected Window
	}{
		{"daily", WindowDaily},
		{"weekly", WindowWeekly},
		{"monthly", WindowMonthly},
		{"all-time", WindowAllTime},
		{"", WindowAllTime},
		{"bogus", WindowAllTime},
	}

	for _, tt := range tests {
		if got := ParseWindow(tt.input); got != tt.expected {
			t.Errorf("ParseWindow(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestWindowCutoff(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	startOfDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		window   Window
		expected time.Time
		bounded  bool
	}{
		{WindowDaily, startOfDay, true},
		{WindowWeekly, startOfDay.AddDate(0, 0, -7), true},
		{WindowMonthly, startOfDay.AddDate(0, 0, -30), true},
		{WindowAllTime, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			cutoff, bounded := tt.window.Cutoff(now)
			if bounded != tt.bounded {
				t.Fatalf("Cutoff() bounded = %v, expected %v", bounded, tt.bounded)
			}
			if bounded && !cutoff.Equal(tt.expected) {
				t.Errorf("Cutoff() = %v, expected %v", cutoff, tt.expected)
			}
		})
	}
}

func TestWindowCutoff_TenDayOldActivity(t *testing.T) {
	// Activity from 10 days ago counts toward all-time and monthly totals but
	// not toward daily or weekly totals.
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	activity := now.AddDate(0, 0, -10)

	counts := func(w Window) bool {
		cutoff, bounded := w.Cutoff(now)
		return !bounded || !activity.Before(cutoff)
	}

	if !counts(WindowAllTime) {
		t.Error("10-day-old activity should count toward all-time")
	}
	if !counts(WindowMonthly) {
		t.Error("10-day-old activity should count toward monthly")
	}
	if counts(WindowWeekly) {
		t.Error("10-day-old activity should not count toward weekly")
	}
	if counts(WindowDaily) {
		t.Error("10-day-old activity should not count toward daily")
	}
}
