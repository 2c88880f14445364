package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSameDay(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", day(2026, time.May, 3), day(2026, time.May, 3), true},
		{"same day different clock", day(2026, time.May, 3), time.Date(2026, time.May, 3, 18, 30, 0, 0, time.UTC), true},
		{"different day", day(2026, time.May, 3), day(2026, time.May, 4), false},
		{"different month", day(2026, time.May, 3), day(2026, time.June, 3), false},
		{"different year", day(2026, time.May, 3), day(2025, time.May, 3), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameDay(tc.a, tc.b); got != tc.want {
				t.Errorf("SameDay(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestServicesOfDay(t *testing.T) {
	target := day(2026, time.May, 3)
	other := day(2026, time.May, 4)

	services := []ServiceModel{
		{ID: uuid.New(), Date: target, StartTime: "08:00", EndTime: "20:00"},
		{ID: uuid.New(), Date: other, StartTime: "08:00", EndTime: "20:00"},
		{ID: uuid.New(), Date: target, StartTime: "20:00", EndTime: "08:00"},
	}

	ofDay := ServicesOfDay(services, target)
	if len(ofDay) != 2 {
		t.Fatalf("ServicesOfDay returned %d rows, want 2", len(ofDay))
	}
	for _, s := range ofDay {
		if !SameDay(s.Date, target) {
			t.Errorf("ServicesOfDay returned row of %v", s.Date)
		}
	}

	if got := ServicesOfDay(nil, target); len(got) != 0 {
		t.Errorf("ServicesOfDay(nil) = %v, want empty", got)
	}
}
