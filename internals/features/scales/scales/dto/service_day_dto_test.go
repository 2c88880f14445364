package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNormalizeHourMinute(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"08:00", "08:00", false},
		{"8:00", "08:00", false},
		{" 23:59 ", "23:59", false},
		{"00:00", "00:00", false},
		{"", "", true},
		{"24:00", "", true},
		{"08:60", "", true},
		{"0800", "", true},
		{"abc", "", true},
	}
	for _, tc := range cases {
		got, err := normalizeHourMinute(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("normalizeHourMinute(%q) = %q, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizeHourMinute(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("normalizeHourMinute(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestReplaceDayServicesToModels(t *testing.T) {
	scaleID := uuid.New()
	militaryID := uuid.New()
	day := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	req := ReplaceDayServicesRequest{
		Services: []DayServiceEntry{
			{MilitaryID: militaryID.String(), StartTime: "8:00", EndTime: "20:00"},
			{MilitaryID: militaryID.String(), StartTime: "20:00", EndTime: "08:00"},
		},
	}

	rows, err := req.ToModels(scaleID, day)
	if err != nil {
		t.Fatalf("ToModels: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for i, row := range rows {
		if row.ScaleID != scaleID {
			t.Errorf("rows[%d].ScaleID = %s, want %s", i, row.ScaleID, scaleID)
		}
		if row.MilitaryID != militaryID {
			t.Errorf("rows[%d].MilitaryID = %s, want %s", i, row.MilitaryID, militaryID)
		}
		if !row.Date.Equal(day) {
			t.Errorf("rows[%d].Date = %v, want %v", i, row.Date, day)
		}
	}
	if rows[0].StartTime != "08:00" {
		t.Errorf("start_time not normalized: %q", rows[0].StartTime)
	}
	// janela que vira a noite é válida
	if rows[1].StartTime != "20:00" || rows[1].EndTime != "08:00" {
		t.Errorf("overnight window mangled: %q -> %q", rows[1].StartTime, rows[1].EndTime)
	}
}

func TestReplaceDayServicesToModelsEmpty(t *testing.T) {
	req := ReplaceDayServicesRequest{}
	rows, err := req.ToModels(uuid.New(), time.Now())
	if err != nil {
		t.Fatalf("ToModels: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestReplaceDayServicesToModelsErrors(t *testing.T) {
	scaleID := uuid.New()
	day := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		entry   DayServiceEntry
		errPart string
	}{
		{"bad start", DayServiceEntry{MilitaryID: uuid.NewString(), StartTime: "x", EndTime: "20:00"}, "start_time"},
		{"bad end", DayServiceEntry{MilitaryID: uuid.NewString(), StartTime: "08:00", EndTime: "25:00"}, "end_time"},
		{"bad military id", DayServiceEntry{MilitaryID: "not-a-uuid", StartTime: "08:00", EndTime: "20:00"}, "military_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := ReplaceDayServicesRequest{Services: []DayServiceEntry{tc.entry}}
			_, err := req.ToModels(scaleID, day)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}
