package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCoversDateInclusiveBounds(t *testing.T) {
	u := UnavailabilityModel{
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 15),
	}

	cases := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"day before start", date(2026, time.March, 9), false},
		{"first day", date(2026, time.March, 10), true},
		{"middle day", date(2026, time.March, 12), true},
		{"last day", date(2026, time.March, 15), true},
		{"day after end", date(2026, time.March, 16), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := u.CoversDate(tc.day); got != tc.want {
				t.Errorf("CoversDate(%s) = %v, want %v", tc.day.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestCoversDateIgnoresClockAndZone(t *testing.T) {
	u := UnavailabilityModel{
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 10),
	}

	// mesma data-calendário com horário no fim do dia ainda conta
	lateSameDay := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	if !u.CoversDate(lateSameDay) {
		t.Errorf("CoversDate should ignore the clock, got false for %s", lateSameDay)
	}
}

func TestLegacyRenameTargetsMatchesOldNameOnly(t *testing.T) {
	ferias := "Férias"
	missao := "Missão"
	typeID := uuid.New()

	matchA := UnavailabilityModel{ID: uuid.New(), LegacyType: &ferias}
	matchB := UnavailabilityModel{ID: uuid.New(), LegacyType: &ferias}
	otherName := UnavailabilityModel{ID: uuid.New(), LegacyType: &missao}
	resolved := UnavailabilityModel{ID: uuid.New(), TypeID: &typeID}

	ids := LegacyRenameTargets([]UnavailabilityModel{matchA, otherName, resolved, matchB}, "Férias")
	if len(ids) != 2 {
		t.Fatalf("LegacyRenameTargets returned %d ids, want 2", len(ids))
	}
	if ids[0] != matchA.ID || ids[1] != matchB.ID {
		t.Errorf("wrong ids: %v, want [%s %s]", ids, matchA.ID, matchB.ID)
	}
}

func TestLegacyRenameTargetsExactComparison(t *testing.T) {
	lower := "férias"
	row := UnavailabilityModel{ID: uuid.New(), LegacyType: &lower}

	// A propagação de rename é exata; caixa diferente fica para a
	// migração de boot resolver.
	if ids := LegacyRenameTargets([]UnavailabilityModel{row}, "Férias"); len(ids) != 0 {
		t.Errorf("different case should not be a target, got %v", ids)
	}
	if ids := LegacyRenameTargets(nil, "Férias"); len(ids) != 0 {
		t.Errorf("empty input should yield no targets, got %v", ids)
	}
}

func TestCoversDateSingleDayRange(t *testing.T) {
	u := UnavailabilityModel{
		StartDate: date(2026, time.July, 1),
		EndDate:   date(2026, time.July, 1),
	}
	if !u.CoversDate(date(2026, time.July, 1)) {
		t.Error("single-day range should cover its own day")
	}
	if u.CoversDate(date(2026, time.July, 2)) {
		t.Error("single-day range should not cover the next day")
	}
}
