package dto

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/model"
)

func TestNewScaleResponseJoinsByScaleID(t *testing.T) {
	scaleA := m.ScaleModel{ID: uuid.New(), Name: "Guarda ao Quartel", AssociatedMilitary: pq.StringArray{"m1", "m2"}}
	scaleB := m.ScaleModel{ID: uuid.New(), Name: "Oficial de Dia"}

	apr10 := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	apr11 := time.Date(2026, time.April, 11, 0, 0, 0, 0, time.UTC)
	milID := uuid.New()

	services := []m.ServiceModel{
		{ID: uuid.New(), ScaleID: scaleA.ID, MilitaryID: milID, Date: apr10, StartTime: "08:00", EndTime: "20:00"},
		{ID: uuid.New(), ScaleID: scaleB.ID, MilitaryID: milID, Date: apr10, StartTime: "08:00", EndTime: "08:00"},
		{ID: uuid.New(), ScaleID: scaleA.ID, MilitaryID: milID, Date: apr11, StartTime: "20:00", EndTime: "08:00"},
	}
	reservations := []m.ReservationModel{
		{ID: uuid.New(), ScaleID: scaleA.ID, Date: apr10, MilitaryIDs: pq.StringArray{milID.String()}},
		{ID: uuid.New(), ScaleID: scaleB.ID, Date: apr10, MilitaryIDs: pq.StringArray{"other"}},
	}

	got := NewScaleResponse(&scaleA, services, reservations)

	if got.ID != scaleA.ID.String() || got.Name != "Guarda ao Quartel" {
		t.Fatalf("header mismatch: %+v", got)
	}
	if diff := cmp.Diff([]string{"m1", "m2"}, got.AssociatedMilitary); diff != "" {
		t.Errorf("associated military mismatch (-want +got):\n%s", diff)
	}
	if len(got.Services) != 2 {
		t.Fatalf("got %d services, want 2 (only scale A's)", len(got.Services))
	}
	for _, s := range got.Services {
		if s.MilitaryID != milID.String() {
			t.Errorf("service military = %s, want %s", s.MilitaryID, milID)
		}
	}
	if got.Services[0].Date != "2026-04-10" || got.Services[1].Date != "2026-04-11" {
		t.Errorf("service dates wrong: %s, %s", got.Services[0].Date, got.Services[1].Date)
	}
	if len(got.Reservations) != 1 {
		t.Fatalf("got %d reservations, want 1", len(got.Reservations))
	}
	if diff := cmp.Diff([]string{milID.String()}, got.Reservations[0].MilitaryIDs); diff != "" {
		t.Errorf("reservation mismatch (-want +got):\n%s", diff)
	}
}

func TestNewScaleResponseEmptyCollections(t *testing.T) {
	scale := m.ScaleModel{ID: uuid.New(), Name: "Vazia"}
	got := NewScaleResponse(&scale, nil, nil)

	// nunca null no JSON, sempre listas
	if got.AssociatedMilitary == nil || got.Services == nil || got.Reservations == nil {
		t.Errorf("collections must be non-nil: %+v", got)
	}
	if len(got.Services) != 0 || len(got.Reservations) != 0 {
		t.Errorf("expected empty collections, got %+v", got)
	}
}

func TestParseDateParam(t *testing.T) {
	got, err := ParseDateParam(" 2026-04-10 ")
	if err != nil {
		t.Fatalf("ParseDateParam: %v", err)
	}
	want := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ParseDateParam("10/04/2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
