package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/model"
)

func strPtr(s string) *string { return &s }

func TestCreateUnavailabilityApplyToModel(t *testing.T) {
	militaryID := uuid.NewString()
	typeID := uuid.NewString()

	req := CreateUnavailabilityRequest{
		MilitaryID:    militaryID,
		TypeID:        typeID,
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-10",
		ReasonDetails: strPtr("curso em outra unidade"),
	}

	var dst m.UnavailabilityModel
	if err := req.ApplyToModel(&dst); err != nil {
		t.Fatalf("ApplyToModel: %v", err)
	}
	if dst.MilitaryID.String() != militaryID {
		t.Errorf("military id = %s, want %s", dst.MilitaryID, militaryID)
	}
	if dst.TypeID == nil || dst.TypeID.String() != typeID {
		t.Errorf("type id = %v, want %s", dst.TypeID, typeID)
	}
	if dst.StartDate.Format("2006-01-02") != "2026-06-01" || dst.EndDate.Format("2006-01-02") != "2026-06-10" {
		t.Errorf("range wrong: %v .. %v", dst.StartDate, dst.EndDate)
	}
}

func TestCreateUnavailabilityRejectsInvertedRange(t *testing.T) {
	req := CreateUnavailabilityRequest{
		MilitaryID: uuid.NewString(),
		TypeID:     uuid.NewString(),
		StartDate:  "2026-06-10",
		EndDate:    "2026-06-01",
	}
	var dst m.UnavailabilityModel
	if err := req.ApplyToModel(&dst); err == nil {
		t.Fatal("expected error for end_date before start_date")
	}
}

func TestCreateUnavailabilitySingleDayAllowed(t *testing.T) {
	req := CreateUnavailabilityRequest{
		MilitaryID: uuid.NewString(),
		TypeID:     uuid.NewString(),
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-01",
	}
	var dst m.UnavailabilityModel
	if err := req.ApplyToModel(&dst); err != nil {
		t.Fatalf("single-day range must be valid: %v", err)
	}
}

func TestUpdateUnavailabilityPatchClearsLegacyType(t *testing.T) {
	newType := uuid.NewString()
	dst := m.UnavailabilityModel{
		LegacyType: strPtr("Férias"),
		StartDate:  time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC),
	}

	req := UpdateUnavailabilityRequest{TypeID: &newType}
	if err := req.ApplyPatch(&dst); err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}
	if dst.TypeID == nil || dst.TypeID.String() != newType {
		t.Errorf("type id not applied: %v", dst.TypeID)
	}
	if dst.LegacyType != nil {
		t.Errorf("legacy_type should be cleared, got %q", *dst.LegacyType)
	}
}

func TestUpdateUnavailabilityPatchValidatesRange(t *testing.T) {
	dst := m.UnavailabilityModel{
		StartDate: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC),
	}

	// mover só o start para depois do end atual deve falhar
	req := UpdateUnavailabilityRequest{StartDate: strPtr("2026-06-10")}
	if err := req.ApplyPatch(&dst); err == nil {
		t.Fatal("expected error when patched start passes current end")
	}

	// mover as duas pontas juntas deve passar
	dst = m.UnavailabilityModel{
		StartDate: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC),
	}
	req = UpdateUnavailabilityRequest{StartDate: strPtr("2026-07-01"), EndDate: strPtr("2026-07-02")}
	if err := req.ApplyPatch(&dst); err != nil {
		t.Fatalf("moving both ends should pass: %v", err)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-02-30"); err == nil {
		t.Error("expected error for impossible date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("expected error for empty date")
	}
	got, err := ParseDate("2026-02-28")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Day() != 28 || got.Month() != time.February {
		t.Errorf("parsed wrong date: %v", got)
	}
}
