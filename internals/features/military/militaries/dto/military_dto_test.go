package dto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/model"
)

func TestCreateMilitaryApplyToModelDefaults(t *testing.T) {
	req := CreateMilitaryRequest{
		Name:  "  José da Silva  ",
		Rank:  "3º Sargento",
		Email: "Jose.Silva@FAB.mil.BR",
	}

	var dst m.MilitaryModel
	req.ApplyToModel(&dst)

	if dst.Name != "José da Silva" {
		t.Errorf("name not trimmed: %q", dst.Name)
	}
	if dst.Unit != "Desconhecida" {
		t.Errorf("empty unit should default, got %q", dst.Unit)
	}
	if dst.Status != m.StatusActive {
		t.Errorf("empty status should default to %q, got %q", m.StatusActive, dst.Status)
	}
	if dst.Email != "jose.silva@fab.mil.br" {
		t.Errorf("email not lowered: %q", dst.Email)
	}
}

func TestUpdateMilitaryApplyPatchOnlyTouchesSetFields(t *testing.T) {
	dst := m.MilitaryModel{
		Name:             "José da Silva",
		Rank:             "3º Sargento",
		Unit:             "Base Aérea",
		Status:           m.StatusActive,
		AssociatedScales: pq.StringArray{"s1"},
	}

	status := m.StatusInactive
	req := UpdateMilitaryRequest{Status: &status}
	req.ApplyPatch(&dst)

	if dst.Status != m.StatusInactive {
		t.Errorf("status not patched: %q", dst.Status)
	}
	if dst.Name != "José da Silva" || dst.Rank != "3º Sargento" || dst.Unit != "Base Aérea" {
		t.Errorf("untouched fields changed: %+v", dst)
	}
	if diff := cmp.Diff(pq.StringArray{"s1"}, dst.AssociatedScales); diff != "" {
		t.Errorf("scales changed (-want +got):\n%s", diff)
	}

	// lista vazia explícita limpa os vínculos
	empty := []string{}
	req = UpdateMilitaryRequest{AssociatedScales: &empty}
	req.ApplyPatch(&dst)
	if len(dst.AssociatedScales) != 0 {
		t.Errorf("explicit empty list should clear scales, got %v", dst.AssociatedScales)
	}
}

func TestNewMilitaryResponseNeverNullScales(t *testing.T) {
	resp := NewMilitaryResponse(&m.MilitaryModel{Name: "Fulano"})
	if resp.AssociatedScales == nil {
		t.Error("associated_scale_ids must serialize as [], not null")
	}
}
