package model

import "testing"

func TestPlanReservationChange(t *testing.T) {
	cases := []struct {
		name        string
		militaryIDs []string
		exists      bool
		want        ReservationChange
	}{
		{"empty list removes existing reservation", nil, true, ReservationRemove},
		{"empty list without a row does nothing", nil, false, ReservationNoop},
		{"empty slice counts as empty list", []string{}, true, ReservationRemove},
		{"filled list without a row creates one", []string{"a", "b"}, false, ReservationCreate},
		{"filled list with a row overwrites it", []string{"a"}, true, ReservationUpdate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlanReservationChange(tc.militaryIDs, tc.exists); got != tc.want {
				t.Errorf("PlanReservationChange(%v, %v) = %v, want %v", tc.militaryIDs, tc.exists, got, tc.want)
			}
		})
	}
}
