package litters

import (
	"testing"
	"time"

	"cattery-breeding/internal/platform/dates"
)

func day(s string) *time.Time {
	t, err := dates.Parse(s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestDueDate(t *testing.T) {
	got := DueDate(*day("2024-01-10"))
	if dates.Format(got) != "2024-03-15" {
		t.Fatalf("expected 2024-03-15, got %s", dates.Format(got))
	}
}

func TestParsePhase(t *testing.T) {
	p, ok := ParsePhase(" Active ")
	if !ok || p != PhaseActive {
		t.Fatalf("expected active, got %q (%v)", p, ok)
	}
	if _, ok := ParsePhase("weaning"); ok {
		t.Fatalf("expected unknown phase to be rejected")
	}
}

func TestIsForwardTransition(t *testing.T) {
	cases := []struct {
		from, to Phase
		want     bool
	}{
		{PhasePlanned, PhasePending, true},
		{PhasePending, PhasePending, true},
		{PhasePlanned, PhaseCompleted, true},
		{PhaseActive, PhasePending, false},
		{PhaseCompleted, PhasePlanned, false},
		{"bogus", PhaseActive, false},
	}
	for _, tc := range cases {
		if got := IsForwardTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestActiveGroups(t *testing.T) {
	cases := map[Phase][]FieldGroup{
		PhasePlanned:   {GroupPlanning},
		PhasePending:   {GroupMating},
		PhaseActive:    {GroupMating, GroupBirth},
		PhaseCompleted: {GroupMating, GroupBirth, GroupCompletion},
	}
	for phase, want := range cases {
		got := ActiveGroups(phase)
		if len(got) != len(want) {
			t.Fatalf("%s: expected %v, got %v", phase, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: expected %v, got %v", phase, want, got)
			}
		}
	}
	if len(ActiveGroups("bogus")) != 0 {
		t.Fatalf("expected no groups for unknown phase")
	}
}

func codes(ws []Warning) map[string]bool {
	out := map[string]bool{}
	for _, w := range ws {
		out[w.Code] = true
	}
	return out
}

func TestCheckConsistency(t *testing.T) {
	cases := []struct {
		name string
		l    Litter
		want []string
	}{
		{"clean planned", Litter{Phase: PhasePlanned}, nil},
		{"planned with mating", Litter{Phase: PhasePlanned, MatingDateFrom: day("2024-01-10")}, []string{"mating_recorded"}},
		{"pending without mating", Litter{Phase: PhasePending}, []string{"missing_mating_date"}},
		{"active without birth", Litter{Phase: PhaseActive, MatingDateFrom: day("2024-01-10")}, []string{"missing_birth_date"}},
		{"pending with birth", Litter{Phase: PhasePending, MatingDateFrom: day("2024-01-10"), BirthDate: day("2024-03-14")}, []string{"birth_recorded"}},
		{"completed without date", Litter{Phase: PhaseCompleted, MatingDateFrom: day("2024-01-10"), BirthDate: day("2024-03-14")}, []string{"missing_completion_date"}},
		{"inverted window", Litter{Phase: PhasePending, MatingDateFrom: day("2024-01-10"), MatingDateTo: day("2024-01-08")}, []string{"mating_window_inverted"}},
		{"stale expected", Litter{Phase: PhasePending, MatingDateFrom: day("2024-01-20"), ExpectedDate: day("2024-03-15")}, []string{"expected_date_stale"}},
		{"unknown phase", Litter{Phase: "weaning"}, []string{"unknown_phase"}},
	}

	for _, tc := range cases {
		got := codes(CheckConsistency(tc.l))
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		for _, c := range tc.want {
			if !got[c] {
				t.Fatalf("%s: expected warning %q, got %v", tc.name, c, got)
			}
		}
	}
}
