package schema

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cattery-breeding/internal/domain/kittens"
	"cattery-breeding/internal/domain/litters"
	"cattery-breeding/internal/platform/optional"
)

func TestColumns_CanonicalToSnake(t *testing.T) {
	cases := map[string]string{
		"matingDateFrom":            "mating_date_from",
		"externalFatherPedigreeUrl": "external_father_pedigree_url",
		"phase":                     "status",
		"nrrRegistered":             "nrr_registered",
	}
	for field, want := range cases {
		got, err := LitterColumn(field)
		if err != nil || got != want {
			t.Fatalf("%s: expected %q, got %q (%v)", field, want, got, err)
		}
	}

	if got, err := KittenColumn("birthWeight"); err != nil || got != "birth_weight" {
		t.Fatalf("expected birth_weight, got %q (%v)", got, err)
	}
	if _, err := LitterColumn("bogus"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLitterRecord_NullsAreNeverOmitted(t *testing.T) {
	rec := FromLitter(litters.Litter{ID: "l1", Name: "A", Phase: litters.PhasePlanned})

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, col := range litterColumns {
		if _, ok := m[col]; !ok {
			t.Fatalf("expected key %q in record json", col)
		}
	}
	if m["mating_date_from"] != nil || m["kitten_count"] != nil {
		t.Fatalf("expected explicit nulls, got %v / %v", m["mating_date_from"], m["kitten_count"])
	}
	if _, ok := m["mother_weight_log"].([]any); !ok {
		t.Fatalf("expected mother_weight_log to be an array, got %T", m["mother_weight_log"])
	}
}

func TestLitterRecord_RoundTrip(t *testing.T) {
	from := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	count := 4
	l := litters.Litter{
		ID:             "l1",
		OwnerUserID:    "u1",
		Name:           "Spring",
		Phase:          litters.PhasePending,
		MatingDate:     &from,
		MatingDateFrom: &from,
		KittenCount:    &count,
		NRRRegistered:  true,
		MotherWeightLog: []litters.MotherWeightEntry{
			{ID: "w1", Date: from, Weight: 4200, Notes: "pre"},
		},
	}

	got := FromLitter(l).ToLitter()
	if got.Phase != litters.PhasePending || !got.MatingDateFrom.Equal(from) || *got.KittenCount != 4 || !got.NRRRegistered {
		t.Fatalf("unexpected round trip %#v", got)
	}
	if len(got.MotherWeightLog) != 1 || got.MotherWeightLog[0].Weight != 4200 {
		t.Fatalf("unexpected weight log %#v", got.MotherWeightLog)
	}
}

func TestLitterRecord_DateFromOtherZoneNormalized(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	d := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	got := LitterRecord{BirthDate: &d}.ToLitter()
	if got.BirthDate.Location() != time.UTC || got.BirthDate.Day() != 15 {
		t.Fatalf("expected 2024-03-15 UTC, got %v", got.BirthDate)
	}
}

func TestLitterRecord_MotherWeightLogJSON(t *testing.T) {
	b, err := LitterRecord{}.MotherWeightLogJSON()
	if err != nil || string(b) != "[]" {
		t.Fatalf("expected [] for empty log, got %s (%v)", b, err)
	}

	var r LitterRecord
	if err := r.ScanMotherWeightLog([]byte(`[{"id":"w1","date":"2024-01-02T00:00:00Z","weight":4100,"notes":""}]`)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(r.MotherWeightLog) != 1 || r.MotherWeightLog[0].ID != "w1" {
		t.Fatalf("unexpected log %#v", r.MotherWeightLog)
	}
}

func TestLitterAssignments_OnlyPresentFields(t *testing.T) {
	name := "Renamed"
	d := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	log := []litters.MotherWeightEntry{}

	as, err := LitterAssignments(litters.Patch{
		Name:            &name,
		MatingDateFrom:  optional.Value(d),
		BirthDate:       optional.Null[time.Time](),
		MotherWeightLog: &log,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]any{}
	cols := make([]string, 0, len(as))
	for _, a := range as {
		got[a.Column] = a.Value
		cols = append(cols, a.Column)
	}
	if strings.Join(cols, ",") != "name,mating_date_from,birth_date,mother_weight_log" {
		t.Fatalf("unexpected columns %v", cols)
	}
	if got["birth_date"] != nil {
		t.Fatalf("expected NULL for birth_date, got %v", got["birth_date"])
	}
	if got["mother_weight_log"] != "[]" {
		t.Fatalf("expected empty json array, got %v", got["mother_weight_log"])
	}
}

func TestKittenRecord_RoundTripAndAssignments(t *testing.T) {
	g := kittens.GenderFemale
	w := 95
	k := kittens.Kitten{ID: "k1", LitterID: "l1", Name: "Alba", Gender: &g, Status: kittens.StatusKeeping, BirthWeight: &w}

	got := FromKitten(k).ToKitten()
	if *got.Gender != kittens.GenderFemale || got.Status != kittens.StatusKeeping || *got.BirthWeight != 95 {
		t.Fatalf("unexpected round trip %#v", got)
	}

	as := KittenAssignments(kittens.Patch{BirthWeight: optional.Value(101), Gender: optional.Null[kittens.Gender]()})
	if len(as) != 2 || as[0].Column != "gender" || as[0].Value != nil || as[1].Column != "birth_weight" || as[1].Value != 101 {
		t.Fatalf("unexpected assignments %#v", as)
	}
}
