package litters

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"cattery-breeding/internal/platform/dates"
	"cattery-breeding/internal/platform/optional"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Litter
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Litter{}}
}

func (r *testRepo) Create(ctx context.Context, l Litter) error {
	if _, ok := r.byID[l.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[l.ID] = l
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Litter, error) {
	l, ok := r.byID[id]
	if !ok {
		return Litter{}, ErrNotFound
	}
	return l, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Litter, error) {
	out := make([]Litter, 0)
	for _, l := range r.byID {
		if l.OwnerUserID == ownerUserID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *testRepo) UpdateFields(ctx context.Context, id string, p Patch, updatedAt time.Time) error {
	l, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	l = p.ApplyTo(l)
	l.UpdatedAt = updatedAt
	r.byID[id] = l
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testNoteRepo struct {
	items []PregnancyNoteEntry
}

func (r *testNoteRepo) ListByLitter(ctx context.Context, litterID string) ([]PregnancyNoteEntry, error) {
	out := make([]PregnancyNoteEntry, 0)
	for _, n := range r.items {
		if n.LitterID == litterID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *testNoteRepo) Create(ctx context.Context, n PregnancyNoteEntry) error {
	r.items = append(r.items, n)
	return nil
}

func (r *testNoteRepo) Delete(ctx context.Context, litterID, noteID string) error {
	out := r.items[:0]
	for _, n := range r.items {
		if n.ID != noteID {
			out = append(out, n)
		}
	}
	r.items = out
	return nil
}

func newTestService() (*Service, *testRepo, *testNoteRepo) {
	repo := newTestRepo()
	notes := &testNoteRepo{}
	svc := NewService(repo, notes)
	svc.now = func() time.Time { return time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC) }
	return svc, repo, notes
}

func mustCreate(t *testing.T, svc *Service) Litter {
	t.Helper()
	l, err := svc.Create(context.Background(), "u1", CreateInput{Name: "Spring litter"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return l
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsToPlanned(t *testing.T) {
	svc, _, _ := newTestService()

	l := mustCreate(t, svc)
	if l.Phase != PhasePlanned || l.ID == "" || l.MatingDateFrom != nil || l.MotherWeightLog == nil {
		t.Fatalf("unexpected litter %#v", l)
	}

	if _, err := svc.Create(context.Background(), "u1", CreateInput{Name: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "u1", CreateInput{Name: "x", Phase: "weaning"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad phase, got %v", err)
	}
}

// Calcular la fecha esperada y después editar la monta deja expectedDate
// desactualizado: no se recalcula solo.
func TestService_ExpectedDate_StaysStaleAfterMatingEdit(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	l := mustCreate(t, svc)

	if _, err := svc.CalculateExpectedDate(ctx, l.ID); !errors.Is(err, ErrNoMatingDate) {
		t.Fatalf("expected ErrNoMatingDate, got %v", err)
	}

	if _, err := svc.UpdateFields(ctx, l.ID, Patch{MatingDateFrom: optional.Value(*day("2024-01-10"))}); err != nil {
		t.Fatalf("set mating date: %v", err)
	}

	l, err := svc.CalculateExpectedDate(ctx, l.ID)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if dates.Format(*l.ExpectedDate) != "2024-03-15" {
		t.Fatalf("expected 2024-03-15, got %s", dates.Format(*l.ExpectedDate))
	}

	l, err = svc.UpdateFields(ctx, l.ID, Patch{MatingDateFrom: optional.Value(*day("2024-01-20"))})
	if err != nil {
		t.Fatalf("edit mating date: %v", err)
	}
	if dates.Format(*l.ExpectedDate) != "2024-03-15" {
		t.Fatalf("expected stale 2024-03-15, got %s", dates.Format(*l.ExpectedDate))
	}
	if !codes(CheckConsistency(l))["expected_date_stale"] {
		t.Fatalf("expected stale warning")
	}
}

func TestService_UpdateFields_LegacyMatingDateFollowsFrom(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	l := mustCreate(t, svc)

	l, err := svc.UpdateFields(ctx, l.ID, Patch{MatingDateFrom: optional.Value(time.Date(2024, 1, 10, 22, 15, 0, 0, time.UTC))})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if l.MatingDate == nil || !l.MatingDate.Equal(*l.MatingDateFrom) || l.MatingDateFrom.Hour() != 0 {
		t.Fatalf("expected legacy date synced and truncated, got %v / %v", l.MatingDate, l.MatingDateFrom)
	}

	l, err = svc.UpdateFields(ctx, l.ID, Patch{MatingDateFrom: optional.Null[time.Time]()})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if l.MatingDate != nil || l.MatingDateFrom != nil {
		t.Fatalf("expected both cleared, got %v / %v", l.MatingDate, l.MatingDateFrom)
	}
}

func TestService_UpdateFields_LegacyMatingDateAloneIsRejected(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	l := mustCreate(t, svc)

	from := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if _, err := svc.UpdateFields(ctx, l.ID, Patch{MatingDateFrom: optional.Value(from)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	_, err := svc.UpdateFields(ctx, l.ID, Patch{MatingDate: optional.Value(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	got, err := svc.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.MatingDate.Equal(from) || !got.MatingDateFrom.Equal(from) {
		t.Fatalf("expected dates untouched, got %v / %v", got.MatingDate, got.MatingDateFrom)
	}
}

func TestService_UpdateFields_PartialLeavesOthersUntouched(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	l := mustCreate(t, svc)

	reason := "  improve coat  "
	l, err := svc.UpdateFields(ctx, l.ID, Patch{Reasoning: optional.Value(reason), KittenCount: optional.Value(4)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	phase := PhaseActive
	l, err = svc.UpdateFields(ctx, l.ID, Patch{Phase: &phase})
	if err != nil {
		t.Fatalf("update phase: %v", err)
	}
	if l.Phase != PhaseActive || *l.Reasoning != "improve coat" || *l.KittenCount != 4 || l.Name != "Spring litter" {
		t.Fatalf("unexpected litter %#v", l)
	}
}

func TestService_UpdateFields_PhaseIsCallerDeclared(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	l := mustCreate(t, svc)

	// un birthDate no avanza la fase
	l, err := svc.UpdateFields(ctx, l.ID, Patch{BirthDate: optional.Value(*day("2024-03-14"))})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if l.Phase != PhasePlanned {
		t.Fatalf("expected phase to stay planned, got %s", l.Phase)
	}

	// y retroceder tampoco se bloquea
	completed, planned := PhaseCompleted, PhasePlanned
	if _, err := svc.UpdateFields(ctx, l.ID, Patch{Phase: &completed}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if l, err = svc.UpdateFields(ctx, l.ID, Patch{Phase: &planned}); err != nil || l.Phase != PhasePlanned {
		t.Fatalf("expected backwards edit accepted, got %s (%v)", l.Phase, err)
	}
}

func TestService_UpdateFields_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	l := mustCreate(t, svc)

	blank := " "
	bad := Phase("weaning")
	cases := []Patch{
		{Name: &blank},
		{Phase: &bad},
		{KittenCount: optional.Value(-1)},
		{InbreedingCoefficient: optional.Value(-0.1)},
	}
	for _, p := range cases {
		if _, err := svc.UpdateFields(ctx, l.ID, p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", p, err)
		}
	}

	if _, err := svc.UpdateFields(ctx, "missing", Patch{Name: &l.Name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_MotherWeights(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	l := mustCreate(t, svc)

	for _, d := range []string{"2024-02-01", "2024-02-15", "2024-01-20"} {
		var err error
		l, err = svc.AddMotherWeight(ctx, l.ID, MotherWeightEntry{Date: *day(d), Weight: 4100})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if !sort.SliceIsSorted(l.MotherWeightLog, func(i, j int) bool {
			return l.MotherWeightLog[i].Date.After(l.MotherWeightLog[j].Date)
		}) {
			t.Fatalf("expected descending log after adding %s", d)
		}
	}
	if dates.Format(l.MotherWeightLog[0].Date) != "2024-02-15" {
		t.Fatalf("expected newest first, got %s", dates.Format(l.MotherWeightLog[0].Date))
	}

	same, err := svc.RemoveMotherWeight(ctx, l.ID, "missing")
	if err != nil || len(same.MotherWeightLog) != 3 {
		t.Fatalf("expected no-op remove, got %d (%v)", len(same.MotherWeightLog), err)
	}

	l, err = svc.RemoveMotherWeight(ctx, l.ID, l.MotherWeightLog[1].ID)
	if err != nil || len(l.MotherWeightLog) != 2 {
		t.Fatalf("expected 2 entries, got %d (%v)", len(l.MotherWeightLog), err)
	}

	if _, err := svc.AddMotherWeight(ctx, l.ID, MotherWeightEntry{Date: *day("2024-02-20")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero weight, got %v", err)
	}
}

func TestService_PregnancyNotes(t *testing.T) {
	svc, _, notes := newTestService()
	ctx := context.Background()
	l := mustCreate(t, svc)

	empty, err := svc.ListPregnancyNotes(ctx, l.ID)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list, got %v (%v)", empty, err)
	}

	for _, d := range []string{"2024-02-01", "2024-02-20", "2024-02-10"} {
		if _, err := svc.AddPregnancyNote(ctx, l.ID, NoteInput{Date: *day(d), Note: "ok " + d}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	items, err := svc.ListPregnancyNotes(ctx, l.ID)
	if err != nil || len(items) != 3 {
		t.Fatalf("expected 3 notes, got %d (%v)", len(items), err)
	}
	if dates.Format(items[0].Date) != "2024-02-20" || dates.Format(items[2].Date) != "2024-02-01" {
		t.Fatalf("expected descending order, got %v", items)
	}

	if _, err := svc.RemovePregnancyNote(ctx, l.ID, "missing"); err != nil || len(notes.items) != 3 {
		t.Fatalf("expected no-op remove, got %d (%v)", len(notes.items), err)
	}

	items, err = svc.RemovePregnancyNote(ctx, l.ID, items[0].ID)
	if err != nil || len(items) != 2 || len(notes.items) != 2 {
		t.Fatalf("expected 2 notes, got %d (%v)", len(items), err)
	}

	if _, err := svc.AddPregnancyNote(ctx, l.ID, NoteInput{Date: *day("2024-02-21"), Note: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank note, got %v", err)
	}
	if _, err := svc.AddPregnancyNote(ctx, "missing", NoteInput{Date: *day("2024-02-21"), Note: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
