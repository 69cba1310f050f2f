package kittens

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"cattery-breeding/internal/platform/optional"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Kitten
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Kitten{}}
}

func (r *testRepo) ListByLitter(ctx context.Context, litterID string) ([]Kitten, error) {
	out := make([]Kitten, 0)
	for _, id := range r.order {
		if k, ok := r.byID[id]; ok && k.LitterID == litterID {
			out = append(out, k)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Kitten, error) {
	k, ok := r.byID[id]
	if !ok {
		return Kitten{}, ErrNotFound
	}
	return k, nil
}

func (r *testRepo) ReplaceRoster(ctx context.Context, litterID string, plan RosterPlan) error {
	for _, id := range plan.Deleted {
		delete(r.byID, id)
	}
	for _, k := range plan.Roster {
		if _, ok := r.byID[k.ID]; !ok {
			r.order = append(r.order, k.ID)
		}
		r.byID[k.ID] = k
	}
	return nil
}

func (r *testRepo) UpdateFields(ctx context.Context, id string, p Patch, updatedAt time.Time) error {
	k, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	k = p.ApplyTo(k)
	k.UpdatedAt = updatedAt
	r.byID[id] = k
	return nil
}

type testWeightRepo struct {
	items []WeightEntry
}

func (r *testWeightRepo) ListByKitten(ctx context.Context, kittenID string) ([]WeightEntry, error) {
	out := make([]WeightEntry, 0)
	for _, e := range r.items {
		if e.KittenID == kittenID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testWeightRepo) Create(ctx context.Context, e WeightEntry) error {
	r.items = append(r.items, e)
	return nil
}

func (r *testWeightRepo) Delete(ctx context.Context, kittenID, entryID string) error {
	out := r.items[:0]
	for _, e := range r.items {
		if e.ID != entryID {
			out = append(out, e)
		}
	}
	r.items = out
	return nil
}

func newTestService() (*Service, *testRepo, *testWeightRepo) {
	repo := newTestRepo()
	weights := &testWeightRepo{}
	svc := NewService(repo, weights)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	svc.newID = seqIDs("k")
	return svc, repo, weights
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func seedRoster(t *testing.T, svc *Service) []Kitten {
	t.Helper()
	saved, _, err := svc.ReplaceRoster(context.Background(), "l1", []Kitten{
		{Name: "Alba", Color: strPtr("blue"), EMSCode: strPtr("NFO a 09")},
		{Name: "Bruno", Color: strPtr("red")},
		{Name: "Cleo", Color: strPtr("black"), Notes: strPtr("smallest")},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return saved
}

// -------------------------
// Tests
// -------------------------

func TestService_ReplaceRoster_DefaultsAndIDs(t *testing.T) {
	svc, _, _ := newTestService()
	saved := seedRoster(t, svc)

	if len(saved) != 3 {
		t.Fatalf("expected 3 kittens, got %d", len(saved))
	}
	for _, k := range saved {
		if k.ID == "" || k.LitterID != "l1" || k.Status != StatusAvailable {
			t.Fatalf("unexpected kitten %#v", k)
		}
	}
}

// Guardar el roster con solo M de N ids (y solo birthWeight) borra los omitidos.
func TestService_ReplaceRoster_PartialSetRemovesOmittedKittens(t *testing.T) {
	svc, repo, _ := newTestService()
	saved := seedRoster(t, svc)

	alba := saved[0]
	after, plan, err := svc.ReplaceRoster(context.Background(), "l1", []Kitten{
		{ID: alba.ID, BirthWeight: intPtr(95)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(after) != 1 || after[0].ID != alba.ID {
		t.Fatalf("expected only %s to survive, got %#v", alba.ID, after)
	}
	if len(plan.Deleted) != 2 {
		t.Fatalf("expected 2 deletions, got %v", plan.Deleted)
	}
	if _, err := repo.GetByID(context.Background(), saved[1].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected omitted kitten to be gone, got %v", err)
	}
	// full replace: los campos no enviados también se pierden
	if after[0].Name != "" || after[0].Color != nil || after[0].EMSCode != nil || after[0].Gender != nil {
		t.Fatalf("expected unsent fields cleared, got %#v", after[0])
	}
	if after[0].Status != StatusAvailable || !after[0].CreatedAt.Equal(alba.CreatedAt) {
		t.Fatalf("expected default status and original created_at, got %#v", after[0])
	}
	if after[0].BirthWeight == nil || *after[0].BirthWeight != 95 {
		t.Fatalf("expected birth weight 95, got %v", after[0].BirthWeight)
	}
}

// Con el set completo de campos, los otros N-M quedan intactos.
func TestService_ReplaceRoster_FullSetKeepsOthersUnchanged(t *testing.T) {
	svc, _, _ := newTestService()
	saved := seedRoster(t, svc)

	target := make([]Kitten, len(saved))
	copy(target, saved)
	target[0].BirthWeight = intPtr(101)

	after, _, err := svc.ReplaceRoster(context.Background(), "l1", target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(after) != 3 {
		t.Fatalf("expected 3 kittens, got %d", len(after))
	}
	for i := 1; i < 3; i++ {
		if after[i].ID != saved[i].ID || *after[i].Color != *saved[i].Color || after[i].BirthWeight != nil {
			t.Fatalf("kitten %d changed: %#v", i, after[i])
		}
	}
	if *after[0].BirthWeight != 101 || *after[0].EMSCode != "NFO a 09" {
		t.Fatalf("unexpected first kitten %#v", after[0])
	}
}

func TestService_SetBirthWeights_OnlyTouchesWeights(t *testing.T) {
	svc, _, _ := newTestService()
	saved := seedRoster(t, svc)

	after, err := svc.SetBirthWeights(context.Background(), "l1", map[string]int{saved[0].ID: 98, saved[2].ID: 87})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(after) != 3 {
		t.Fatalf("expected roster untouched in size, got %d", len(after))
	}
	if *after[0].BirthWeight != 98 || after[1].BirthWeight != nil || *after[2].BirthWeight != 87 {
		t.Fatalf("unexpected weights %v %v %v", after[0].BirthWeight, after[1].BirthWeight, after[2].BirthWeight)
	}
	if *after[2].Notes != "smallest" {
		t.Fatalf("expected notes kept, got %v", after[2].Notes)
	}
}

func TestService_SetBirthWeights_RejectsForeignKitten(t *testing.T) {
	svc, _, _ := newTestService()
	seedRoster(t, svc)

	_, err := svc.SetBirthWeights(context.Background(), "l1", map[string]int{"other": 90})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_ReplaceRoster_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []Kitten{
		{Name: "  "},
		{Name: "x", Status: "lost"},
		{Name: "x", BirthWeight: intPtr(0)},
	}
	for _, k := range cases {
		if _, _, err := svc.ReplaceRoster(context.Background(), "l1", []Kitten{k}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %#v, got %v", k, err)
		}
	}
}

func TestService_UpdateFields_Partial(t *testing.T) {
	svc, _, _ := newTestService()
	saved := seedRoster(t, svc)

	reserved := StatusReserved
	k, err := svc.UpdateFields(context.Background(), saved[1].ID, Patch{
		Status:     &reserved,
		ReservedBy: optional.Value("Familia Pérez"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.Status != StatusReserved || *k.ReservedBy != "Familia Pérez" || *k.Color != "red" {
		t.Fatalf("unexpected kitten %#v", k)
	}
}

func TestService_Weights_SortedDesc(t *testing.T) {
	svc, _, _ := newTestService()
	saved := seedRoster(t, svc)
	id := saved[0].ID

	for _, d := range []int{3, 1, 5, 2} {
		if _, err := svc.AddWeight(context.Background(), id, WeightInput{
			Date:   time.Date(2024, 3, d, 18, 30, 0, 0, time.UTC),
			Weight: float64(90 + d*10),
		}); err != nil {
			t.Fatalf("add weight: %v", err)
		}
	}

	items, err := svc.ListWeights(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(items))
	}
	if !sort.SliceIsSorted(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) }) {
		t.Fatalf("expected descending dates, got %#v", items)
	}
	if items[0].Date.Hour() != 0 {
		t.Fatalf("expected dates truncated to the day, got %v", items[0].Date)
	}

	after, err := svc.RemoveWeight(context.Background(), id, "missing")
	if err != nil || len(after) != 4 {
		t.Fatalf("expected no-op remove, got %d entries, err %v", len(after), err)
	}

	after, err = svc.RemoveWeight(context.Background(), id, items[0].ID)
	if err != nil || len(after) != 3 {
		t.Fatalf("expected 3 entries after remove, got %d, err %v", len(after), err)
	}
}

func TestService_AddWeight_UnknownKitten(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AddWeight(context.Background(), "nope", WeightInput{Date: time.Now(), Weight: 100})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
