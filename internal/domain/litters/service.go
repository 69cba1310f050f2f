package litters

import (
	"context"
	"errors"
	"strings"
	"time"

	"cattery-breeding/internal/domain/datedlog"
	"cattery-breeding/internal/platform/dates"
	"cattery-breeding/internal/platform/optional"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("litter not found")
	ErrNoMatingDate = errors.New("mating date not set")
)

type Service struct {
	repo  Repository
	notes NoteRepository
	now   func() time.Time
}

func NewService(repo Repository, notes NoteRepository) *Service {
	return &Service{
		repo:  repo,
		notes: notes,
		now:   time.Now,
	}
}

type CreateInput struct {
	Name  string
	Phase Phase // vacío => planned

	MotherID                  *string
	FatherID                  *string
	ExternalFatherName        *string
	ExternalFatherPedigreeURL *string

	Reasoning               *string
	InbreedingCoefficient   *float64
	BloodTypeNotes          *string
	AlternativeCombinations *string
	Notes                   *string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Litter, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Litter{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Litter{}, ErrInvalidInput
	}

	phase := in.Phase
	if phase == "" {
		phase = PhasePlanned
	}
	if !phase.Valid() {
		return Litter{}, ErrInvalidInput
	}
	if in.InbreedingCoefficient != nil && *in.InbreedingCoefficient < 0 {
		return Litter{}, ErrInvalidInput
	}

	now := s.now()
	l := Litter{
		ID:                        uuid.NewString(),
		OwnerUserID:               ownerUserID,
		Name:                      name,
		Phase:                     phase,
		MotherID:                  clean(in.MotherID),
		FatherID:                  clean(in.FatherID),
		ExternalFatherName:        clean(in.ExternalFatherName),
		ExternalFatherPedigreeURL: clean(in.ExternalFatherPedigreeURL),
		Reasoning:                 clean(in.Reasoning),
		InbreedingCoefficient:     in.InbreedingCoefficient,
		BloodTypeNotes:            clean(in.BloodTypeNotes),
		AlternativeCombinations:   clean(in.AlternativeCombinations),
		Notes:                     clean(in.Notes),
		MotherWeightLog:           []MotherWeightEntry{},
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return Litter{}, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Litter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Litter{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Litter, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// OwnerOf expone el ownerUserID de un litter (para kittens sin ciclos de imports).
func (s *Service) OwnerOf(ctx context.Context, litterID string) (string, error) {
	l, err := s.GetByID(ctx, litterID)
	if err != nil {
		return "", err
	}
	return l.OwnerUserID, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// UpdateFields aplica una actualización parcial. Los campos ausentes no se tocan.
// Si viene MatingDateFrom, el campo legacy MatingDate se escribe con el mismo valor.
// ExpectedDate NO se recalcula acá.
func (s *Service) UpdateFields(ctx context.Context, id string, p Patch) (Litter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Litter{}, ErrInvalidInput
	}

	p, err := normalizePatch(p)
	if err != nil {
		return Litter{}, err
	}

	if p.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}

	if err := s.repo.UpdateFields(ctx, id, p, s.now()); err != nil {
		return Litter{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// CalculateExpectedDate escribe ExpectedDate = MatingDateFrom + GestationDays.
// Es la única vía que deriva la fecha; editar la monta después la deja desactualizada.
func (s *Service) CalculateExpectedDate(ctx context.Context, id string) (Litter, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return Litter{}, err
	}
	if l.MatingDateFrom == nil {
		return Litter{}, ErrNoMatingDate
	}

	return s.UpdateFields(ctx, l.ID, Patch{ExpectedDate: optional.Value(DueDate(*l.MatingDateFrom))})
}

func (s *Service) AddMotherWeight(ctx context.Context, litterID string, e MotherWeightEntry) (Litter, error) {
	if e.Date.IsZero() || e.Weight <= 0 {
		return Litter{}, ErrInvalidInput
	}
	e.Date = dates.Day(e.Date)
	e.Notes = strings.TrimSpace(e.Notes)

	l, err := s.GetByID(ctx, litterID)
	if err != nil {
		return Litter{}, err
	}

	log := datedlog.Log[MotherWeightEntry](l.MotherWeightLog).Append(e)
	entries := []MotherWeightEntry(log)
	return s.UpdateFields(ctx, l.ID, Patch{MotherWeightLog: &entries})
}

// RemoveMotherWeight con un id inexistente devuelve el litter sin cambios.
func (s *Service) RemoveMotherWeight(ctx context.Context, litterID, entryID string) (Litter, error) {
	l, err := s.GetByID(ctx, litterID)
	if err != nil {
		return Litter{}, err
	}

	current := datedlog.Log[MotherWeightEntry](l.MotherWeightLog)
	if _, ok := current.Find(entryID); !ok {
		return l, nil
	}

	entries := []MotherWeightEntry(current.Remove(entryID))
	return s.UpdateFields(ctx, l.ID, Patch{MotherWeightLog: &entries})
}

// ListPregnancyNotes devuelve las notas ordenadas por fecha desc (vacío si no hay).
func (s *Service) ListPregnancyNotes(ctx context.Context, litterID string) ([]PregnancyNoteEntry, error) {
	litterID = strings.TrimSpace(litterID)
	if litterID == "" {
		return nil, ErrInvalidInput
	}

	items, err := s.notes.ListByLitter(ctx, litterID)
	if err != nil {
		return nil, err
	}
	return []PregnancyNoteEntry(datedlog.Log[PregnancyNoteEntry](items).Sorted()), nil
}

type NoteInput struct {
	Date time.Time
	Note string
}

// AddPregnancyNote agrega la nota y devuelve la colección completa ya ordenada.
func (s *Service) AddPregnancyNote(ctx context.Context, litterID string, in NoteInput) ([]PregnancyNoteEntry, error) {
	note := strings.TrimSpace(in.Note)
	if in.Date.IsZero() || note == "" {
		return nil, ErrInvalidInput
	}

	l, err := s.GetByID(ctx, litterID)
	if err != nil {
		return nil, err
	}

	current, err := s.notes.ListByLitter(ctx, l.ID)
	if err != nil {
		return nil, err
	}

	log, created := datedlog.Log[PregnancyNoteEntry](current).AppendEntry(PregnancyNoteEntry{
		LitterID: l.ID,
		Date:     dates.Day(in.Date),
		Note:     note,
	})

	if err := s.notes.Create(ctx, created); err != nil {
		return nil, err
	}
	return []PregnancyNoteEntry(log), nil
}

// RemovePregnancyNote: si la nota no existe es un no-op.
func (s *Service) RemovePregnancyNote(ctx context.Context, litterID, noteID string) ([]PregnancyNoteEntry, error) {
	current, err := s.ListPregnancyNotes(ctx, litterID)
	if err != nil {
		return nil, err
	}

	log := datedlog.Log[PregnancyNoteEntry](current)
	if _, ok := log.Find(noteID); !ok {
		return current, nil
	}

	if err := s.notes.Delete(ctx, strings.TrimSpace(litterID), noteID); err != nil {
		return nil, err
	}
	return []PregnancyNoteEntry(log.Remove(noteID)), nil
}

func normalizePatch(p Patch) (Patch, error) {
	if p.Name != nil {
		n := strings.TrimSpace(*p.Name)
		if n == "" {
			return Patch{}, ErrInvalidInput
		}
		p.Name = &n
	}
	if p.Phase != nil && !p.Phase.Valid() {
		return Patch{}, ErrInvalidInput
	}
	if p.KittenCount.Value != nil && *p.KittenCount.Value < 0 {
		return Patch{}, ErrInvalidInput
	}
	if p.InbreedingCoefficient.Value != nil && *p.InbreedingCoefficient.Value < 0 {
		return Patch{}, ErrInvalidInput
	}

	for _, d := range []*optional.Set[time.Time]{
		&p.MatingDate, &p.MatingDateFrom, &p.MatingDateTo,
		&p.ExpectedDate, &p.BirthDate, &p.CompletionDate,
	} {
		if d.Value != nil {
			day := dates.Day(*d.Value)
			d.Value = &day
		}
	}

	// campo legacy siempre en sync con matingDateFrom; nunca se escribe solo
	if p.MatingDate.Present && !p.MatingDateFrom.Present {
		return Patch{}, ErrInvalidInput
	}
	if p.MatingDateFrom.Present {
		p.MatingDate = p.MatingDateFrom
	}

	for _, t := range []*optional.Set[string]{
		&p.MotherID, &p.FatherID, &p.ExternalFatherName, &p.ExternalFatherPedigreeURL,
		&p.Reasoning, &p.BloodTypeNotes, &p.AlternativeCombinations, &p.BirthNotes,
		&p.Evaluation, &p.BuyersInfo, &p.Notes, &p.PregnancyNotes,
	} {
		if t.Present {
			t.Value = clean(t.Value)
		}
	}

	if p.MotherWeightLog != nil {
		sorted := []MotherWeightEntry(datedlog.Log[MotherWeightEntry](*p.MotherWeightLog).Sorted())
		p.MotherWeightLog = &sorted
	}

	return p, nil
}

// clean: trim, y "" => nil.
func clean(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
