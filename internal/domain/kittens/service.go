package kittens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cattery-breeding/internal/domain/datedlog"
	"cattery-breeding/internal/platform/dates"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("kitten not found")
	ErrNoBirthDate  = errors.New("birth date not set")
)

type Service struct {
	repo    Repository
	weights WeightRepository
	now     func() time.Time
	newID   func() string
}

func NewService(repo Repository, weights WeightRepository) *Service {
	return &Service{
		repo:    repo,
		weights: weights,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (s *Service) ListByLitter(ctx context.Context, litterID string) ([]Kitten, error) {
	litterID = strings.TrimSpace(litterID)
	if litterID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByLitter(ctx, litterID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Kitten, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Kitten{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// ReplaceRoster reemplaza el roster completo del litter: lo que no venga en
// target se borra. Devuelve el roster tal como quedó guardado.
func (s *Service) ReplaceRoster(ctx context.Context, litterID string, target []Kitten) ([]Kitten, RosterPlan, error) {
	litterID = strings.TrimSpace(litterID)
	if litterID == "" {
		return nil, RosterPlan{}, ErrInvalidInput
	}

	normalized := make([]Kitten, 0, len(target))
	for _, k := range target {
		nk, err := normalizeKitten(k)
		if err != nil {
			return nil, RosterPlan{}, err
		}
		normalized = append(normalized, nk)
	}

	existing, err := s.repo.ListByLitter(ctx, litterID)
	if err != nil {
		return nil, RosterPlan{}, err
	}

	plan, err := Reconcile(litterID, existing, normalized, s.newID, s.now())
	if err != nil {
		return nil, RosterPlan{}, err
	}

	if err := s.repo.ReplaceRoster(ctx, litterID, plan); err != nil {
		return nil, RosterPlan{}, err
	}

	saved, err := s.repo.ListByLitter(ctx, litterID)
	if err != nil {
		return nil, RosterPlan{}, err
	}
	return saved, plan, nil
}

// UpdateFields es la vía para editar un gatito sin tocar el resto del roster.
func (s *Service) UpdateFields(ctx context.Context, id string, p Patch) (Kitten, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Kitten{}, ErrInvalidInput
	}

	if p.Name != nil {
		n := strings.TrimSpace(*p.Name)
		if n == "" {
			return Kitten{}, ErrInvalidInput
		}
		p.Name = &n
	}
	if p.Status != nil && !p.Status.Valid() {
		return Kitten{}, ErrInvalidInput
	}
	if p.Gender.Value != nil && !p.Gender.Value.Valid() {
		return Kitten{}, ErrInvalidInput
	}
	if p.BirthWeight.Value != nil && *p.BirthWeight.Value <= 0 {
		return Kitten{}, ErrInvalidInput
	}
	p.Color.Value = clean(p.Color.Value)
	p.EMSCode.Value = clean(p.EMSCode.Value)
	p.ReservedBy.Value = clean(p.ReservedBy.Value)
	p.Notes.Value = clean(p.Notes.Value)

	if p.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}

	if err := s.repo.UpdateFields(ctx, id, p, s.now()); err != nil {
		return Kitten{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// SetBirthWeights es la edición de pesos al nacer sobre el roster completo:
// recarga el roster persistido, cambia solo BirthWeight (gramos) y lo guarda
// con ReplaceRoster. Un id que no pertenece al litter es ErrInvalidInput.
func (s *Service) SetBirthWeights(ctx context.Context, litterID string, grams map[string]int) ([]Kitten, error) {
	roster, err := s.ListByLitter(ctx, litterID)
	if err != nil {
		return nil, err
	}

	inLitter := make(map[string]struct{}, len(roster))
	for _, k := range roster {
		inLitter[k.ID] = struct{}{}
	}
	for id, g := range grams {
		if _, ok := inLitter[id]; !ok {
			return nil, fmt.Errorf("%w: kitten %s is not in litter %s", ErrInvalidInput, id, litterID)
		}
		if g <= 0 {
			return nil, ErrInvalidInput
		}
	}

	target := make([]Kitten, 0, len(roster))
	for _, k := range roster {
		if g, ok := grams[k.ID]; ok {
			k.BirthWeight = &g
		}
		target = append(target, k)
	}

	saved, _, err := s.ReplaceRoster(ctx, litterID, target)
	return saved, err
}

func (s *Service) ListWeights(ctx context.Context, kittenID string) ([]WeightEntry, error) {
	k, err := s.GetByID(ctx, kittenID)
	if err != nil {
		return nil, err
	}
	items, err := s.weights.ListByKitten(ctx, k.ID)
	if err != nil {
		return nil, err
	}
	return []WeightEntry(datedlog.Log[WeightEntry](items).Sorted()), nil
}

type WeightInput struct {
	Date   time.Time
	Weight float64
}

// AddWeight agrega una medición y devuelve el log completo (fecha desc).
func (s *Service) AddWeight(ctx context.Context, kittenID string, in WeightInput) ([]WeightEntry, error) {
	if in.Date.IsZero() || in.Weight <= 0 {
		return nil, ErrInvalidInput
	}

	current, err := s.ListWeights(ctx, kittenID)
	if err != nil {
		return nil, err
	}

	log, created := datedlog.Log[WeightEntry](current).AppendEntry(WeightEntry{
		KittenID: strings.TrimSpace(kittenID),
		Date:     dates.Day(in.Date),
		Weight:   in.Weight,
	})
	if err := s.weights.Create(ctx, created); err != nil {
		return nil, err
	}
	return []WeightEntry(log), nil
}

// RemoveWeight: id inexistente => devuelve el log sin cambios.
func (s *Service) RemoveWeight(ctx context.Context, kittenID, entryID string) ([]WeightEntry, error) {
	current, err := s.ListWeights(ctx, kittenID)
	if err != nil {
		return nil, err
	}

	log := datedlog.Log[WeightEntry](current)
	if _, ok := log.Find(entryID); !ok {
		return current, nil
	}
	if err := s.weights.Delete(ctx, strings.TrimSpace(kittenID), entryID); err != nil {
		return nil, err
	}
	return []WeightEntry(log.Remove(entryID)), nil
}

// normalizeKitten: el nombre solo es obligatorio para altas (sin id). Una
// entrada con id reemplaza el registro completo, lo no enviado queda en cero.
func normalizeKitten(k Kitten) (Kitten, error) {
	k.ID = strings.TrimSpace(k.ID)
	k.Name = strings.TrimSpace(k.Name)
	if k.Name == "" && k.ID == "" {
		return Kitten{}, ErrInvalidInput
	}
	if k.Status == "" {
		k.Status = StatusAvailable
	}
	if !k.Status.Valid() {
		return Kitten{}, ErrInvalidInput
	}
	if k.Gender != nil && !k.Gender.Valid() {
		return Kitten{}, ErrInvalidInput
	}
	if k.BirthWeight != nil && *k.BirthWeight <= 0 {
		return Kitten{}, ErrInvalidInput
	}
	k.Color = clean(k.Color)
	k.EMSCode = clean(k.EMSCode)
	k.ReservedBy = clean(k.ReservedBy)
	k.Notes = clean(k.Notes)
	return k, nil
}

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
