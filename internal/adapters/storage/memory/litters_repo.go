package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cattery-breeding/internal/domain/litters"
)

type litterRepo struct {
	s *Store
}

func (r *litterRepo) Create(ctx context.Context, l litters.Litter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("litter id required")
	}
	if _, exists := r.s.litters[l.ID]; exists {
		return errors.New("litter already exists")
	}
	r.s.litters[l.ID] = cloneLitter(l)
	return nil
}

func (r *litterRepo) GetByID(ctx context.Context, id string) (litters.Litter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.litters[id]
	if !ok {
		return litters.Litter{}, litters.ErrNotFound
	}
	return cloneLitter(l), nil
}

func (r *litterRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]litters.Litter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]litters.Litter, 0)
	for _, l := range r.s.litters {
		if l.OwnerUserID == ownerUserID {
			out = append(out, cloneLitter(l))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *litterRepo) UpdateFields(ctx context.Context, id string, p litters.Patch, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.litters[id]
	if !ok {
		return litters.ErrNotFound
	}
	l = p.ApplyTo(l)
	l.UpdatedAt = updatedAt
	r.s.litters[id] = cloneLitter(l)
	return nil
}

// Delete hace cascade a notas, gatitos y sus pesos.
func (r *litterRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.litters[id]; !ok {
		return litters.ErrNotFound
	}
	delete(r.s.litters, id)

	for nid, n := range r.s.notes {
		if n.LitterID == id {
			delete(r.s.notes, nid)
		}
	}
	for kid, k := range r.s.kittens {
		if k.LitterID == id {
			r.s.deleteKittenLocked(kid)
		}
	}
	return nil
}

func cloneLitter(l litters.Litter) litters.Litter {
	l.MotherWeightLog = append([]litters.MotherWeightEntry{}, l.MotherWeightLog...)
	return l
}

type noteRepo struct {
	s *Store
}

func (r *noteRepo) ListByLitter(ctx context.Context, litterID string) ([]litters.PregnancyNoteEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]litters.PregnancyNoteEntry, 0)
	for _, n := range r.s.notes {
		if n.LitterID == litterID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *noteRepo) Create(ctx context.Context, n litters.PregnancyNoteEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.litters[n.LitterID]; !ok {
		return litters.ErrNotFound
	}
	r.s.notes[n.ID] = n
	return nil
}

func (r *noteRepo) Delete(ctx context.Context, litterID, noteID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if n, ok := r.s.notes[noteID]; ok && n.LitterID == litterID {
		delete(r.s.notes, noteID)
	}
	return nil
}
