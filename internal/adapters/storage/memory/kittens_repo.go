package memory

import (
	"context"
	"sort"
	"time"

	"cattery-breeding/internal/domain/kittens"
)

type kittenRepo struct {
	s *Store
}

func (r *kittenRepo) ListByLitter(ctx context.Context, litterID string) ([]kittens.Kitten, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]kittens.Kitten, 0)
	for _, k := range r.s.kittens {
		if k.LitterID == litterID {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.kittenSeq[out[i].ID] < r.s.kittenSeq[out[j].ID]
	})
	return out, nil
}

func (r *kittenRepo) GetByID(ctx context.Context, id string) (kittens.Kitten, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	k, ok := r.s.kittens[id]
	if !ok {
		return kittens.Kitten{}, kittens.ErrNotFound
	}
	return k, nil
}

// ReplaceRoster aplica el plan bajo un único lock (todo o nada).
func (r *kittenRepo) ReplaceRoster(ctx context.Context, litterID string, plan kittens.RosterPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, id := range plan.Deleted {
		if k, ok := r.s.kittens[id]; ok && k.LitterID == litterID {
			r.s.deleteKittenLocked(id)
		}
	}

	// la posición en el roster sigue el orden del input
	for i, k := range plan.Roster {
		r.s.kittenSeq[k.ID] = i
		r.s.kittens[k.ID] = k
	}
	return nil
}

func (r *kittenRepo) UpdateFields(ctx context.Context, id string, p kittens.Patch, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k, ok := r.s.kittens[id]
	if !ok {
		return kittens.ErrNotFound
	}
	k = p.ApplyTo(k)
	k.UpdatedAt = updatedAt
	r.s.kittens[id] = k
	return nil
}

type weightRepo struct {
	s *Store
}

func (r *weightRepo) ListByKitten(ctx context.Context, kittenID string) ([]kittens.WeightEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]kittens.WeightEntry, 0)
	for _, e := range r.s.weights {
		if e.KittenID == kittenID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *weightRepo) Create(ctx context.Context, e kittens.WeightEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.kittens[e.KittenID]; !ok {
		return kittens.ErrNotFound
	}
	r.s.weights[e.ID] = e
	return nil
}

func (r *weightRepo) Delete(ctx context.Context, kittenID, entryID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if e, ok := r.s.weights[entryID]; ok && e.KittenID == kittenID {
		delete(r.s.weights, entryID)
	}
	return nil
}

// deleteKittenLocked requiere s.mu tomado.
func (s *Store) deleteKittenLocked(id string) {
	delete(s.kittens, id)
	delete(s.kittenSeq, id)
	for wid, e := range s.weights {
		if e.KittenID == id {
			delete(s.weights, wid)
		}
	}
}
