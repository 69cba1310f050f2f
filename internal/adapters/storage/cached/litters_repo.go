// Package cached decora repositorios con un cache.Store (read-through).
// El caché nunca es fuente de verdad: cualquier error de caché cae al repo.
package cached

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cattery-breeding/internal/adapters/storage/schema"
	"cattery-breeding/internal/domain/litters"
	"cattery-breeding/internal/platform/logger"
	"cattery-breeding/internal/ports/cache"
)

const litterKeyPrefix = "litter:"

type LittersRepo struct {
	next  litters.Repository
	store cache.Store
	ttl   time.Duration
	log   logger.Logger
}

func NewLittersRepo(next litters.Repository, store cache.Store, ttl time.Duration, log logger.Logger) *LittersRepo {
	if log == nil {
		log = logger.Nop()
	}
	return &LittersRepo{next: next, store: store, ttl: ttl, log: log}
}

func litterKey(id string) string { return litterKeyPrefix + id }

func (r *LittersRepo) Create(ctx context.Context, l litters.Litter) error {
	return r.next.Create(ctx, l)
}

func (r *LittersRepo) GetByID(ctx context.Context, id string) (litters.Litter, error) {
	if raw, err := r.store.Load(ctx, litterKey(id)); err == nil {
		var rec schema.LitterRecord
		if err := json.Unmarshal(raw, &rec); err == nil {
			return rec.ToLitter(), nil
		}
		r.log.Warn("cache: corrupt litter entry", map[string]any{"litter_id": id})
	} else if !errors.Is(err, cache.ErrMiss) {
		r.log.Warn("cache: load failed", map[string]any{"litter_id": id, "error": err.Error()})
	}

	l, err := r.next.GetByID(ctx, id)
	if err != nil {
		return litters.Litter{}, err
	}

	if raw, err := json.Marshal(schema.FromLitter(l)); err == nil {
		if err := r.store.Save(ctx, litterKey(id), raw, r.ttl); err != nil {
			r.log.Warn("cache: save failed", map[string]any{"litter_id": id, "error": err.Error()})
		}
	}
	return l, nil
}

func (r *LittersRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]litters.Litter, error) {
	return r.next.ListByOwner(ctx, ownerUserID)
}

func (r *LittersRepo) UpdateFields(ctx context.Context, id string, p litters.Patch, updatedAt time.Time) error {
	err := r.next.UpdateFields(ctx, id, p, updatedAt)
	r.invalidate(ctx, id)
	return err
}

func (r *LittersRepo) Delete(ctx context.Context, id string) error {
	err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *LittersRepo) invalidate(ctx context.Context, id string) {
	if err := r.store.Delete(ctx, litterKey(id)); err != nil {
		r.log.Warn("cache: invalidate failed", map[string]any{"litter_id": id, "error": err.Error()})
	}
}
