package kittens

import (
	"context"
	"time"
)

// Repository guarda gatitos. Los adapters devuelven ErrNotFound cuando el id no existe.
type Repository interface {
	ListByLitter(ctx context.Context, litterID string) ([]Kitten, error)
	GetByID(ctx context.Context, id string) (Kitten, error)

	// ReplaceRoster persiste el plan completo (upsert de Roster + delete de Deleted)
	// de forma atómica.
	ReplaceRoster(ctx context.Context, litterID string, plan RosterPlan) error
	UpdateFields(ctx context.Context, id string, p Patch, updatedAt time.Time) error
}

// WeightRepository guarda el log de crecimiento por gatito.
type WeightRepository interface {
	ListByKitten(ctx context.Context, kittenID string) ([]WeightEntry, error)
	Create(ctx context.Context, e WeightEntry) error
	// Delete con un id inexistente no es error.
	Delete(ctx context.Context, kittenID, entryID string) error
}
