package litters

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l Litter) error
	GetByID(ctx context.Context, id string) (Litter, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Litter, error)

	// UpdateFields escribe solo los campos presentes en p (update parcial).
	UpdateFields(ctx context.Context, id string, p Patch, updatedAt time.Time) error

	// Delete borra el litter; el store hace cascade a gatitos y logs.
	Delete(ctx context.Context, id string) error
}

// NoteRepository guarda las notas de preñez, separadas del registro del Litter.
type NoteRepository interface {
	ListByLitter(ctx context.Context, litterID string) ([]PregnancyNoteEntry, error)
	Create(ctx context.Context, n PregnancyNoteEntry) error
	// Delete de una nota inexistente no es error.
	Delete(ctx context.Context, litterID, noteID string) error
}
