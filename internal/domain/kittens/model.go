package kittens

import (
	"time"

	"cattery-breeding/internal/platform/optional"
)

// Gender del gatito; nil = todavía sin determinar.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Status de venta/reserva.
// @Enum available, reserved, sold, keeping
type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
	StatusKeeping   Status = "keeping"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusKeeping:
		return true
	}
	return false
}

// Kitten pertenece a un único Litter. El id se mantiene entre ediciones para
// que los pesos queden colgados de un id estable.
type Kitten struct {
	ID       string
	LitterID string

	Name       string
	Gender     *Gender
	Color      *string
	EMSCode    *string
	Status     Status
	ReservedBy *string
	Notes      *string

	BirthWeight *int // gramos

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeightEntry es una medición de crecimiento (gramos).
type WeightEntry struct {
	ID       string
	KittenID string
	Date     time.Time
	Weight   float64
}

func (e WeightEntry) EntryID() string              { return e.ID }
func (e WeightEntry) EntryDate() time.Time         { return e.Date }
func (e WeightEntry) WithID(id string) WeightEntry { e.ID = id; return e }

// Patch es el contrato updateFields(id, partial) para un gatito.
// No confundir con ReplaceRoster, que reemplaza el roster completo.
type Patch struct {
	Name   *string
	Status *Status

	Gender      optional.Set[Gender]
	Color       optional.Set[string]
	EMSCode     optional.Set[string]
	ReservedBy  optional.Set[string]
	Notes       optional.Set[string]
	BirthWeight optional.Set[int]
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Status == nil &&
		!p.Gender.Present && !p.Color.Present && !p.EMSCode.Present &&
		!p.ReservedBy.Present && !p.Notes.Present && !p.BirthWeight.Present
}

func (p Patch) ApplyTo(k Kitten) Kitten {
	if p.Name != nil {
		k.Name = *p.Name
	}
	if p.Status != nil {
		k.Status = *p.Status
	}
	p.Gender.Apply(&k.Gender)
	p.Color.Apply(&k.Color)
	p.EMSCode.Apply(&k.EMSCode)
	p.ReservedBy.Apply(&k.ReservedBy)
	p.Notes.Apply(&k.Notes)
	p.BirthWeight.Apply(&k.BirthWeight)
	return k
}
