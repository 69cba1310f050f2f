package litters

import (
	"time"

	"cattery-breeding/internal/platform/optional"
)

// Patch es una actualización parcial de un Litter (contrato updateFields).
// Punteros nil / Set sin Present = no tocar.
type Patch struct {
	Name          *string
	Phase         *Phase
	NRRRegistered *bool

	MotherID                  optional.Set[string]
	FatherID                  optional.Set[string]
	ExternalFatherName        optional.Set[string]
	ExternalFatherPedigreeURL optional.Set[string]

	MatingDate     optional.Set[time.Time] // legacy; solo junto con MatingDateFrom, el Service lo sincroniza
	MatingDateFrom optional.Set[time.Time]
	MatingDateTo   optional.Set[time.Time]
	ExpectedDate   optional.Set[time.Time]
	BirthDate      optional.Set[time.Time]
	CompletionDate optional.Set[time.Time]

	KittenCount           optional.Set[int]
	InbreedingCoefficient optional.Set[float64]

	Reasoning               optional.Set[string]
	BloodTypeNotes          optional.Set[string]
	AlternativeCombinations optional.Set[string]
	BirthNotes              optional.Set[string]
	Evaluation              optional.Set[string]
	BuyersInfo              optional.Set[string]
	Notes                   optional.Set[string]
	PregnancyNotes          optional.Set[string]

	// nil = no tocar. Se reemplaza la colección completa.
	MotherWeightLog *[]MotherWeightEntry
}

// IsEmpty indica que no hay ningún campo para escribir.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Phase == nil && p.NRRRegistered == nil &&
		!p.MotherID.Present && !p.FatherID.Present &&
		!p.ExternalFatherName.Present && !p.ExternalFatherPedigreeURL.Present &&
		!p.MatingDate.Present && !p.MatingDateFrom.Present && !p.MatingDateTo.Present &&
		!p.ExpectedDate.Present && !p.BirthDate.Present && !p.CompletionDate.Present &&
		!p.KittenCount.Present && !p.InbreedingCoefficient.Present &&
		!p.Reasoning.Present && !p.BloodTypeNotes.Present && !p.AlternativeCombinations.Present &&
		!p.BirthNotes.Present && !p.Evaluation.Present && !p.BuyersInfo.Present &&
		!p.Notes.Present && !p.PregnancyNotes.Present &&
		p.MotherWeightLog == nil
}

// ApplyTo devuelve una copia de l con los campos presentes del patch aplicados.
// La usan los repos que guardan el modelo directamente (memory).
func (p Patch) ApplyTo(l Litter) Litter {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Phase != nil {
		l.Phase = *p.Phase
	}
	if p.NRRRegistered != nil {
		l.NRRRegistered = *p.NRRRegistered
	}

	p.MotherID.Apply(&l.MotherID)
	p.FatherID.Apply(&l.FatherID)
	p.ExternalFatherName.Apply(&l.ExternalFatherName)
	p.ExternalFatherPedigreeURL.Apply(&l.ExternalFatherPedigreeURL)

	p.MatingDate.Apply(&l.MatingDate)
	p.MatingDateFrom.Apply(&l.MatingDateFrom)
	p.MatingDateTo.Apply(&l.MatingDateTo)
	p.ExpectedDate.Apply(&l.ExpectedDate)
	p.BirthDate.Apply(&l.BirthDate)
	p.CompletionDate.Apply(&l.CompletionDate)

	p.KittenCount.Apply(&l.KittenCount)
	p.InbreedingCoefficient.Apply(&l.InbreedingCoefficient)

	p.Reasoning.Apply(&l.Reasoning)
	p.BloodTypeNotes.Apply(&l.BloodTypeNotes)
	p.AlternativeCombinations.Apply(&l.AlternativeCombinations)
	p.BirthNotes.Apply(&l.BirthNotes)
	p.Evaluation.Apply(&l.Evaluation)
	p.BuyersInfo.Apply(&l.BuyersInfo)
	p.Notes.Apply(&l.Notes)
	p.PregnancyNotes.Apply(&l.PregnancyNotes)

	if p.MotherWeightLog != nil {
		l.MotherWeightLog = append([]MotherWeightEntry(nil), (*p.MotherWeightLog)...)
	}

	return l
}
