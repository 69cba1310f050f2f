package litters

import "time"

// Litter representa un ciclo de cría: desde la planificación hasta el cierre.
type Litter struct {
	ID          string
	OwnerUserID string

	Name  string
	Phase Phase // columna "status"

	// Parentesco. ExternalFather* se usa cuando el padre no está en el catálogo;
	// no se fuerza exclusión con FatherID.
	MotherID                  *string
	FatherID                  *string
	ExternalFatherName        *string
	ExternalFatherPedigreeURL *string

	// Ventana de monta. MatingDate es el campo legacy (una sola fecha) y se
	// escribe siempre junto con MatingDateFrom.
	MatingDate     *time.Time
	MatingDateFrom *time.Time
	MatingDateTo   *time.Time

	// ExpectedDate se calcula a pedido (CalculateExpectedDate); no se recalcula
	// si después cambia MatingDateFrom.
	ExpectedDate   *time.Time
	BirthDate      *time.Time
	CompletionDate *time.Time

	// No se reconcilia con el roster de gatitos.
	KittenCount *int

	Reasoning               *string
	InbreedingCoefficient   *float64
	BloodTypeNotes          *string
	AlternativeCombinations *string
	BirthNotes              *string
	Evaluation              *string
	BuyersInfo              *string
	NRRRegistered           bool
	Notes                   *string

	// Texto libre legacy, reemplazado por PregnancyNoteEntry.
	PregnancyNotes *string

	MotherWeightLog []MotherWeightEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MotherWeightEntry es una medición del peso de la madre.
type MotherWeightEntry struct {
	ID     string
	Date   time.Time
	Weight float64
	Notes  string
}

func (e MotherWeightEntry) EntryID() string                    { return e.ID }
func (e MotherWeightEntry) EntryDate() time.Time               { return e.Date }
func (e MotherWeightEntry) WithID(id string) MotherWeightEntry { e.ID = id; return e }

// PregnancyNoteEntry es una nota fechada de la preñez. Se guarda aparte del Litter.
type PregnancyNoteEntry struct {
	ID       string
	LitterID string
	Date     time.Time
	Note     string
}

func (e PregnancyNoteEntry) EntryID() string                     { return e.ID }
func (e PregnancyNoteEntry) EntryDate() time.Time                { return e.Date }
func (e PregnancyNoteEntry) WithID(id string) PregnancyNoteEntry { e.ID = id; return e }
