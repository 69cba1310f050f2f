package schema

import (
	"encoding/json"
	"time"

	"cattery-breeding/internal/domain/litters"
	"cattery-breeding/internal/platform/dates"
	"cattery-breeding/internal/platform/optional"
)

// LitterRecord es la fila de "litters" (y su forma JSON en caché).
type LitterRecord struct {
	ID          string `json:"id" db:"id"`
	OwnerUserID string `json:"owner_user_id" db:"owner_user_id"`
	Name        string `json:"name" db:"name"`
	Status      string `json:"status" db:"status"`

	MotherID                  *string `json:"mother_id" db:"mother_id"`
	FatherID                  *string `json:"father_id" db:"father_id"`
	ExternalFatherName        *string `json:"external_father_name" db:"external_father_name"`
	ExternalFatherPedigreeURL *string `json:"external_father_pedigree_url" db:"external_father_pedigree_url"`

	MatingDate     *time.Time `json:"mating_date" db:"mating_date"`
	MatingDateFrom *time.Time `json:"mating_date_from" db:"mating_date_from"`
	MatingDateTo   *time.Time `json:"mating_date_to" db:"mating_date_to"`
	ExpectedDate   *time.Time `json:"expected_date" db:"expected_date"`
	BirthDate      *time.Time `json:"birth_date" db:"birth_date"`
	CompletionDate *time.Time `json:"completion_date" db:"completion_date"`

	KittenCount             *int     `json:"kitten_count" db:"kitten_count"`
	Reasoning               *string  `json:"reasoning" db:"reasoning"`
	InbreedingCoefficient   *float64 `json:"inbreeding_coefficient" db:"inbreeding_coefficient"`
	BloodTypeNotes          *string  `json:"blood_type_notes" db:"blood_type_notes"`
	AlternativeCombinations *string  `json:"alternative_combinations" db:"alternative_combinations"`
	BirthNotes              *string  `json:"birth_notes" db:"birth_notes"`
	Evaluation              *string  `json:"evaluation" db:"evaluation"`
	BuyersInfo              *string  `json:"buyers_info" db:"buyers_info"`
	NRRRegistered           bool     `json:"nrr_registered" db:"nrr_registered"`
	Notes                   *string  `json:"notes" db:"notes"`
	PregnancyNotes          *string  `json:"pregnancy_notes" db:"pregnancy_notes"`

	MotherWeightLog []MotherWeightRecord `json:"mother_weight_log" db:"mother_weight_log"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MotherWeightRecord es un elemento del jsonb mother_weight_log.
type MotherWeightRecord struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Notes  string    `json:"notes"`
}

func FromLitter(l litters.Litter) LitterRecord {
	return LitterRecord{
		ID:                        l.ID,
		OwnerUserID:               l.OwnerUserID,
		Name:                      l.Name,
		Status:                    string(l.Phase),
		MotherID:                  l.MotherID,
		FatherID:                  l.FatherID,
		ExternalFatherName:        l.ExternalFatherName,
		ExternalFatherPedigreeURL: l.ExternalFatherPedigreeURL,
		MatingDate:                l.MatingDate,
		MatingDateFrom:            l.MatingDateFrom,
		MatingDateTo:              l.MatingDateTo,
		ExpectedDate:              l.ExpectedDate,
		BirthDate:                 l.BirthDate,
		CompletionDate:            l.CompletionDate,
		KittenCount:               l.KittenCount,
		Reasoning:                 l.Reasoning,
		InbreedingCoefficient:     l.InbreedingCoefficient,
		BloodTypeNotes:            l.BloodTypeNotes,
		AlternativeCombinations:   l.AlternativeCombinations,
		BirthNotes:                l.BirthNotes,
		Evaluation:                l.Evaluation,
		BuyersInfo:                l.BuyersInfo,
		NRRRegistered:             l.NRRRegistered,
		Notes:                     l.Notes,
		PregnancyNotes:            l.PregnancyNotes,
		MotherWeightLog:           fromMotherWeights(l.MotherWeightLog),
		CreatedAt:                 l.CreatedAt,
		UpdatedAt:                 l.UpdatedAt,
	}
}

// ToLitter no valida el status: un valor desconocido se conserva y lo marca
// CheckConsistency.
func (r LitterRecord) ToLitter() litters.Litter {
	return litters.Litter{
		ID:                        r.ID,
		OwnerUserID:               r.OwnerUserID,
		Name:                      r.Name,
		Phase:                     litters.Phase(r.Status),
		MotherID:                  r.MotherID,
		FatherID:                  r.FatherID,
		ExternalFatherName:        r.ExternalFatherName,
		ExternalFatherPedigreeURL: r.ExternalFatherPedigreeURL,
		MatingDate:                utcDate(r.MatingDate),
		MatingDateFrom:            utcDate(r.MatingDateFrom),
		MatingDateTo:              utcDate(r.MatingDateTo),
		ExpectedDate:              utcDate(r.ExpectedDate),
		BirthDate:                 utcDate(r.BirthDate),
		CompletionDate:            utcDate(r.CompletionDate),
		KittenCount:               r.KittenCount,
		Reasoning:                 r.Reasoning,
		InbreedingCoefficient:     r.InbreedingCoefficient,
		BloodTypeNotes:            r.BloodTypeNotes,
		AlternativeCombinations:   r.AlternativeCombinations,
		BirthNotes:                r.BirthNotes,
		Evaluation:                r.Evaluation,
		BuyersInfo:                r.BuyersInfo,
		NRRRegistered:             r.NRRRegistered,
		Notes:                     r.Notes,
		PregnancyNotes:            r.PregnancyNotes,
		MotherWeightLog:           toMotherWeights(r.MotherWeightLog),
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
	}
}

// MotherWeightLogJSON es el valor del jsonb (siempre un array, nunca null).
func (r LitterRecord) MotherWeightLogJSON() ([]byte, error) {
	if r.MotherWeightLog == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.MotherWeightLog)
}

// ScanMotherWeightLog decodifica el jsonb leído de la base.
func (r *LitterRecord) ScanMotherWeightLog(raw []byte) error {
	r.MotherWeightLog = []MotherWeightRecord{}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, &r.MotherWeightLog)
}

// LitterAssignments traduce un Patch a columnas, en orden fijo.
// Solo los campos presentes; updated_at lo agrega el adapter.
func LitterAssignments(p litters.Patch) ([]Assignment, error) {
	out := make([]Assignment, 0, 8)
	col := func(field string) string { return mustColumn(LitterColumn, field) }

	if p.Name != nil {
		out = append(out, Assignment{Column: col("name"), Value: *p.Name})
	}
	if p.Phase != nil {
		out = append(out, Assignment{Column: col("phase"), Value: string(*p.Phase)})
	}
	if p.NRRRegistered != nil {
		out = append(out, Assignment{Column: col("nrrRegistered"), Value: *p.NRRRegistered})
	}

	out = appendSet(out, col("motherId"), p.MotherID)
	out = appendSet(out, col("fatherId"), p.FatherID)
	out = appendSet(out, col("externalFatherName"), p.ExternalFatherName)
	out = appendSet(out, col("externalFatherPedigreeUrl"), p.ExternalFatherPedigreeURL)

	out = appendSet(out, col("matingDate"), p.MatingDate)
	out = appendSet(out, col("matingDateFrom"), p.MatingDateFrom)
	out = appendSet(out, col("matingDateTo"), p.MatingDateTo)
	out = appendSet(out, col("expectedDate"), p.ExpectedDate)
	out = appendSet(out, col("birthDate"), p.BirthDate)
	out = appendSet(out, col("completionDate"), p.CompletionDate)

	out = appendSet(out, col("kittenCount"), p.KittenCount)
	out = appendSet(out, col("inbreedingCoefficient"), p.InbreedingCoefficient)

	out = appendSet(out, col("reasoning"), p.Reasoning)
	out = appendSet(out, col("bloodTypeNotes"), p.BloodTypeNotes)
	out = appendSet(out, col("alternativeCombinations"), p.AlternativeCombinations)
	out = appendSet(out, col("birthNotes"), p.BirthNotes)
	out = appendSet(out, col("evaluation"), p.Evaluation)
	out = appendSet(out, col("buyersInfo"), p.BuyersInfo)
	out = appendSet(out, col("notes"), p.Notes)
	out = appendSet(out, col("pregnancyNotes"), p.PregnancyNotes)

	if p.MotherWeightLog != nil {
		b, err := LitterRecord{MotherWeightLog: fromMotherWeights(*p.MotherWeightLog)}.MotherWeightLogJSON()
		if err != nil {
			return nil, err
		}
		out = append(out, Assignment{Column: col("motherWeightLog"), Value: string(b)})
	}

	return out, nil
}

// PregnancyNoteRecord es la fila de "pregnancy_notes".
type PregnancyNoteRecord struct {
	ID       string    `json:"id" db:"id"`
	LitterID string    `json:"litter_id" db:"litter_id"`
	Date     time.Time `json:"date" db:"date"`
	Note     string    `json:"note" db:"note"`
}

func FromPregnancyNote(n litters.PregnancyNoteEntry) PregnancyNoteRecord {
	return PregnancyNoteRecord{ID: n.ID, LitterID: n.LitterID, Date: n.Date, Note: n.Note}
}

func (r PregnancyNoteRecord) ToPregnancyNote() litters.PregnancyNoteEntry {
	return litters.PregnancyNoteEntry{ID: r.ID, LitterID: r.LitterID, Date: dates.Day(r.Date), Note: r.Note}
}

func fromMotherWeights(in []litters.MotherWeightEntry) []MotherWeightRecord {
	out := make([]MotherWeightRecord, 0, len(in))
	for _, e := range in {
		out = append(out, MotherWeightRecord{ID: e.ID, Date: e.Date, Weight: e.Weight, Notes: e.Notes})
	}
	return out
}

func toMotherWeights(in []MotherWeightRecord) []litters.MotherWeightEntry {
	out := make([]litters.MotherWeightEntry, 0, len(in))
	for _, e := range in {
		out = append(out, litters.MotherWeightEntry{ID: e.ID, Date: dates.Day(e.Date), Weight: e.Weight, Notes: e.Notes})
	}
	return out
}

func appendSet[T any](out []Assignment, column string, s optional.Set[T]) []Assignment {
	if !s.Present {
		return out
	}
	if s.Value == nil {
		return append(out, Assignment{Column: column, Value: nil})
	}
	return append(out, Assignment{Column: column, Value: *s.Value})
}

// Las columnas DATE vuelven de pgx como medianoche en la zona de la sesión;
// normalizamos a día calendario UTC.
func utcDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dates.Day(*t)
	return &d
}
