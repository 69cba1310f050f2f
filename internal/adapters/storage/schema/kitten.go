package schema

import (
	"time"

	"cattery-breeding/internal/domain/kittens"
	"cattery-breeding/internal/platform/dates"
)

// KittenRecord es la fila de "kittens".
type KittenRecord struct {
	ID          string    `json:"id" db:"id"`
	LitterID    string    `json:"litter_id" db:"litter_id"`
	Name        string    `json:"name" db:"name"`
	Gender      *string   `json:"gender" db:"gender"`
	Color       *string   `json:"color" db:"color"`
	EMSCode     *string   `json:"ems_code" db:"ems_code"`
	Status      string    `json:"status" db:"status"`
	ReservedBy  *string   `json:"reserved_by" db:"reserved_by"`
	Notes       *string   `json:"notes" db:"notes"`
	BirthWeight *int      `json:"birth_weight" db:"birth_weight"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func FromKitten(k kittens.Kitten) KittenRecord {
	var gender *string
	if k.Gender != nil {
		g := string(*k.Gender)
		gender = &g
	}
	return KittenRecord{
		ID:          k.ID,
		LitterID:    k.LitterID,
		Name:        k.Name,
		Gender:      gender,
		Color:       k.Color,
		EMSCode:     k.EMSCode,
		Status:      string(k.Status),
		ReservedBy:  k.ReservedBy,
		Notes:       k.Notes,
		BirthWeight: k.BirthWeight,
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
	}
}

func (r KittenRecord) ToKitten() kittens.Kitten {
	var gender *kittens.Gender
	if r.Gender != nil {
		g := kittens.Gender(*r.Gender)
		gender = &g
	}
	status := kittens.Status(r.Status)
	if status == "" {
		status = kittens.StatusAvailable
	}
	return kittens.Kitten{
		ID:          r.ID,
		LitterID:    r.LitterID,
		Name:        r.Name,
		Gender:      gender,
		Color:       r.Color,
		EMSCode:     r.EMSCode,
		Status:      status,
		ReservedBy:  r.ReservedBy,
		Notes:       r.Notes,
		BirthWeight: r.BirthWeight,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// KittenAssignments: igual que LitterAssignments, para el update de un gatito.
func KittenAssignments(p kittens.Patch) []Assignment {
	out := make([]Assignment, 0, 4)
	col := func(field string) string { return mustColumn(KittenColumn, field) }

	if p.Name != nil {
		out = append(out, Assignment{Column: col("name"), Value: *p.Name})
	}
	if p.Status != nil {
		out = append(out, Assignment{Column: col("status"), Value: string(*p.Status)})
	}
	if p.Gender.Present {
		var v any
		if p.Gender.Value != nil {
			v = string(*p.Gender.Value)
		}
		out = append(out, Assignment{Column: col("gender"), Value: v})
	}
	out = appendSet(out, col("color"), p.Color)
	out = appendSet(out, col("emsCode"), p.EMSCode)
	out = appendSet(out, col("reservedBy"), p.ReservedBy)
	out = appendSet(out, col("notes"), p.Notes)
	out = appendSet(out, col("birthWeight"), p.BirthWeight)
	return out
}

// WeightRecord es la fila de "kitten_weights".
type WeightRecord struct {
	ID       string    `json:"id" db:"id"`
	KittenID string    `json:"kitten_id" db:"kitten_id"`
	Date     time.Time `json:"date" db:"date"`
	Weight   float64   `json:"weight" db:"weight"`
}

func FromWeight(e kittens.WeightEntry) WeightRecord {
	return WeightRecord{ID: e.ID, KittenID: e.KittenID, Date: e.Date, Weight: e.Weight}
}

func (r WeightRecord) ToWeight() kittens.WeightEntry {
	return kittens.WeightEntry{ID: r.ID, KittenID: r.KittenID, Date: dates.Day(r.Date), Weight: r.Weight}
}
