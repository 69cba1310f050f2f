package litters

import (
	"strings"
	"time"

	"cattery-breeding/internal/platform/dates"
)

// GestationDays es la gestación felina típica usada para proyectar la fecha de parto.
const GestationDays = 65

// DueDate = matingDateFrom + GestationDays (días de calendario).
func DueDate(matingDateFrom time.Time) time.Time {
	return dates.AddDays(matingDateFrom, GestationDays)
}

// Phase es la etapa declarada por quien edita el litter.
// El modelo no la avanza solo ni bloquea combinaciones raras de campos.
// @Enum planned, pending, active, completed
type Phase string

const (
	PhasePlanned   Phase = "planned"   // sin monta registrada
	PhasePending   Phase = "pending"   // ventana de monta cargada, sin parto
	PhaseActive    Phase = "active"    // nacidos, en observación
	PhaseCompleted Phase = "completed" // cerrado
)

var phaseOrder = []Phase{PhasePlanned, PhasePending, PhaseActive, PhaseCompleted}

func ParsePhase(s string) (Phase, bool) {
	p := Phase(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}

func (p Phase) Valid() bool {
	return p.Rank() >= 0
}

// Rank devuelve la posición en el ciclo, o -1 si la fase no existe.
func (p Phase) Rank() int {
	for i, q := range phaseOrder {
		if q == p {
			return i
		}
	}
	return -1
}

// IsForwardTransition indica si from -> to respeta el orden del ciclo.
// Es una convención de workflow: el Service no lo usa para rechazar escrituras.
func IsForwardTransition(from, to Phase) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	return to.Rank() >= from.Rank()
}

// FieldGroup agrupa campos que los editores muestran según la fase.
type FieldGroup string

const (
	GroupPlanning   FieldGroup = "planning"   // reasoning, parentesco, consanguinidad, combinaciones
	GroupMating     FieldGroup = "mating"     // ventana de monta + fecha esperada
	GroupBirth      FieldGroup = "birth"      // birthDate, kittenCount, roster, logs de peso
	GroupCompletion FieldGroup = "completion" // evaluation, buyersInfo, nrr
)

// Allows: planning solo en planned; mating desde pending; birth desde active;
// completion en completed. Es guía para editores, no restricción de storage.
func (p Phase) Allows(g FieldGroup) bool {
	r := p.Rank()
	if r < 0 {
		return false
	}
	switch g {
	case GroupPlanning:
		return p == PhasePlanned
	case GroupMating:
		return r >= PhasePending.Rank()
	case GroupBirth:
		return r >= PhaseActive.Rank()
	case GroupCompletion:
		return p == PhaseCompleted
	default:
		return false
	}
}

func ActiveGroups(p Phase) []FieldGroup {
	out := make([]FieldGroup, 0, 4)
	for _, g := range []FieldGroup{GroupPlanning, GroupMating, GroupBirth, GroupCompletion} {
		if p.Allows(g) {
			out = append(out, g)
		}
	}
	return out
}

// Warning describe una incoherencia entre la fase y los campos cargados.
type Warning struct {
	Code    string
	Field   string
	Message string
}

// CheckConsistency es una validación opcional encima del registro: nunca bloquea un save.
func CheckConsistency(l Litter) []Warning {
	out := make([]Warning, 0)

	if !l.Phase.Valid() {
		out = append(out, Warning{Code: "unknown_phase", Field: "phase", Message: "phase is not a known lifecycle stage"})
		return out
	}

	r := l.Phase.Rank()

	if l.Phase == PhasePlanned && l.MatingDateFrom != nil {
		out = append(out, Warning{Code: "mating_recorded", Field: "matingDateFrom", Message: "planned litter already has a mating date"})
	}
	if r >= PhasePending.Rank() && l.MatingDateFrom == nil {
		out = append(out, Warning{Code: "missing_mating_date", Field: "matingDateFrom", Message: "mating date not set"})
	}
	if r >= PhaseActive.Rank() && l.BirthDate == nil {
		out = append(out, Warning{Code: "missing_birth_date", Field: "birthDate", Message: "birth date not set"})
	}
	if r < PhaseActive.Rank() && l.BirthDate != nil {
		out = append(out, Warning{Code: "birth_recorded", Field: "birthDate", Message: "birth date set before active phase"})
	}
	if l.Phase == PhaseCompleted && l.CompletionDate == nil {
		out = append(out, Warning{Code: "missing_completion_date", Field: "completionDate", Message: "completion date not set"})
	}
	if l.Phase != PhaseCompleted && l.CompletionDate != nil {
		out = append(out, Warning{Code: "completion_recorded", Field: "completionDate", Message: "completion date set before completed phase"})
	}
	if l.MatingDateFrom != nil && l.MatingDateTo != nil && l.MatingDateTo.Before(*l.MatingDateFrom) {
		out = append(out, Warning{Code: "mating_window_inverted", Field: "matingDateTo", Message: "mating window ends before it starts"})
	}
	if l.MatingDateFrom != nil && l.ExpectedDate != nil && !l.ExpectedDate.Equal(DueDate(*l.MatingDateFrom)) {
		out = append(out, Warning{Code: "expected_date_stale", Field: "expectedDate", Message: "expected date does not match mating date"})
	}

	return out
}
