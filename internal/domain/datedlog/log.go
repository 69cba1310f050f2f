// Package datedlog implementa las colecciones de observaciones fechadas
// (notas de preñez, pesos de la madre, pesos por gatito).
//
// Reglas:
//   - Append asigna id si falta y reordena TODA la colección por fecha desc.
//   - Remove filtra por id; si no existe es un no-op.
//   - No hay update in-place: corregir = Remove + Append.
package datedlog

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry es un registro inmutable con id y fecha.
// WithID devuelve una copia con el id asignado.
type Entry[T any] interface {
	EntryID() string
	EntryDate() time.Time
	WithID(id string) T
}

// Log es una colección ordenada por fecha desc. Las operaciones devuelven
// un Log nuevo; el receptor no se modifica.
type Log[T Entry[T]] []T

// NewID se puede reemplazar en tests.
var NewID = uuid.NewString

func (l Log[T]) Append(e T) Log[T] {
	out, _ := l.AppendEntry(e)
	return out
}

// AppendEntry es Append pero devuelve además la entrada tal como quedó
// guardada (con id asignado), para poder persistirla.
func (l Log[T]) AppendEntry(e T) (Log[T], T) {
	if strings.TrimSpace(e.EntryID()) == "" {
		e = e.WithID(NewID())
	}

	out := make(Log[T], 0, len(l)+1)
	out = append(out, l...)
	out = append(out, e)
	out.sortDesc()
	return out, e
}

func (l Log[T]) Remove(id string) Log[T] {
	out := make(Log[T], 0, len(l))
	for _, e := range l {
		if e.EntryID() == id {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Sorted devuelve una copia ordenada; útil para datos que vienen del store.
func (l Log[T]) Sorted() Log[T] {
	out := make(Log[T], len(l))
	copy(out, l)
	out.sortDesc()
	return out
}

func (l Log[T]) Find(id string) (T, bool) {
	for _, e := range l {
		if e.EntryID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

func (l Log[T]) sortDesc() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].EntryDate().After(l[j].EntryDate())
	})
}
