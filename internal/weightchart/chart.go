// Package weightchart arma la planilla imprimible de pesos de los primeros 28 días.
package weightchart

import (
	"fmt"
	"strings"
	"time"

	"cattery-breeding/internal/platform/dates"
)

const (
	LastDay      = 28
	FixedColumns = 2 // día + fecha
)

// Slots fijos por día, no configurables.
var Slots = []string{"Morning", "Midday", "Evening", "Night"}

// placeholders cuando todavía no hay roster cargado
var placeholderNames = []string{"Kitten 1", "Kitten 2", "Kitten 3", "Kitten 4"}

type Row struct {
	Day  int
	Date time.Time
}

type Chart struct {
	Start   time.Time
	Kittens []string
	Rows    []Row
}

// Columns = 2 fijas + 4 por gatito.
func (c Chart) Columns() int {
	return FixedColumns + len(Slots)*len(c.Kittens)
}

// Headers devuelve la fila de encabezados de columnas (una por columna).
func (c Chart) Headers() []string {
	out := make([]string, 0, c.Columns())
	out = append(out, "Day", "Date")
	for range c.Kittens {
		out = append(out, Slots...)
	}
	return out
}

// Build es pura: misma entrada, misma planilla.
func Build(birthDate time.Time, names []string) Chart {
	start := dates.Day(birthDate)

	kittens := make([]string, 0, len(names))
	for i, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			n = fmt.Sprintf("Kitten %d", i+1)
		}
		kittens = append(kittens, n)
	}
	if len(kittens) == 0 {
		kittens = append(kittens, placeholderNames...)
	}

	rows := make([]Row, 0, LastDay+1)
	for d := 0; d <= LastDay; d++ {
		rows = append(rows, Row{Day: d, Date: dates.AddDays(start, d)})
	}

	return Chart{Start: start, Kittens: kittens, Rows: rows}
}
