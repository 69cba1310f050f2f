package dates

import (
	"strings"
	"time"
)

// Layout es el formato de fecha de calendario que usamos en API y storage.
const Layout = "2006-01-02"

// Day normaliza un instante a medianoche UTC del mismo día de calendario
// (tomando año/mes/día en la zona del propio valor).
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays suma n días de calendario. Opera sobre año/mes/día, así que no hay
// corrimientos por DST ni por zona horaria.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, time.UTC)
}

// Parse acepta YYYY-MM-DD.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, strings.TrimSpace(s))
}

// ParsePtr: "" => nil.
func ParsePtr(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// FormatPtr devuelve nil para fechas ausentes (se serializa como null).
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}
