package weightchart

import (
	"bytes"
	"testing"
	"time"

	"cattery-breeding/internal/platform/dates"
)

func TestBuild_ThreeKittens(t *testing.T) {
	birth := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := Build(birth, []string{"Alba", "Bruno", "Cleo"})

	if len(c.Rows) != 29 {
		t.Fatalf("expected 29 rows, got %d", len(c.Rows))
	}
	if c.Columns() != 14 {
		t.Fatalf("expected 14 columns, got %d", c.Columns())
	}
	if len(c.Headers()) != c.Columns() {
		t.Fatalf("headers (%d) and columns (%d) differ", len(c.Headers()), c.Columns())
	}
	if got := dates.Format(c.Rows[0].Date); got != "2024-03-01" || c.Rows[0].Day != 0 {
		t.Fatalf("unexpected first row %d %s", c.Rows[0].Day, got)
	}
	if got := dates.Format(c.Rows[28].Date); got != "2024-03-29" || c.Rows[28].Day != 28 {
		t.Fatalf("unexpected last row %d %s", c.Rows[28].Day, got)
	}
}

func TestBuild_EmptyRosterUsesPlaceholders(t *testing.T) {
	c := Build(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), nil)

	if len(c.Kittens) != 4 || c.Kittens[0] != "Kitten 1" || c.Kittens[3] != "Kitten 4" {
		t.Fatalf("unexpected placeholders %#v", c.Kittens)
	}
	if c.Columns() != 18 {
		t.Fatalf("expected 18 columns, got %d", c.Columns())
	}
}

func TestBuild_BlankNameGetsPositionLabel(t *testing.T) {
	c := Build(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), []string{"Alba", "  "})
	if c.Kittens[1] != "Kitten 2" {
		t.Fatalf("expected positional label, got %q", c.Kittens[1])
	}
}

func TestBuild_SlotOrder(t *testing.T) {
	c := Build(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), []string{"Alba"})
	want := []string{"Day", "Date", "Morning", "Midday", "Evening", "Night"}
	got := c.Headers()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("header %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRenderPDF(t *testing.T) {
	c := Build(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), []string{"Alba", "Bruno", "Cléo"})

	b, err := RenderPDF(c, "Spring litter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("expected a pdf document, got %q", b[:min(len(b), 8)])
	}
}
