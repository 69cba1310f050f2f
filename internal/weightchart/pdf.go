package weightchart

import (
	"bytes"
	"fmt"

	"cattery-breeding/internal/platform/dates"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageWidth  = 277.0 // A4 apaisado menos márgenes
	dayWidth   = 14.0
	dateWidth  = 24.0
	rowHeight  = 5.2
	headHeight = 6.0
)

// RenderPDF genera el documento (A4 apaisado). title puede ir vacío.
func RenderPDF(c Chart, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	// cp1252 para el guión de "Day 0–28" y nombres con acentos
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	heading := "Kitten Weight Chart"
	if title != "" {
		heading = fmt.Sprintf("Kitten Weight Chart - %s", title)
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pageWidth, 9, tr(heading), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pageWidth, 6, tr(fmt.Sprintf("Start: %s    Day 0–%d", dates.Format(c.Start), LastDay)), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	slotWidth := (pageWidth - dayWidth - dateWidth) / float64(len(Slots)*len(c.Kittens))
	groupWidth := slotWidth * float64(len(Slots))
	tableTop := pdf.GetY()

	// fila 1: nombres de gatitos agrupando sus 4 slots
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(dayWidth+dateWidth, headHeight, "", "1", 0, "C", true, 0, "")
	for i, name := range c.Kittens {
		ln := 0
		if i == len(c.Kittens)-1 {
			ln = 1
		}
		pdf.CellFormat(groupWidth, headHeight, tr(name), "1", ln, "C", true, 0, "")
	}

	// fila 2: encabezados
	pdf.SetFont("Arial", "B", 7)
	headers := c.Headers()
	for i, h := range headers {
		w := slotWidth
		switch i {
		case 0:
			w = dayWidth
		case 1:
			w = dateWidth
		}
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(w, headHeight, h, "1", ln, "C", true, 0, "")
	}

	pdf.SetFont("Arial", "", 8)
	for _, row := range c.Rows {
		pdf.CellFormat(dayWidth, rowHeight, fmt.Sprintf("%d", row.Day), "1", 0, "C", false, 0, "")
		pdf.CellFormat(dateWidth, rowHeight, dates.Format(row.Date), "1", 0, "C", false, 0, "")
		for i := 0; i < len(Slots)*len(c.Kittens); i++ {
			ln := 0
			if i == len(Slots)*len(c.Kittens)-1 {
				ln = 1
			}
			pdf.CellFormat(slotWidth, rowHeight, "", "1", ln, "C", false, 0, "")
		}
	}
	tableBottom := pdf.GetY()

	// un separador grueso por gatito
	left, _, _, _ := pdf.GetMargins()
	pdf.SetLineWidth(0.6)
	for i := 0; i <= len(c.Kittens); i++ {
		x := left + dayWidth + dateWidth + groupWidth*float64(i)
		pdf.Line(x, tableTop, x, tableBottom)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render weight chart: %w", err)
	}
	return buf.Bytes(), nil
}
