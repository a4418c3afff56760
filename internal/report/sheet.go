// Package report renders calculation results as printable sheets and reads
// and writes the batch workbooks used by shop-floor planners.
package report

import (
	"fmt"
	"io"
	"time"

	"cutdata/internal/process"

	"github.com/phpdave11/gofpdf"
)

// WriteSheet renders out as a one page A4 set-up sheet.
func WriteSheet(w io.Writer, out process.Output, generated time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := "Cutting data: " + out.Process.Title()
	pdf.SetTitle(title, true)
	pdf.SetCreationDate(generated)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", generated.Format("2006-01-02 15:04")))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(238, 238, 238)
	for i, l := range out.Lines() {
		fill := i%2 == 0
		pdf.CellFormat(100, 7, tr(l.Label), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(0, 7, tr(l.Value), "1", 1, "R", fill, 0, "")
	}

	if len(out.Warnings) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, warn := range out.Warnings {
			pdf.MultiCell(0, 6, tr("- "+warn.Message), "", "L", false)
		}
	}

	return pdf.Output(w)
}
