package report

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"milkman/entities"
)

const emptyMonthLine = "No deliveries recorded."

type PDFRenderer struct {
	// Compress deflates page streams. Tests turn it off to read the text.
	Compress bool
}

func (PDFRenderer) ContentType() string { return "application/pdf" }
func (PDFRenderer) Extension() string   { return "pdf" }

func (r PDFRenderer) Render(w io.Writer, month string, rows []entities.SummaryRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.Compress)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, tr(Title(month)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	if len(rows) == 0 {
		pdf.CellFormat(0, 7, emptyMonthLine, "", 1, "L", false, 0, "")
	}
	for _, row := range rows {
		pdf.CellFormat(0, 7, tr(Line(row)), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
