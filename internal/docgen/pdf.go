package docgen

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// encodePDF translates the document tree into PDF bytes. Output flushes the
// whole document; a truncated buffer is impossible once Output returns nil.
func encodePDF(blocks []Block) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	for _, b := range blocks {
		switch b.Style {
		case StyleTitle:
			doc.SetFont("Helvetica", "B", 20)
			doc.MultiCell(0, 10, b.Text, "", "C", false)
			doc.Ln(4)
		case StyleBody:
			doc.SetFont("Helvetica", "", 12)
			doc.MultiCell(0, 6, b.Text, "", "L", false)
			doc.Ln(2)
		case StyleMeta:
			doc.SetFont("Helvetica", "", 10)
			doc.MultiCell(0, 5, b.Text, "", "L", false)
			doc.Ln(6)
		case StyleQuestion:
			doc.SetFont("Helvetica", "B", 12)
			doc.MultiCell(0, 6, b.Text, "", "L", false)
			doc.Ln(1)
		case StyleOption:
			doc.SetFont("Helvetica", "", 11)
			doc.SetX(doc.GetX() + 8)
			doc.MultiCell(0, 6, b.Text, "", "L", false)
		case StyleAnswer:
			doc.SetFont("Helvetica", "B", 11)
			doc.SetTextColor(0, 170, 0)
			doc.MultiCell(0, 6, b.Text, "", "L", false)
			doc.SetTextColor(0, 0, 0)
		case StyleExplanation:
			doc.SetFont("Helvetica", "", 10)
			doc.MultiCell(0, 5, b.Text, "", "L", false)
			doc.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
