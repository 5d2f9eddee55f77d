package docgen

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// Font sizes in half-points, mirroring the PDF encoder's point sizes.
const (
	docxSizeTitle       = "40"
	docxSizeBody        = "24"
	docxSizeMeta        = "20"
	docxSizeQuestion    = "24"
	docxSizeOption      = "22"
	docxSizeAnswer      = "22"
	docxSizeExplanation = "20"
)

// encodeDOCX translates the document tree into DOCX bytes. WriteTo packs
// the full archive before returning, so the buffer is always complete.
func encodeDOCX(blocks []Block) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	for _, b := range blocks {
		para := w.AddParagraph()
		switch b.Style {
		case StyleTitle:
			para.Justification("center")
			para.AddText(b.Text).Size(docxSizeTitle).Bold()
		case StyleBody:
			para.AddText(b.Text).Size(docxSizeBody)
		case StyleMeta:
			para.AddText(b.Text).Size(docxSizeMeta)
		case StyleQuestion:
			para.AddText(b.Text).Size(docxSizeQuestion).Bold()
		case StyleOption:
			para.AddText(b.Text).Size(docxSizeOption)
		case StyleAnswer:
			para.AddText(b.Text).Size(docxSizeAnswer).Bold().Color("00AA00")
		case StyleExplanation:
			para.AddText(b.Text).Size(docxSizeExplanation)
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render DOCX: %w", err)
	}
	return buf.Bytes(), nil
}
