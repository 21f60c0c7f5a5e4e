package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// DocumentLine is one priced row on a printed document.
type DocumentLine struct {
	SrNo        int
	Description string
	HSNSACCode  string
	Quantity    float64
	Price       float64
	Amount      float64
}

// Document carries everything the PDF renderer needs. Quotations and
// delivery challans both flatten into this shape; challans leave the
// price columns off via HidePrices.
type Document struct {
	Title      string
	Reference  string
	Date       string
	ClientName string
	Address    string
	Notes      string
	Lines      []DocumentLine
	HidePrices bool

	TotalQuantity  float64
	TotalAmount    float64
	PackingCharges float64
	GSTAmount      float64
	GrandTotal     float64

	BusinessName    string
	BusinessAddress string
}

// PDF renders a document as an A4 portrait PDF.
func PDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(120, 10, doc.BusinessName)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(60, 10, doc.Title, "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	if doc.BusinessAddress != "" {
		pdf.MultiCell(110, 4, doc.BusinessAddress, "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(95, 6, fmt.Sprintf("Ref: %s", doc.Reference))
	pdf.CellFormat(85, 6, fmt.Sprintf("Date: %s", doc.Date), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(40, 6, "To:")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, doc.ClientName)
	pdf.Ln(6)
	if doc.Address != "" {
		pdf.MultiCell(0, 5, doc.Address, "", "L", false)
	}
	pdf.Ln(4)

	type col struct {
		width float64
		label string
		align string
	}
	cols := []col{
		{12, "Sr", "C"},
		{70, "Description", "L"},
		{24, "HSN/SAC", "C"},
		{20, "Qty", "R"},
	}
	if doc.HidePrices {
		// Widen description when the money columns are absent.
		cols[1].width = 134
	} else {
		cols = append(cols,
			col{27, "Price", "R"},
			col{27, "Amount", "R"},
		)
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.label, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, line := range doc.Lines {
		cells := []string{
			fmt.Sprintf("%d", line.SrNo),
			line.Description,
			line.HSNSACCode,
			formatQty(line.Quantity),
		}
		if !doc.HidePrices {
			cells = append(cells,
				fmt.Sprintf("%.2f", line.Price),
				fmt.Sprintf("%.2f", line.Amount),
			)
		}
		for i, c := range cols {
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 9)
	if doc.HidePrices {
		pdf.CellFormat(cols[0].width+cols[1].width+cols[2].width, 7, "Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[3].width, 7, formatQty(doc.TotalQuantity), "1", 1, "R", false, 0, "")
	} else {
		labelWidth := cols[0].width + cols[1].width + cols[2].width + cols[3].width + cols[4].width
		writeTotal := func(label string, value float64) {
			pdf.CellFormat(labelWidth, 6, label, "1", 0, "R", false, 0, "")
			pdf.CellFormat(cols[5].width, 6, fmt.Sprintf("%.2f", value), "1", 1, "R", false, 0, "")
		}
		writeTotal("Total", doc.TotalAmount)
		if doc.PackingCharges > 0 {
			writeTotal("Packing Charges", doc.PackingCharges)
		}
		writeTotal("GST", doc.GSTAmount)
		writeTotal("Grand Total", doc.GrandTotal)
	}

	if doc.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 9)
		pdf.Cell(0, 5, "Notes")
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, doc.Notes, "", "L", false)
	}

	pdf.Ln(14)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "Authorised Signatory", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatQty(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}
