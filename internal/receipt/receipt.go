// Package receipt renders payment receipts as PDF documents.
package receipt

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const title = "Gym Payment Receipt"

type Data struct {
	ReceiptNumber string
	Date          time.Time
	MemberName    string
	Plan          string
	Amount        float64
	GymName       string
}

func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// Render writes d as a single-page PDF. The output depends only on d.
func Render(w io.Writer, d Data) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(title, false)
	pdf.SetCreator("FitLife", false)
	pdf.SetCreationDate(d.Date)
	pdf.SetModificationDate(d.Date)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 14)
	line := func(label, value string) {
		pdf.CellFormat(0, 9, label+": "+value, "", 1, "L", false, 0, "")
	}

	if d.ReceiptNumber != "" {
		line("Receipt No", d.ReceiptNumber)
	}
	line("Date", d.Date.Format("02 Jan 2006"))
	line("Member Name", d.MemberName)
	line("Plan", d.Plan)
	line("Amount", FormatAmount(d.Amount))
	line("Gym", d.GymName)

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 12)
	pdf.CellFormat(0, 9, "Thank you for your payment!", "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}
	return nil
}
