package infra

// pdf.go — Wallet statement generation using go-pdf/fpdf.
// Renders the transaction history into an A5 statement with:
//   - Header with generation timestamp
//   - One row per ledger entry (date, type, status, amount)
//   - Closing balance line (completed commissions minus completed withdrawals)
//
// The output file is saved to storagePath/statement_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateStatementPDF writes a wallet statement for the given ledger entries.
// balance is the derived wallet balance at generation time. Returns the
// absolute path to the generated file.
func GenerateStatementPDF(txns []model.Transaction, balance decimal.Decimal, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	now := time.Now()
	fileName := fmt.Sprintf("statement_%s.pdf", now.Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "DropShip 333", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Commission Wallet Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, now.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Table header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.24 // date
	col2 := contentW * 0.26 // type
	col3 := contentW * 0.22 // status
	col4 := contentW * 0.28 // amount

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Type", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "Status", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 5, "Amount", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, t := range txns {
		sign := "+"
		if t.Type == model.TransactionTypeWithdrawal {
			sign = "-"
		}
		pdf.CellFormat(col1, 5, t.CreatedAt.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, t.Type, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, t.Status, "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 5, sign+t.Amount.StringFixed(0)+" d", "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Balance ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2+col3, 6, "BALANCE:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, balance.StringFixed(0)+" d", "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
