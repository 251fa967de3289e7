// Package report renders monthly summary rows into downloadable documents.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"milkman/entities"
)

type Renderer interface {
	// Render writes the whole artifact for month to w.
	Render(w io.Writer, month string, rows []entities.SummaryRow) error
	ContentType() string
	Extension() string
}

// FileName is the attachment name offered to clients.
func FileName(r Renderer, month string) string {
	return "summary-" + month + "." + r.Extension()
}

func Title(month string) string {
	return "Monthly Summary for " + month
}

// Line formats one row of the document form, with the total fixed at two
// decimals.
func Line(row entities.SummaryRow) string {
	return fmt.Sprintf("Name: %s | Qty: %s L | Rate: %s | Total: %s",
		row.Name,
		number(row.TotalQuantity),
		number(row.PricePerKg),
		decimal.NewFromFloat(row.TotalAmount).StringFixed(2),
	)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
