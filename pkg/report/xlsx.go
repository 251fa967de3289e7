package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"milkman/entities"
)

var xlsxHeader = []interface{}{"Customer Name", "Price per Kg", "Total Quantity (L)", "Total Amount"}

type XLSXRenderer struct{}

func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSXRenderer) Extension() string { return "xlsx" }

// SheetName is the single sheet of the workbook for month.
func SheetName(month string) string { return "Summary " + month }

func (XLSXRenderer) Render(w io.Writer, month string, rows []entities.SummaryRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(month)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	widths := map[string]float64{"A": 30, "B": 15, "C": 20, "D": 20}
	for col, wd := range widths {
		if err := f.SetColWidth(sheet, col, col, wd); err != nil {
			return fmt.Errorf("column width %s: %w", col, err)
		}
	}

	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", bold); err != nil {
		return err
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		vals := []interface{}{row.Name, row.PricePerKg, row.TotalQuantity, row.TotalAmount}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if len(rows) > 0 {
		money, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "D2", fmt.Sprintf("D%d", len(rows)+1), money); err != nil {
			return err
		}
	}

	return f.Write(w)
}
