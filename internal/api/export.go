package api

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/unicornpulse/internal/domain/models"
)

const (
	exportSheet     = "Unicorns"
	exportFileName  = "unicorns.xlsx"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// writeWorkbook renders the data table into a single-sheet workbook.
// Valuation cells are numeric; everything else is text.
func writeWorkbook(t models.Table) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	valCol := -1
	header := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
		if col == models.ColValuation {
			valCol = i
		}
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for r, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
			if i == valCol {
				if n, err := strconv.ParseFloat(v, 64); err == nil {
					cells[i] = n
				}
			}
		}
		axis, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, axis, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	return f.WriteToBuffer()
}
