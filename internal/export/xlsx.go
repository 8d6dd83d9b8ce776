package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// WriteXLSX writes one sheet with a bold header row and returns the workbook bytes.
func WriteXLSX(s Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if s.Name != "" && s.Name != sheet {
		if err := f.SetSheetName(sheet, s.Name); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
		sheet = s.Name
	}

	header := make([]interface{}, len(s.Headers))
	for i, h := range s.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	if len(s.Headers) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, err
		}
		last, err := excelize.CoordinatesToCellName(len(s.Headers), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return nil, err
		}
	}

	for i, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return bytes.Clone(buf.Bytes()), nil
}
