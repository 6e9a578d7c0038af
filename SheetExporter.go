package main

import (
	"fmt"
	"github.com/xuri/excelize/v2"
	"io"
	"sheetsApi/contracts"
	"sort"
	"strings"
)

const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// worksheet names are limited by excel
const maxWorksheetNameLength = 31

var worksheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

var SheetExportHeader = []any{"cell_id", "value", "result"}

// XlsxSheetExporter writes one sheet as xlsx workbook: cell_id | value | result, sorted by cell_id
type XlsxSheetExporter struct{}

func NewXlsxSheetExporter() *XlsxSheetExporter {
	return &XlsxSheetExporter{}
}

func (e *XlsxSheetExporter) ContentType() string {
	return XlsxContentType
}

func (e *XlsxSheetExporter) Export(sheetId string, cells *contracts.CellList, w io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	worksheet := e.WorksheetName(sheetId)
	if err = f.SetSheetName(f.GetSheetName(0), worksheet); err != nil {
		return err
	}

	if err = f.SetSheetRow(worksheet, "A1", &SheetExportHeader); err != nil {
		return err
	}

	cellIds := make([]string, 0, len(*cells))
	for cellId := range *cells {
		cellIds = append(cellIds, cellId)
	}
	sort.Strings(cellIds)

	for index, cellId := range cellIds {
		cell := (*cells)[cellId]
		axis, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return err
		}

		// values are written as text, formulas of this service are not excel formulas
		if err = f.SetSheetRow(worksheet, axis, &[]any{cellId, cell.Value, cell.Result}); err != nil {
			return fmt.Errorf("cell %s: %w", cellId, err)
		}
	}

	return f.Write(w)
}

func (e *XlsxSheetExporter) WorksheetName(sheetId string) string {
	name := strings.Trim(worksheetNameReplacer.Replace(sheetId), "'")
	if name == "" {
		return "Sheet1"
	}

	runes := []rune(name)
	if len(runes) > maxWorksheetNameLength {
		name = string(runes[:maxWorksheetNameLength])
	}
	return name
}
