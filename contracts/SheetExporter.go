package contracts

import "io"

type SheetExporter interface {
	Export(sheetId string, cells *CellList, w io.Writer) error
	ContentType() string
}
