package contracts

import "context"

type SheetRepository interface {
	CreateSheet(ctx context.Context, sheetId string) (*Sheet, error)
	GetSheetList(ctx context.Context) ([]*Sheet, error)
	DeleteSheet(ctx context.Context, sheetId string) error

	CreateCell(ctx context.Context, sheetId string, cellId string, value string) (*Cell, error)
	UpdateCell(ctx context.Context, sheetId string, cellId string, value string) (*Cell, error)
	GetCell(ctx context.Context, sheetId string, cellId string) (*Cell, error)
	DeleteCell(ctx context.Context, sheetId string, cellId string) error

	GetCellList(ctx context.Context, sheetId string) (*CellList, error)
	GetAllCells(ctx context.Context) ([]*SheetCell, error)
}
