package contracts

import (
	"errors"
)

type Cell struct {
	Value  string `json:"value"`
	Result string `json:"result"`
}

type SheetCell struct {
	SheetId string `json:"sheet_id"`
	CellId  string `json:"cell_id"`
	Cell
}

// CellList cell_id => cell, one sheet
type CellList map[string]*Cell

const MaxFieldLength = 100

var CellNotFoundError = errors.New("cell not found")

var CellAlreadyExistsError = errors.New("cell with this cell_id already exists")

var CellIdInvalidError = errors.New("cell names cannot start with a number")

var FieldEmptyError = errors.New("this field may not be blank")

var FieldTooLongError = errors.New("ensure this field has no more than 100 characters")
