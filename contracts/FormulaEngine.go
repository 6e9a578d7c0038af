package contracts

import (
	"errors"
	"fmt"
)

// CellLookup finds cells of one sheet by exact cell_id.
// Result has the same length as cellIds, nil means the cell does not exist.
type CellLookup func(cellIds []string) []*Cell

type FormulaEngine interface {
	IsFormula(value string) bool
	Compute(value string, lookup CellLookup) (string, error)
	ExtractReferences(formula string) []string
}

// Substituter rewrites each name in formula with its replacement, names and replacements are paired by index.
type Substituter interface {
	Substitute(formula string, names []string, replacements []string) string
}

var UnknownReferenceError = errors.New("not found")

var NumericConversionError = errors.New("could not convert result to float")

var EvaluationError = errors.New("evaluation error")

// ReferenceError is returned when a formula references a cell which can not be used as a number.
type ReferenceError struct {
	CellId string
	Err    error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("Variable cell '%s' %v", e.CellId, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}
