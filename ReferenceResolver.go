package main

import (
	"errors"
	"fmt"
	"sheetsApi/contracts"
	"strconv"
	"strings"
)

// ReferenceResolver converts stored results of referenced cells into numbers.
// A referenced cell without result counts as 0.
type ReferenceResolver struct{}

func NewReferenceResolver() *ReferenceResolver {
	return &ReferenceResolver{}
}

func (r *ReferenceResolver) Resolve(names []string, lookup contracts.CellLookup) ([]float64, error) {
	values := make([]float64, len(names))
	if len(names) == 0 {
		return values, nil
	}

	var cells []*contracts.Cell
	if lookup != nil {
		cells = lookup(names)
	}

	for index, name := range names {
		if index >= len(cells) || cells[index] == nil {
			return nil, &contracts.ReferenceError{CellId: name, Err: contracts.UnknownReferenceError}
		}

		result := cells[index].Result
		if result == "" {
			continue
		}

		value, err := parseStoredNumber(result)
		if err != nil {
			return nil, &contracts.ReferenceError{
				CellId: name,
				Err:    fmt.Errorf("%w: %q", contracts.NumericConversionError, result),
			}
		}
		values[index] = value
	}

	return values, nil
}

// parseStoredNumber accepts surrounding whitespace, digit separating underscores, inf and nan; rejects hex notation
func parseStoredNumber(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)

	if strings.ContainsAny(trimmed, "xXpP") {
		return 0, strconv.ErrSyntax
	}

	if strings.Contains(trimmed, "_") {
		for index := 0; index < len(trimmed); index++ {
			if trimmed[index] != '_' {
				continue
			}
			if index == 0 || index == len(trimmed)-1 || !isDigit(trimmed[index-1]) || !isDigit(trimmed[index+1]) {
				return 0, strconv.ErrSyntax
			}
		}
		trimmed = strings.ReplaceAll(trimmed, "_", "")
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}

	return value, nil
}
