package main

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"math"
	"sheetsApi/contracts"
	"testing"
)

func TestReferenceResolver_Resolve(t *testing.T) {
	resolver := NewReferenceResolver()

	lookupOf := func(cells map[string]*contracts.Cell) contracts.CellLookup {
		return func(cellIds []string) []*contracts.Cell {
			found := make([]*contracts.Cell, len(cellIds))
			for index, cellId := range cellIds {
				found[index] = cells[cellId]
			}
			return found
		}
	}

	t.Run("stored results", func(t *testing.T) {
		lookup := lookupOf(map[string]*contracts.Cell{
			"var0": {Value: "10", Result: "10"},
			"var1": {Value: "=var0/4", Result: "2.5"},
		})

		values, err := resolver.Resolve([]string{"var1", "var0"}, lookup)
		assert.NoError(t, err)
		assert.Equal(t, []float64{2.5, 10}, values)
	})

	t.Run("empty result is zero", func(t *testing.T) {
		lookup := lookupOf(map[string]*contracts.Cell{
			"var0": {Value: "=1+", Result: ""},
		})

		values, err := resolver.Resolve([]string{"var0"}, lookup)
		assert.NoError(t, err)
		assert.Equal(t, []float64{0}, values)
	})

	t.Run("no names", func(t *testing.T) {
		values, err := resolver.Resolve([]string{}, nil)
		assert.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("unknown reference", func(t *testing.T) {
		lookup := lookupOf(map[string]*contracts.Cell{
			"var0": {Value: "1", Result: "1"},
		})

		values, err := resolver.Resolve([]string{"var0", "missing", "other"}, lookup)
		assert.Nil(t, values)
		assert.ErrorIs(t, err, contracts.UnknownReferenceError)
		assert.Equal(t, "Variable cell 'missing' not found", err.Error())

		var referenceError *contracts.ReferenceError
		assert.True(t, errors.As(err, &referenceError))
		assert.Equal(t, "missing", referenceError.CellId)
	})

	t.Run("not a number", func(t *testing.T) {
		lookup := lookupOf(map[string]*contracts.Cell{
			"var0": {Value: "hello", Result: "hello"},
		})

		_, err := resolver.Resolve([]string{"var0"}, lookup)
		assert.ErrorIs(t, err, contracts.NumericConversionError)
		assert.Contains(t, err.Error(), "Variable cell 'var0'")
		assert.Contains(t, err.Error(), `"hello"`)
	})
}

func TestParseStoredNumber(t *testing.T) {
	valid := map[string]float64{
		"10":     10,
		" 10 \n": 10,
		"-2.5":   -2.5,
		"1_000":  1000,
		"1e3":    1000,
		".5":     0.5,
		"15.0":   15,
	}

	for text, expected := range valid {
		actual, err := parseStoredNumber(text)
		assert.NoError(t, err, text)
		assert.Equal(t, expected, actual, text)
	}

	value, err := parseStoredNumber("inf")
	assert.NoError(t, err)
	assert.True(t, math.IsInf(value, 1))

	value, err = parseStoredNumber("1e400")
	assert.NoError(t, err)
	assert.True(t, math.IsInf(value, 1))

	value, err = parseStoredNumber("nan")
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(value))

	for _, text := range []string{"", "abc", "0x10", "1__0", "_1", "1_", "1,5", "=1+2"} {
		_, err = parseStoredNumber(text)
		assert.Error(t, err, text)
	}
}
