package main

import (
	"github.com/stretchr/testify/assert"
	"sheetsApi/contracts"
	"sheetsApi/mocks"
	"testing"
)

func TestFormulaEngine_Compute(t *testing.T) {
	newEngine := func(mode string) *FormulaEngine {
		extractor := NewReferenceExtractor()
		substituter, err := NewSubstituter(mode, extractor)
		if err != nil {
			panic(err)
		}
		return NewFormulaEngine(extractor, substituter)
	}

	engine := newEngine(SubstitutionToken)

	t.Run("literal stored verbatim", func(t *testing.T) {
		for _, value := range []string{"10", "hello", " 1+2", "var0"} {
			result, err := engine.Compute(value, nil)
			assert.NoError(t, err)
			assert.Equal(t, value, result)
		}
	})

	t.Run("reference to stored result", func(t *testing.T) {
		lookup := mocks.NewCellLookup(t)
		lookup.On("Execute", []string{"var0"}).
			Return([]*contracts.Cell{{Value: "10", Result: "10"}}).Once()

		result, err := engine.Compute("=var0+5", lookup.Execute)
		assert.NoError(t, err)
		assert.Equal(t, "15.0", result)
	})

	t.Run("empty result counts as zero", func(t *testing.T) {
		lookup := mocks.NewCellLookup(t)
		lookup.On("Execute", []string{"var0"}).
			Return([]*contracts.Cell{{Value: "=var9", Result: ""}}).Once()

		result, err := engine.Compute("=var0+5", lookup.Execute)
		assert.NoError(t, err)
		assert.Equal(t, "5.0", result)
	})

	t.Run("no references", func(t *testing.T) {
		lookup := mocks.NewCellLookup(t)

		result, err := engine.Compute("=1+2", lookup.Execute)
		assert.NoError(t, err)
		assert.Equal(t, "3", result)

		result, err = engine.Compute("=7/2", lookup.Execute)
		assert.NoError(t, err)
		assert.Equal(t, "3.5", result)

		lookup.AssertNotCalled(t, "Execute")
	})

	t.Run("repeated reference looked up once", func(t *testing.T) {
		lookup := mocks.NewCellLookup(t)
		lookup.On("Execute", []string{"var0"}).
			Return([]*contracts.Cell{{Value: "10", Result: "10"}}).Once()

		result, err := engine.Compute("=var0*var0", lookup.Execute)
		assert.NoError(t, err)
		assert.Equal(t, "100.0", result)
	})

	t.Run("unknown reference", func(t *testing.T) {
		lookup := mocks.NewCellLookup(t)
		lookup.On("Execute", []string{"missing"}).
			Return([]*contracts.Cell{nil}).Once()

		result, err := engine.Compute("=missing+1", lookup.Execute)
		assert.Empty(t, result)
		assert.ErrorIs(t, err, contracts.UnknownReferenceError)
		assert.Equal(t, "Variable cell 'missing' not found", err.Error())
	})

	t.Run("float exponent read as reference", func(t *testing.T) {
		lookup := mocks.NewCellLookup(t)
		lookup.On("Execute", []string{"e5"}).
			Return([]*contracts.Cell{nil}).Once()

		_, err := engine.Compute("=2e5", lookup.Execute)
		assert.ErrorIs(t, err, contracts.UnknownReferenceError)
	})

	t.Run("non numeric reference", func(t *testing.T) {
		lookup := mocks.NewCellLookup(t)
		lookup.On("Execute", []string{"var0"}).
			Return([]*contracts.Cell{{Value: "abc", Result: "abc"}}).Once()

		_, err := engine.Compute("=var0+1", lookup.Execute)
		assert.ErrorIs(t, err, contracts.NumericConversionError)
	})

	t.Run("malformed formula", func(t *testing.T) {
		lookup := mocks.NewCellLookup(t)
		lookup.On("Execute", []string{"var0"}).
			Return([]*contracts.Cell{{Value: "10", Result: "10"}}).Once()

		_, err := engine.Compute("=var0+", lookup.Execute)
		assert.ErrorIs(t, err, contracts.EvaluationError)

		_, err = engine.Compute("=", nil)
		assert.ErrorIs(t, err, contracts.EvaluationError)

		_, err = engine.Compute("=10/0", nil)
		assert.ErrorIs(t, err, contracts.EvaluationError)
		assert.Contains(t, err.Error(), "division by zero")
	})

	t.Run("prefix names", func(t *testing.T) {
		cells := []*contracts.Cell{{Value: "1", Result: "1"}, {Value: "2", Result: "2"}}

		lookup := mocks.NewCellLookup(t)
		lookup.On("Execute", []string{"a", "ab"}).Return(cells).Twice()

		result, err := engine.Compute("=a+ab", lookup.Execute)
		assert.NoError(t, err)
		assert.Equal(t, "3.0", result)

		_, err = newEngine(SubstitutionLegacy).Compute("=a+ab", lookup.Execute)
		assert.ErrorIs(t, err, contracts.EvaluationError)
	})
}

func TestFormulaEngine_ExtractReferences(t *testing.T) {
	engine := NewFormulaEngine(NewReferenceExtractor(), NewLegacySubstituter())

	assert.True(t, engine.IsFormula("=a+b"))
	assert.False(t, engine.IsFormula("a+b"))
	assert.False(t, engine.IsFormula(" =a+b"))

	assert.Equal(t, []string{"a", "b"}, engine.ExtractReferences("=a+b+a"))
	assert.Equal(t, []string{}, engine.ExtractReferences("a+b"))
}
