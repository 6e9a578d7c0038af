package main

import (
	"sheetsApi/contracts"
	"strings"
)

const FormulaPrefix = "="

// FormulaEngine computes a cell result from its raw value.
// Referenced cells contribute their already stored result, formulas of referenced cells are never re-evaluated.
type FormulaEngine struct {
	extractor   *ReferenceExtractor
	resolver    *ReferenceResolver
	substituter contracts.Substituter
	evaluator   *ArithmeticEvaluator
	formatter   *ResultFormatter
}

func NewFormulaEngine(extractor *ReferenceExtractor, substituter contracts.Substituter) *FormulaEngine {
	return &FormulaEngine{
		extractor:   extractor,
		resolver:    NewReferenceResolver(),
		substituter: substituter,
		evaluator:   NewArithmeticEvaluator(),
		formatter:   NewResultFormatter(),
	}
}

func (e *FormulaEngine) IsFormula(value string) bool {
	return strings.HasPrefix(value, FormulaPrefix)
}

func (e *FormulaEngine) ExtractReferences(value string) []string {
	if !e.IsFormula(value) {
		return []string{}
	}

	return e.extractor.Extract(strings.TrimPrefix(value, FormulaPrefix))
}

func (e *FormulaEngine) Compute(value string, lookup contracts.CellLookup) (string, error) {
	// literal, stored verbatim
	if !e.IsFormula(value) {
		return value, nil
	}

	formula := strings.TrimPrefix(value, FormulaPrefix)
	names := e.extractor.Extract(formula)

	values, err := e.resolver.Resolve(names, lookup)
	if err != nil {
		return "", err
	}

	replacements := make([]string, len(values))
	for index, number := range values {
		replacements[index] = e.formatter.FormatFloat(number)
	}

	result, err := e.evaluator.Evaluate(e.substituter.Substitute(formula, names, replacements))
	if err != nil {
		return "", err
	}

	return e.formatter.FormatNumber(result), nil
}
