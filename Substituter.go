package main

import (
	"errors"
	"fmt"
	"sheetsApi/contracts"
	"strings"
)

const (
	SubstitutionToken  = "token"
	SubstitutionLegacy = "legacy"
)

// TokenSubstituter replaces whole identifier tokens only, so `a` never rewrites a part of `ab`
type TokenSubstituter struct {
	extractor *ReferenceExtractor
}

func NewTokenSubstituter(extractor *ReferenceExtractor) *TokenSubstituter {
	return &TokenSubstituter{extractor: extractor}
}

func (s *TokenSubstituter) Substitute(formula string, names []string, replacements []string) string {
	replacementByName := make(map[string]string, len(names))
	for index, name := range names {
		replacementByName[name] = replacements[index]
	}

	var builder strings.Builder
	builder.Grow(len(formula))

	last := 0
	for _, location := range s.extractor.Locate(formula) {
		replacement, ok := replacementByName[formula[location[0]:location[1]]]
		if !ok {
			continue
		}
		builder.WriteString(formula[last:location[0]])
		builder.WriteString(replacement)
		last = location[1]
	}
	builder.WriteString(formula[last:])

	return builder.String()
}

// LegacySubstituter replaces raw substrings one name after another.
// A name which is a prefix of a longer name corrupts the longer one, kept for compatibility with stored data.
type LegacySubstituter struct{}

func NewLegacySubstituter() *LegacySubstituter {
	return &LegacySubstituter{}
}

func (s *LegacySubstituter) Substitute(formula string, names []string, replacements []string) string {
	for index, name := range names {
		formula = strings.ReplaceAll(formula, name, replacements[index])
	}

	return formula
}

var UnknownSubstitutionError = errors.New("unknown substitution mode")

func NewSubstituter(mode string, extractor *ReferenceExtractor) (contracts.Substituter, error) {
	switch mode {
	case SubstitutionToken, "":
		return NewTokenSubstituter(extractor), nil
	case SubstitutionLegacy:
		return NewLegacySubstituter(), nil
	}

	return nil, fmt.Errorf("%w: %q (expected %s or %s)", UnknownSubstitutionError, mode, SubstitutionToken, SubstitutionLegacy)
}
