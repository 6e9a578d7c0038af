package main

import (
	"regexp"
)

// identifiers never start with a digit, so numeric literals and operators are not references
var referencePattern = regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_]*`)

type ReferenceExtractor struct {
	pattern *regexp.Regexp
}

func NewReferenceExtractor() *ReferenceExtractor {
	return &ReferenceExtractor{pattern: referencePattern}
}

// Extract returns distinct references in order of first appearance
func (r *ReferenceExtractor) Extract(formula string) []string {
	matches := r.pattern.FindAllString(formula, -1)
	references := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))

	for _, name := range matches {
		if !seen[name] {
			seen[name] = true
			references = append(references, name)
		}
	}

	return references
}

// Locate returns [start, end) offsets of every reference token in formula
func (r *ReferenceExtractor) Locate(formula string) [][]int {
	return r.pattern.FindAllStringIndex(formula, -1)
}
