package main

import (
	"golang.org/x/text/cases"
	"strings"
	"sync"
)

// Canonicalizer makes sheet ids case insensitive: "Sheet1", "SHEET1" and " sheet1 " share one storage key
type Canonicalizer struct {
	// cases.Caser keeps state between calls and can not be shared between goroutines
	caserPool sync.Pool
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{
		caserPool: sync.Pool{
			New: func() any {
				caser := cases.Fold()
				return &caser
			},
		},
	}
}

func (c *Canonicalizer) Canonicalize(s string) string {
	caser := c.caserPool.Get().(*cases.Caser)
	defer c.caserPool.Put(caser)

	return caser.String(strings.TrimSpace(s))
}
