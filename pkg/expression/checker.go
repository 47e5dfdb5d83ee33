package expression

import (
	"fmt"

	"github.com/gofhir/fhirpath"

	"github.com/helsenorge/structor-export-sub000/pkg/cache"
)

// Checker compiles FHIRPath expressions and remembers the outcome, so an
// unchanged expression is only compiled once across validation passes.
type Checker struct {
	results *cache.LRU[string, error]
}

// NewChecker creates a Checker remembering up to cache.DefaultCapacity expressions.
func NewChecker() *Checker {
	return NewCheckerSize(cache.DefaultCapacity)
}

// NewCheckerSize creates a Checker remembering up to size expressions.
func NewCheckerSize(size int) *Checker {
	return &Checker{results: cache.New[string, error](size)}
}

// Check returns nil if the expression compiles.
func (c *Checker) Check(expr string) error {
	if c == nil {
		return nil
	}
	return c.results.GetOrCompute(expr, func() error {
		if _, err := fhirpath.Compile(expr); err != nil {
			return fmt.Errorf("failed to compile FHIRPath expression '%s': %w", expr, err)
		}
		return nil
	})
}

// CacheSize returns the number of remembered expressions.
func (c *Checker) CacheSize() int {
	return c.results.Len()
}

// CacheStats returns hit and miss counters of the expression cache.
func (c *Checker) CacheStats() cache.Stats {
	return c.results.Stats()
}
