package snapshot

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/payflow-dev/payflow/internal/model"
)

// Parser reads an account snapshot from a file format.
type Parser interface {
	Parse(r io.Reader) ([]model.Account, error)
	Format() string
}

// Registry holds named snapshot parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate snapshot format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.parsers))
	for f := range r.parsers {
		formats = append(formats, f)
	}
	return formats
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&JSONParser{})
	r.Register(&YAMLParser{})
	return r
}

// toBaseUnits converts a decoded balance to integer base units. The
// evaluator works in whole units only, so fractional balances are a
// snapshot error, not something to round.
func toBaseUnits(d decimal.Decimal) (int64, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("balance %s is not in integer base units", d)
	}
	return d.IntPart(), nil
}
