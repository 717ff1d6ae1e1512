// Package settle evaluates parsed payment instructions against a
// balance snapshot and produces the uniform settlement result.
//
// The pipeline is a fixed rule chain: instruction-level checks first
// (amount shape, currency support, account ID charset, self-transfer),
// then snapshot-level checks (existence, currency match, date shape,
// funds), then the pending/successful decision. The first failing rule
// wins and short-circuits the rest, each with its own status code.
package settle

import (
	"errors"
	"time"

	"github.com/payflow-dev/payflow/internal/instruction"
	"github.com/payflow-dev/payflow/internal/messages"
	"github.com/payflow-dev/payflow/internal/model"
)

// Evaluator runs the settlement pipeline. It is pure and reentrant:
// every evaluation works only on its arguments, so concurrent calls
// never interact.
type Evaluator struct {
	catalog messages.Catalog
	now     func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock overrides the evaluator's clock. The pending/successful
// decision compares the execute-by date against this clock's UTC day.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

// New creates an Evaluator using the given message catalog.
func New(catalog messages.Catalog, opts ...Option) *Evaluator {
	e := &Evaluator{
		catalog: catalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs one instruction against a balance snapshot. Every
// outcome, success or failure, is reported in the returned result; the
// snapshot is never mutated.
func (e *Evaluator) Evaluate(accounts []model.Account, text string) model.SettlementResult {
	parsed, err := instruction.Parse(text)
	if err != nil {
		reason := messages.Malformed
		var synErr *instruction.SyntaxError
		if errors.As(err, &synErr) {
			reason = synErr.Reason
		}
		return syntaxResult(e.catalog, reason)
	}

	b := newBuilder(e.catalog, accounts, parsed)

	if res, ok := e.validate(b); !ok {
		return res
	}
	return e.settle(b)
}
