// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package filter selects HAR entries with CEL expressions.
package filter

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/stacklok/toolhive-har/har"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for an expression.
	DefaultMaxExpressionLength = 10000

	// DefaultCostLimit is the default runtime cost limit for evaluating an expression against one entry.
	DefaultCostLimit = 1000000

	// EntryVariable is the name under which an entry is exposed to expressions.
	EntryVariable = "entry"
)

// Engine compiles filter expressions over HAR entries.
// It is safe for concurrent use from multiple goroutines.
type Engine struct {
	once                sync.Once
	env                 *cel.Env
	envErr              error
	maxExpressionLength int
	costLimit           uint64
}

// Expression is a compiled filter expression.
type Expression struct {
	source  string
	program cel.Program
}

// Source returns the original expression source string.
func (x *Expression) Source() string {
	return x.source
}

// NewEngine creates an engine exposing each entry as the variable "entry",
// a map keyed by the HAR field names in canonical casing:
//
//	entry.response.status >= 300 && has(entry.response.redirectURL)
//
// Optional fields that are absent from an entry are absent keys, so has()
// tells an omitted field apart from an empty one. Numbers decode as doubles
// and compare with integer literals.
func NewEngine() *Engine {
	return &Engine{
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
}

// WithMaxExpressionLength sets the maximum allowed length for expressions.
// Expressions exceeding this length will be rejected during compilation.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit for evaluating an expression
// against one entry.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

// getEnv returns the CEL environment, creating it lazily on first access.
func (e *Engine) getEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.envErr = cel.NewEnv(
			cel.Variable(EntryVariable, cel.MapType(cel.StringType, cel.DynType)),
			cel.CrossTypeNumericComparisons(true),
		)
	})
	return e.env, e.envErr
}

// Check verifies that an expression is syntactically and semantically valid
// without creating a program.
func (e *Engine) Check(expr string) error {
	_, err := e.check(expr)
	return err
}

// Compile parses, type checks and compiles an expression. A rejected
// expression is reported as a *CompileError whose Stage tells syntax errors
// apart from type errors.
func (e *Engine) Compile(expr string) (*Expression, error) {
	checked, err := e.check(expr)
	if err != nil {
		return nil, err
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	program, err := env.Program(checked, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Expression{source: expr, program: program}, nil
}

func (e *Engine) check(expr string) (*cel.Ast, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsed, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, newCompileError(StageParse, expr, issues)
	}

	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, newCompileError(StageCheck, expr, issues)
	}

	return checked, nil
}

// Match evaluates the expression against one entry.
func (x *Expression) Match(entry *har.Entry) (bool, error) {
	vars, err := entryVars(entry)
	if err != nil {
		return false, err
	}

	out, _, err := x.program.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, out.Value())
	}
	return matched, nil
}

// Select returns the entries of h that match the expression, in log order.
// Nil entries are skipped. The returned entries are shared with h.
// A nil document or a document without a log fails with ErrMissingLog, and
// an entry the expression cannot be evaluated against fails with *EntryError.
func (x *Expression) Select(h *har.Har) ([]*har.Entry, error) {
	if h == nil || h.Log == nil {
		return nil, ErrMissingLog
	}

	var selected []*har.Entry
	for i, entry := range h.Log.Entries {
		if entry == nil {
			continue
		}
		matched, err := x.Match(entry)
		if err != nil {
			return nil, newEntryError(i, entry, err)
		}
		if matched {
			selected = append(selected, entry)
		}
	}
	return selected, nil
}

// entryVars encodes the entry in canonical HAR form for evaluation.
func entryVars(entry *har.Entry) (map[string]any, error) {
	fields := map[string]any{}
	if entry != nil {
		data, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to serialize entry: %w", ErrEvaluation, err)
		}
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("%w: failed to decode entry: %w", ErrEvaluation, err)
		}
	}
	return map[string]any{EntryVariable: fields}, nil
}
