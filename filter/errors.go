// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/stacklok/toolhive-har/har"
)

// Sentinel errors for filter operations.
var (
	// ErrExpressionCheck is returned when a filter expression is rejected at compile time.
	ErrExpressionCheck = errors.New("filter expression check failed")

	// ErrEvaluation is returned when evaluating a filter expression against an entry fails.
	ErrEvaluation = errors.New("filter expression evaluation failed")

	// ErrInvalidResult is returned when a filter expression does not produce a boolean.
	ErrInvalidResult = errors.New("filter expression returned invalid result type")

	// ErrMissingLog is returned by Select for a nil document or a document without a log.
	ErrMissingLog = errors.New("HAR document has no log")
)

// Stage identifies the compilation step that rejected an expression.
type Stage string

const (
	// StageParse means the expression is not syntactically valid.
	StageParse Stage = "parse"
	// StageCheck means the expression refers to unknown names or mixes incompatible types.
	StageCheck Stage = "check"
)

// Issue locates one problem in an expression. Line and Col are 1-based.
type Issue struct {
	Line int
	Col  int
	Msg  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s", i.Line, i.Col, i.Msg)
}

// CompileError is returned by Compile and Check when an expression is rejected.
// It wraps ErrExpressionCheck.
type CompileError struct {
	Stage      Stage
	Expression string
	Issues     []Issue
}

func newCompileError(stage Stage, expr string, issues *cel.Issues) *CompileError {
	ce := &CompileError{Stage: stage, Expression: expr}
	for _, e := range issues.Errors() {
		ce.Issues = append(ce.Issues, Issue{
			Line: e.Location.Line(),
			Col:  e.Location.Column(),
			Msg:  e.Message,
		})
	}
	return ce
}

func (e *CompileError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("%s: %s error in %q: %s", ErrExpressionCheck, e.Stage, e.Expression, strings.Join(msgs, "; "))
}

// Unwrap returns ErrExpressionCheck.
func (*CompileError) Unwrap() error {
	return ErrExpressionCheck
}

// EntryError reports which entry of a document an expression failed on.
// It wraps ErrEvaluation or ErrInvalidResult.
type EntryError struct {
	// Index is the position of the entry in Log.Entries
	Index int
	// Method and URL identify the entry's request; both are empty when it has none
	Method string
	URL    string
	err    error
}

func newEntryError(index int, entry *har.Entry, err error) *EntryError {
	ee := &EntryError{Index: index, err: err}
	if entry.Request != nil {
		ee.Method = entry.Request.Method
		ee.URL = entry.Request.URL
	}
	return ee
}

func (e *EntryError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("entry %d: %s", e.Index, e.err)
	}
	return fmt.Sprintf("entry %d (%s %s): %s", e.Index, e.Method, e.URL, e.err)
}

// Unwrap returns the evaluation error.
func (e *EntryError) Unwrap() error {
	return e.err
}
