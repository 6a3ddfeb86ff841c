// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package filter selects entries from a HAR document with CEL expressions.

Each entry is exposed to expressions as the variable "entry", using the HAR
field names in canonical casing.

# Basic Usage

	engine := filter.NewEngine()

	expr, err := engine.Compile(`entry.response.status >= 300 && entry.response.status < 400`)
	if err != nil {
		// handle compilation error
	}

	redirects, err := expr.Select(doc)

Match evaluates a single entry:

	ok, err := expr.Match(doc.Log.Entries[0])

# Absent Fields

Optional fields omitted from an entry are absent keys. Use has() to test for
them before access:

	has(entry.response.redirectURL) && entry.response.redirectURL != ""

# Error Handling

Rejected expressions are returned as *CompileError. Its Stage is StageParse
for syntax errors and StageCheck for unknown names or type mismatches, and
Issues lists each problem with its line and column:

	_, err := engine.Compile(`entry.response.status >=`)
	var compileErr *filter.CompileError
	if errors.As(err, &compileErr) {
		for _, issue := range compileErr.Issues {
			fmt.Println(issue)
		}
	}

Select reports the entry an expression failed on as *EntryError, which
carries the entry index and its request method and URL:

	_, err = expr.Select(doc)
	var entryErr *filter.EntryError
	if errors.As(err, &entryErr) {
		fmt.Println("bad entry", entryErr.Index, entryErr.URL)
	}

Evaluation errors wrap ErrEvaluation, and expressions that do not produce a
boolean fail with ErrInvalidResult.

# Documents Without a Log

Select requires a document with a log, like package harconvert does. A nil
document or a nil Log fails with ErrMissingLog. A log with no entries
selects nothing.

# Limits

	engine := filter.NewEngine().
		WithMaxExpressionLength(2000).
		WithCostLimit(100000)
*/
package filter
