// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package harconvert

import "errors"

// Error categories returned by the converter. Every error returned by this
// package wraps exactly one of them, so callers can branch with errors.Is.
var (
	// ErrInvalidArgument indicates a nil, empty or whitespace-only input. It is
	// returned before any parsing is attempted.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedInput indicates the input is not valid JSON, does not have the
	// shape of a HAR document, or lacks a node required to normalize it.
	ErrMalformedInput = errors.New("malformed HAR input")

	// ErrIOFailure indicates the input could not be opened or read.
	ErrIOFailure = errors.New("HAR input could not be read")
)
