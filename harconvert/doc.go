// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package harconvert deserializes HTTP Archive (HAR) documents into the entity
model of package har and repairs partial redirect URLs.

Some HAR producers record a response's redirectURL as a path ("/login?next=1")
instead of an absolute URL. Every entry point normalizes such values before
returning, using the scheme and authority of the same entry's request URL:

	request.url          https://example.com/account
	response.redirectURL /login?next=1
	normalized           https://example.com/login?next=1

Redirect URLs that are absent, empty, or do not start with "/" are left as
they are.

# Basic Usage

	doc, err := harconvert.Deserialize(text)
	if err != nil {
		// Handle error
	}
	for _, e := range doc.Log.Entries {
		// e.Response.RedirectURL is absolute or nil
	}

	doc, err = harconvert.DeserializeFromFile("capture.har")

Field names are matched case-insensitively, so documents written with "URL"
or "Log" decode the same as canonical HAR.

# Error Handling

Every error wraps one of three categories:

	doc, err := harconvert.Deserialize("   ")
	errors.Is(err, harconvert.ErrInvalidArgument) // true

	doc, err = harconvert.Deserialize("{not json")
	errors.Is(err, harconvert.ErrMalformedInput) // true

	doc, err = harconvert.DeserializeFromFile("missing.har")
	errors.Is(err, harconvert.ErrIOFailure) // true

A call either returns a fully normalized document or an error, never both.

# Configuration

Use NewConverter with functional options to customize behavior:

	conv := harconvert.NewConverter(
		harconvert.WithLogger(logger),
		harconvert.WithStructuralValidation(true),
		harconvert.WithMaxInputSize(64<<20),
	)
	doc, err := conv.DeserializeFromFile(path)

# Testing

Inject a FileSystem to control how files are opened. A generated mock is
available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	fs := mocks.NewMockFileSystem(ctrl)
	fs.EXPECT().Open("capture.har").Return(io.NopCloser(strings.NewReader(doc)), nil)

	conv := harconvert.NewConverter(harconvert.WithFileSystem(fs))

# Concurrency

A Converter holds no mutable state. Concurrent calls are safe as long as each
call works on its own input and output document.
*/
package harconvert
