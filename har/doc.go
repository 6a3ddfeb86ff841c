// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package har provides the entity model for HTTP Archive (HAR) 1.1 and 1.2
documents.

The model is a plain data graph: a [Har] holds one [Log], which holds the
recorded [Entry] values in recording order, each with a [Request] and a
[Response]. The types carry no behavior beyond field access and a structural
check. Use package harconvert to build a graph from JSON.

# Optional Fields

Optional fields whose absence is meaningful are pointers. A nil
[Response.RedirectURL] means the producer omitted the field, while a pointer
to "" means it wrote an empty string:

	if e.Response.RedirectURL != nil {
		fmt.Println("redirects to", *e.Response.RedirectURL)
	}

Use [String] to populate optional string fields:

	resp := &har.Response{Status: 302, RedirectURL: har.String("/login")}

Encoding a graph with encoding/json omits absent optional fields.

# Structural Validation

[Har.Validate] checks that the nodes downstream processing depends on are
present: the log object, the entries array, and a request object with a
non-empty url and a response object for every entry. It is not a full HAR
schema validation.

	if err := doc.Validate(); err != nil {
		// Handle structural error
	}
*/
package har
