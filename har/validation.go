// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package har

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const structureSchemaFile = "data/har-structure.schema.json"

//go:embed data/har-structure.schema.json
var embeddedSchemaFS embed.FS

// Validate checks the Har against the embedded structural schema.
// The graph is encoded first, so field names are checked in their canonical
// casing regardless of how the source document spelled them.
func (h *Har) Validate() error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to serialize har: %w", err)
	}
	return ValidateBytes(data)
}

// ValidateBytes checks raw HAR JSON bytes against the embedded structural schema.
// Field names are matched case-sensitively in canonical HAR casing.
func ValidateBytes(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(structureSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", structureSchemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("har structure validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("har structure validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
