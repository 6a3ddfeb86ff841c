// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package harconvert

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks FileSystem

import (
	"io"
	"os"
)

// FileSystem opens named files for reading.
type FileSystem interface {
	// Open opens the named file. The caller closes the returned stream.
	Open(name string) (io.ReadCloser, error)
}

// OSFileSystem implements FileSystem using the standard os package
type OSFileSystem struct{}

// Open opens the named file for reading with os.Open
func (*OSFileSystem) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name) //nolint:gosec // caller-supplied path
	if err != nil {
		return nil, err
	}
	return f, nil
}
