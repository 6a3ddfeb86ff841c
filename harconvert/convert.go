// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package harconvert deserializes HAR documents and normalizes their redirect URLs.
package harconvert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/stacklok/toolhive-har/har"
)

// DefaultMaxInputSize is the maximum number of bytes read from a reader or file.
const DefaultMaxInputSize int64 = 256 << 20

// Converter deserializes HAR documents. It is immutable once created and
// safe for concurrent use from multiple goroutines.
type Converter struct {
	logger       *zap.Logger
	fs           FileSystem
	validate     bool
	maxInputSize int64
}

// Option configures a Converter created by [NewConverter].
type Option func(*Converter)

// WithLogger sets the logger used for debug output.
// The default is the process-wide logger returned by [zap.L] at call time.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// WithFileSystem sets the file system used by DeserializeFromFile.
// The default is [OSFileSystem].
func WithFileSystem(fs FileSystem) Option {
	return func(c *Converter) {
		c.fs = fs
	}
}

// WithStructuralValidation enables checking the decoded document with
// [har.Har.Validate] before normalization. It is disabled by default.
func WithStructuralValidation(enabled bool) Option {
	return func(c *Converter) {
		c.validate = enabled
	}
}

// WithMaxInputSize sets the maximum number of bytes read from a reader or file.
// Values below one are ignored. The default is [DefaultMaxInputSize].
func WithMaxInputSize(n int64) Option {
	return func(c *Converter) {
		if n > 0 {
			c.maxInputSize = n
		}
	}
}

// NewConverter creates a Converter with the given options applied.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		fs:           &OSFileSystem{},
		maxInputSize: DefaultMaxInputSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = NewConverter()

// Deserialize parses HAR JSON text and normalizes its redirect URLs using a
// Converter with default settings.
func Deserialize(text string) (*har.Har, error) {
	return defaultConverter.Deserialize(text)
}

// DeserializeBytes parses HAR JSON bytes and normalizes its redirect URLs
// using a Converter with default settings.
func DeserializeBytes(data []byte) (*har.Har, error) {
	return defaultConverter.DeserializeBytes(data)
}

// DeserializeReader parses HAR JSON from r and normalizes its redirect URLs
// using a Converter with default settings.
func DeserializeReader(r io.Reader) (*har.Har, error) {
	return defaultConverter.DeserializeReader(r)
}

// DeserializeFromFile parses the named HAR file and normalizes its redirect
// URLs using a Converter with default settings.
func DeserializeFromFile(path string) (*har.Har, error) {
	return defaultConverter.DeserializeFromFile(path)
}

// Deserialize parses HAR JSON text. Empty or whitespace-only text fails with
// ErrInvalidArgument.
func (c *Converter) Deserialize(text string) (*har.Har, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: HAR text is empty", ErrInvalidArgument)
	}
	return c.decode([]byte(text))
}

// DeserializeBytes parses HAR JSON bytes. Nil, empty or whitespace-only data
// fails with ErrInvalidArgument.
func (c *Converter) DeserializeBytes(data []byte) (*har.Har, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: HAR data is nil", ErrInvalidArgument)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: HAR data is empty", ErrInvalidArgument)
	}
	return c.decode(data)
}

// DeserializeReader parses HAR JSON read from r. A nil reader fails with
// ErrInvalidArgument and a failed read with ErrIOFailure. The reader is not closed.
func (c *Converter) DeserializeReader(r io.Reader) (*har.Har, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: HAR reader is nil", ErrInvalidArgument)
	}
	data, err := c.readAll(r)
	if err != nil {
		return nil, err
	}
	return c.decode(data)
}

// DeserializeFromFile parses the named HAR file. The file is closed before
// DeserializeFromFile returns, on success and on failure.
func (c *Converter) DeserializeFromFile(path string) (result *har.Har, err error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrIOFailure, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			result = nil
			err = fmt.Errorf("%w: failed to close %s: %w", ErrIOFailure, path, cerr)
		}
	}()

	data, err := c.readAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.log().Debug("read HAR file", zap.String("path", path), zap.Int("bytes", len(data)))

	result, err = c.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// readAll reads r up to the configured size limit. One byte past the limit
// is read so oversized input can be told apart from input of exactly the limit.
func (c *Converter) readAll(r io.Reader) ([]byte, error) {
	readLimit := c.maxInputSize
	if readLimit < math.MaxInt64 {
		readLimit++
	}
	data, err := io.ReadAll(io.LimitReader(r, readLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if int64(len(data)) > c.maxInputSize {
		return nil, fmt.Errorf("%w: input exceeds maximum size of %d bytes", ErrMalformedInput, c.maxInputSize)
	}
	return data, nil
}

// decode maps data onto the entity model, then validates and normalizes it.
func (c *Converter) decode(data []byte) (*har.Har, error) {
	var doc *har.Har
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedInput)
	}

	if c.validate {
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
	}

	if err := c.NormalizeRedirectURLs(doc); err != nil {
		return nil, err
	}

	c.log().Debug("deserialized HAR document",
		zap.Int("bytes", len(data)),
		zap.Int("entries", len(doc.Log.Entries)))

	return doc, nil
}

func (c *Converter) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return zap.L()
}
