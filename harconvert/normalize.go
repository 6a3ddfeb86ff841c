// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package harconvert

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/stacklok/toolhive-har/har"
)

// NormalizeRedirectURLs rewrites partial redirect URLs in h to absolute URLs
// using a Converter with default settings. See [Converter.NormalizeRedirectURLs].
func NormalizeRedirectURLs(h *har.Har) error {
	return defaultConverter.NormalizeRedirectURLs(h)
}

// redirectRewrite is a pending replacement of one entry's redirect URL.
type redirectRewrite struct {
	index    int
	response *har.Response
	value    string
}

// NormalizeRedirectURLs rewrites, in place, every response redirect URL that
// starts with "/" into an absolute URL carrying the scheme and authority of
// the same entry's request URL. Nil, empty and absolute redirect URLs are
// left untouched, so running it twice changes nothing the second time.
//
// A nil document, a nil Log or nil Entries is malformed. An empty, non-nil
// Entries slice is valid and left as is.
//
// Rewrites are computed for all entries before any is applied; on error h is
// left unmodified.
func (c *Converter) NormalizeRedirectURLs(h *har.Har) error {
	if h == nil {
		return fmt.Errorf("%w: document is null", ErrMalformedInput)
	}
	if h.Log == nil {
		return fmt.Errorf("%w: missing log", ErrMalformedInput)
	}
	if h.Log.Entries == nil {
		return fmt.Errorf("%w: missing entries", ErrMalformedInput)
	}

	var rewrites []redirectRewrite
	for i, entry := range h.Log.Entries {
		if !hasPartialRedirect(entry) {
			continue
		}
		if entry.Request == nil {
			return fmt.Errorf("%w: entry %d: missing request", ErrMalformedInput, i)
		}

		prefix, err := authorityPrefix(entry.Request.URL)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrMalformedInput, i, err)
		}

		rewrites = append(rewrites, redirectRewrite{
			index:    i,
			response: entry.Response,
			value:    prefix + redirectPath(*entry.Response.RedirectURL),
		})
	}

	logger := c.log()
	for _, rw := range rewrites {
		logger.Debug("normalized partial redirect URL",
			zap.Int("entry", rw.index),
			zap.String("from", *rw.response.RedirectURL),
			zap.String("to", rw.value))
		rw.response.RedirectURL = har.String(rw.value)
	}

	return nil
}

// hasPartialRedirect reports whether the entry's redirect URL is present and
// starts with a forward slash.
func hasPartialRedirect(entry *har.Entry) bool {
	if entry == nil || entry.Response == nil || entry.Response.RedirectURL == nil {
		return false
	}
	return strings.HasPrefix(*entry.Response.RedirectURL, "/")
}

// authorityPrefix returns scheme://host[:port] of an absolute URL.
// Unlike .NET's GetLeftPart(UriPartial.Authority), userinfo is dropped and an
// explicit default port such as :443 on https is kept as written.
func authorityPrefix(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid request url: %w", err)
	}

	// Must have a scheme and a host
	if parsed.Scheme == "" {
		return "", fmt.Errorf("request url must include a scheme (e.g., https://): %q", rawURL)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("request url must include a host: %q", rawURL)
	}

	return parsed.Scheme + "://" + parsed.Host, nil
}

// redirectPath returns the part of a slash-prefixed redirect URL to append to
// the authority prefix. A network-path reference ("//host/path") carries its
// own authority, so only its path is kept. Anything else is used verbatim,
// query string included.
func redirectPath(redirect string) string {
	parsed, err := url.Parse(redirect)
	if err == nil && parsed.Host != "" {
		return parsed.EscapedPath()
	}
	return redirect
}
