// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package har contains the type definitions for HTTP Archive (HAR) 1.1 and 1.2 documents.
package har

// Field names follow the HAR 1.2 specification casing. Decoding with
// encoding/json matches them case-insensitively, so "URL", "Url" and "url"
// all bind to Request.URL.
//
// Optional fields whose absence must stay distinguishable from an empty value
// are pointers. Optional fields where the zero value is never meaningful use
// omitempty on the plain type.

// Har is the root of a HAR document.
type Har struct {
	// Log is the single log object of the archive
	Log *Log `json:"log"`
}

// Log holds the recorded traffic of one session.
type Log struct {
	// Version is the HAR format version, "1.1" or "1.2"
	Version string `json:"version"`
	// Creator describes the application that produced the log
	Creator *Creator `json:"creator,omitempty"`
	// Browser describes the browser that produced the log, if any
	Browser *Browser `json:"browser,omitempty"`
	// Pages lists the pages the entries are grouped under
	Pages []*Page `json:"pages,omitempty"`
	// Entries lists every recorded request in recording order
	Entries []*Entry `json:"entries"`
	// Comment is a free-form comment added by the user or the producer
	Comment *string `json:"comment,omitempty"`
}

// Creator identifies the application that exported the log.
type Creator struct {
	Name    string  `json:"name"`
	Version string  `json:"version"`
	Comment *string `json:"comment,omitempty"`
}

// Browser identifies the browser that exported the log.
type Browser struct {
	Name    string  `json:"name"`
	Version string  `json:"version"`
	Comment *string `json:"comment,omitempty"`
}

// Page groups entries that belong to the same page load.
type Page struct {
	// StartedDateTime is the page load start in ISO 8601 format
	StartedDateTime string `json:"startedDateTime"`
	// ID is referenced by Entry.PageRef
	ID string `json:"id"`
	// Title is the page title
	Title string `json:"title"`
	// PageTimings holds DOM-related timing information
	PageTimings *PageTimings `json:"pageTimings,omitempty"`
	Comment     *string      `json:"comment,omitempty"`
}

// PageTimings describes timings for page events in milliseconds since
// Page.StartedDateTime. A value of -1 means the timing does not apply.
type PageTimings struct {
	OnContentLoad *float64 `json:"onContentLoad,omitempty"`
	OnLoad        *float64 `json:"onLoad,omitempty"`
	Comment       *string  `json:"comment,omitempty"`
}

// Entry is one recorded HTTP transaction.
type Entry struct {
	// PageRef references the parent Page.ID
	PageRef *string `json:"pageref,omitempty"`
	// StartedDateTime is the request start in ISO 8601 format
	StartedDateTime string `json:"startedDateTime"`
	// Time is the total elapsed time of the request in milliseconds
	Time float64 `json:"time"`
	// Request is the sent request
	Request *Request `json:"request"`
	// Response is the received response
	Response *Response `json:"response"`
	// Cache holds information about cache usage
	Cache *Cache `json:"cache,omitempty"`
	// Timings breaks Time down into request/response phases
	Timings *Timings `json:"timings,omitempty"`
	// ServerIPAddress is the IP address of the server that was connected
	ServerIPAddress *string `json:"serverIPAddress,omitempty"`
	// Connection is the unique ID of the TCP/IP connection
	Connection *string `json:"connection,omitempty"`
	Comment    *string `json:"comment,omitempty"`
}

// Request describes a performed request.
type Request struct {
	Method string `json:"method"`
	// URL is the absolute URL of the request, fragments excluded
	URL         string       `json:"url"`
	HTTPVersion string       `json:"httpVersion"`
	Cookies     []*Cookie    `json:"cookies,omitempty"`
	Headers     []*NameValue `json:"headers,omitempty"`
	QueryString []*NameValue `json:"queryString,omitempty"`
	PostData    *PostData    `json:"postData,omitempty"`
	// HeadersSize is the total number of bytes from the start of the request
	// to the body, -1 when unknown
	HeadersSize int64 `json:"headersSize"`
	// BodySize is the size of the request body in bytes, -1 when unknown
	BodySize int64   `json:"bodySize"`
	Comment  *string `json:"comment,omitempty"`
}

// Response describes a received response.
type Response struct {
	Status      int          `json:"status"`
	StatusText  string       `json:"statusText"`
	HTTPVersion string       `json:"httpVersion"`
	Cookies     []*Cookie    `json:"cookies,omitempty"`
	Headers     []*NameValue `json:"headers,omitempty"`
	Content     *Content     `json:"content,omitempty"`
	// RedirectURL is the target of the Location response header. It is nil
	// when the producer omitted the field, which is different from "".
	RedirectURL *string `json:"redirectURL,omitempty"`
	HeadersSize int64   `json:"headersSize"`
	BodySize    int64   `json:"bodySize"`
	Comment     *string `json:"comment,omitempty"`
}

// Cookie describes a cookie sent with a request or set by a response.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Path     *string `json:"path,omitempty"`
	Domain   *string `json:"domain,omitempty"`
	Expires  *string `json:"expires,omitempty"`
	HTTPOnly *bool   `json:"httpOnly,omitempty"`
	Secure   *bool   `json:"secure,omitempty"`
	Comment  *string `json:"comment,omitempty"`
}

// NameValue is a header or query string parameter.
type NameValue struct {
	Name    string  `json:"name"`
	Value   string  `json:"value"`
	Comment *string `json:"comment,omitempty"`
}

// PostData describes posted data.
type PostData struct {
	MimeType string   `json:"mimeType"`
	Params   []*Param `json:"params,omitempty"`
	Text     *string  `json:"text,omitempty"`
	Comment  *string  `json:"comment,omitempty"`
}

// Param is a posted parameter, possibly an uploaded file.
type Param struct {
	Name        string  `json:"name"`
	Value       *string `json:"value,omitempty"`
	FileName    *string `json:"fileName,omitempty"`
	ContentType *string `json:"contentType,omitempty"`
	Comment     *string `json:"comment,omitempty"`
}

// Content describes the response body.
type Content struct {
	Size        int64   `json:"size"`
	Compression *int64  `json:"compression,omitempty"`
	MimeType    string  `json:"mimeType"`
	Text        *string `json:"text,omitempty"`
	// Encoding is set when Text is encoded, e.g. "base64"
	Encoding *string `json:"encoding,omitempty"`
	Comment  *string `json:"comment,omitempty"`
}

// Cache describes the cache state before and after the request.
type Cache struct {
	BeforeRequest *CacheEntry `json:"beforeRequest,omitempty"`
	AfterRequest  *CacheEntry `json:"afterRequest,omitempty"`
	Comment       *string     `json:"comment,omitempty"`
}

// CacheEntry describes one cache entry.
type CacheEntry struct {
	Expires    *string `json:"expires,omitempty"`
	LastAccess string  `json:"lastAccess"`
	ETag       string  `json:"eTag"`
	HitCount   int64   `json:"hitCount"`
	Comment    *string `json:"comment,omitempty"`
}

// Timings describes the phases of a request/response round trip in
// milliseconds. Optional phases are -1 or absent when they do not apply.
type Timings struct {
	Blocked *float64 `json:"blocked,omitempty"`
	DNS     *float64 `json:"dns,omitempty"`
	Connect *float64 `json:"connect,omitempty"`
	Send    float64  `json:"send"`
	Wait    float64  `json:"wait"`
	Receive float64  `json:"receive"`
	SSL     *float64 `json:"ssl,omitempty"`
	Comment *string  `json:"comment,omitempty"`
}

// String returns a pointer to s. It is a convenience for populating optional
// fields.
func String(s string) *string {
	return &s
}
