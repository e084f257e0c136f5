// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"maps"
	"net/http"
)

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code and the number of body bytes written. It is used
// by withLogging to observe the response after the handler has returned.
//
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are ignored, as documented by [http.ResponseWriter].
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader (or an implicit one via Write) is called.
	status int

	wroteHeader bool

	// size is the running total of body bytes across all Write calls.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sends 200 when WriteHeader has not been called yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// bufferedResponseWriter holds a whole response in memory until flushTo is
// called. Nothing reaches the client before that, which lets withRecovery
// replace the response after a panic.
type bufferedResponseWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedResponseWriter() *bufferedResponseWriter {
	return &bufferedResponseWriter{header: make(http.Header)}
}

func (w *bufferedResponseWriter) Header() http.Header {
	return w.header
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

// flushTo copies the buffered headers, status and body to dst.
func (w *bufferedResponseWriter) flushTo(dst http.ResponseWriter) error {
	maps.Copy(dst.Header(), w.header)

	if w.status == 0 {
		w.status = http.StatusOK
	}
	dst.WriteHeader(w.status)

	_, err := w.body.WriteTo(dst)
	return err
}
