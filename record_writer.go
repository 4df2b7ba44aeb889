// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tls

import (
	"bufio"
	"net"

	"github.com/pion/tls/pkg/protocol"
)

// maxRecordLength is the largest payload a single plaintext record may
// carry.
const maxRecordLength = 16384

// recordWriter frames data into plaintext TLS records and writes them to
// the underlying conn. The hello exchange happens before any keys exist,
// so there is no record protection here; encrypted records are the record
// layer's concern, not this package's.
type recordWriter struct {
	version protocol.Version
	buf     *bufio.Writer
}

// NewRecordWriter returns a handshake.Writer that frames handshake data
// into plaintext records on conn, stamped with the given record layer
// version.
func NewRecordWriter(conn net.Conn, version protocol.Version) *recordWriter { //nolint:revive
	return &recordWriter{
		version: version,
		buf:     bufio.NewWriter(conn),
	}
}

// WriteRecord buffers one record: content type, version, 16 bit length,
// payload.
func (w *recordWriter) WriteRecord(contentType protocol.ContentType, data []byte) error {
	if len(data) > maxRecordLength {
		return errRecordOverflow
	}

	header := []byte{
		byte(contentType),
		w.version.Major, w.version.Minor,
		byte(len(data) >> 8), byte(len(data)),
	}
	if _, err := w.buf.Write(header); err != nil {
		return err
	}
	_, err := w.buf.Write(data)

	return err
}

// Flush writes all buffered records to the conn.
func (w *recordWriter) Flush() error {
	return w.buf.Flush()
}
