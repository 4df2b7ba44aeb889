// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tls

import (
	"testing"

	"github.com/pion/transport/v3/dpipe"
	"github.com/pion/tls/pkg/protocol"
	"github.com/stretchr/testify/assert"
)

func TestRecordWriter(t *testing.T) {
	connA, connB := dpipe.Pipe()
	defer func() {
		assert.NoError(t, connA.Close())
		assert.NoError(t, connB.Close())
	}()

	writer := NewRecordWriter(connA, protocol.VersionTLS11)
	assert.NoError(t, writer.WriteRecord(protocol.ContentTypeHandshake, []byte{0x0E, 0x00, 0x00, 0x00}))
	assert.NoError(t, writer.Flush())

	buf := make([]byte, 64)
	n, err := connB.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		0x16,       // handshake
		0x03, 0x02, // TLS 1.1
		0x00, 0x04, // length
		0x0E, 0x00, 0x00, 0x00,
	}, buf[:n])
}

func TestRecordWriterOverflow(t *testing.T) {
	connA, connB := dpipe.Pipe()
	defer func() {
		assert.NoError(t, connA.Close())
		assert.NoError(t, connB.Close())
	}()

	writer := NewRecordWriter(connA, protocol.VersionTLS11)
	err := writer.WriteRecord(protocol.ContentTypeHandshake, make([]byte, maxRecordLength+1))
	assert.ErrorIs(t, err, errRecordOverflow)
}
