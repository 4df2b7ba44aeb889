// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"

	"github.com/pion/tls/pkg/crypto/transcript"
	"github.com/pion/tls/pkg/protocol"
	"github.com/stretchr/testify/assert"
)

type captureWriter struct {
	contentTypes []protocol.ContentType
	records      [][]byte
	flushes      int
}

func (w *captureWriter) WriteRecord(contentType protocol.ContentType, data []byte) error {
	w.contentTypes = append(w.contentTypes, contentType)
	w.records = append(w.records, append([]byte{}, data...))

	return nil
}

func (w *captureWriter) Flush() error {
	w.flushes++

	return nil
}

func TestHeader(t *testing.T) {
	rawHeader := []byte{0x01, 0x00, 0x00, 0x29}
	parsedHeader := &Header{Type: TypeClientHello, Length: 0x29}

	h := &Header{}
	assert.NoError(t, h.Unmarshal(rawHeader))
	assert.Equal(t, parsedHeader, h)

	raw, err := h.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, rawHeader, raw)

	assert.ErrorIs(t, (&Header{}).Unmarshal([]byte{0x01, 0x00, 0x00}), errBufferTooSmall)
}

func TestSend(t *testing.T) {
	writer := &captureWriter{}
	hash := transcript.New()

	msg := &MessageServerHello{
		Version:           protocol.VersionTLS10,
		Random:            helloRandom(),
		SessionID:         []byte{},
		CipherSuiteID:     0x002F,
		CompressionMethod: protocol.CompressionMethodNull,
	}
	assert.NoError(t, Send(writer, hash, msg))

	body, err := msg.Marshal()
	assert.NoError(t, err)
	framed := append([]byte{byte(TypeServerHello), 0x00, 0x00, byte(len(body))}, body...)

	assert.Equal(t, [][]byte{framed}, writer.records)
	assert.Equal(t, []protocol.ContentType{protocol.ContentTypeHandshake}, writer.contentTypes)
	assert.Equal(t, 1, writer.flushes, "send must flush before returning")

	// The transcript sees the exact framed bytes.
	assert.Equal(t, framed, hash.Bytes())
}

func TestSendEmptyBody(t *testing.T) {
	writer := &captureWriter{}
	hash := transcript.New()

	assert.NoError(t, Send(writer, hash, &MessageHelloRequest{}))
	assert.Equal(t, [][]byte{{0x00, 0x00, 0x00, 0x00}}, writer.records)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, hash.Bytes())
}

func TestSendMarshalFailure(t *testing.T) {
	writer := &captureWriter{}
	hash := transcript.New()

	err := Send(writer, hash, &MessageServerHello{Version: protocol.VersionTLS10, Random: helloRandom()})
	assert.ErrorIs(t, err, errCipherSuiteUnset)

	assert.Empty(t, writer.records, "nothing may reach the wire on a marshal failure")
	assert.Zero(t, hash.Len(), "nothing may reach the transcript on a marshal failure")
}
