// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"

	"github.com/pion/tls/pkg/protocol"
	"github.com/stretchr/testify/assert"
)

func rawServerHello() []byte {
	raw := []byte{0x03, 0x02}
	raw = append(raw, helloRandom()...)

	return append(raw,
		0x00,       // session id length
		0x00, 0x2F, // cipher suite
		0x00, // compression method
	)
}

func TestMessageServerHello(t *testing.T) {
	parsedServerHello := &MessageServerHello{
		Version:           protocol.VersionTLS11,
		Random:            helloRandom(),
		SessionID:         []byte{},
		CipherSuiteID:     0x002F,
		CompressionMethod: protocol.CompressionMethodNull,
	}

	m := &MessageServerHello{}
	assert.NoError(t, m.Unmarshal(rawServerHello()))
	assert.Equal(t, parsedServerHello, m)

	raw, err := m.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, rawServerHello(), raw)
}

func TestMessageServerHelloSessionID(t *testing.T) {
	sessionID := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	m := &MessageServerHello{
		Version:           protocol.VersionTLS10,
		Random:            helloRandom(),
		SessionID:         sessionID,
		CipherSuiteID:     0x0035,
		CompressionMethod: protocol.CompressionMethodNull,
	}
	raw, err := m.Marshal()
	assert.NoError(t, err)

	parsed := &MessageServerHello{}
	assert.NoError(t, parsed.Unmarshal(raw))
	assert.Equal(t, m, parsed)
}

func TestMessageServerHelloUnsupportedVersion(t *testing.T) {
	for _, version := range [][2]byte{{0x03, 0x03}, {0xFE, 0xFD}, {0x02, 0x00}} {
		raw := rawServerHello()
		raw[0], raw[1] = version[0], version[1]

		err := (&MessageServerHello{}).Unmarshal(raw)
		assert.ErrorIs(t, err, ErrUnsupportedProtocolVersion, "version %v", version)
	}
}

func TestMessageServerHelloTruncated(t *testing.T) {
	raw := rawServerHello()
	for i := range raw {
		err := (&MessageServerHello{}).Unmarshal(raw[:i])
		assert.Error(t, err)
		// Framing failures must stay distinguishable from version failures.
		assert.NotErrorIs(t, err, ErrUnsupportedProtocolVersion)
	}
}

func TestMessageServerHelloZeroSuite(t *testing.T) {
	raw := rawServerHello()
	raw[35], raw[36] = 0x00, 0x00 // zero is the no-agreement sentinel, never sent

	assert.ErrorIs(t, (&MessageServerHello{}).Unmarshal(raw), errCipherSuiteUnset)

	_, err := (&MessageServerHello{Version: protocol.VersionTLS10, Random: helloRandom()}).Marshal()
	assert.ErrorIs(t, err, errCipherSuiteUnset)
}
