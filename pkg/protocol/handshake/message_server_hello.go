// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/tls/internal/codec"
	"github.com/pion/tls/pkg/protocol"
)

/*
MessageServerHello is sent in response to a ClientHello message when the
server was able to find an acceptable set of algorithms. If it cannot find
such a match, it responds with a handshake failure alert.

https://tools.ietf.org/html/rfc4346#section-7.4.1.3
*/
type MessageServerHello struct {
	Version   protocol.Version
	Random    []byte
	SessionID []byte

	// CipherSuiteID is the server's pick. Zero is the internal sentinel for
	// "no suite agreed" and is never a valid transmitted value.
	CipherSuiteID uint16

	CompressionMethod protocol.CompressionMethodID
}

const messageServerHelloMinLength = 38

// Type returns the Handshake Type.
func (m MessageServerHello) Type() Type {
	return TypeServerHello
}

// Marshal encodes the message body.
func (m *MessageServerHello) Marshal() ([]byte, error) {
	switch {
	case m.CipherSuiteID == 0:
		return nil, errCipherSuiteUnset
	case len(m.Random) != RandomLength:
		return nil, errInvalidRandomLength
	case len(m.SessionID) > 32:
		return nil, errSessionIDTooLong
	}

	out := make([]byte, 0, messageServerHelloMinLength)
	out = append(out, m.Version.Major, m.Version.Minor)
	out = append(out, m.Random...)
	out = codec.AppendLengthValue(out, m.SessionID, 1)
	out = codec.AppendUint16(out, m.CipherSuiteID)

	return append(out, byte(m.CompressionMethod)), nil
}

// Unmarshal populates the message from a received body.
func (m *MessageServerHello) Unmarshal(data []byte) error {
	if len(data) < messageServerHelloMinLength {
		return errBufferTooSmall
	}

	reader := codec.NewReader(data)

	version, err := reader.ReadUint16()
	if err != nil {
		return err
	}
	if !protocol.IsSupportedBytes(uint8(version>>8), uint8(version)) { //nolint:gosec // G115
		return ErrUnsupportedProtocolVersion
	}
	m.Version = protocol.Version{Major: uint8(version >> 8), Minor: uint8(version)} //nolint:gosec // G115

	if m.Random, err = reader.ReadFixed(RandomLength); err != nil {
		return err
	}
	if m.SessionID, err = reader.ReadRange(1, 0, 32); err != nil {
		return err
	}
	if m.CipherSuiteID, err = reader.ReadUint16(); err != nil {
		return err
	}
	if m.CipherSuiteID == 0 {
		return errCipherSuiteUnset
	}

	compression, err := reader.ReadUint8()
	if err != nil {
		return err
	}
	m.CompressionMethod = protocol.CompressionMethodID(compression)

	return nil
}
