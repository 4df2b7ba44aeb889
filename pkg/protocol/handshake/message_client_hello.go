// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"encoding/binary"

	"github.com/pion/tls/internal/codec"
	"github.com/pion/tls/pkg/protocol"
	"github.com/pion/tls/pkg/protocol/extension"
)

/*
MessageClientHello is for when a client first connects to a server it is
required to send the ClientHello as its first message. The client can also
send a ClientHello in response to a HelloRequest or on its own initiative
in order to renegotiate the security parameters in an existing connection.

https://tools.ietf.org/html/rfc4346#section-7.4.1.2
*/
type MessageClientHello struct {
	Version protocol.Version

	// Random is 32 bytes when built locally or parsed from the modern
	// format. A legacy short-form hello carries a 16 to 32 byte challenge
	// instead, kept here at its native length and never padded.
	Random []byte

	SessionID []byte

	// CipherSuiteIDs in client preference order.
	CipherSuiteIDs []uint16

	CompressionMethods []protocol.CompressionMethodID

	// ServerName is the first DNS entry of a server_name extension, if any.
	ServerName string

	// SRPIdentity is the srp extension user name, if any.
	SRPIdentity string
}

const (
	messageClientHelloMinLength       = 41
	messageClientHelloLegacyMinLength = 12

	// First body byte of a legacy short-form hello. A modern body starts
	// with the version major byte, which is 3 for every supported version.
	legacyHelloTag = 0x01
)

// Type returns the Handshake Type.
func (m MessageClientHello) Type() Type {
	return TypeClientHello
}

// Marshal encodes the message body in the modern format. No extensions are
// emitted on the outbound path.
func (m *MessageClientHello) Marshal() ([]byte, error) {
	switch {
	case len(m.Random) != RandomLength:
		return nil, errInvalidRandomLength
	case len(m.SessionID) > 32:
		return nil, errSessionIDTooLong
	case len(m.CipherSuiteIDs) == 0:
		return nil, errCipherSuitesEmpty
	case len(m.CompressionMethods) == 0:
		return nil, errCompressionsEmpty
	}

	out := make([]byte, 0, messageClientHelloMinLength)
	out = append(out, m.Version.Major, m.Version.Minor)
	out = append(out, m.Random...)

	out = codec.AppendLengthValue(out, m.SessionID, 1)

	suites := make([]byte, 0, 2*len(m.CipherSuiteIDs))
	for _, id := range m.CipherSuiteIDs {
		suites = codec.AppendUint16(suites, id)
	}
	out = codec.AppendLengthValue(out, suites, 2)

	compressions := make([]byte, 0, len(m.CompressionMethods))
	for _, id := range m.CompressionMethods {
		compressions = append(compressions, byte(id))
	}

	return codec.AppendLengthValue(out, compressions, 1), nil
}

// Unmarshal populates the message from a received body. A body of at least
// 12 bytes whose first byte is the legacy tag is decoded as a legacy
// short-form hello, everything else as the modern format.
func (m *MessageClientHello) Unmarshal(data []byte) error {
	if len(data) >= messageClientHelloLegacyMinLength && data[0] == legacyHelloTag {
		return m.unmarshalLegacy(data)
	}

	return m.unmarshalModern(data)
}

func (m *MessageClientHello) unmarshalModern(data []byte) error {
	if len(data) < messageClientHelloMinLength {
		return errBufferTooSmall
	}

	reader := codec.NewReader(data)

	version, err := reader.ReadUint16()
	if err != nil {
		return err
	}
	m.Version = protocol.Version{Major: uint8(version >> 8), Minor: uint8(version)} //nolint:gosec // G115

	if m.Random, err = reader.ReadFixed(RandomLength); err != nil {
		return err
	}
	if m.SessionID, err = reader.ReadRange(1, 0, 32); err != nil {
		return err
	}
	if m.CipherSuiteIDs, err = reader.ReadRangeVector16(2, 1, 32767); err != nil {
		return err
	}

	compressions, err := reader.ReadRangeVector8(1, 1, 255)
	if err != nil {
		return err
	}
	m.CompressionMethods = make([]protocol.CompressionMethodID, len(compressions))
	for i, id := range compressions {
		m.CompressionMethods[i] = protocol.CompressionMethodID(id)
	}

	if !reader.HasRemaining() {
		return nil
	}

	// The trailing extensions block carries its own total length, which
	// must account for every remaining byte.
	extensions, err := extension.Unmarshal(data[len(data)-reader.Remaining():])
	if err != nil {
		return err
	}
	for _, ext := range extensions {
		switch ext := ext.(type) {
		case *extension.ServerName:
			if m.ServerName == "" {
				m.ServerName = ext.ServerName
			}
		case *extension.SRPIdentity:
			m.SRPIdentity = ext.Identity
		}
	}

	return nil
}

// unmarshalLegacy decodes the short-form hello sent by clients that are
// still compatible with the original protocol generation. The body is laid
// out with fixed offsets instead of length-prefixed fields:
//
//	tag(1) version(2) cipherSpecLen(2) sessionIDLen(2) challengeLen(2)
//	cipherSpecs sessionID challenge
func (m *MessageClientHello) unmarshalLegacy(data []byte) error {
	cipherSpecLen := int(binary.BigEndian.Uint16(data[3:]))
	sessionIDLen := int(binary.BigEndian.Uint16(data[5:]))
	challengeLen := int(binary.BigEndian.Uint16(data[7:]))

	if len(data) != 9+sessionIDLen+cipherSpecLen+challengeLen {
		return errLegacyHelloCorrupted
	}
	if sessionIDLen != 0 || cipherSpecLen%3 != 0 || challengeLen < 16 || challengeLen > 32 {
		return errLegacyHelloCorrupted
	}

	m.Version = protocol.Version{Major: data[1], Minor: data[2]}

	// Cipher specs are 3 bytes each. A leading zero byte marks a suite that
	// also exists in the modern 16 bit registry; anything else is a
	// legacy-only suite and is dropped.
	for i := 9; i != 9+cipherSpecLen; i += 3 {
		if data[i] != 0 {
			continue
		}
		m.CipherSuiteIDs = append(m.CipherSuiteIDs, binary.BigEndian.Uint16(data[i+1:]))
	}

	// The challenge stands in for the client random at its native length.
	m.Random = append([]byte{}, data[9+cipherSpecLen+sessionIDLen:]...)

	return nil
}

// OfferedSuite reports whether the client proposed the given cipher suite.
func (m *MessageClientHello) OfferedSuite(id uint16) bool {
	for _, suite := range m.CipherSuiteIDs {
		if suite == id {
			return true
		}
	}

	return false
}
