// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package handshake provides the TLS handshake message wire format
package handshake

import (
	"github.com/pion/tls/internal/codec"
	"github.com/pion/tls/pkg/protocol"
)

// Type is the unique identifier for each handshake message
//
// https://tools.ietf.org/html/rfc4346#section-7.4
type Type uint8

// Types of TLS Handshake messages we know about.
const (
	TypeHelloRequest       Type = 0
	TypeClientHello        Type = 1
	TypeServerHello        Type = 2
	TypeCertificate        Type = 11
	TypeServerKeyExchange  Type = 12
	TypeCertificateRequest Type = 13
	TypeServerHelloDone    Type = 14
	TypeCertificateVerify  Type = 15
	TypeClientKeyExchange  Type = 16
	TypeFinished           Type = 20
)

func (t Type) String() string {
	switch t {
	case TypeHelloRequest:
		return "HelloRequest"
	case TypeClientHello:
		return "ClientHello"
	case TypeServerHello:
		return "ServerHello"
	case TypeCertificate:
		return "Certificate"
	case TypeServerKeyExchange:
		return "ServerKeyExchange"
	case TypeCertificateRequest:
		return "CertificateRequest"
	case TypeServerHelloDone:
		return "ServerHelloDone"
	case TypeCertificateVerify:
		return "CertificateVerify"
	case TypeClientKeyExchange:
		return "ClientKeyExchange"
	case TypeFinished:
		return "Finished"
	default:
		return "Unknown Handshake Type"
	}
}

// HeaderLength is the length of the framing every handshake message
// carries: one type byte and a 24 bit body length.
const HeaderLength = 4

// Header is the prefix a handshake message body is framed with before it
// reaches the record layer and the transcript.
type Header struct {
	Type   Type
	Length uint32 // uint24 on the wire
}

// Marshal encodes the header.
func (h *Header) Marshal() ([]byte, error) {
	out := make([]byte, 0, HeaderLength)
	out = append(out, byte(h.Type))

	return codec.AppendUint24(out, h.Length), nil
}

// Unmarshal populates the header from encoded data.
func (h *Header) Unmarshal(data []byte) error {
	if len(data) < HeaderLength {
		return errBufferTooSmall
	}

	h.Type = Type(data[0])
	h.Length = uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])

	return nil
}

// Message is the body of one handshake message. A Message is populated
// either by its constructor (outbound) or by one Unmarshal call (inbound)
// and not mutated afterwards.
type Message interface {
	Type() Type
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
}

// Writer is the transport collaborator Send hands framed messages to.
type Writer interface {
	WriteRecord(contentType protocol.ContentType, data []byte) error
	Flush() error
}

// Hasher is the transcript collaborator Send feeds framed messages to.
type Hasher interface {
	Update(data []byte)
}

// Send marshals msg, frames it with its header, feeds the exact framed
// bytes to the transcript hash and writes them to the transport. The
// message is flushed before Send returns; one message is fully on the wire
// (and in the transcript) before the next begins, so transcript order
// always matches wire order.
func Send(writer Writer, hash Hasher, msg Message) error {
	body, err := msg.Marshal()
	if err != nil {
		return err
	}

	header := Header{Type: msg.Type(), Length: uint32(len(body))} //nolint:gosec // G115
	out, err := header.Marshal()
	if err != nil {
		return err
	}
	out = append(out, body...)

	hash.Update(out)

	if err := writer.WriteRecord(protocol.ContentTypeHandshake, out); err != nil {
		return err
	}

	return writer.Flush()
}
