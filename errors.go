// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tls

import (
	"errors"

	"github.com/pion/tls/pkg/protocol"
	"github.com/pion/tls/pkg/protocol/alert"
	"github.com/pion/tls/pkg/protocol/handshake"
)

// Typed errors.
var (
	//nolint:err113
	errCipherSuiteNoIntersection = &FatalError{Err: errors.New("client+server do not support any shared cipher suites")}
	//nolint:err113
	errRecordOverflow = &FatalError{Err: errors.New("record payload exceeds the maximum record size")}
)

// FatalError indicates that the TLS connection is no longer available.
// It is mainly caused by wrong configuration of server or client.
type FatalError = protocol.FatalError

// InternalError indicates an internal error caused by the implementation,
// and the TLS connection is no longer available.
type InternalError = protocol.InternalError

// TemporaryError indicates that the TLS connection is still available,
// but the request failed temporarily.
type TemporaryError = protocol.TemporaryError

// TimeoutError indicates that the request timed out.
type TimeoutError = protocol.TimeoutError

// HandshakeError indicates that the handshake failed.
type HandshakeError = protocol.HandshakeError

// AlertFromError maps a hello exchange failure to the alert the peer
// should receive before the connection closes. Negotiation and version
// failures carry their own alert codes; every framing or bounds failure is
// a plain decode error.
func AlertFromError(err error) alert.Alert {
	switch {
	case errors.Is(err, errCipherSuiteNoIntersection):
		return alert.Alert{Level: alert.Fatal, Description: alert.HandshakeFailure}
	case errors.Is(err, handshake.ErrUnsupportedProtocolVersion):
		return alert.Alert{Level: alert.Fatal, Description: alert.ProtocolVersion}
	default:
		return alert.Alert{Level: alert.Fatal, Description: alert.DecodeError}
	}
}
