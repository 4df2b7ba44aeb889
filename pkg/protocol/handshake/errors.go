// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import "errors"

// Typed errors.
var (
	errBufferTooSmall       = errors.New("buffer is too small")
	errBodyNotEmpty         = errors.New("message body must be empty, and is not")
	errLegacyHelloCorrupted = errors.New("legacy client hello corrupted")
	errInvalidRandomLength  = errors.New("hello random must be 32 bytes")
	errSessionIDTooLong     = errors.New("session id must not be longer than 32 bytes")
	errCipherSuitesEmpty    = errors.New("client hello must offer at least one cipher suite")
	errCompressionsEmpty    = errors.New("client hello must offer at least one compression method")
	errCipherSuiteUnset     = errors.New("server hello can not be created without a cipher suite")
)

// ErrUnsupportedProtocolVersion is returned when a ServerHello names a
// protocol version outside the supported set. It is distinct from the
// framing errors so callers can close with a protocol_version alert
// instead of a generic decode_error.
var ErrUnsupportedProtocolVersion = errors.New("unsupported protocol version")
