// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import (
	"errors"
	"fmt"
	"net"
)

// FatalError indicates that the TLS connection is no longer available.
// It is mainly caused by wrong configuration of server or client.
type FatalError struct {
	Err error
}

// InternalError indicates an internal error caused by the implementation,
// and the TLS connection is no longer available.
type InternalError struct {
	Err error
}

// TemporaryError indicates that the TLS connection is still available,
// but the request failed temporarily.
type TemporaryError struct {
	Err error
}

// TimeoutError indicates that the request timed out.
type TimeoutError struct {
	Err error
}

// HandshakeError indicates that the handshake failed.
type HandshakeError struct {
	Err error
}

// Timeout implements net.Error.Timeout().
func (e *FatalError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (e *FatalError) Temporary() bool { return false }

// Unwrap implements Go 1.13 error unwrapper.
func (e *FatalError) Unwrap() error { return e.Err }

func (e *FatalError) Error() string { return fmt.Sprintf("tls fatal: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (e *InternalError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (e *InternalError) Temporary() bool { return false }

// Unwrap implements Go 1.13 error unwrapper.
func (e *InternalError) Unwrap() error { return e.Err }

func (e *InternalError) Error() string { return fmt.Sprintf("tls internal: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (e *TemporaryError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (e *TemporaryError) Temporary() bool { return true }

// Unwrap implements Go 1.13 error unwrapper.
func (e *TemporaryError) Unwrap() error { return e.Err }

func (e *TemporaryError) Error() string { return fmt.Sprintf("tls temporary: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (e *TimeoutError) Timeout() bool { return true }

// Temporary implements net.Error.Temporary().
func (e *TimeoutError) Temporary() bool { return true }

// Unwrap implements Go 1.13 error unwrapper.
func (e *TimeoutError) Unwrap() error { return e.Err }

func (e *TimeoutError) Error() string { return fmt.Sprintf("tls timeout: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (e *HandshakeError) Timeout() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

// Temporary implements net.Error.Temporary().
func (e *HandshakeError) Temporary() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) {
		return netErr.Temporary() //nolint:staticcheck
	}

	return false
}

// Unwrap implements Go 1.13 error unwrapper.
func (e *HandshakeError) Unwrap() error { return e.Err }

func (e *HandshakeError) Error() string { return fmt.Sprintf("handshake error: %v", e.Err) }
