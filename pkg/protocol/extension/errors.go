// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import "errors"

// Typed errors.
var (
	errBufferTooSmall = errors.New("buffer is too small")
	errLengthMismatch = errors.New("data length and declared length do not match")
	errInvalidTypeValue = errors.New("extension code does not match this extension")
)
