// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codec

import "errors"

// Typed errors. Every one of them is terminal for the enclosing
// Unmarshal call; a Reader must not be reused after returning one.
var (
	// ErrBufferTooSmall is returned when a read would pass the end of the buffer.
	ErrBufferTooSmall = errors.New("buffer is too small")
	// ErrLengthOutOfRange is returned when a declared length field is outside its allowed bounds.
	ErrLengthOutOfRange = errors.New("declared length is out of range")
	// ErrVectorLengthInvalid is returned when a vector's byte length is not a
	// multiple of its element width.
	ErrVectorLengthInvalid = errors.New("vector length is not a multiple of the element width")
	// ErrUnsupportedLengthWidth is returned for length prefixes other than 1 or 2 bytes.
	ErrUnsupportedLengthWidth = errors.New("unsupported length field width")
)
