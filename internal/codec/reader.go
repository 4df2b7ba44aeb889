// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package codec provides the bounds-checked cursor and length-prefixed
// field helpers every handshake message codec is built on.
package codec

import (
	"encoding/binary"

	"golang.org/x/crypto/cryptobyte"
)

// Reader is a sequential cursor over a received message body. Every read
// advances the cursor and fails instead of passing the end of the buffer.
type Reader struct {
	s cryptobyte.String
}

// NewReader returns a Reader over data. The buffer is not copied; callers
// must not mutate it while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{s: cryptobyte.String(data)}
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	var v uint8
	if !r.s.ReadUint8(&v) {
		return 0, ErrBufferTooSmall
	}

	return v, nil
}

// ReadUint16 reads a big-endian 16 bit value.
func (r *Reader) ReadUint16() (uint16, error) {
	var v uint16
	if !r.s.ReadUint16(&v) {
		return 0, ErrBufferTooSmall
	}

	return v, nil
}

// ReadFixed reads exactly n bytes into a fresh slice.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	var v []byte
	if !r.s.ReadBytes(&v, n) {
		return nil, ErrBufferTooSmall
	}

	return append([]byte{}, v...), nil
}

// ReadRange reads a lenWidth byte length field followed by that many raw
// bytes. The declared length must fall within [minCount, maxCount].
func (r *Reader) ReadRange(lenWidth, minCount, maxCount int) ([]byte, error) {
	length, err := r.readLength(lenWidth)
	if err != nil {
		return nil, err
	}
	if length < minCount || length > maxCount {
		return nil, ErrLengthOutOfRange
	}

	return r.ReadFixed(length)
}

// ReadRangeVector16 reads a length-prefixed vector of big-endian 16 bit
// elements. The element count must fall within [minElems, maxElems] and the
// declared byte length must be even.
func (r *Reader) ReadRangeVector16(lenWidth, minElems, maxElems int) ([]uint16, error) {
	length, err := r.readLength(lenWidth)
	if err != nil {
		return nil, err
	}
	if length%2 != 0 {
		return nil, ErrVectorLengthInvalid
	}
	count := length / 2
	if count < minElems || count > maxElems {
		return nil, ErrLengthOutOfRange
	}

	raw, err := r.ReadFixed(length)
	if err != nil {
		return nil, err
	}

	out := make([]uint16, count)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(raw[2*i:])
	}

	return out, nil
}

// ReadRangeVector8 reads a length-prefixed vector of single byte elements
// with the element count bounded by [minElems, maxElems].
func (r *Reader) ReadRangeVector8(lenWidth, minElems, maxElems int) ([]byte, error) {
	return r.ReadRange(lenWidth, minElems, maxElems)
}

// Discard skips n bytes without inspecting them.
func (r *Reader) Discard(n int) error {
	if !r.s.Skip(n) {
		return ErrBufferTooSmall
	}

	return nil
}

// HasRemaining reports whether any unread bytes remain.
func (r *Reader) HasRemaining() bool {
	return len(r.s) > 0
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.s)
}

func (r *Reader) readLength(lenWidth int) (int, error) {
	switch lenWidth {
	case 1:
		v, err := r.ReadUint8()

		return int(v), err
	case 2:
		v, err := r.ReadUint16()

		return int(v), err
	default:
		return 0, ErrUnsupportedLengthWidth
	}
}
