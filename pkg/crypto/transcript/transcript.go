// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package transcript implements the running hash over every handshake
// message exchanged before the secure channel is established. Both peers
// must accumulate identical bytes or the eventual Finished check fails.
package transcript

import (
	"bytes"
	"crypto/md5"  //nolint:gosec // mandated by the protocol
	"crypto/sha1" //nolint:gosec // mandated by the protocol
	"hash"
)

// OutputLength is the size of either finalization: an MD5 and a SHA-1
// digest concatenated.
const OutputLength = md5.Size + sha1.Size

const (
	padInner = 0x36
	padOuter = 0x5c

	// Pad repetition counts of the legacy construction are fixed per
	// digest; interoperability depends on matching them exactly.
	md5PadCount  = 48
	sha1PadCount = 40
)

// Hash accumulates the exact framed bytes of every handshake message sent
// or received, in wire order. It retains the raw bytes rather than digest
// state so Final and FinalLegacy can each run any number of times over
// independent digest instances without consuming the accumulator.
//
// A Hash is created once per handshake attempt and never reset or
// truncated; it is not safe for concurrent use.
type Hash struct {
	data []byte
}

// New returns an empty transcript.
func New() *Hash {
	return &Hash{}
}

// Update appends raw framed message bytes (header and body) to the
// transcript.
func (h *Hash) Update(data []byte) {
	h.data = append(h.data, data...)
}

// UpdateMessage frames a message body with its type byte and 24 bit length
// and appends the result, for callers holding an unframed body.
func (h *Hash) UpdateMessage(msgType uint8, body []byte) {
	length := len(body)
	h.data = append(h.data, msgType, byte(length>>16), byte(length>>8), byte(length))
	h.data = append(h.data, body...)
}

// Len returns the number of accumulated bytes.
func (h *Hash) Len() int {
	return len(h.data)
}

// Bytes returns a copy of the accumulated transcript.
func (h *Hash) Bytes() []byte {
	return append([]byte{}, h.data...)
}

// Final returns the TLS finalization: MD5 and SHA-1 over the accumulated
// bytes, concatenated to 36 bytes. The accumulator is left untouched.
func (h *Hash) Final() []byte {
	md5Hash := md5.New() //nolint:gosec // mandated by the protocol
	md5Hash.Write(h.data)
	sha1Hash := sha1.New() //nolint:gosec // mandated by the protocol
	sha1Hash.Write(h.data)

	out := make([]byte, 0, OutputLength)
	out = append(out, md5Hash.Sum(nil)...)

	return append(out, sha1Hash.Sum(nil)...)
}

// FinalLegacy returns the SSL 3.0 finalization, which mixes the shared
// secret into both digests with a fixed two-pass pad construction. The
// accumulator is left untouched.
func (h *Hash) FinalLegacy(secret []byte) []byte {
	out := make([]byte, 0, OutputLength)
	out = append(out, legacyDigest(md5.New, h.data, secret, md5PadCount)...)

	return append(out, legacyDigest(sha1.New, h.data, secret, sha1PadCount)...)
}

func legacyDigest(newHash func() hash.Hash, data, secret []byte, padCount int) []byte {
	inner := newHash()
	inner.Write(data)
	inner.Write(secret)
	inner.Write(bytes.Repeat([]byte{padInner}, padCount))

	outer := newHash()
	outer.Write(secret)
	outer.Write(bytes.Repeat([]byte{padOuter}, padCount))
	outer.Write(inner.Sum(nil))

	return outer.Sum(nil)
}
