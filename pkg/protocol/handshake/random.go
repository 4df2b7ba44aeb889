// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import "io"

// RandomLength is the fixed hello random size of the modern format. A
// legacy short-form ClientHello carries a 16 to 32 byte challenge instead.
const RandomLength = 32

// NewRandom reads a fresh 32 byte hello random from rng.
func NewRandom(rng io.Reader) ([]byte, error) {
	out := make([]byte, RandomLength)
	if _, err := io.ReadFull(rng, out); err != nil {
		return nil, err
	}

	return out, nil
}
