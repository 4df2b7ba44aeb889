// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func framedMessages() [][]byte {
	return [][]byte{
		{0x01, 0x00, 0x00, 0x02, 0xAA, 0xBB}, // framed message one
		{0x02, 0x00, 0x00, 0x01, 0xCC},       // framed message two
	}
}

func TestFinalDeterministic(t *testing.T) {
	first := New()
	second := New()
	for _, msg := range framedMessages() {
		first.Update(msg)
		second.Update(msg)
	}

	assert.Equal(t, first.Final(), second.Final(),
		"same accumulated bytes on different instances must hash identically")
	assert.Len(t, first.Final(), OutputLength)
}

func TestFinalDependsOnOrder(t *testing.T) {
	msgs := framedMessages()

	forward := New()
	forward.Update(msgs[0])
	forward.Update(msgs[1])

	backward := New()
	backward.Update(msgs[1])
	backward.Update(msgs[0])

	assert.NotEqual(t, forward.Final(), backward.Final())
}

func TestFinalNonDestructive(t *testing.T) {
	hash := New()
	hash.Update(framedMessages()[0])

	first := hash.Final()
	assert.Equal(t, first, hash.Final(), "repeated finalization must not consume the accumulator")

	secret := []byte{0x01, 0x02, 0x03}
	legacy := hash.FinalLegacy(secret)
	assert.Equal(t, legacy, hash.FinalLegacy(secret))
	assert.Equal(t, first, hash.Final(), "legacy finalization must not disturb the plain one")

	// The accumulator keeps growing after a finalization.
	hash.Update(framedMessages()[1])
	assert.NotEqual(t, first, hash.Final())
}

func TestFinalLegacy(t *testing.T) {
	secret := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	hash := New()
	for _, msg := range framedMessages() {
		hash.Update(msg)
	}

	out := hash.FinalLegacy(secret)
	assert.Len(t, out, OutputLength)
	assert.NotEqual(t, hash.Final(), out)
	assert.NotEqual(t, hash.FinalLegacy([]byte{0x00}), out,
		"different secrets must produce different hashes")

	other := New()
	for _, msg := range framedMessages() {
		other.Update(msg)
	}
	assert.Equal(t, out, other.FinalLegacy(secret))
}

func TestUpdateMessageFraming(t *testing.T) {
	body := []byte{0xAA, 0xBB}

	framed := New()
	framed.UpdateMessage(0x01, body)

	manual := New()
	manual.Update([]byte{0x01, 0x00, 0x00, 0x02})
	manual.Update(body)

	assert.Equal(t, manual.Bytes(), framed.Bytes())
	assert.Equal(t, manual.Final(), framed.Final())
}

func TestBytesIsACopy(t *testing.T) {
	hash := New()
	hash.Update([]byte{0x01, 0x02})

	out := hash.Bytes()
	out[0] = 0xFF

	assert.Equal(t, []byte{0x01, 0x02}, hash.Bytes())
	assert.Equal(t, 2, hash.Len())
}

func TestEmptyTranscript(t *testing.T) {
	// Hashing an empty transcript is well defined.
	assert.Len(t, New().Final(), OutputLength)
	assert.Len(t, New().FinalLegacy(nil), OutputLength)
}
