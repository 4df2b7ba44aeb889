// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageHelloRequest(t *testing.T) {
	rawHelloRequest := []byte{}
	parsedHelloRequest := &MessageHelloRequest{}

	m := &MessageHelloRequest{}
	assert.NoError(t, m.Unmarshal(rawHelloRequest))
	assert.Equal(t, parsedHelloRequest, m)

	raw, err := m.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, rawHelloRequest, raw)
}

func TestMessageHelloRequestNotEmpty(t *testing.T) {
	assert.ErrorIs(t, (&MessageHelloRequest{}).Unmarshal([]byte{0x00}), errBodyNotEmpty)
}
