// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageServerHelloDone(t *testing.T) {
	rawServerHelloDone := []byte{}
	parsedServerHelloDone := &MessageServerHelloDone{}

	m := &MessageServerHelloDone{}
	assert.NoError(t, m.Unmarshal(rawServerHelloDone))
	assert.Equal(t, parsedServerHelloDone, m)

	raw, err := m.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, rawServerHelloDone, raw)
}

func TestMessageServerHelloDoneNotEmpty(t *testing.T) {
	assert.ErrorIs(t, (&MessageServerHelloDone{}).Unmarshal([]byte{0x0E}), errBodyNotEmpty)
}
