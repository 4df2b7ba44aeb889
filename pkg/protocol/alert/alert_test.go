// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlert(t *testing.T) {
	rawAlert := []byte{0x02, 0x28}
	parsedAlert := &Alert{Level: Fatal, Description: HandshakeFailure}

	a := &Alert{}
	assert.NoError(t, a.Unmarshal(rawAlert))
	assert.Equal(t, parsedAlert, a)

	raw, err := a.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, rawAlert, raw)

	assert.Equal(t, "Alert Fatal: HandshakeFailure", a.String())
}

func TestAlertUnmarshalInvalid(t *testing.T) {
	assert.Error(t, (&Alert{}).Unmarshal([]byte{0x02}))
	assert.Error(t, (&Alert{}).Unmarshal([]byte{0x02, 0x28, 0x00}))
}
