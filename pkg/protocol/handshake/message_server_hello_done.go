// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

/*
MessageServerHelloDone is sent by the server to indicate the end of the
ServerHello and associated messages. It carries no fields.

https://tools.ietf.org/html/rfc4346#section-7.4.5
*/
type MessageServerHelloDone struct{}

// Type returns the Handshake Type.
func (m MessageServerHelloDone) Type() Type {
	return TypeServerHelloDone
}

// Marshal encodes the (empty) message body.
func (m *MessageServerHelloDone) Marshal() ([]byte, error) {
	return []byte{}, nil
}

// Unmarshal populates the message from a received body, which must be empty.
func (m *MessageServerHelloDone) Unmarshal(data []byte) error {
	if len(data) != 0 {
		return errBodyNotEmpty
	}

	return nil
}
