// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

/*
MessageHelloRequest is sent by the server to ask the client to begin the
negotiation process anew. It carries no fields.

https://tools.ietf.org/html/rfc4346#section-7.4.1.1
*/
type MessageHelloRequest struct{}

// Type returns the Handshake Type.
func (m MessageHelloRequest) Type() Type {
	return TypeHelloRequest
}

// Marshal encodes the (empty) message body.
func (m *MessageHelloRequest) Marshal() ([]byte, error) {
	return []byte{}, nil
}

// Unmarshal populates the message from a received body, which must be empty.
func (m *MessageHelloRequest) Unmarshal(data []byte) error {
	if len(data) != 0 {
		return errBodyNotEmpty
	}

	return nil
}
