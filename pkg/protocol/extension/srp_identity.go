// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"github.com/pion/tls/internal/codec"
)

// SRPIdentity is a TLS extension carrying the client's SRP user name
//
// https://tools.ietf.org/html/rfc5054#section-2.8.1
type SRPIdentity struct {
	Identity string
}

// TypeValue returns the extension TypeValue.
func (e SRPIdentity) TypeValue() TypeValue {
	return SRPIdentityTypeValue
}

// Marshal encodes the extension, including its code and length prefix.
func (e *SRPIdentity) Marshal() ([]byte, error) {
	identity := []byte(e.Identity)

	out := codec.AppendUint16(nil, uint16(SRPIdentityTypeValue))
	out = codec.AppendUint16(out, uint16(1+len(identity))) //nolint:gosec // G115

	return codec.AppendLengthValue(out, identity, 1), nil
}

// Unmarshal populates the extension from an encoded (code, length, payload)
// entry.
func (e *SRPIdentity) Unmarshal(data []byte) error {
	reader := codec.NewReader(data)

	code, err := reader.ReadUint16()
	if err != nil {
		return err
	}
	if TypeValue(code) != SRPIdentityTypeValue {
		return errInvalidTypeValue
	}
	if _, err = reader.ReadUint16(); err != nil {
		return err
	}

	identity, err := reader.ReadRange(1, 1, 255)
	if err != nil {
		return err
	}
	e.Identity = string(identity)

	return nil
}
