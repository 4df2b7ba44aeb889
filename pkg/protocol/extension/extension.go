// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package extension implements the extension values in the ClientHello
package extension

import (
	"encoding/binary"
)

// TypeValue is the 2 byte value for a TLS Extension as registered in the IANA
//
// https://www.iana.org/assignments/tls-extensiontype-values/tls-extensiontype-values.xhtml
type TypeValue uint16

// TypeValue constants.
const (
	ServerNameTypeValue  TypeValue = 0
	SRPIdentityTypeValue TypeValue = 12
)

// Extension represents a single TLS extension.
type Extension interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
	TypeValue() TypeValue
}

// Unmarshal many extensions at once. buf is the whole trailing extensions
// block of a ClientHello: a 2 byte total length followed by (code, length,
// payload) entries. Unknown codes are skipped by their declared length;
// that is the one deliberate ignore in this package.
func Unmarshal(buf []byte) ([]Extension, error) {
	switch {
	case len(buf) == 0:
		return []Extension{}, nil
	case len(buf) < 2:
		return nil, errBufferTooSmall
	}

	declaredLen := binary.BigEndian.Uint16(buf)
	if len(buf)-2 != int(declaredLen) {
		return nil, errLengthMismatch
	}

	extensions := []Extension{}
	unmarshalAndAppend := func(data []byte, e Extension) error {
		err := e.Unmarshal(data)
		if err != nil {
			return err
		}
		extensions = append(extensions, e)

		return nil
	}

	for offset := 2; offset < len(buf); {
		bufView := buf[offset:]
		if len(bufView) < 4 {
			return nil, errBufferTooSmall
		}
		extensionLength := int(binary.BigEndian.Uint16(bufView[2:]))
		if 4+extensionLength > len(bufView) {
			return nil, errLengthMismatch
		}

		var err error
		switch TypeValue(binary.BigEndian.Uint16(bufView)) {
		case ServerNameTypeValue:
			err = unmarshalAndAppend(bufView[:4+extensionLength], &ServerName{})
		case SRPIdentityTypeValue:
			err = unmarshalAndAppend(bufView[:4+extensionLength], &SRPIdentity{})
		default:
		}

		if err != nil {
			return nil, err
		}
		offset += 4 + extensionLength
	}

	return extensions, nil
}

// Marshal many extensions at once, prefixed with the 2 byte total length.
func Marshal(e []Extension) ([]byte, error) {
	extensions := []byte{}
	for _, e := range e {
		raw, err := e.Marshal()
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, raw...)
	}
	out := []byte{0x00, 0x00}
	binary.BigEndian.PutUint16(out, uint16(len(extensions))) //nolint:gosec // G115

	return append(out, extensions...), nil
}
