// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"github.com/pion/tls/internal/codec"
)

const serverNameTypeDNSHostName = 0

// ServerName is a TLS extension used by the client to tell the server
// which host name it is contacting
//
// https://tools.ietf.org/html/rfc4366#section-3.1
type ServerName struct {
	// ServerName is the first DNS host name entry of the name list.
	// Entries of any other name type are skipped, not retained.
	ServerName string
}

// TypeValue returns the extension TypeValue.
func (e ServerName) TypeValue() TypeValue {
	return ServerNameTypeValue
}

// Marshal encodes the extension, including its code and length prefix.
func (e *ServerName) Marshal() ([]byte, error) {
	name := []byte(e.ServerName)

	out := codec.AppendUint16(nil, uint16(ServerNameTypeValue))
	out = codec.AppendUint16(out, uint16(2+1+2+len(name))) //nolint:gosec // G115
	out = codec.AppendUint16(out, uint16(1+2+len(name)))   //nolint:gosec // G115
	out = append(out, serverNameTypeDNSHostName)

	return codec.AppendLengthValue(out, name, 2), nil
}

// Unmarshal populates the extension from an encoded (code, length, payload)
// entry.
func (e *ServerName) Unmarshal(data []byte) error {
	reader := codec.NewReader(data)

	code, err := reader.ReadUint16()
	if err != nil {
		return err
	}
	if TypeValue(code) != ServerNameTypeValue {
		return errInvalidTypeValue
	}
	if _, err = reader.ReadUint16(); err != nil { // extension length, checked by the dispatch loop
		return err
	}

	listBytes, err := reader.ReadUint16()
	if err != nil {
		return err
	}

	for remaining := int(listBytes); remaining > 0; {
		nameType, err := reader.ReadUint8()
		if err != nil {
			return err
		}
		remaining--

		if nameType != serverNameTypeDNSHostName {
			// Unknown name type, skip the rest of the declared list.
			if err := reader.Discard(remaining); err != nil {
				return err
			}

			break
		}

		name, err := reader.ReadRange(2, 1, 65535)
		if err != nil {
			return err
		}
		if e.ServerName == "" {
			e.ServerName = string(name)
		}
		remaining -= 2 + len(name)
		if remaining < 0 {
			return errLengthMismatch
		}
	}

	return nil
}
