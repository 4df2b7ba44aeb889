// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package protocol provides the TLS wire format
package protocol

import "fmt"

// Version enums.
var (
	VersionSSL30 = Version{Major: 0x03, Minor: 0x00} //nolint:gochecknoglobals
	VersionTLS10 = Version{Major: 0x03, Minor: 0x01} //nolint:gochecknoglobals
	VersionTLS11 = Version{Major: 0x03, Minor: 0x02} //nolint:gochecknoglobals
)

// Version is the major/minor value in the RecordLayer
// and ClientHello/ServerHello
//
// https://tools.ietf.org/html/rfc4346#section-6.2.1
type Version struct {
	Major, Minor uint8
}

// Equal determines if two protocol versions are equal.
func (v Version) Equal(x Version) bool {
	return v.Major == x.Major && v.Minor == x.Minor
}

func (v Version) String() string {
	switch v {
	case VersionSSL30:
		return "SSL 3.0"
	case VersionTLS10:
		return "TLS 1.0"
	case VersionTLS11:
		return "TLS 1.1"
	default:
		return fmt.Sprintf("unknown(%d.%d)", v.Major, v.Minor)
	}
}

// IsSupportedBytes returns true if the bytes name a version this package
// implements: SSL 3.0, TLS 1.0 or TLS 1.1.
func IsSupportedBytes(major uint8, minor uint8) bool {
	return major == 0x03 && (minor == 0x00 || minor == 0x01 || minor == 0x02)
}

// IsSupportedVersion returns true if v names a version this package
// implements: SSL 3.0, TLS 1.0 or TLS 1.1.
func IsSupportedVersion(v Version) bool {
	return IsSupportedBytes(v.Major, v.Minor)
}
