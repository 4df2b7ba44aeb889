// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionSupported(t *testing.T) {
	for _, v := range []Version{VersionSSL30, VersionTLS10, VersionTLS11} {
		assert.True(t, IsSupportedVersion(v), "%s must be supported", v)
		assert.True(t, IsSupportedBytes(v.Major, v.Minor))
	}

	assert.False(t, IsSupportedVersion(Version{Major: 0x03, Minor: 0x03}))
	assert.False(t, IsSupportedVersion(Version{Major: 0xfe, Minor: 0xfd}))
	assert.False(t, IsSupportedVersion(Version{}))
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "SSL 3.0", VersionSSL30.String())
	assert.Equal(t, "TLS 1.0", VersionTLS10.String())
	assert.Equal(t, "TLS 1.1", VersionTLS11.String())
	assert.Equal(t, "unknown(3.3)", Version{Major: 3, Minor: 3}.String())
}
