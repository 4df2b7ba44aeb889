// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tls

import "fmt"

// CipherSuiteID is an ID for our supported CipherSuites.
type CipherSuiteID uint16

// Supported Cipher Suites.
const (
	// RSA key exchange
	TLS_RSA_WITH_RC4_128_SHA      CipherSuiteID = 0x0005 //nolint:golint,stylecheck
	TLS_RSA_WITH_3DES_EDE_CBC_SHA CipherSuiteID = 0x000a //nolint:golint,stylecheck
	TLS_RSA_WITH_AES_128_CBC_SHA  CipherSuiteID = 0x002f //nolint:golint,stylecheck
	TLS_RSA_WITH_AES_256_CBC_SHA  CipherSuiteID = 0x0035 //nolint:golint,stylecheck

	// Ephemeral DH with a DSS certificate
	TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA CipherSuiteID = 0x0013 //nolint:golint,stylecheck
	TLS_DHE_DSS_WITH_AES_128_CBC_SHA  CipherSuiteID = 0x0032 //nolint:golint,stylecheck
	TLS_DHE_DSS_WITH_AES_256_CBC_SHA  CipherSuiteID = 0x0038 //nolint:golint,stylecheck

	// Ephemeral DH with an RSA certificate
	TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA CipherSuiteID = 0x0016 //nolint:golint,stylecheck
	TLS_DHE_RSA_WITH_AES_128_CBC_SHA  CipherSuiteID = 0x0033 //nolint:golint,stylecheck
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA  CipherSuiteID = 0x0039 //nolint:golint,stylecheck
)

func (c CipherSuiteID) String() string { //nolint:cyclop
	switch c {
	case TLS_RSA_WITH_RC4_128_SHA:
		return "TLS_RSA_WITH_RC4_128_SHA"
	case TLS_RSA_WITH_3DES_EDE_CBC_SHA:
		return "TLS_RSA_WITH_3DES_EDE_CBC_SHA"
	case TLS_RSA_WITH_AES_128_CBC_SHA:
		return "TLS_RSA_WITH_AES_128_CBC_SHA"
	case TLS_RSA_WITH_AES_256_CBC_SHA:
		return "TLS_RSA_WITH_AES_256_CBC_SHA"
	case TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA:
		return "TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA"
	case TLS_DHE_DSS_WITH_AES_128_CBC_SHA:
		return "TLS_DHE_DSS_WITH_AES_128_CBC_SHA"
	case TLS_DHE_DSS_WITH_AES_256_CBC_SHA:
		return "TLS_DHE_DSS_WITH_AES_256_CBC_SHA"
	case TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA:
		return "TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA"
	case TLS_DHE_RSA_WITH_AES_128_CBC_SHA:
		return "TLS_DHE_RSA_WITH_AES_128_CBC_SHA"
	case TLS_DHE_RSA_WITH_AES_256_CBC_SHA:
		return "TLS_DHE_RSA_WITH_AES_256_CBC_SHA"
	default:
		return fmt.Sprintf("unknown(0x%04x)", uint16(c))
	}
}

// authenticationType is the certificate key type a suite requires on the
// server side.
type authenticationType int

const (
	authenticationTypeRSA authenticationType = iota + 1
	authenticationTypeDSS
)

// cipherSuiteAuthenticationType reports the key type a suite needs. Suites
// outside the table can never be negotiated by this package.
func cipherSuiteAuthenticationType(id CipherSuiteID) (authenticationType, bool) {
	switch id {
	case TLS_RSA_WITH_RC4_128_SHA,
		TLS_RSA_WITH_3DES_EDE_CBC_SHA,
		TLS_RSA_WITH_AES_128_CBC_SHA,
		TLS_RSA_WITH_AES_256_CBC_SHA,
		TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA,
		TLS_DHE_RSA_WITH_AES_128_CBC_SHA,
		TLS_DHE_RSA_WITH_AES_256_CBC_SHA:
		return authenticationTypeRSA, true
	case TLS_DHE_DSS_WITH_3DES_EDE_CBC_SHA,
		TLS_DHE_DSS_WITH_AES_128_CBC_SHA,
		TLS_DHE_DSS_WITH_AES_256_CBC_SHA:
		return authenticationTypeDSS, true
	default:
		return 0, false
	}
}

func defaultCipherSuites() []CipherSuiteID {
	return []CipherSuiteID{
		TLS_RSA_WITH_AES_256_CBC_SHA,
		TLS_RSA_WITH_AES_128_CBC_SHA,
		TLS_DHE_RSA_WITH_AES_256_CBC_SHA,
		TLS_DHE_RSA_WITH_AES_128_CBC_SHA,
		TLS_DHE_DSS_WITH_AES_256_CBC_SHA,
		TLS_DHE_DSS_WITH_AES_128_CBC_SHA,
		TLS_RSA_WITH_3DES_EDE_CBC_SHA,
	}
}
