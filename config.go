// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tls

import (
	"crypto/rand"
	"io"

	"github.com/pion/logging"
	"github.com/pion/tls/pkg/protocol"
)

// Config is used to configure the hello exchange of a TLS client or
// server. After a Config is passed to a TLS function it must not be
// modified. The zero value is a usable client configuration.
type Config struct {
	// CipherSuites to offer (client) or accept (server), in our preference
	// order. Defaults to defaultCipherSuites.
	CipherSuites []CipherSuiteID

	// CompressionMethods to offer or accept, in our preference order.
	// Defaults to null compression only.
	CompressionMethods []protocol.CompressionMethodID

	// Version is the protocol version preferred in an outbound hello.
	// Defaults to TLS 1.1.
	Version protocol.Version

	// Rand is the source hello randoms are read from.
	// Defaults to crypto/rand.Reader.
	Rand io.Reader

	// LoggerFactory to customize the logging used by the Handshaker.
	LoggerFactory logging.LoggerFactory
}

// Config implements Policy with server-preference-order tie breaks.
var _ Policy = (*Config)(nil)

// PreferredVersion implements Policy.
func (c *Config) PreferredVersion() protocol.Version {
	if c.Version == (protocol.Version{}) {
		return protocol.VersionTLS11
	}

	return c.Version
}

// CipherSuiteIDs implements Policy.
func (c *Config) CipherSuiteIDs() []CipherSuiteID {
	if len(c.CipherSuites) == 0 {
		return defaultCipherSuites()
	}

	return c.CipherSuites
}

// CompressionMethodIDs implements Policy.
func (c *Config) CompressionMethodIDs() []protocol.CompressionMethodID {
	if len(c.CompressionMethods) == 0 {
		return []protocol.CompressionMethodID{protocol.CompressionMethodNull}
	}

	return c.CompressionMethods
}

// ChooseCipherSuite implements Policy. Candidates are walked in our
// preference order; the first one the client offered and the available
// certificate key types can satisfy wins.
func (c *Config) ChooseCipherSuite(offered []uint16, haveRSA, haveDSA bool) CipherSuiteID {
	for _, candidate := range c.CipherSuiteIDs() {
		auth, ok := cipherSuiteAuthenticationType(candidate)
		if !ok {
			continue
		}
		switch auth {
		case authenticationTypeRSA:
			if !haveRSA {
				continue
			}
		case authenticationTypeDSS:
			if !haveDSA {
				continue
			}
		}

		for _, id := range offered {
			if id == uint16(candidate) {
				return candidate
			}
		}
	}

	return 0
}

// ChooseCompression implements Policy. Null compression is the fallback;
// it is always acceptable.
func (c *Config) ChooseCompression(offered []protocol.CompressionMethodID) protocol.CompressionMethodID {
	for _, candidate := range c.CompressionMethodIDs() {
		for _, id := range offered {
			if id == candidate {
				return candidate
			}
		}
	}

	return protocol.CompressionMethodNull
}

func (c *Config) rand() io.Reader {
	if c.Rand == nil {
		return rand.Reader
	}

	return c.Rand
}

func (c *Config) loggerFactory() logging.LoggerFactory {
	if c.LoggerFactory == nil {
		return logging.NewDefaultLoggerFactory()
	}

	return c.LoggerFactory
}
