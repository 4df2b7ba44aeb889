// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tls

import "github.com/pion/tls/pkg/protocol"

// Policy decides what this side offers during a hello exchange and how the
// server resolves the client's offer. *Config is the default
// implementation; tests and embedders can substitute their own.
type Policy interface {
	// PreferredVersion is the protocol version offered in an outbound hello.
	PreferredVersion() protocol.Version

	// CipherSuiteIDs is the offer/acceptance list in our preference order.
	CipherSuiteIDs() []CipherSuiteID

	// CompressionMethodIDs is the offer/acceptance list in our preference order.
	CompressionMethodIDs() []protocol.CompressionMethodID

	// ChooseCipherSuite picks a suite from the client-offered list given
	// which certificate key types are available. Zero means no suite is
	// mutually acceptable, which fails the handshake.
	ChooseCipherSuite(offered []uint16, haveRSA, haveDSA bool) CipherSuiteID

	// ChooseCompression picks a compression method from the client-offered
	// list.
	ChooseCompression(offered []protocol.CompressionMethodID) protocol.CompressionMethodID
}
