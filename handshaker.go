// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package tls implements the hello message exchange of the TLS handshake:
// building, negotiating and framing HelloRequest, ClientHello, ServerHello
// and ServerHelloDone, and the running transcript hash later handshake
// authentication is built on.
package tls

import (
	"crypto/x509"
	"io"

	"github.com/pion/logging"
	"github.com/pion/tls/pkg/crypto/transcript"
	"github.com/pion/tls/pkg/protocol"
	"github.com/pion/tls/pkg/protocol/handshake"
	"golang.org/x/net/idna"
)

// Handshaker builds and sends the hello messages of one handshake attempt.
// Each Send* call serializes, hashes and flushes one message before
// returning; messages never interleave, so the transcript always matches
// wire order.
//
// A Handshaker drives a single sequential handshake and is not safe for
// concurrent use.
type Handshaker struct {
	writer     handshake.Writer
	transcript *transcript.Hash
	policy     Policy
	rng        io.Reader
	log        logging.LeveledLogger
}

// NewHandshaker returns a Handshaker writing through writer and
// accumulating into hash. cfg supplies policy, RNG and logging; a nil cfg
// uses defaults.
func NewHandshaker(cfg *Config, writer handshake.Writer, hash *transcript.Hash) *Handshaker {
	if cfg == nil {
		cfg = &Config{}
	}

	return &Handshaker{
		writer:     writer,
		transcript: hash,
		policy:     cfg,
		rng:        cfg.rand(),
		log:        cfg.loggerFactory().NewLogger("tls"),
	}
}

// SendHelloRequest asks the client to begin negotiation anew. HelloRequest
// is excluded from the Finished hash, so it is fed to a throwaway
// transcript rather than the real one.
func (h *Handshaker) SendHelloRequest() error {
	h.log.Debug("sending HelloRequest")

	return handshake.Send(h.writer, transcript.New(), &handshake.MessageHelloRequest{})
}

// SendClientHello builds a fresh ClientHello from the policy, sends it and
// returns it.
func (h *Handshaker) SendClientHello() (*handshake.MessageClientHello, error) {
	random, err := handshake.NewRandom(h.rng)
	if err != nil {
		return nil, err
	}

	suites := h.policy.CipherSuiteIDs()
	suiteIDs := make([]uint16, len(suites))
	for i, id := range suites {
		suiteIDs[i] = uint16(id)
	}

	msg := &handshake.MessageClientHello{
		Version:            h.policy.PreferredVersion(),
		Random:             random,
		SessionID:          []byte{},
		CipherSuiteIDs:     suiteIDs,
		CompressionMethods: h.policy.CompressionMethodIDs(),
	}

	h.log.Debugf("sending ClientHello %s offering %d cipher suites", msg.Version, len(suiteIDs))
	if err := handshake.Send(h.writer, h.transcript, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// SendServerHello resolves the client's offer against the policy and the
// key types of the given certificates, then sends the resulting
// ServerHello. A failed negotiation returns an error that AlertFromError
// maps to a handshake_failure alert.
func (h *Handshaker) SendServerHello(
	clientHello *handshake.MessageClientHello,
	certificates []*x509.Certificate,
	sessionID []byte,
	version protocol.Version,
) (*handshake.MessageServerHello, error) {
	haveRSA, haveDSA := certificateKeyTypes(certificates)

	suite := h.policy.ChooseCipherSuite(clientHello.CipherSuiteIDs, haveRSA, haveDSA)
	if suite == 0 {
		return nil, errCipherSuiteNoIntersection
	}
	compression := h.policy.ChooseCompression(clientHello.CompressionMethods)

	if clientHello.ServerName != "" {
		h.checkServerName(clientHello.ServerName, certificates)
	}

	h.log.Debugf("negotiated %s", CipherSuiteID(suite))

	return h.sendServerHello(sessionID, suite, compression, version)
}

// SendServerHelloResume sends a ServerHello whose parameters are supplied
// by the caller, bypassing negotiation. Used when continuing a resumed or
// renegotiated session.
func (h *Handshaker) SendServerHelloResume(
	sessionID []byte,
	suite CipherSuiteID,
	compression protocol.CompressionMethodID,
	version protocol.Version,
) (*handshake.MessageServerHello, error) {
	return h.sendServerHello(sessionID, suite, compression, version)
}

func (h *Handshaker) sendServerHello(
	sessionID []byte,
	suite CipherSuiteID,
	compression protocol.CompressionMethodID,
	version protocol.Version,
) (*handshake.MessageServerHello, error) {
	random, err := handshake.NewRandom(h.rng)
	if err != nil {
		return nil, err
	}

	msg := &handshake.MessageServerHello{
		Version:           version,
		Random:            random,
		SessionID:         sessionID,
		CipherSuiteID:     uint16(suite),
		CompressionMethod: compression,
	}

	if err := handshake.Send(h.writer, h.transcript, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// SendServerHelloDone signals the end of the server's hello flight.
func (h *Handshaker) SendServerHelloDone() error {
	h.log.Debug("sending ServerHelloDone")

	return handshake.Send(h.writer, h.transcript, &handshake.MessageServerHelloDone{})
}

// checkServerName warns when no configured certificate can serve the name
// the client asked for. The outcome does not change negotiation; later
// certificate verification on the client will catch a real mismatch.
func (h *Handshaker) checkServerName(name string, certificates []*x509.Certificate) {
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		h.log.Warnf("client sent malformed server name %q: %v", name, err)

		return
	}

	for _, cert := range certificates {
		if cert.VerifyHostname(ascii) == nil {
			return
		}
	}
	h.log.Warnf("no certificate matches requested server name %q", ascii)
}

// certificateKeyTypes reports which public key algorithms the available
// certificates carry; negotiation only consults these flags.
func certificateKeyTypes(certificates []*x509.Certificate) (haveRSA, haveDSA bool) {
	for _, cert := range certificates {
		switch cert.PublicKeyAlgorithm { //nolint:exhaustive
		case x509.RSA:
			haveRSA = true
		case x509.DSA:
			haveDSA = true
		}
	}

	return haveRSA, haveDSA
}
