// dilithium.go - Interface wrapper around the CRYSTALS-Dilithium modes
// as implementations of our signature scheme interfaces.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

// Package dilithium wraps the CRYSTALS-Dilithium lattice-based signature
// scheme (NIST PQC) as an implementation of our signature scheme
// interfaces.  The polynomial arithmetic, rejection sampling and
// hashing-to-ball all live in the external circl implementation; this
// package only adapts its surface and enforces buffer size discipline.
package dilithium

import (
	"errors"

	"github.com/katzenpost/circl/sign/dilithium"
	"github.com/katzenpost/hpqc/rand"
	"github.com/katzenpost/hpqc/util"

	"github.com/faithchain/pqsig/sign"
)

var (
	ErrPrivateKeySize = errors.New("dilithium: byte slice length must match PrivateKeySize")
	ErrPublicKeySize  = errors.New("dilithium: byte slice length must match PublicKeySize")
)

// The three NIST security levels.  Scheme5 is the default used for key
// records, matching the deployed parameter set.
var (
	Scheme2 = &scheme{mode: dilithium.Mode2}
	Scheme3 = &scheme{mode: dilithium.Mode3}
	Scheme5 = &scheme{mode: dilithium.Mode5}
)

type scheme struct {
	mode dilithium.Mode
}

var _ sign.Scheme = (*scheme)(nil)

// Name of the scheme, e.g. "Dilithium5".
func (s *scheme) Name() string {
	return s.mode.Name()
}

// NewKeypair returns a newly generated key pair, using the system
// entropy source.  rand.Reader is safe for concurrent use, so
// NewKeypair is as well.
func (s *scheme) NewKeypair() (sign.PrivateKey, sign.PublicKey, error) {
	pubKey, privKey, err := s.mode.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return &privateKey{
			scheme:     s,
			privateKey: privKey,
		}, &publicKey{
			scheme:    s,
			publicKey: pubKey,
		}, nil
}

// UnmarshalBinaryPublicKey loads a public key from byte slice.
func (s *scheme) UnmarshalBinaryPublicKey(b []byte) (sign.PublicKey, error) {
	if len(b) != s.PublicKeySize() {
		return nil, ErrPublicKeySize
	}
	return &publicKey{
		scheme:    s,
		publicKey: s.mode.PublicKeyFromBytes(b),
	}, nil
}

// UnmarshalBinaryPrivateKey loads a private key from byte slice.
func (s *scheme) UnmarshalBinaryPrivateKey(b []byte) (sign.PrivateKey, error) {
	if len(b) != s.PrivateKeySize() {
		return nil, ErrPrivateKeySize
	}
	return &privateKey{
		scheme:     s,
		privateKey: s.mode.PrivateKeyFromBytes(b),
	}, nil
}

// PublicKeySize returns the size of a packed PublicKey.
func (s *scheme) PublicKeySize() int {
	return s.mode.PublicKeySize()
}

// PrivateKeySize returns the size of a packed PrivateKey.
func (s *scheme) PrivateKeySize() int {
	return s.mode.PrivateKeySize()
}

// SignatureSize returns the size in bytes of the signature.
func (s *scheme) SignatureSize() int {
	return s.mode.SignatureSize()
}

type privateKey struct {
	scheme     *scheme
	privateKey dilithium.PrivateKey

	// packed caches the serialized form so Reset has a buffer to scrub.
	packed []byte
}

func (p *privateKey) Sign(message []byte) []byte {
	return p.scheme.mode.Sign(p.privateKey, message)
}

func (p *privateKey) Reset() {
	if p.packed != nil {
		util.ExplicitBzero(p.packed)
		p.packed = nil
	}
	p.privateKey = nil
}

func (p *privateKey) Bytes() []byte {
	if p.packed == nil {
		p.packed = p.privateKey.Bytes()
	}
	return p.packed
}

func (p *privateKey) FromBytes(b []byte) error {
	if len(b) != p.scheme.PrivateKeySize() {
		return ErrPrivateKeySize
	}
	p.privateKey = p.scheme.mode.PrivateKeyFromBytes(b)
	p.packed = nil
	return nil
}

type publicKey struct {
	scheme    *scheme
	publicKey dilithium.PublicKey
}

func (p *publicKey) Verify(signature, message []byte) bool {
	return p.scheme.mode.Verify(p.publicKey, message, signature)
}

func (p *publicKey) Reset() {
	p.publicKey = nil
}

func (p *publicKey) Bytes() []byte {
	return p.publicKey.Bytes()
}

func (p *publicKey) FromBytes(b []byte) error {
	if len(b) != p.scheme.PublicKeySize() {
		return ErrPublicKeySize
	}
	p.publicKey = p.scheme.mode.PublicKeyFromBytes(b)
	return nil
}
