// sign.go - Signature scheme capability interfaces.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

// Package sign defines the capability boundary between the signature
// service and the underlying post-quantum signature primitive.  Concrete
// schemes live in subpackages and are resolved by name via the schemes
// registry, so the service layer never depends on a specific algorithm.
package sign

// Key is an interface for types encapsulating key material.
type Key interface {

	// Reset scrubs the key material to all zeros.  A key must not be
	// used after Reset.
	Reset()

	// Bytes serializes key material into a byte slice.
	Bytes() []byte

	// FromBytes loads key material from the given byte slice.
	FromBytes(data []byte) error
}

// PrivateKey is an interface for types encapsulating
// private key material.
type PrivateKey interface {
	Key

	// Sign signs message and returns the raw signature.
	Sign(message []byte) []byte
}

// PublicKey is an interface for types encapsulating
// public key material.
type PublicKey interface {
	Key

	// Verify reports whether signature is a valid signature over
	// message by the private key corresponding to this public key.
	Verify(signature, message []byte) bool
}

// Scheme is a signature scheme.
type Scheme interface {

	// Name of the scheme.
	Name() string

	// NewKeypair returns a newly generated key pair.
	NewKeypair() (PrivateKey, PublicKey, error)

	// UnmarshalBinaryPublicKey loads a public key from byte slice.
	UnmarshalBinaryPublicKey([]byte) (PublicKey, error)

	// UnmarshalBinaryPrivateKey loads a private key from byte slice.
	UnmarshalBinaryPrivateKey([]byte) (PrivateKey, error)

	// PublicKeySize returns the size in bytes of the public key.
	PublicKeySize() int

	// PrivateKeySize returns the size in bytes of the private key.
	PrivateKeySize() int

	// SignatureSize returns the size in bytes of the signature.
	SignatureSize() int
}
