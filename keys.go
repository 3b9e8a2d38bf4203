// keys.go - Key pair lifecycle.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package pqsig

import (
	"fmt"

	"github.com/katzenpost/hpqc/util"
	"golang.org/x/crypto/blake2b"

	"github.com/faithchain/pqsig/hexutil"
	"github.com/faithchain/pqsig/sign"
)

// KeyPair holds the packed forms of a freshly generated key pair.  A
// KeyPair is only ever produced by GenerateKeyPair; the service never
// constructs one from arbitrary bytes.  Callers own the secret key for the
// duration of its use and must call Zeroize when done with it.
type KeyPair struct {
	PublicKey []byte
	SecretKey []byte
}

// GenerateKeyPair generates a new key pair with the given scheme.  The
// returned buffers are asserted against the scheme's declared sizes; a
// mismatch fails with ErrPrimitiveContract since it indicates a broken or
// misconfigured primitive build rather than bad input.
func GenerateKeyPair(scheme sign.Scheme) (*KeyPair, error) {
	privKey, pubKey, err := scheme.NewKeypair()
	if err != nil {
		return nil, fmt.Errorf("pqsig: keygen: %w", err)
	}
	defer privKey.Reset()

	pkBytes := pubKey.Bytes()
	skBytes := privKey.Bytes()
	if len(pkBytes) != scheme.PublicKeySize() || len(skBytes) != scheme.PrivateKeySize() {
		return nil, fmt.Errorf("%w: keygen returned pk=%d sk=%d, want pk=%d sk=%d",
			ErrPrimitiveContract, len(pkBytes), len(skBytes),
			scheme.PublicKeySize(), scheme.PrivateKeySize())
	}

	kp := &KeyPair{
		PublicKey: make([]byte, len(pkBytes)),
		SecretKey: make([]byte, len(skBytes)),
	}
	copy(kp.PublicKey, pkBytes)
	copy(kp.SecretKey, skBytes)
	return kp, nil
}

// Zeroize scrubs the secret key material.  The KeyPair must not be used
// for signing afterwards; serialization of a zeroized pair fails with
// ErrScrubbedKey.
func (k *KeyPair) Zeroize() {
	if k.SecretKey != nil {
		util.ExplicitBzero(k.SecretKey)
	}
}

// Fingerprint returns the hex-encoded BLAKE2b-256 digest of the public
// key, suitable for logs and display.  Secret key material never appears
// in a fingerprint.
func (k *KeyPair) Fingerprint() string {
	sum := blake2b.Sum256(k.PublicKey)
	return hexutil.Encode(sum[:])
}
