// signer.go - Signing service.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package pqsig

import (
	"fmt"

	"github.com/faithchain/pqsig/sign"
)

// Signer binds a signature scheme to the signing operation.  A Signer
// holds no key material and no per-call state; each call is independent
// and Signers are safe for concurrent use.
type Signer struct {
	scheme sign.Scheme
}

// NewSigner returns a Signer for the given scheme.
func NewSigner(scheme sign.Scheme) *Signer {
	return &Signer{scheme: scheme}
}

// Scheme returns the signature scheme this Signer is bound to.
func (s *Signer) Scheme() sign.Scheme {
	return s.scheme
}

// Sign signs message with secretKey and returns the raw signature,
// unmodified: no framing, timestamping or domain separation is added.
func (s *Signer) Sign(secretKey, message []byte) ([]byte, error) {
	return s.SignContext(secretKey, message, nil)
}

// SignContext signs message under the given context tag.  The context is
// bound as len(context) || context || message before delegation; see
// sign.BindContext.  Verification must supply the identical context.
//
// The secret key must be exactly PrivateKeySize bytes (ErrInvalidKeyLength
// otherwise); a context over sign.MaxContextSize bytes fails with
// ErrInvalidInputShape.  An empty message is legal and produces a
// full-length signature.  The key material loaded for the call is scrubbed
// before returning, on every path.
func (s *Signer) SignContext(secretKey, message, context []byte) ([]byte, error) {
	if len(secretKey) != s.scheme.PrivateKeySize() {
		return nil, fmt.Errorf("%w: secret key is %d bytes, want %d",
			ErrInvalidKeyLength, len(secretKey), s.scheme.PrivateKeySize())
	}
	privKey, err := s.scheme.UnmarshalBinaryPrivateKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyLength, err)
	}
	defer privKey.Reset()

	bound, err := sign.BindContext(context, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInputShape, err)
	}

	signature := privKey.Sign(bound)
	if len(signature) != s.scheme.SignatureSize() {
		return nil, fmt.Errorf("%w: sign returned %d bytes, want %d",
			ErrPrimitiveContract, len(signature), s.scheme.SignatureSize())
	}
	return signature, nil
}
