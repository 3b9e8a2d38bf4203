// verifier.go - Verification service.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package pqsig

import (
	"fmt"

	"github.com/faithchain/pqsig/sign"
)

// Verifier binds a signature scheme to the verification operation.  A
// Verifier holds no state and is safe for concurrent use.
type Verifier struct {
	scheme sign.Scheme
}

// NewVerifier returns a Verifier for the given scheme.
func NewVerifier(scheme sign.Scheme) *Verifier {
	return &Verifier{scheme: scheme}
}

// Scheme returns the signature scheme this Verifier is bound to.
func (v *Verifier) Scheme() sign.Scheme {
	return v.scheme
}

// Verify reports whether signature is a valid signature over message by
// the private key corresponding to publicKey.
func (v *Verifier) Verify(publicKey, message, signature []byte) (bool, error) {
	return v.VerifyContext(publicKey, message, signature, nil)
}

// VerifyContext verifies a signature produced under the given context tag.
// The outcome is strictly ternary:
//
//   - (false, ErrInvalidInputShape) - an input buffer is structurally
//     malformed, including a context over sign.MaxContextSize bytes; the
//     primitive is never invoked.
//   - (false, nil) - the inputs are well shaped but the signature does not
//     verify.  This is an ordinary outcome, not an error.
//   - (true, nil) - the signature verifies.
//
// The context is bound exactly as in SignContext; a signature produced
// under a different context yields (false, nil).
func (v *Verifier) VerifyContext(publicKey, message, signature, context []byte) (bool, error) {
	if len(publicKey) != v.scheme.PublicKeySize() {
		return false, fmt.Errorf("%w: public key is %d bytes, want %d",
			ErrInvalidInputShape, len(publicKey), v.scheme.PublicKeySize())
	}
	if len(signature) != v.scheme.SignatureSize() {
		return false, fmt.Errorf("%w: signature is %d bytes, want %d",
			ErrInvalidInputShape, len(signature), v.scheme.SignatureSize())
	}
	pubKey, err := v.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInputShape, err)
	}

	bound, err := sign.BindContext(context, message)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInputShape, err)
	}
	return pubKey.Verify(signature, bound), nil
}
