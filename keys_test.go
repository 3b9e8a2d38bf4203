// keys_test.go - Key pair lifecycle tests.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package pqsig

import (
	"testing"

	"github.com/katzenpost/hpqc/util"
	"github.com/stretchr/testify/require"

	"github.com/faithchain/pqsig/sign/dilithium"
)

func TestGenerateKeyPair(t *testing.T) {
	require := require.New(t)

	scheme := dilithium.Scheme2
	kp, err := GenerateKeyPair(scheme)
	require.NoError(err)
	defer kp.Zeroize()

	require.Equal(scheme.PublicKeySize(), len(kp.PublicKey))
	require.Equal(scheme.PrivateKeySize(), len(kp.SecretKey))
	require.False(util.CtIsZero(kp.SecretKey))
}

func TestKeyPairZeroize(t *testing.T) {
	require := require.New(t)

	kp, err := GenerateKeyPair(dilithium.Scheme2)
	require.NoError(err)

	kp.Zeroize()
	require.True(util.CtIsZero(kp.SecretKey), "Zeroize scrubs the secret key")

	_, err = kp.Encode()
	require.ErrorIs(err, ErrScrubbedKey, "a scrubbed key never serializes")
}

func TestKeyPairFingerprint(t *testing.T) {
	require := require.New(t)

	kp1, err := GenerateKeyPair(dilithium.Scheme2)
	require.NoError(err)
	defer kp1.Zeroize()
	kp2, err := GenerateKeyPair(dilithium.Scheme2)
	require.NoError(err)
	defer kp2.Zeroize()

	require.Len(kp1.Fingerprint(), 64)
	require.NotEqual(kp1.Fingerprint(), kp2.Fingerprint())
}
