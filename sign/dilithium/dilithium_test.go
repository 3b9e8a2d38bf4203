// dilithium_test.go - Wrapper tests.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package dilithium

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDilithiumSignatureScheme(t *testing.T) {
	s := Scheme2
	privKey, pubKey, err := s.NewKeypair()
	require.NoError(t, err)
	message := []byte("hello world")
	signature := privKey.Sign(message)
	require.Equal(t, s.SignatureSize(), len(signature))
	ok := pubKey.Verify(signature, message)
	require.True(t, ok)
}

func TestDilithiumBytes(t *testing.T) {
	s := Scheme2
	privKey, pubKey, err := s.NewKeypair()
	require.NoError(t, err)
	message := []byte("hello world")
	signature := privKey.Sign(message)

	pubKey2, err := s.UnmarshalBinaryPublicKey(pubKey.Bytes())
	require.NoError(t, err)
	require.Equal(t, pubKey.Bytes(), pubKey2.Bytes())
	ok := pubKey2.Verify(signature, message)
	require.True(t, ok)

	privKey2, err := s.UnmarshalBinaryPrivateKey(privKey.Bytes())
	require.NoError(t, err)
	signature2 := privKey2.Sign(message)
	ok = pubKey.Verify(signature2, message)
	require.True(t, ok)
}

func TestDilithiumUnmarshalSizes(t *testing.T) {
	s := Scheme2

	_, err := s.UnmarshalBinaryPublicKey(make([]byte, s.PublicKeySize()-1))
	require.ErrorIs(t, err, ErrPublicKeySize)

	_, err = s.UnmarshalBinaryPrivateKey(make([]byte, s.PrivateKeySize()+1))
	require.ErrorIs(t, err, ErrPrivateKeySize)
}

func TestDilithiumReset(t *testing.T) {
	privKey, _, err := Scheme2.NewKeypair()
	require.NoError(t, err)

	packed := privKey.Bytes()
	require.Equal(t, Scheme2.PrivateKeySize(), len(packed))

	privKey.Reset()
	for _, b := range packed {
		require.Equal(t, byte(0), b, "Reset scrubs the packed key material")
	}
}

func TestDilithiumModes(t *testing.T) {
	require.Equal(t, "Dilithium2", Scheme2.Name())
	require.Equal(t, "Dilithium3", Scheme3.Name())
	require.Equal(t, "Dilithium5", Scheme5.Name())

	// Sizes grow with the security level.
	require.Less(t, Scheme2.PublicKeySize(), Scheme3.PublicKeySize())
	require.Less(t, Scheme3.PublicKeySize(), Scheme5.PublicKeySize())
	require.Less(t, Scheme2.SignatureSize(), Scheme5.SignatureSize())
}
