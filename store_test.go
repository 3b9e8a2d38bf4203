// store_test.go - Key record store tests.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package pqsig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/faithchain/pqsig/log"
	"github.com/faithchain/pqsig/sign/dilithium"
)

func testKeyStore(t *testing.T) *KeyStore {
	backend, err := log.New("", "DEBUG", true)
	require.NoError(t, err)

	store, err := OpenKeyStore(filepath.Join(t.TempDir(), "keys.db"), backend.GetLogger("keystore"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKeyStore(t *testing.T) {
	require := require.New(t)

	store := testKeyStore(t)

	kp, err := GenerateKeyPair(dilithium.Scheme2)
	require.NoError(err)
	defer kp.Zeroize()
	rec, err := kp.Encode()
	require.NoError(err)

	require.NoError(store.Put("faith-chain", rec))

	got, err := store.Get("faith-chain")
	require.NoError(err)
	require.Equal(rec, got)

	names, err := store.List()
	require.NoError(err)
	require.Equal([]string{"faith-chain"}, names)

	require.NoError(store.Delete("faith-chain"))
	_, err = store.Get("faith-chain")
	require.ErrorIs(err, ErrNoSuchRecord)

	names, err = store.List()
	require.NoError(err)
	require.Empty(names)
}

func TestKeyStoreReplace(t *testing.T) {
	require := require.New(t)

	store := testKeyStore(t)

	kp1, err := GenerateKeyPair(dilithium.Scheme2)
	require.NoError(err)
	defer kp1.Zeroize()
	kp2, err := GenerateKeyPair(dilithium.Scheme2)
	require.NoError(err)
	defer kp2.Zeroize()

	rec1, err := kp1.Encode()
	require.NoError(err)
	rec2, err := kp2.Encode()
	require.NoError(err)

	require.NoError(store.Put("node", rec1))
	require.NoError(store.Put("node", rec2))

	got, err := store.Get("node")
	require.NoError(err)
	require.Equal(rec2, got)
}

func TestKeyStoreMissing(t *testing.T) {
	require := require.New(t)

	store := testKeyStore(t)
	_, err := store.Get("nonesuch")
	require.ErrorIs(err, ErrNoSuchRecord)
}
