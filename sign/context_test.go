// context_test.go - Context binding tests.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package sign

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindContextEmpty(t *testing.T) {
	require := require.New(t)

	message := []byte("hello world")
	bound, err := BindContext(nil, message)
	require.NoError(err)
	require.True(bytes.Equal(message, bound), "empty context leaves the message unchanged")

	bound, err = BindContext([]byte{}, message)
	require.NoError(err)
	require.True(bytes.Equal(message, bound))
}

func TestBindContextLayout(t *testing.T) {
	require := require.New(t)

	context := []byte("invoice-protocol-v1")
	message := []byte("hello world")
	bound, err := BindContext(context, message)
	require.NoError(err)

	require.Equal(1+len(context)+len(message), len(bound))
	require.Equal(byte(len(context)), bound[0])
	require.Equal(context, bound[1:1+len(context)])
	require.Equal(message, bound[1+len(context):])
}

func TestBindContextDisjoint(t *testing.T) {
	require := require.New(t)

	message := []byte("payload")
	b1, err := BindContext([]byte("ctx1"), message)
	require.NoError(err)
	b2, err := BindContext([]byte("ctx2"), message)
	require.NoError(err)
	require.False(bytes.Equal(b1, b2), "distinct contexts bind to distinct buffers")
}

func TestBindContextTooLong(t *testing.T) {
	require := require.New(t)

	_, err := BindContext(make([]byte, MaxContextSize+1), []byte("m"))
	require.ErrorIs(err, ErrContextSize)

	_, err = BindContext(make([]byte, MaxContextSize), []byte("m"))
	require.NoError(err, "exactly MaxContextSize is legal")
}

func TestBindContextEmptyMessage(t *testing.T) {
	require := require.New(t)

	bound, err := BindContext([]byte("ctx"), nil)
	require.NoError(err)
	require.Equal(4, len(bound))
}
