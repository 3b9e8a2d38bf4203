// hexutil.go - Canonical hex encoding for key and signature material.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

// Package hexutil is the canonical textual encoding for key and signature
// material: lowercase hexadecimal, no separators, no line breaks.  It is
// the only form such material takes outside process memory.
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidEncoding is the error returned when decoding input that is not
// well-formed hex.  Malformed input is always a hard error, never silently
// truncated or padded.
var ErrInvalidEncoding = errors.New("hexutil: invalid hex encoding")

// Encode returns the canonical lowercase hex encoding of b.  The output
// length is always exactly twice len(b).
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// Decode decodes a hex string into bytes.  Both upper and lower case input
// is accepted; odd-length input or bytes outside [0-9a-fA-F] fail with an
// error matching ErrInvalidEncoding.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidEncoding, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}
