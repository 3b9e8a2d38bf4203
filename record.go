// record.go - Durable encoded key records.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package pqsig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katzenpost/hpqc/util"

	"github.com/faithchain/pqsig/hexutil"
	"github.com/faithchain/pqsig/sign"
)

// EncodedRecord is the sole durable artifact the service produces: both
// halves of a key pair as canonical lowercase hex, exactly twice the
// corresponding byte lengths.
type EncodedRecord struct {
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`
}

// Encode serializes a key pair into its hex record form.  A zeroized
// secret key fails with ErrScrubbedKey rather than producing a record of
// zeros, mirroring hpqc's refusal to serialize scrubbed keys.
func (k *KeyPair) Encode() (*EncodedRecord, error) {
	if len(k.SecretKey) == 0 || util.CtIsZero(k.SecretKey) {
		return nil, ErrScrubbedKey
	}
	return &EncodedRecord{
		PublicKey: hexutil.Encode(k.PublicKey),
		SecretKey: hexutil.Encode(k.SecretKey),
	}, nil
}

// Decode reverses Encode, validating both fields against the scheme's
// declared sizes.  Malformed hex fails with hexutil.ErrInvalidEncoding;
// well-formed hex of the wrong length fails with ErrInvalidKeyLength.
func (r *EncodedRecord) Decode(scheme sign.Scheme) (*KeyPair, error) {
	pk, err := hexutil.Decode(r.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("pqsig: public_key: %w", err)
	}
	sk, err := hexutil.Decode(r.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("pqsig: secret_key: %w", err)
	}
	if len(pk) != scheme.PublicKeySize() {
		return nil, fmt.Errorf("%w: public key is %d bytes, want %d",
			ErrInvalidKeyLength, len(pk), scheme.PublicKeySize())
	}
	if len(sk) != scheme.PrivateKeySize() {
		return nil, fmt.Errorf("%w: secret key is %d bytes, want %d",
			ErrInvalidKeyLength, len(sk), scheme.PrivateKeySize())
	}
	return &KeyPair{PublicKey: pk, SecretKey: sk}, nil
}

// PersistRecord durably writes a record to path as a single atomic step:
// the record is written to a temporary file in the same directory, synced,
// and renamed into place.  Either the whole record is durably stored or
// nothing is; a partial record is never observable.
func PersistRecord(path string, r *EncodedRecord) error {
	blob, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".keyrecord-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed into place

	if err = tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	writeCount, err := tmp.Write(blob)
	if err != nil {
		tmp.Close()
		return err
	}
	if writeCount != len(blob) {
		tmp.Close()
		return errors.New("pqsig: partial write failure")
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// LoadRecord reads a record persisted by PersistRecord.
func LoadRecord(path string) (*EncodedRecord, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := new(EncodedRecord)
	if err = json.Unmarshal(blob, r); err != nil {
		return nil, fmt.Errorf("pqsig: malformed key record %s: %w", path, err)
	}
	return r, nil
}
