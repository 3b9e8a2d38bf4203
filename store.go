// store.go - BoltDB backed key record store.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package pqsig

import (
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/op/go-logging.v1"
)

const recordsBucket = "key_records"

// ErrNoSuchRecord is the error returned when a named key record does not
// exist in the store.
var ErrNoSuchRecord = errors.New("pqsig: no such key record")

// KeyStore is a boltdb backed durable sink for encoded key records, for
// deployments that keep more than a single on-disk record file.  Key
// material enters and leaves the store only in its hex record form.
type KeyStore struct {
	db  *bolt.DB
	log *logging.Logger
}

// OpenKeyStore opens or creates the key store at path.
func OpenKeyStore(path string, log *logging.Logger) (*KeyStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	if err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(recordsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &KeyStore{db: db, log: log}, nil
}

// Put stores a record under name, replacing any existing record.
func (s *KeyStore) Put(name string, r *EncodedRecord) error {
	blob, err := json.Marshal(r)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put([]byte(name), blob)
	})
	if err != nil {
		return err
	}
	s.log.Debugf("keystore: stored record %q", name)
	return nil
}

// Get retrieves the record stored under name.
func (s *KeyStore) Get(name string) (*EncodedRecord, error) {
	r := new(EncodedRecord)
	err := s.db.View(func(tx *bolt.Tx) error {
		blob := tx.Bucket([]byte(recordsBucket)).Get([]byte(name))
		if blob == nil {
			return ErrNoSuchRecord
		}
		return json.Unmarshal(blob, r)
	})
	if err != nil {
		if errors.Is(err, ErrNoSuchRecord) {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchRecord, name)
		}
		return nil, err
	}
	return r, nil
}

// Delete removes the record stored under name, if any.
func (s *KeyStore) Delete(name string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Delete([]byte(name))
	})
	if err != nil {
		return err
	}
	s.log.Debugf("keystore: deleted record %q", name)
	return nil
}

// List returns the names of all stored records.
func (s *KeyStore) List() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Close flushes and closes the underlying database.
func (s *KeyStore) Close() error {
	return s.db.Close()
}
