// doc.go - Package documentation.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

// Package pqsig is a quantum-resistant digital signature service: key pair
// generation, message signing and signature verification over a
// lattice-based NIST post-quantum signature primitive.
//
// All operations are synchronous, hold no cross-call state, and are safe
// for concurrent use; the entropy source consumed during key generation is
// assumed thread-safe (hpqc's rand.Reader is).  Secret key material is
// scrubbed on release on every path.
//
// Verification distinguishes structural errors (wrong buffer length,
// undecodable hex) from cryptographic falsity: a garbled but correctly
// shaped signature is a false result, not an error.  Callers must never
// conflate the two; they are different trust decisions.
package pqsig
