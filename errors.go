// errors.go - Service error taxonomy.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package pqsig

import "errors"

var (
	// ErrInvalidKeyLength is the error returned when key material handed
	// to the service does not match the scheme's fixed parameter sizes.
	// It signals caller-side misuse, not a cryptographic failure.
	ErrInvalidKeyLength = errors.New("pqsig: key length does not match scheme parameters")

	// ErrInvalidInputShape is the error returned by verification when an
	// input buffer is structurally malformed.  It is raised before the
	// primitive is ever invoked and is distinct from a false verification
	// outcome.
	ErrInvalidInputShape = errors.New("pqsig: input length does not match scheme parameters")

	// ErrPrimitiveContract is the error returned when the underlying
	// signature primitive produced output inconsistent with its declared
	// parameters.  It indicates a broken or mismatched primitive build and
	// is unrecoverable; it is never masked as an ordinary verification
	// failure.
	ErrPrimitiveContract = errors.New("pqsig: signature primitive violated its declared parameters")

	// ErrScrubbedKey is the error returned when attempting to serialize
	// key material that has already been zeroized.
	ErrScrubbedKey = errors.New("pqsig: attempted to serialize scrubbed key")
)
