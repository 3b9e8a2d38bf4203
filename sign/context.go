// context.go - Context binding for signatures.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

package sign

import "errors"

// MaxContextSize is the maximum length in bytes of a context tag.
const MaxContextSize = 255

// ErrContextSize is the error returned when a context tag exceeds
// MaxContextSize bytes.
var ErrContextSize = errors.New("sign: context exceeds 255 bytes")

// BindContext binds a caller-supplied context tag to a message, so that a
// signature produced under one context never verifies under another.  The
// bound form is:
//
//	len(context) (1 byte) || context || message
//
// An empty context returns the message unchanged.  Signing and verification
// MUST both apply this exact transformation; both service entry points call
// this one function.
func BindContext(context, message []byte) ([]byte, error) {
	if len(context) == 0 {
		return message, nil
	}
	if len(context) > MaxContextSize {
		return nil, ErrContextSize
	}
	bound := make([]byte, 0, 1+len(context)+len(message))
	bound = append(bound, byte(len(context)))
	bound = append(bound, context...)
	bound = append(bound, message...)
	return bound, nil
}
