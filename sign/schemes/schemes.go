// schemes.go - Signature scheme registry.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

// Package schemes resolves signature schemes by name, decoupling
// configuration from concrete algorithm packages.
package schemes

import (
	"strings"

	"github.com/faithchain/pqsig/sign"
	"github.com/faithchain/pqsig/sign/dilithium"
)

var allSchemes = []sign.Scheme{
	dilithium.Scheme2,
	dilithium.Scheme3,
	dilithium.Scheme5,
}

var allSchemeNames map[string]sign.Scheme

func init() {
	allSchemeNames = make(map[string]sign.Scheme)
	for _, scheme := range allSchemes {
		allSchemeNames[strings.ToLower(scheme.Name())] = scheme
	}
}

// ByName returns the signature scheme by string name, or nil if no such
// scheme is registered.  Matching is case-insensitive.
func ByName(name string) sign.Scheme {
	return allSchemeNames[strings.ToLower(name)]
}

// All returns all signature schemes supported.
func All() []sign.Scheme {
	a := allSchemes
	return a[:]
}
