// config.go - Signature service configuration.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

// Package config provides the signature service configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/faithchain/pqsig/sign/schemes"
)

const (
	defaultLogLevel = "NOTICE"
	defaultScheme   = "Dilithium5"
	defaultKeyStore = "keys.db"
)

var defaultLogging = Logging{
	Disable: false,
	File:    "",
	Level:   defaultLogLevel,
}

// Service is the signature service configuration.
type Service struct {
	// Scheme is the name of the signature scheme, as registered with the
	// schemes package (eg: "Dilithium5").
	Scheme string

	// DataDir is the absolute path to the service's state files.
	DataDir string

	// KeyStore is the key store file name within DataDir, if a boltdb
	// backed key store is to be used instead of plain record files.
	KeyStore string
}

func (sCfg *Service) validate() error {
	if sCfg.Scheme == "" {
		sCfg.Scheme = defaultScheme
	}
	if sCfg.KeyStore == "" {
		sCfg.KeyStore = defaultKeyStore
	}
	if schemes.ByName(sCfg.Scheme) == nil {
		return fmt.Errorf("config: Service: Scheme '%v' is not a registered signature scheme", sCfg.Scheme)
	}
	if !filepath.IsAbs(sCfg.DataDir) {
		return fmt.Errorf("config: Service: DataDir '%v' is not an absolute path", sCfg.DataDir)
	}
	return nil
}

// Logging is the signature service logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stdout will be used.
	File string

	// Level specifies the log level.
	Level string
}

func (lCfg *Logging) validate() error {
	lvl := strings.ToUpper(lCfg.Level)
	switch lvl {
	case "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG":
	case "":
		lvl = defaultLogLevel
	default:
		return fmt.Errorf("config: Logging: Level '%v' is invalid", lCfg.Level)
	}
	lCfg.Level = lvl // Force uppercase.
	return nil
}

// Config is the top level signature service configuration.
type Config struct {
	Service *Service
	Logging *Logging
}

// FixupAndValidate applies defaults to config entries and validates the
// supplied configuration.
func (cfg *Config) FixupAndValidate() error {
	if cfg.Service == nil {
		return errors.New("config: No Service block was present")
	}
	if cfg.Logging == nil {
		cfg.Logging = &defaultLogging
	}

	if err := cfg.Service.validate(); err != nil {
		return err
	}
	if err := cfg.Logging.validate(); err != nil {
		return err
	}
	return nil
}

// Load parses and validates the provided buffer b as a config file body
// and returns the Config.
func Load(b []byte) (*Config, error) {
	if b == nil {
		return nil, errors.New("config: No nil buffer as config file")
	}

	cfg := new(Config)
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses, and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
