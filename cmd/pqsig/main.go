// main.go - Quantum-resistant signature tool.
//
// SPDX-FileCopyrightText: Copyright (C) 2026 Faith Chain Developers
// SPDX-License-Identifier: AGPL-3.0-only

// Command pqsig is the glue surface over the signature service: it
// generates key pairs, persists them as hex key records, signs messages
// and verifies signatures.  The service itself exposes no CLI; everything
// here is a thin driver.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/op/go-logging.v1"

	"github.com/faithchain/pqsig"
	"github.com/faithchain/pqsig/config"
	"github.com/faithchain/pqsig/hexutil"
	"github.com/faithchain/pqsig/log"
	"github.com/faithchain/pqsig/sign"
	"github.com/faithchain/pqsig/sign/schemes"
)

type env struct {
	cfg    *config.Config
	scheme sign.Scheme
	log    *logging.Logger
}

// newEnv resolves configuration, scheme and logging for a command
// invocation.  Without a config file a default Dilithium5 setup rooted in
// the current directory is used.
func newEnv(cfgFile string) (*env, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
		if err != nil {
			return nil, err
		}
	} else {
		dir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg = &config.Config{Service: &config.Service{DataDir: dir}}
		if err = cfg.FixupAndValidate(); err != nil {
			return nil, err
		}
	}

	scheme := schemes.ByName(cfg.Service.Scheme)
	if scheme == nil {
		return nil, fmt.Errorf("no such signature scheme: %v", cfg.Service.Scheme)
	}
	backend, err := log.New(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Disable)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:    cfg,
		scheme: scheme,
		log:    backend.GetLogger("pqsig"),
	}, nil
}

// keyPath anchors relative paths in the configured data directory.
func (e *env) keyPath(f string) string {
	if filepath.IsAbs(f) {
		return f
	}
	return filepath.Join(e.cfg.Service.DataDir, f)
}

func newKeygenCommand(cfgFile *string) *cobra.Command {
	var out, name string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a quantum-resistant key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*cfgFile)
			if err != nil {
				return err
			}

			kp, err := pqsig.GenerateKeyPair(e.scheme)
			if err != nil {
				return err
			}
			defer kp.Zeroize()

			rec, err := kp.Encode()
			if err != nil {
				return err
			}
			outPath := e.keyPath(out)
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("key record already exists: %v", outPath)
			}
			if err = pqsig.PersistRecord(outPath, rec); err != nil {
				return err
			}
			e.log.Noticef("generated %s key pair %s", e.scheme.Name(), kp.Fingerprint())

			if name != "" {
				store, err := pqsig.OpenKeyStore(e.keyPath(e.cfg.Service.KeyStore), e.log)
				if err != nil {
					return err
				}
				defer store.Close()
				if err = store.Put(name, rec); err != nil {
					return err
				}
			}

			fmt.Printf("Wrote key record to %v\n", outPath)
			fmt.Printf("Algorithm: %v\n", e.scheme.Name())
			fmt.Printf("Public key length: %v chars\n", len(rec.PublicKey))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "quantum_keys.json", "output key record file")
	cmd.Flags().StringVarP(&name, "name", "n", "", "also store the record under this name in the key store")
	return cmd
}

func newSignCommand(cfgFile *string) *cobra.Command {
	var keyFile, message, context string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a stored secret key",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*cfgFile)
			if err != nil {
				return err
			}

			rec, err := pqsig.LoadRecord(e.keyPath(keyFile))
			if err != nil {
				return err
			}
			kp, err := rec.Decode(e.scheme)
			if err != nil {
				return err
			}
			defer kp.Zeroize()

			signer := pqsig.NewSigner(e.scheme)
			sig, err := signer.SignContext(kp.SecretKey, []byte(message), []byte(context))
			if err != nil {
				return err
			}
			fmt.Println(hexutil.Encode(sig))
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyFile, "key", "k", "quantum_keys.json", "key record file")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to sign")
	cmd.Flags().StringVar(&context, "context", "", "optional context tag binding the signature to a protocol")
	cmd.MarkFlagRequired("message")
	return cmd
}

func newVerifyCommand(cfgFile *string) *cobra.Command {
	var keyFile, message, sigHex, context string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against a stored public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*cfgFile)
			if err != nil {
				return err
			}

			rec, err := pqsig.LoadRecord(e.keyPath(keyFile))
			if err != nil {
				return err
			}
			pk, err := hexutil.Decode(rec.PublicKey)
			if err != nil {
				return err
			}
			sig, err := hexutil.Decode(sigHex)
			if err != nil {
				return err
			}

			verifier := pqsig.NewVerifier(e.scheme)
			ok, err := verifier.VerifyContext(pk, []byte(message), sig, []byte(context))
			if err != nil {
				// Structurally malformed input, not a failed check.
				return err
			}
			if !ok {
				fmt.Println("signature invalid")
				return errors.New("signature verification failed")
			}
			fmt.Println("signature valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyFile, "key", "k", "quantum_keys.json", "key record file")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message that was signed")
	cmd.Flags().StringVarP(&sigHex, "signature", "s", "", "hex encoded signature")
	cmd.Flags().StringVar(&context, "context", "", "context tag the signature was bound to")
	cmd.MarkFlagRequired("message")
	cmd.MarkFlagRequired("signature")
	return cmd
}

func main() {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "pqsig",
		Short:         "Quantum-resistant digital signature tool",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to the service configuration file (TOML format)")
	rootCmd.AddCommand(newKeygenCommand(&cfgFile))
	rootCmd.AddCommand(newSignCommand(&cfgFile))
	rootCmd.AddCommand(newVerifyCommand(&cfgFile))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
