// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

const (
	DefaultJava = "java"
	DefaultJar  = "/usr/src/app/EgaDemoClient.jar"
)

var encryptedSuffixes = []string{".cip", ".gpg"}

// IsEncrypted reports whether name carries an archive encryption suffix.
func IsEncrypted(name string) bool {
	for _, sfx := range encryptedSuffixes {
		if strings.HasSuffix(name, sfx) {
			return true
		}
	}
	return false
}

// PlaintextName strips the encryption suffix, if any.
func PlaintextName(name string) string {
	for _, sfx := range encryptedSuffixes {
		if strings.HasSuffix(name, sfx) {
			return strings.TrimSuffix(name, sfx)
		}
	}
	return name
}

// JavaDecrypter runs the EGA demo client jar, which writes the plaintext
// next to the encrypted file.
type JavaDecrypter struct {
	Java string
	Jar  string
	log  zerolog.Logger
}

func NewJavaDecrypter(conf config.DecryptConfig, log zerolog.Logger) *JavaDecrypter {
	d := &JavaDecrypter{Java: conf.Java, Jar: conf.Jar, log: log}
	if d.Java == "" {
		d.Java = DefaultJava
	}
	if d.Jar == "" {
		d.Jar = DefaultJar
	}
	return d
}

func (d *JavaDecrypter) Decrypt(ctx context.Context, creds config.Credentials, encryptedPath string) (string, error) {
	dir, name := filepath.Split(encryptedPath)
	if dir == "" {
		dir = "."
	}
	args := []string{"-jar", d.Jar, "-p", creds.Username, creds.Password, "-dc", name, "-dck", creds.Key}

	d.log.Info().Str("cmd", fmt.Sprintf("%s -jar %s -p %s *** -dc %s -dck ***", d.Java, d.Jar, creds.Username, name)).Msg("Decrypting")

	cmd := exec.CommandContext(ctx, d.Java, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("decryption of %s failed: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	d.log.Debug().Msg(string(output))

	plain := filepath.Join(dir, PlaintextName(name))
	if _, err := os.Stat(plain); err != nil {
		return "", fmt.Errorf("decryption of %s produced no %s: %w", name, filepath.Base(plain), err)
	}
	return plain, nil
}
