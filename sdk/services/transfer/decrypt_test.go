// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/transfer"
)

// fakeJava stands in for "java -jar client.jar -p user pass -dc file -dck key".
func fakeJava(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "java")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestJavaDecrypter(t *testing.T) {
	java := fakeJava(t, `[ "$5" = "pw" ] && [ "$9" = "k" ] || exit 3
cp "$7" "${7%.cip}"`)
	dir := t.TempDir()
	enc := filepath.Join(dir, "a.bam.cip")
	require.NoError(t, os.WriteFile(enc, []byte("data"), 0o600))

	d := transfer.NewJavaDecrypter(config.DecryptConfig{Java: java, Jar: "client.jar"}, zerolog.Nop())
	plain, err := d.Decrypt(context.Background(), config.Credentials{Username: "u", Password: "pw", Key: "k"}, enc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.bam"), plain)
}

func TestJavaDecrypterExitStatus(t *testing.T) {
	java := fakeJava(t, `echo "wrong key" >&2; exit 1`)
	enc := filepath.Join(t.TempDir(), "a.bam.cip")
	require.NoError(t, os.WriteFile(enc, []byte("data"), 0o600))

	d := transfer.NewJavaDecrypter(config.DecryptConfig{Java: java}, zerolog.Nop())
	_, err := d.Decrypt(context.Background(), config.Credentials{Username: "u", Password: "pw", Key: "k"}, enc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong key")
}

func TestJavaDecrypterMissingOutput(t *testing.T) {
	java := fakeJava(t, `exit 0`)
	enc := filepath.Join(t.TempDir(), "a.bam.gpg")
	require.NoError(t, os.WriteFile(enc, []byte("data"), 0o600))

	d := transfer.NewJavaDecrypter(config.DecryptConfig{Java: java}, zerolog.Nop())
	_, err := d.Decrypt(context.Background(), config.Credentials{Username: "u", Password: "pw", Key: "k"}, enc)
	assert.Error(t, err)
}

func TestJavaDecrypterDefaults(t *testing.T) {
	d := transfer.NewJavaDecrypter(config.DecryptConfig{}, zerolog.Nop())
	assert.Equal(t, transfer.DefaultJava, d.Java)
	assert.Equal(t, transfer.DefaultJar, d.Jar)
}
