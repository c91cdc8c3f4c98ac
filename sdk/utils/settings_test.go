// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

const sampleIni = `current_environment = prod
http_retry_max = 2

[prod]
ega_api_url = https://prod.example/access/v2
aws_region = eu-west-1

[test]
ega_api_url = https://test.example/access/v2
`

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"EGA_API_URL", "EGA_DOWNLOAD_URL", "EGA_HTTP_RETRY_MAX", "EGA_DECRYPT_JAVA", "EGA_DECRYPT_JAR",
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN", "AWS_REGION", "AWS_ENDPOINT_URL",
	} {
		t.Setenv(k, "")
	}
}

func writeIni(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	clearSettingsEnv(t)

	v, err := utils.LoadSettings(filepath.Join(t.TempDir(), "missing.ini"), "", zerolog.Nop())
	require.NoError(t, err)

	conf, err := utils.BuildConfig(v, false)
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultApiURL, conf.Core.BaseURL)
	assert.Equal(t, utils.DefaultDownloadURL, conf.Core.DownloadURL)
	assert.Zero(t, conf.Core.RetryMax)
	assert.Equal(t, "java", conf.Decrypt.Java)
	assert.Equal(t, "/usr/src/app/EgaDemoClient.jar", conf.Decrypt.Jar)
	assert.Empty(t, conf.S3.AccessKey)
	assert.Equal(t, "default", v.GetString(utils.CurrentEnvironment))
}

func TestLoadSettingsCurrentEnvironment(t *testing.T) {
	clearSettingsEnv(t)

	v, err := utils.LoadSettings(writeIni(t, sampleIni), "", zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "prod", v.GetString(utils.CurrentEnvironment))
	assert.Equal(t, "https://prod.example/access/v2", v.GetString(utils.EgaApiURL))
	assert.Equal(t, "eu-west-1", v.GetString(utils.AwsRegion))
	assert.Equal(t, 2, v.GetInt(utils.HttpRetryMax))
	assert.Equal(t, utils.DefaultDownloadURL, v.GetString(utils.EgaDownloadURL))
}

func TestLoadSettingsExplicitEnvAndOverride(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("EGA_DOWNLOAD_URL", "http://localhost:9000/ds/v2")

	v, err := utils.LoadSettings(writeIni(t, sampleIni), "test", zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "test", v.GetString(utils.CurrentEnvironment))
	assert.Equal(t, "https://test.example/access/v2", v.GetString(utils.EgaApiURL))
	assert.Empty(t, v.GetString(utils.AwsRegion))
	assert.Equal(t, "http://localhost:9000/ds/v2", v.GetString(utils.EgaDownloadURL))
}

func TestLoadSettingsUnknownSectionFallsBack(t *testing.T) {
	clearSettingsEnv(t)

	v, err := utils.LoadSettings(writeIni(t, sampleIni), "staging", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultApiURL, v.GetString(utils.EgaApiURL))
	assert.Equal(t, 2, v.GetInt(utils.HttpRetryMax))
}

func TestWriteSettingsSkipsSecrets(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("EGA_API_URL", "https://mirror.example/access/v2")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "s3cr3t")

	path := filepath.Join(t.TempDir(), "sub", "egacli.ini")
	v, err := utils.LoadSettings(path, "", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, utils.WriteSettings(v, path, "mirror", false))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[mirror]")
	assert.Contains(t, string(b), "https://mirror.example/access/v2")
	assert.NotContains(t, string(b), "s3cr3t")

	clearSettingsEnv(t)
	v, err = utils.LoadSettings(path, "", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "mirror", v.GetString(utils.CurrentEnvironment))
	assert.Equal(t, "https://mirror.example/access/v2", v.GetString(utils.EgaApiURL))
}

func TestEffectiveSettingsMasksSecrets(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")

	v, err := utils.LoadSettings(filepath.Join(t.TempDir(), "none.ini"), "", zerolog.Nop())
	require.NoError(t, err)

	eff := utils.EffectiveSettings(v)
	assert.Equal(t, "***", eff[utils.AwsAccessKeyID])
	assert.Equal(t, "", eff[utils.AwsSecretAccessKey])
	assert.Equal(t, utils.DefaultApiURL, eff[utils.EgaApiURL])
	assert.Equal(t, utils.SortedKeys(eff)[0], utils.AwsAccessKeyID)
}

func TestBuildConfigRejectsNegativeRetries(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("EGA_HTTP_RETRY_MAX", "-1")

	v, err := utils.LoadSettings(filepath.Join(t.TempDir(), "none.ini"), "", zerolog.Nop())
	require.NoError(t, err)

	_, err = utils.BuildConfig(v, true)
	assert.ErrorIs(t, err, config.ErrValidation)
}
