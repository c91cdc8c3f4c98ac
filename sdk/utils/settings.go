// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

// Settings holds all logical keys. Tags:
// - vkey: Viper key
// - env: env name; if empty, derived from vkey
// - persist: "true" to write the key into the INI
// - default: default applied when the key is unset
// - secret: "true" if sensitive
// - bind: "false" to NOT bind from env
type Settings struct {
	ApiURL             string `vkey:"ega_api_url"           env:"EGA_API_URL"           persist:"true" default:"https://ega.ebi.ac.uk/ega/rest/access/v2"`
	DownloadURL        string `vkey:"ega_download_url"      env:"EGA_DOWNLOAD_URL"      persist:"true" default:"http://ega.ebi.ac.uk/ega/rest/ds/v2"`
	HttpRetryMax       string `vkey:"http_retry_max"        env:"EGA_HTTP_RETRY_MAX"    persist:"true" default:"0"`
	DecryptJava        string `vkey:"decrypt_java"          env:"EGA_DECRYPT_JAVA"      persist:"true" default:"java"`
	DecryptJar         string `vkey:"decrypt_jar"           env:"EGA_DECRYPT_JAR"       persist:"true" default:"/usr/src/app/EgaDemoClient.jar"`
	AwsAccessKeyID     string `vkey:"aws_access_key_id"     env:"AWS_ACCESS_KEY_ID"     persist:"true" secret:"true"`
	AwsSecretAccessKey string `vkey:"aws_secret_access_key" env:"AWS_SECRET_ACCESS_KEY" persist:"true" secret:"true"`
	AwsSessionToken    string `vkey:"aws_session_token"     env:"AWS_SESSION_TOKEN"     persist:"true" secret:"true"`
	AwsRegion          string `vkey:"aws_region"            env:"AWS_REGION"            persist:"true"`
	AwsEndpointURL     string `vkey:"aws_endpoint_url"      env:"AWS_ENDPOINT_URL"      persist:"true"`
	UpdatedEnvironment string `vkey:"updated_environment"   env:"UPDATED_ENVIRONMENT"   persist:"true" bind:"false"`
	CurrentEnvironment string `vkey:"current_environment"   env:"CURRENT_ENVIRONMENT"   persist:"false"`
}

// DefaultIniPath is ~/.egacli.ini, or ./.egacli.ini without a home directory.
func DefaultIniPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, IniName)
}

// resolveEnvName: --env > "default"
func resolveEnvName(env string) string {
	if env != "" && strings.ToLower(env) != "null" {
		return env
	}
	return "default"
}

func settingsFields(fn func(f reflect.StructField, key string)) {
	rt := reflect.TypeOf(Settings{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if key := f.Tag.Get("vkey"); key != "" {
			fn(f, key)
		}
	}
}

// BindEnvFromStruct binds env variables and defaults for every Settings field.
func BindEnvFromStruct(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	settingsFields(func(f reflect.StructField, key string) {
		if def := f.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
		if f.Tag.Get("bind") == "false" {
			return
		}
		env := f.Tag.Get("env")
		if env == "" {
			env = strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
		_ = v.BindEnv(key, env)
	})
}

// Load [DEFAULT] + [env] into v (TOML in-memory). ENV still overrides on Get().
func loadIniSectionIntoViper(v *viper.Viper, cfg *ini.File, env string, log zerolog.Logger) error {
	def := cfg.Section(ini.DefaultSection)
	selected := def
	switch {
	case env != "" && cfg.HasSection(env):
		selected = cfg.Section(env)
		log.Debug().Str("env", env).Msg("Using settings section")
	case env == "" || strings.EqualFold(env, ini.DefaultSection):
		log.Debug().Msg("Using settings section [DEFAULT]")
	default:
		log.Warn().Str("env", env).Msg("Settings section not found, falling back to [DEFAULT]")
	}

	merged := make(map[string]string)
	for _, k := range def.Keys() {
		merged[k.Name()] = k.Value()
	}
	if selected != def {
		for _, k := range selected.Keys() {
			merged[k.Name()] = k.Value()
		}
	}

	var buf bytes.Buffer
	for k, val := range merged {
		vSafe := strings.ReplaceAll(strings.ReplaceAll(val, `\`, `\\`), `"`, `\"`)
		_, _ = fmt.Fprintf(&buf, "%s = \"%s\"\n", k, vSafe)
	}
	v.SetConfigType("toml")
	return v.ReadConfig(&buf)
}

// LoadSettings builds a viper instance from env bindings, defaults and,
// when iniPath exists, its [DEFAULT] and active sections. The active
// section is env, else DEFAULT.current_environment, else DEFAULT. A
// missing INI is not an error.
func LoadSettings(iniPath, env string, log zerolog.Logger) (*viper.Viper, error) {
	if iniPath == "" {
		iniPath = DefaultIniPath()
	}
	iniPath = config.ExpandHome(iniPath)

	v := viper.New()
	BindEnvFromStruct(v)

	active := resolveEnvName(env)
	if _, err := os.Stat(iniPath); errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("path", iniPath).Msg("No settings file, using env and defaults")
		v.Set(CurrentEnvironment, active)
		return v, nil
	}
	cfg, err := ini.Load(iniPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", iniPath, err)
	}

	if active == "default" {
		if cur := cfg.Section(ini.DefaultSection).Key(CurrentEnvironment).String(); cur != "" {
			active = cur
		}
	}
	if err := loadIniSectionIntoViper(v, cfg, active, log); err != nil {
		return nil, fmt.Errorf("failed to load INI into viper: %w", err)
	}
	v.Set(CurrentEnvironment, active)
	return v, nil
}

// WriteSettings stores every non-empty persisted key of v into the envName
// section of iniPath, creating the file when missing. Secrets are skipped
// unless withSecrets is set.
func WriteSettings(v *viper.Viper, iniPath, envName string, withSecrets bool) error {
	if iniPath == "" {
		iniPath = DefaultIniPath()
	}
	iniPath = config.ExpandHome(iniPath)
	envName = resolveEnvName(envName)

	cfg := ini.Empty()
	if _, err := os.Stat(iniPath); err == nil {
		if cfg, err = ini.Load(iniPath); err != nil {
			return fmt.Errorf("failed to read %s: %w", iniPath, err)
		}
	}

	sec := cfg.Section(envName)
	settingsFields(func(f reflect.StructField, key string) {
		if f.Tag.Get("persist") != "true" || (f.Tag.Get("secret") == "true" && !withSecrets) {
			return
		}
		if val := v.GetString(key); val != "" {
			sec.Key(key).SetValue(val)
		}
	})

	if !cfg.Section(ini.DefaultSection).HasKey(CurrentEnvironment) {
		cfg.Section(ini.DefaultSection).Key(CurrentEnvironment).SetValue(envName)
	}
	sec.Key(UpdatedEnvKey).SetValue(time.Now().UTC().Format(time.RFC3339))

	if err := os.MkdirAll(filepath.Dir(iniPath), 0o755); err != nil {
		return err
	}
	return cfg.SaveTo(iniPath)
}

// EffectiveSettings lists the resolved value of every key, masking secrets.
func EffectiveSettings(v *viper.Viper) map[string]string {
	out := map[string]string{}
	settingsFields(func(f reflect.StructField, key string) {
		val := v.GetString(key)
		if val != "" && f.Tag.Get("secret") == "true" {
			val = "***"
		}
		out[key] = val
	})
	return out
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildConfig maps resolved settings onto the SDK configuration.
func BuildConfig(v *viper.Viper, debug bool) (config.Config, error) {
	retries := v.GetInt(HttpRetryMax)
	if retries < 0 {
		return config.Config{}, config.Validationf("%s must not be negative, got %d", HttpRetryMax, retries)
	}
	return config.Config{
		Core: config.CoreConfig{
			BaseURL:     v.GetString(EgaApiURL),
			DownloadURL: v.GetString(EgaDownloadURL),
			RetryMax:    retries,
			Debug:       debug,
		},
		S3: config.S3Config{
			AccessKey:   v.GetString(AwsAccessKeyID),
			SecretKey:   v.GetString(AwsSecretAccessKey),
			AccessToken: v.GetString(AwsSessionToken),
			Region:      v.GetString(AwsRegion),
			EndpointURL: v.GetString(AwsEndpointURL),
		},
		Decrypt: config.DecryptConfig{
			Java: v.GetString(DecryptJava),
			Jar:  v.GetString(DecryptJar),
		},
	}, nil
}
