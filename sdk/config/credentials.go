// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const DefaultCredentialsFile = "~/.ega.json"

var validate = validator.New()

// Credentials for the archive account and the re-encryption key.
type Credentials struct {
	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Key      string `mapstructure:"key"      validate:"required"`
}

// LoadCredentials reads a JSON credentials file. An empty path means
// DefaultCredentialsFile.
func LoadCredentials(path string) (Credentials, error) {
	if path == "" {
		path = DefaultCredentialsFile
	}
	path = ExpandHome(path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, Validationf("%s does not exist", path)
		}
		return Credentials{}, fmt.Errorf("cannot access %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := v.Unmarshal(&creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to decode credentials: %w", err)
	}

	if err := validate.Struct(creds); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, strings.ToLower(fe.Field()))
			}
			return Credentials{}, Validationf("%s is missing required fields: %s", path, strings.Join(missing, ", "))
		}
		return Credentials{}, err
	}
	return creds, nil
}

// ExpandHome replaces a leading "~" with the user home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
