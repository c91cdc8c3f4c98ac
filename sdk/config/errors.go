// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

// ErrValidation marks errors detected locally, before any remote call.
var ErrValidation = errors.New("validation error")

// Validationf builds an error wrapping ErrValidation.
func Validationf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, a...))
}

// RemoteError is returned when the archive answers with a non-OK envelope.
type RemoteError struct {
	Operation string
	Message   string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s failed", e.Operation)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}
