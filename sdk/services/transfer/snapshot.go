// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ega-tools/ega-cli-sdk/sdk/services/request"
)

// WriteSnapshot saves the ticket envelope as <dir>/<label>.json.
func WriteSnapshot(dir, label string, tickets request.Tickets) (string, error) {
	if label == "" {
		return "", fmt.Errorf("snapshot needs a request label")
	}
	b, err := json.Marshal(tickets)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tickets: %w", err)
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	path := filepath.Join(dir, label+".json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
