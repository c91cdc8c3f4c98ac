// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package transfer

import (
	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/request"
)

type DownloadInfo struct {
	Ticket   string `json:"ticket"          yaml:"ticket"`
	Filename string `json:"filename"        yaml:"filename"`
	Size     int64  `json:"size"            yaml:"size"`
	Path     string `json:"path"            yaml:"path"`
	Err      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// -------- Sync --------

type SyncRequest struct {
	Tickets     []request.Ticket
	Destination config.S3URI
	Credentials config.Credentials
	// WorkDir holds ciphertext and plaintext while a file is in flight;
	// empty means the current directory.
	WorkDir string
}

type SyncInfo struct {
	Ticket  string `json:"ticket"  yaml:"ticket"`
	Key     string `json:"key"     yaml:"key"`
	Size    int64  `json:"size"    yaml:"size"`
	Skipped bool   `json:"skipped" yaml:"skipped"`
}
