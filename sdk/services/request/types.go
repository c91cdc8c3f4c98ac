// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/session"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

// DefaultRekey is used when MakeRequest.Key is empty.
const DefaultRekey = "ega"

type MakeRequest struct {
	Session  session.Session
	IDType   utils.IDType
	StableID string
	Label    string
	Key      string
}

type ListRequest struct {
	Session session.Session
	Label   string // empty lists every outstanding request
}

type DeleteRequest struct {
	Session session.Session
	Label   string
}

// Ticket is one downloadable file of a request.
type Ticket struct {
	Ticket   string      `json:"ticket"   yaml:"ticket"`
	Label    string      `json:"label"    yaml:"label"`
	FileID   string      `json:"fileID"   yaml:"fileID"`
	FileName string      `json:"fileName" yaml:"fileName"`
	FileSize config.Size `json:"fileSize" yaml:"fileSize"`
}

// Tickets is the ticket list envelope as returned by the archive. Order is
// not guaranteed.
type Tickets = config.Envelope[[]Ticket]

type LabelCount struct {
	Label string `json:"label" yaml:"label"`
	Files int    `json:"files" yaml:"files"`
}

type downloadRequest struct {
	Rekey        string `json:"rekey"`
	DownloadType string `json:"downloadType"`
	Descriptor   string `json:"descriptor"`
}
