// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/session"
)

type ListDatasetsRequest struct {
	Session session.Session
}

type ListFilesRequest struct {
	Session   session.Session
	DatasetID string
}

// DatasetFile is one entry of a dataset file listing.
type DatasetFile struct {
	FileID      string      `json:"fileID"      yaml:"fileID"`
	FileIndex   string      `json:"fileIndex"   yaml:"fileIndex"`
	FileStatus  string      `json:"fileStatus"  yaml:"fileStatus"`
	FileSize    config.Size `json:"fileSize"    yaml:"fileSize"`
	FileMD5     string      `json:"fileMD5"     yaml:"fileMD5"`
	FileName    string      `json:"fileName"    yaml:"fileName"`
	FileDataset string      `json:"fileDataset" yaml:"fileDataset"`
}

// Available reports the "available" status.
func (f DatasetFile) Available() bool {
	return f.FileStatus == "available"
}

type DatasetFiles struct {
	DatasetID string        `json:"dataset" yaml:"dataset"`
	Total     int           `json:"total"   yaml:"total"`
	Files     []DatasetFile `json:"files"   yaml:"files"`
}
