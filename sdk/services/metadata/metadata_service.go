// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"github.com/rs/zerolog"
)

// MetadataService flattens EGA sample XML metadata into CSV. It never
// touches the network.
type MetadataService struct {
	log zerolog.Logger
}

func NewMetadataService(log zerolog.Logger) *MetadataService {
	return &MetadataService{log: log}
}
