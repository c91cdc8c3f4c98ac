// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

// IDType is the REST path segment for a stable ID kind.
type IDType string

const (
	Datasets IDType = "datasets"
	Files    IDType = "files"

	// position of the kind character, e.g. EGA[D]00000000001
	discriminatorPos = 3
)

func (t IDType) Valid() bool {
	return t == Datasets || t == Files
}

// ParseStableID maps EGAD... to Datasets and EGAF... to Files.
func ParseStableID(id string) (IDType, error) {
	if len(id) <= discriminatorPos {
		return "", config.Validationf("unrecognized identifier %q: only datasets (EGAD...) and files (EGAF...) are supported", id)
	}
	switch id[discriminatorPos] {
	case 'D':
		return Datasets, nil
	case 'F':
		return Files, nil
	default:
		return "", config.Validationf("unrecognized identifier %q: only datasets (EGAD...) and files (EGAF...) are supported", id)
	}
}

// RequireDataset rejects anything that is not a dataset ID.
func RequireDataset(id string) error {
	t, err := ParseStableID(id)
	if err != nil {
		return err
	}
	if t != Datasets {
		return config.Validationf("unrecognized identifier %q: only datasets (EGAD...) are supported", id)
	}
	return nil
}
