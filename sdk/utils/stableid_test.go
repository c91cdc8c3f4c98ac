// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

func TestParseStableID(t *testing.T) {
	kind, err := utils.ParseStableID("EGAD00000000001")
	require.NoError(t, err)
	assert.Equal(t, utils.Datasets, kind)

	kind, err = utils.ParseStableID("EGAF12345678901")
	require.NoError(t, err)
	assert.Equal(t, utils.Files, kind)

	for _, bad := range []string{"", "EGA", "EGAS00000000001", "EGAd00000000001", "XXXX"} {
		_, err := utils.ParseStableID(bad)
		assert.ErrorIs(t, err, config.ErrValidation, bad)
	}
}

func TestRequireDataset(t *testing.T) {
	assert.NoError(t, utils.RequireDataset("EGAD00000000001"))
	assert.ErrorIs(t, utils.RequireDataset("EGAF00000000001"), config.ErrValidation)
}
