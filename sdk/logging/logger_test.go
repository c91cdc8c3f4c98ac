// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ega-tools/ega-cli-sdk/sdk/logging"
)

func TestDebugLevelToggle(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = logging.New(&buf, true)
	log.Debug().Msg("verbose")
	assert.Contains(t, buf.String(), "verbose")
}
