// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/ega-tools/ega-cli-sdk/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCmd()))
}
