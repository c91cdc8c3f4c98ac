// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/cobra"

	"github.com/ega-tools/ega-cli-sdk/sdk/logging"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/metadata"
)

// NewReformatCmd creates the reformat-metadata command.
func NewReformatCmd() *cobra.Command {
	var (
		inputDir   string
		outputFile string
		debug      bool
	)
	cmd := &cobra.Command{
		Use:           "reformat-metadata",
		Short:         "Reformat XML metadata to a .csv file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version + " (" + BuildTime + ")",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(cmd.ErrOrStderr(), debug)
			svc := metadata.NewMetadataService(log)
			_, err := svc.Reformat(cmd.Context(), metadata.ReformatRequest{
				InputDir:   inputDir,
				OutputFile: outputFile,
			})
			return err
		},
	}
	cmd.Flags().StringVarP(&inputDir, "input_dir", "i", "", "The path to the metadata directory")
	cmd.Flags().StringVarP(&outputFile, "outputfile", "u", "", "The path to write the reformatted output to")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Extra debugging messages")
	_ = cmd.MarkFlagRequired("input_dir")
	_ = cmd.MarkFlagRequired("outputfile")
	return cmd
}
