// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/catalog"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/session"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

func newDatasetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List authorized datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, sess session.Session, _ config.Credentials) error {
				svc, err := catalog.NewCatalogService(ctx, a.conf, a.log)
				if err != nil {
					return err
				}
				ids, err := svc.ListDatasets(ctx, catalog.ListDatasetsRequest{Session: sess})
				if err != nil {
					return err
				}
				return a.print(cmd, ids, utils.Table{
					Header: []string{"Dataset stable ID"},
					Rows:   lo.Map(ids, func(id string, _ int) []string { return []string{id} }),
				})
			})
		},
	}
}

func newDatasetInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "datasetinfo <identifier>",
		Short: "List files in a specified dataset",
		Long:  "List files in a specified dataset, given its stable id (e.g. EGAD00000000001)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := utils.RequireDataset(id); err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess session.Session, _ config.Credentials) error {
				svc, err := catalog.NewCatalogService(ctx, a.conf, a.log)
				if err != nil {
					return err
				}
				files, err := svc.ListFiles(ctx, catalog.ListFilesRequest{Session: sess, DatasetID: id})
				if err != nil {
					return err
				}
				a.log.Info().Str("dataset", id).Int("files", files.Total).
					Int("available", lo.CountBy(files.Files, catalog.DatasetFile.Available)).Msg("Dataset files")
				return a.print(cmd, files, utils.Table{
					Header: []string{"Stable ID", "fileIndex", "Status", "Bytes", "MD5", "File name"},
					Rows: lo.Map(files.Files, func(f catalog.DatasetFile, _ int) []string {
						return []string{f.FileID, f.FileIndex, f.FileStatus, strconv.FormatInt(int64(f.FileSize), 10), f.FileMD5, f.FileName}
					}),
				}, id)
			})
		},
	}
}
