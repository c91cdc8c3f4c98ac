// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/request"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/session"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/transfer"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

func (a *app) transferService(cmd *cobra.Command) (*transfer.TransferService, error) {
	opts := append([]transfer.Option{transfer.WithProgress(cmd.ErrOrStderr())}, a.transferOpts...)
	return transfer.NewTransferService(cmd.Context(), a.conf, a.log, opts...)
}

// requestTickets submits a request for id under a fresh label, lists its
// tickets and snapshots them as <label>.json in dir.
func (a *app) requestTickets(ctx context.Context, sess session.Session, creds config.Credentials, idType utils.IDType, id, dir string) (request.Tickets, error) {
	svc, err := request.NewRequestService(ctx, a.conf, a.log)
	if err != nil {
		return request.Tickets{}, err
	}

	label := utils.NewRequestLabel()
	if _, err := svc.Make(ctx, request.MakeRequest{
		Session:  sess,
		IDType:   idType,
		StableID: id,
		Label:    label,
		Key:      creds.Key,
	}); err != nil {
		return request.Tickets{}, err
	}

	tickets, err := svc.List(ctx, request.ListRequest{Session: sess, Label: label})
	if err != nil {
		return tickets, err
	}

	path, err := transfer.WriteSnapshot(dir, label, tickets)
	if err != nil {
		return tickets, err
	}
	a.log.Info().Str("path", path).Msg("Writing copy of request ticket")
	return tickets, nil
}

func newFetchCmd(a *app) *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "fetch <identifier>",
		Short: "Fetch a dataset or file",
		Long:  "Fetch a dataset (e.g. EGAD00000000001) or file (e.g. EGAF12345678901) into the output directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			idType, err := utils.ParseStableID(id)
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess session.Session, creds config.Credentials) error {
				svc, err := a.transferService(cmd)
				if err != nil {
					return err
				}
				tickets, err := a.requestTickets(ctx, sess, creds, idType, id, outputDir)
				if err != nil {
					return err
				}

				infos, err := svc.DownloadAll(ctx, tickets.Response.Result, outputDir)
				if err != nil {
					return err
				}
				if perr := a.print(cmd, infos, utils.Table{
					Header: []string{"Ticket", "File name", "Size", "Path", "Error"},
					Rows: lo.Map(infos, func(d transfer.DownloadInfo, _ int) []string {
						return []string{d.Ticket, d.Filename, utils.HumanBytes(d.Size), d.Path, d.Err}
					}),
				}, id); perr != nil {
					return perr
				}

				if failed := lo.CountBy(infos, func(d transfer.DownloadInfo) bool { return d.Err != "" }); failed > 0 {
					return fmt.Errorf("%d of %d downloads failed", failed, len(infos))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for downloaded files and the request snapshot")
	return cmd
}

func newSyncCmd(a *app) *cobra.Command {
	var workDir string
	cmd := &cobra.Command{
		Use:   "sync <identifier> <destination>",
		Short: "Sync a dataset or file to a remote location",
		Long: `Sync a dataset or file to an s3://bucket/prefix destination.

Files already present at the destination are skipped. Others are downloaded
into the work directory, decrypted with the EGA client, uploaded with
server-side encryption and removed locally.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			dest, err := config.ParseS3URI(args[1])
			if err != nil {
				return err
			}
			idType, err := utils.ParseStableID(id)
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess session.Session, creds config.Credentials) error {
				svc, err := a.transferService(cmd)
				if err != nil {
					return err
				}
				// no request is made unless the store can be reached
				if _, err := svc.ObjectStore(ctx); err != nil {
					return err
				}
				tickets, err := a.requestTickets(ctx, sess, creds, idType, id, workDir)
				if err != nil {
					return err
				}

				infos, err := svc.SyncAll(ctx, transfer.SyncRequest{
					Tickets:     tickets.Response.Result,
					Destination: dest,
					Credentials: creds,
					WorkDir:     workDir,
				})
				if perr := a.print(cmd, infos, utils.Table{
					Header: []string{"Ticket", "Key", "Size", "Skipped"},
					Rows: lo.Map(infos, func(s transfer.SyncInfo, _ int) []string {
						return []string{s.Ticket, s.Key, utils.HumanBytes(s.Size), strconv.FormatBool(s.Skipped)}
					}),
				}, id, dest.String()); perr != nil && err == nil {
					err = perr
				}
				return err
			})
		},
	}
	cmd.Flags().StringVar(&workDir, "work-dir", ".", "Directory holding files while in flight, and the request snapshot")
	return cmd
}
