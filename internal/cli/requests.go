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
	"github.com/ega-tools/ega-cli-sdk/sdk/services/request"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/session"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

func newRequestsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "requests",
		Short: "List outstanding requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, sess session.Session, _ config.Credentials) error {
				svc, err := request.NewRequestService(ctx, a.conf, a.log)
				if err != nil {
					return err
				}
				tickets, err := svc.List(ctx, request.ListRequest{Session: sess})
				if err != nil {
					return err
				}
				counts := request.CountByLabel(tickets.Response.Result)
				return a.print(cmd, counts, utils.Table{
					Header: []string{"Request label", "N (outstanding) files"},
					Rows: lo.Map(counts, func(c request.LabelCount, _ int) []string {
						return []string{c.Label, strconv.Itoa(c.Files)}
					}),
				})
			})
		},
	}
}

func newRmReqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rmreq <label>",
		Short: "Delete (remove) request label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, sess session.Session, _ config.Credentials) error {
				svc, err := request.NewRequestService(ctx, a.conf, a.log)
				if err != nil {
					return err
				}
				return svc.Delete(ctx, request.DeleteRequest{Session: sess, Label: args[0]})
			})
		},
	}
}

func newFilesCmd(a *app) *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List files (optionally, for a specific request label)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, sess session.Session, _ config.Credentials) error {
				svc, err := request.NewRequestService(ctx, a.conf, a.log)
				if err != nil {
					return err
				}
				tickets, err := svc.List(ctx, request.ListRequest{Session: sess, Label: label})
				if err != nil {
					return err
				}
				var params []string
				if label != "" {
					params = []string{"--label", label}
				}
				return a.print(cmd, tickets.Response.Result, ticketTable(tickets.Response.Result), params...)
			})
		},
	}
	cmd.Flags().StringVarP(&label, "label", "l", "", "Optional request label")
	return cmd
}

func ticketTable(tickets []request.Ticket) utils.Table {
	return utils.Table{
		Header: []string{"Stable ID", "Bytes", "Download ticket", "Remote filename"},
		Rows: lo.Map(tickets, func(t request.Ticket, _ int) []string {
			return []string{t.FileID, strconv.FormatInt(int64(t.FileSize), 10), t.Ticket, t.FileName}
		}),
	}
}
