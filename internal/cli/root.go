// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the egacli and reformat-metadata command trees.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/logging"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/transfer"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

// Version information, injected with -ldflags at release time.
var (
	Version   = "v0.1.0-dev"
	BuildTime = "unknown"
)

type options struct {
	debug       bool
	output      string
	credentials string
	settings    string
	env         string
}

// app carries the per-invocation state shared by the subcommands.
type app struct {
	opts     options
	log      zerolog.Logger
	settings *viper.Viper
	conf     config.Config

	// extra options for the transfer service, e.g. an object store
	transferOpts []transfer.Option
}

// NewRootCmd creates the egacli command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{log: zerolog.Nop()})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "egacli",
		Short: "Download from EMBL EBI's EGA (European Genome-phenome Archive)",
		Long: `egacli ` + Version + `
Lists authorized datasets, manages download requests and fetches the
requested files, either to local disk or decrypted into an S3 bucket.

Credentials are read from a JSON file (default ~/.ega.json) holding
"username", "password" and "key".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	f := rootCmd.PersistentFlags()
	f.BoolVarP(&a.opts.debug, "debug", "d", false, "Extra debugging messages")
	f.StringVarP(&a.opts.output, "output", "o", utils.FormatShort, "Output format: short, json or yaml")
	f.StringVar(&a.opts.credentials, "credentials", config.DefaultCredentialsFile, "Credentials file")
	f.StringVar(&a.opts.settings, "settings", "", "Settings file (default ~/"+utils.IniName+")")
	f.StringVar(&a.opts.env, "env", "", "Settings section to use")

	rootCmd.Version = Version + " (" + BuildTime + ")"

	rootCmd.AddCommand(
		newDatasetsCmd(a),
		newDatasetInfoCmd(a),
		newRequestsCmd(a),
		newRmReqCmd(a),
		newFilesCmd(a),
		newFetchCmd(a),
		newSyncCmd(a),
		newSettingsCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.log = logging.New(cmd.ErrOrStderr(), a.opts.debug)
	a.log.Debug().Msg("[debugging]")

	v, err := utils.LoadSettings(a.opts.settings, a.opts.env, a.log)
	if err != nil {
		return err
	}
	a.settings = v

	a.conf, err = utils.BuildConfig(v, a.opts.debug)
	return err
}

// Execute runs cmd with a context cancelled on SIGINT/SIGTERM and returns
// the process exit code.
func Execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		log := logging.New(cmd.ErrOrStderr(), false)
		log.Error().Err(err).Msg(cmd.Name() + " failed")
		return 1
	}
	return 0
}

func (a *app) print(cmd *cobra.Command, v any, table utils.Table, args ...string) error {
	return utils.PrintOutput(cmd.OutOrStdout(), a.opts.output, v, table, args...)
}
