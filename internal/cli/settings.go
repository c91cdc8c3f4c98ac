// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or save the resolved settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings, secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eff := utils.EffectiveSettings(a.settings)
			return a.print(cmd, eff, utils.Table{
				Header: []string{"Key", "Value"},
				Rows: lo.Map(utils.SortedKeys(eff), func(k string, _ int) []string {
					return []string{k, eff[k]}
				}),
			})
		},
	})

	var withSecrets bool
	save := &cobra.Command{
		Use:   "save",
		Short: "Write the effective settings into the active section of the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := a.settings.GetString(utils.CurrentEnvironment)
			if err := utils.WriteSettings(a.settings, a.opts.settings, env, withSecrets); err != nil {
				return err
			}
			a.log.Info().Str("env", env).Msg("Settings saved")
			return nil
		},
	}
	save.Flags().BoolVar(&withSecrets, "with-secrets", false, "Also store AWS secrets")
	cmd.AddCommand(save)
	return cmd
}
