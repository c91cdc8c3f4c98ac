// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/session"
)

const logoutTimeout = 10 * time.Second

type sessionFunc func(ctx context.Context, sess session.Session, creds config.Credentials) error

// withSession loads the credentials, logs in, runs fn and always logs out.
func (a *app) withSession(cmd *cobra.Command, fn sessionFunc) error {
	creds, err := config.LoadCredentials(a.opts.credentials)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, err := session.NewSessionService(ctx, a.conf, a.log)
	if err != nil {
		return err
	}

	sess, err := svc.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		return err
	}
	defer func() {
		// runs after cancellation too
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutTimeout)
		defer cancel()
		if err := svc.Logout(lctx, sess); err != nil {
			a.log.Warn().Err(err).Msg("logout failed")
		}
	}()

	return fn(ctx, sess, creds)
}
