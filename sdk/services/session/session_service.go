// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

type SessionService struct {
	http config.CoreHTTP
	log  zerolog.Logger
}

func NewSessionService(_ context.Context, conf config.Config, log zerolog.Logger) (*SessionService, error) {
	if conf.Core.BaseURL == "" {
		return nil, errors.New("invalid core config")
	}
	return &SessionService{
		http: config.NewHTTPCore(nil, conf.Core, log),
		log:  log,
	}, nil
}

// NewSessionServiceWithHTTP is used when the caller shares one CoreHTTP.
func NewSessionServiceWithHTTP(core config.CoreHTTP, log zerolog.Logger) *SessionService {
	return &SessionService{http: core, log: log}
}
