// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

type RequestService struct {
	http config.CoreHTTP
	log  zerolog.Logger
}

func NewRequestService(_ context.Context, conf config.Config, log zerolog.Logger) (*RequestService, error) {
	if conf.Core.BaseURL == "" {
		return nil, errors.New("invalid core config")
	}
	return &RequestService{
		http: config.NewHTTPCore(nil, conf.Core, log),
		log:  log,
	}, nil
}

func NewRequestServiceWithHTTP(core config.CoreHTTP, log zerolog.Logger) *RequestService {
	return &RequestService{http: core, log: log}
}
