// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

type CatalogService struct {
	http config.CoreHTTP
	log  zerolog.Logger
}

func NewCatalogService(_ context.Context, conf config.Config, log zerolog.Logger) (*CatalogService, error) {
	if conf.Core.BaseURL == "" {
		return nil, errors.New("invalid core config")
	}
	return &CatalogService{
		http: config.NewHTTPCore(nil, conf.Core, log),
		log:  log,
	}, nil
}

func NewCatalogServiceWithHTTP(core config.CoreHTTP, log zerolog.Logger) *CatalogService {
	return &CatalogService{http: core, log: log}
}
