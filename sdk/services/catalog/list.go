// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

// ListDatasets returns the stable IDs of the datasets the user may access.
func (s *CatalogService) ListDatasets(ctx context.Context, req ListDatasetsRequest) ([]string, error) {
	if !req.Session.Valid() {
		return nil, config.Validationf("list datasets called with empty session")
	}
	u := s.http.BuildURL("datasets", map[string]string{"session": req.Session.Token})
	env, err := config.Call[[]string](ctx, s.http, "list authorized datasets", http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return env.Response.Result, nil
}

// ListFiles returns the files of one dataset.
func (s *CatalogService) ListFiles(ctx context.Context, req ListFilesRequest) (DatasetFiles, error) {
	if !req.Session.Valid() {
		return DatasetFiles{}, config.Validationf("list files called with empty session")
	}
	if err := utils.RequireDataset(req.DatasetID); err != nil {
		return DatasetFiles{}, err
	}

	u := s.http.BuildURL("datasets/"+url.PathEscape(req.DatasetID)+"/files", map[string]string{"session": req.Session.Token})
	env, err := config.Call[[]DatasetFile](ctx, s.http, "list files in dataset "+req.DatasetID, http.MethodGet, u, nil)
	if err != nil {
		return DatasetFiles{}, err
	}
	return DatasetFiles{
		DatasetID: req.DatasetID,
		Total:     env.Response.NumTotalResults,
		Files:     env.Response.Result,
	}, nil
}
