// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

// Delete removes every ticket under req.Label.
func (s *RequestService) Delete(ctx context.Context, req DeleteRequest) error {
	if !req.Session.Valid() {
		return config.Validationf("delete request called with empty session")
	}
	if req.Label == "" {
		return config.Validationf("delete request called with empty label")
	}

	u := s.http.BuildURL("requests/delete/"+url.PathEscape(req.Label), map[string]string{"session": req.Session.Token})
	if _, err := config.Call[any](ctx, s.http, "deletion request for "+req.Label, http.MethodGet, u, nil); err != nil {
		return err
	}
	s.log.Info().Str("label", req.Label).Msg("Deletion request successful")
	return nil
}
