// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

// Make submits a STREAM download request for a dataset or file under label.
func (s *RequestService) Make(ctx context.Context, req MakeRequest) (Tickets, error) {
	if !req.Session.Valid() {
		return Tickets{}, config.Validationf("make request called with empty session")
	}
	if !req.IDType.Valid() {
		return Tickets{}, config.Validationf("make request called with invalid id type %q", req.IDType)
	}
	if req.StableID == "" {
		return Tickets{}, config.Validationf("make request called with empty stable id")
	}
	if req.Label == "" {
		return Tickets{}, config.Validationf("make request called with empty label")
	}
	key := req.Key
	if key == "" {
		key = DefaultRekey
	}

	payload, err := json.Marshal(downloadRequest{
		Rekey:        key,
		DownloadType: "STREAM",
		Descriptor:   req.Label,
	})
	if err != nil {
		return Tickets{}, fmt.Errorf("failed to marshal download request: %w", err)
	}
	form := url.Values{"downloadrequest": {string(payload)}}

	path := fmt.Sprintf("requests/new/%s/%s", req.IDType, url.PathEscape(req.StableID))
	u := s.http.BuildURL(path, map[string]string{"session": req.Session.Token})

	env, err := config.Call[json.RawMessage](ctx, s.http, "request for "+req.StableID, http.MethodPost, u, form)
	out := Tickets{Header: env.Header}
	out.Response.NumTotalResults = env.Response.NumTotalResults
	if err != nil {
		return out, err
	}
	// the creation reply is not always a ticket list; List is authoritative
	if len(env.Response.Result) > 0 {
		if jerr := json.Unmarshal(env.Response.Result, &out.Response.Result); jerr != nil {
			s.log.Debug().Err(jerr).Msg("request reply carries no tickets")
		}
	}
	s.log.Info().Str("id", req.StableID).Str("label", req.Label).Msg("Request submitted")
	return out, nil
}
