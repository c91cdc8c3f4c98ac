// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"context"
	"net/http"
	"net/url"

	"github.com/samber/lo"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

// List returns outstanding tickets, all of them or those under req.Label.
func (s *RequestService) List(ctx context.Context, req ListRequest) (Tickets, error) {
	if !req.Session.Valid() {
		return Tickets{}, config.Validationf("list requests called with empty session")
	}

	path := "requests"
	if req.Label != "" {
		path += "/" + url.PathEscape(req.Label)
	}
	u := s.http.BuildURL(path, map[string]string{"session": req.Session.Token})

	env, err := config.Call[[]Ticket](ctx, s.http, "list requests("+req.Label+")", http.MethodGet, u, nil)
	if err != nil {
		return env, err
	}
	s.log.Debug().Str("label", req.Label).Int("tickets", len(env.Response.Result)).Msg("list requests completed")
	return env, nil
}

// CountByLabel counts outstanding files per label, in first-seen order.
func CountByLabel(tickets []Ticket) []LabelCount {
	counts := lo.CountValuesBy(tickets, func(t Ticket) string { return t.Label })
	labels := lo.Uniq(lo.Map(tickets, func(t Ticket, _ int) string { return t.Label }))
	return lo.Map(labels, func(l string, _ int) LabelCount {
		return LabelCount{Label: l, Files: counts[l]}
	})
}
