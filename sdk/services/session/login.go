// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

// ErrLoginRejected is returned when the archive does not issue a token.
var ErrLoginRejected = errors.New("login rejected")

const loginSuccess = "success"

// Login posts the credentials and returns the session token found in
// response.result[1] when result[0] is "success".
func (s *SessionService) Login(ctx context.Context, username, password string) (Session, error) {
	if username == "" || password == "" {
		return Session{}, config.Validationf("username and password are required")
	}

	payload, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return Session{}, fmt.Errorf("failed to marshal login request: %w", err)
	}
	form := url.Values{"loginrequest": {string(payload)}}

	body, status, err := s.http.Do(ctx, http.MethodPost, s.http.BuildURL("users/login", nil), form)
	if err != nil {
		return Session{}, fmt.Errorf("login failed (status %d): %w", status, err)
	}

	var env config.Envelope[[]any]
	if err := json.Unmarshal(body, &env); err != nil {
		return Session{}, fmt.Errorf("login: invalid json: %w", err)
	}

	result := env.Response.Result
	var kind, token string
	if len(result) >= 2 {
		kind, _ = result[0].(string)
		token, _ = result[1].(string)
	}
	if kind != loginSuccess || token == "" {
		s.log.Error().Str("user", username).Msg("Login failure")
		return Session{}, fmt.Errorf("%w for user %s", ErrLoginRejected, username)
	}

	s.log.Info().Str("user", username).Msg("Login success")
	return Session{Token: token}, nil
}
