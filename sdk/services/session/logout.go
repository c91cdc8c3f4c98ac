// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"
	"net/http"
)

// Logout invalidates the session. It is best effort: callers usually only
// log the returned error.
func (s *SessionService) Logout(ctx context.Context, sess Session) error {
	if !sess.Valid() {
		return nil
	}
	url := s.http.BuildURL("users/logout", map[string]string{"session": sess.Token})
	_, status, err := s.http.Do(ctx, http.MethodGet, url, nil)
	s.log.Info().Msg("[Logout]")
	if err != nil {
		return fmt.Errorf("logout failed (status %d): %w", status, err)
	}
	return nil
}
