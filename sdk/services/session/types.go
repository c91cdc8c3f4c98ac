// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package session

// Session holds the opaque token issued by login; the zero value is
// unauthenticated.
type Session struct {
	Token string
}

func (s Session) Valid() bool {
	return s.Token != ""
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
