// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// StatusOK is the header.userMessage value of a successful reply.
const StatusOK = "OK"

type Header struct {
	Code          string `json:"code,omitempty"`
	Service       string `json:"service,omitempty"`
	TechnicalInfo string `json:"technicalMessage,omitempty"`
	UserMessage   string `json:"userMessage"`
	ErrorCode     string `json:"errorCode,omitempty"`
	ErrorStack    string `json:"errorStack,omitempty"`
}

type Response[T any] struct {
	NumTotalResults int `json:"numTotalResults"`
	Result          T   `json:"result"`
}

// Envelope is the reply shape shared by every access API endpoint.
type Envelope[T any] struct {
	Header   Header      `json:"header"`
	Response Response[T] `json:"response"`
}

// OK reports whether the archive accepted the call.
func (e Envelope[T]) OK() bool {
	return e.Header.UserMessage == StatusOK
}

// Call performs the request and decodes the envelope. A non-OK envelope is
// returned together with a *RemoteError naming operation.
func Call[T any](ctx context.Context, core CoreHTTP, operation, method, url string, form url.Values) (Envelope[T], error) {
	var env Envelope[T]
	body, status, err := core.Do(ctx, method, url, form)
	if err != nil {
		return env, fmt.Errorf("%s (status %d): %w", operation, status, err)
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return env, fmt.Errorf("%s: invalid json: %w", operation, err)
	}
	if !env.OK() {
		msg := env.Header.UserMessage
		if env.Header.ErrorCode != "" {
			msg = fmt.Sprintf("%s (code %s)", msg, env.Header.ErrorCode)
		}
		return env, &RemoteError{Operation: operation, Message: msg}
	}
	return env, nil
}

// Size decodes byte counts sent either as JSON numbers or as quoted strings.
type Size int64

func (s *Size) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*s = 0
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", b, err)
	}
	*s = Size(n)
	return nil
}

func (s Size) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(s), 10)), nil
}
