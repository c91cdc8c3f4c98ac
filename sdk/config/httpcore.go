// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

type CoreHTTP interface {
	BuildURL(path string, params map[string]string) string
	DownloadURL(ticket string) string
	Do(ctx context.Context, method, url string, form url.Values) ([]byte, int, error)
	Stream(ctx context.Context, url string) (io.ReadCloser, int64, error)
}

type httpCore struct {
	httpClient *http.Client
	coreConfig CoreConfig
	log        zerolog.Logger
}

// retryLogger routes retryablehttp messages into zerolog
type retryLogger struct {
	log zerolog.Logger
}

func (l retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Trace().Fields(keysAndValues).Msg(msg)
}

func (l retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}

// NewHTTPCore wraps httpClient, or builds a retrying client honoring
// coreConfig.RetryMax when httpClient is nil.
func NewHTTPCore(httpClient *http.Client, coreConfig CoreConfig, log zerolog.Logger) CoreHTTP {
	if httpClient == nil {
		rc := retryablehttp.NewClient()
		rc.RetryMax = coreConfig.RetryMax
		rc.Logger = retryLogger{log: log}
		// status handling stays in Do
		rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
		httpClient = rc.StandardClient()
	}
	return &httpCore{httpClient: httpClient, coreConfig: coreConfig, log: log}
}

func (httpCore *httpCore) BuildURL(path string, params map[string]string) string {
	base := strings.TrimSuffix(httpCore.coreConfig.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
	q := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	if len(q) > 0 {
		base += "?" + q.Encode()
	}
	return base
}

func (httpCore *httpCore) DownloadURL(ticket string) string {
	return strings.TrimSuffix(httpCore.coreConfig.DownloadURL, "/") + "/downloads/" + url.PathEscape(ticket)
}

func (httpCore *httpCore) Do(ctx context.Context, method, url string, form url.Values) ([]byte, int, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := httpCore.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if httpCore.coreConfig.Debug {
		httpCore.log.Debug().Str("method", method).Str("url", redactSession(url)).Int("status", resp.StatusCode).
			Msg("reply:\n" + prettyJSON(b))
	}
	if resp.StatusCode != http.StatusOK {
		var m map[string]any
		if json.Unmarshal(b, &m) == nil {
			if msg, ok := m["message"].(string); ok && msg != "" {
				return b, resp.StatusCode, fmt.Errorf("archive responded with: %s - %s", resp.Status, msg)
			}
		}
		return b, resp.StatusCode, fmt.Errorf("archive responded with: %s", resp.Status)
	}
	return b, resp.StatusCode, rerr
}

// Stream opens an octet-stream download. The caller closes the body.
func (httpCore *httpCore) Stream(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/octet-stream")

	httpCore.log.Debug().Str("url", url).Msg("requesting download")
	resp, err := httpCore.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("download responded with: %s", resp.Status)
	}
	return resp.Body, resp.ContentLength, nil
}

func redactSession(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("session") {
		q.Set("session", "xxx")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func prettyJSON(b []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "    "); err != nil {
		return string(b)
	}
	return out.String()
}
