// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

func TestBuildURL(t *testing.T) {
	core := config.NewHTTPCore(nil, config.CoreConfig{
		BaseURL:     "https://ega.example.org/access/v2/",
		DownloadURL: "http://ega.example.org/ds/v2",
	}, zerolog.Nop())

	assert.Equal(t, "https://ega.example.org/access/v2/datasets?session=a+b",
		core.BuildURL("/datasets", map[string]string{"session": "a b"}))
	assert.Equal(t, "https://ega.example.org/access/v2/requests",
		core.BuildURL("requests", map[string]string{"session": ""}))
	assert.Equal(t, "http://ega.example.org/ds/v2/downloads/t-1", core.DownloadURL("t-1"))
}

func TestCallDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"header":{"userMessage":"OK"},"response":{"numTotalResults":2,"result":["EGAD1","EGAD2"]}}`))
	}))
	defer srv.Close()

	core := config.NewHTTPCore(srv.Client(), config.CoreConfig{BaseURL: srv.URL}, zerolog.Nop())
	env, err := config.Call[[]string](context.Background(), core, "list", http.MethodGet, core.BuildURL("datasets", nil), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, env.Response.NumTotalResults)
	assert.Equal(t, []string{"EGAD1", "EGAD2"}, env.Response.Result)
}

func TestCallRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"header":{"userMessage":"Session expired","errorCode":"991"},"response":{"numTotalResults":0,"result":[]}}`))
	}))
	defer srv.Close()

	core := config.NewHTTPCore(nil, config.CoreConfig{BaseURL: srv.URL}, zerolog.Nop())
	_, err := config.Call[[]string](context.Background(), core, "list datasets", http.MethodGet, core.BuildURL("datasets", nil), nil)

	var remote *config.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "list datasets", remote.Operation)
	assert.Contains(t, remote.Message, "Session expired")
}

func TestDoNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"denied"}`))
	}))
	defer srv.Close()

	core := config.NewHTTPCore(nil, config.CoreConfig{BaseURL: srv.URL}, zerolog.Nop())
	_, status, err := core.Do(context.Background(), http.MethodGet, srv.URL, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, err.Error(), "denied")
}

func TestDoSendsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, `{"a":"b"}`, r.PostForm.Get("payload"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	core := config.NewHTTPCore(nil, config.CoreConfig{BaseURL: srv.URL}, zerolog.Nop())
	_, _, err := core.Do(context.Background(), http.MethodPost, srv.URL, url.Values{"payload": {`{"a":"b"}`}})
	require.NoError(t, err)
}

func TestSizeAcceptsStringsAndNumbers(t *testing.T) {
	var v struct {
		A config.Size `json:"a"`
		B config.Size `json:"b"`
		C config.Size `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"25268274155","b":42,"c":null}`), &v))
	assert.Equal(t, config.Size(25268274155), v.A)
	assert.Equal(t, config.Size(42), v.B)
	assert.Equal(t, config.Size(0), v.C)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":25268274155,"b":42,"c":0}`, string(out))
}
