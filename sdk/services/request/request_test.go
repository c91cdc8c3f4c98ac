// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package request_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/request"
	"github.com/ega-tools/ega-cli-sdk/sdk/services/session"
	"github.com/ega-tools/ega-cli-sdk/sdk/utils"
)

const ticketsReply = `{"header":{"userMessage":"OK"},"response":{"numTotalResults":2,"result":[
	{"ticket":"t-1","label":"L1","fileID":"EGAF00000000001","fileName":"/EGAR1/a.bam.cip","fileSize":"10"},
	{"ticket":"t-2","label":"L1","fileID":"EGAF00000000002","fileName":"/EGAR2/b.bam.cip","fileSize":20}]}}`

var sess = session.Session{Token: "tok"}

type recorder struct {
	paths []string
	forms []string
}

func newService(t *testing.T, reply string) (*request.RequestService, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.paths = append(rec.paths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			rec.forms = append(rec.forms, r.PostForm.Get("downloadrequest"))
		}
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	svc, err := request.NewRequestService(context.Background(), config.Config{
		Core: config.CoreConfig{BaseURL: srv.URL},
	}, zerolog.Nop())
	require.NoError(t, err)
	return svc, rec
}

func TestMakeRequest(t *testing.T) {
	svc, rec := newService(t, ticketsReply)

	tickets, err := svc.Make(context.Background(), request.MakeRequest{
		Session:  sess,
		IDType:   utils.Datasets,
		StableID: "EGAD00000000001",
		Label:    "L1",
		Key:      "k3y",
	})
	require.NoError(t, err)
	assert.Len(t, tickets.Response.Result, 2)

	require.Equal(t, []string{"POST /requests/new/datasets/EGAD00000000001"}, rec.paths)
	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.forms[0]), &body))
	assert.Equal(t, map[string]string{"rekey": "k3y", "downloadType": "STREAM", "descriptor": "L1"}, body)
}

func TestMakeRequestDefaultKey(t *testing.T) {
	svc, rec := newService(t, `{"header":{"userMessage":"OK"},"response":{"numTotalResults":0,"result":["queued"]}}`)

	_, err := svc.Make(context.Background(), request.MakeRequest{
		Session: sess, IDType: utils.Files, StableID: "EGAF00000000001", Label: "L1",
	})
	require.NoError(t, err)
	assert.Contains(t, rec.forms[0], `"rekey":"ega"`)
}

func TestMakeRequestValidation(t *testing.T) {
	svc, rec := newService(t, ticketsReply)
	ctx := context.Background()

	cases := map[string]request.MakeRequest{
		"empty session": {IDType: utils.Datasets, StableID: "EGAD00000000001", Label: "L"},
		"bad id type":   {Session: sess, IDType: "samples", StableID: "EGAD00000000001", Label: "L"},
		"empty id":      {Session: sess, IDType: utils.Datasets, Label: "L"},
		"empty label":   {Session: sess, IDType: utils.Datasets, StableID: "EGAD00000000001"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Make(ctx, req)
			assert.ErrorIs(t, err, config.ErrValidation)
		})
	}
	assert.Empty(t, rec.paths)
}

func TestMakeRequestRemoteRejection(t *testing.T) {
	svc, _ := newService(t, `{"header":{"userMessage":"Dataset not authorized"},"response":{"numTotalResults":0,"result":[]}}`)

	_, err := svc.Make(context.Background(), request.MakeRequest{
		Session: sess, IDType: utils.Datasets, StableID: "EGAD00000000001", Label: "L1",
	})
	var remote *config.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Contains(t, remote.Error(), "EGAD00000000001")
}

func TestListScopedAndUnscoped(t *testing.T) {
	svc, rec := newService(t, ticketsReply)
	ctx := context.Background()

	all, err := svc.List(ctx, request.ListRequest{Session: sess})
	require.NoError(t, err)
	assert.Len(t, all.Response.Result, 2)
	assert.Equal(t, config.Size(10), all.Response.Result[0].FileSize)

	_, err = svc.List(ctx, request.ListRequest{Session: sess, Label: "L1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"GET /requests", "GET /requests/L1"}, rec.paths)
}

func TestListEmptySession(t *testing.T) {
	svc, rec := newService(t, ticketsReply)
	_, err := svc.List(context.Background(), request.ListRequest{Label: "L1"})
	assert.ErrorIs(t, err, config.ErrValidation)
	assert.Empty(t, rec.paths)
}

func TestDelete(t *testing.T) {
	svc, rec := newService(t, `{"header":{"userMessage":"OK"},"response":{"numTotalResults":0,"result":[]}}`)

	require.NoError(t, svc.Delete(context.Background(), request.DeleteRequest{Session: sess, Label: "L1"}))
	assert.Equal(t, []string{"GET /requests/delete/L1"}, rec.paths)

	assert.ErrorIs(t, svc.Delete(context.Background(), request.DeleteRequest{Session: sess}), config.ErrValidation)
}

func TestDeleteRejected(t *testing.T) {
	svc, _ := newService(t, `{"header":{"userMessage":"No such label"},"response":{"numTotalResults":0,"result":[]}}`)

	err := svc.Delete(context.Background(), request.DeleteRequest{Session: sess, Label: "L1"})
	var remote *config.RemoteError
	assert.ErrorAs(t, err, &remote)
}

func TestCountByLabel(t *testing.T) {
	counts := request.CountByLabel([]request.Ticket{
		{Label: "B"}, {Label: "A"}, {Label: "B"}, {Label: "B"},
	})
	assert.Equal(t, []request.LabelCount{{Label: "B", Files: 3}, {Label: "A", Files: 1}}, counts)
}
