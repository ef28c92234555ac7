//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxarena/wxarena/arena"
	"github.com/wxarena/wxarena/chatbot"
	"github.com/wxarena/wxarena/evaluation"
)

type stubRunner struct {
	results   []*arena.TurnResult
	err       error
	lastUser  string
	lastMsg   string
	resetUser string
}

func (s *stubRunner) Run(ctx context.Context, userID, message string) ([]*arena.TurnResult, error) {
	s.lastUser = userID
	s.lastMsg = message
	return s.results, s.err
}

func (s *stubRunner) ResetUser(userID string) { s.resetUser = userID }

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Chat(t *testing.T) {
	score := 0.85
	runner := &stubRunner{results: []*arena.TurnResult{
		{
			Framework: "openai",
			Reply: &chatbot.Reply{
				Text:      "Sunny, 20°C. A light jacket should do.",
				ToolCalls: 1,
				Latency:   1500 * time.Millisecond,
			},
			Report: evaluation.Report{
				evaluation.MetricAccuracy: &evaluation.Result{Score: score},
			},
		},
		{Framework: "gemini", Err: errors.New("quota exceeded")},
	}}
	srv := New(runner)

	rec := post(t, srv.Handler(), "/chat", `{"user_id":"alice","message":"weather in Paris?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", runner.lastUser)
	assert.Equal(t, "weather in Paris?", runner.lastMsg)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserID)
	require.Len(t, resp.Results, 2)

	first := resp.Results[0]
	assert.Equal(t, "openai", first.Framework)
	require.NotNil(t, first.Reply)
	assert.Equal(t, 1, first.Reply.ToolCalls)
	assert.InDelta(t, 1.5, first.Reply.LatencySeconds, 1e-9)
	require.Contains(t, first.Report, evaluation.MetricAccuracy)
	assert.InDelta(t, score, first.Report[evaluation.MetricAccuracy].Score, 1e-9)

	second := resp.Results[1]
	assert.Nil(t, second.Reply)
	assert.Equal(t, "quota exceeded", second.Error)
}

func TestServer_ChatValidation(t *testing.T) {
	srv := New(&stubRunner{})

	rec := post(t, srv.Handler(), "/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, srv.Handler(), "/chat", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ChatAllEntrantsFailed(t *testing.T) {
	runner := &stubRunner{
		results: []*arena.TurnResult{
			{Framework: "openai", Err: errors.New("down")},
			{Framework: "gemini", Err: errors.New("down too")},
		},
		err: errors.New("2 errors occurred"),
	}
	srv := New(runner)

	rec := post(t, srv.Handler(), "/chat", `{"user_id":"alice","message":"hi"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "down", resp.Results[0].Error)
}

func TestServer_NewSession(t *testing.T) {
	runner := &stubRunner{}
	srv := New(runner)

	rec := post(t, srv.Handler(), "/sessions/new", `{"user_id":"alice"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", runner.resetUser)

	var resp newSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserID)
	assert.NotEmpty(t, resp.SessionID)

	rec = post(t, srv.Handler(), "/sessions/new", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Healthz(t *testing.T) {
	srv := New(&stubRunner{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
