//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package server exposes the arena over HTTP: one endpoint sends a user turn
// through every registered chatbot and returns the replies with their score
// reports, one resets a user's session.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/wxarena/wxarena/arena"
	"github.com/wxarena/wxarena/evaluation"
	"github.com/wxarena/wxarena/log"
)

// TurnRunner is the arena surface the server needs. Satisfied by
// *arena.Arena; split out so handler tests can stub it.
type TurnRunner interface {
	Run(ctx context.Context, userID, message string) ([]*arena.TurnResult, error)
	ResetUser(userID string)
}

// Server routes HTTP requests to the arena.
type Server struct {
	runner  TurnRunner
	router  *mux.Router
	origins []string
}

// Option configures the Server.
type Option func(*Server)

// WithAllowedOrigins restricts CORS to the given origins. Default is "*".
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// New creates the HTTP server around the given runner.
func New(runner TurnRunner, opt ...Option) *Server {
	s := &Server{
		runner:  runner,
		router:  mux.NewRouter(),
		origins: []string{"*"},
	}
	for _, o := range opt {
		o(s)
	}
	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	s.router.Use(c.Handler)
	s.registerRoutes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/chat", s.handleChat).Methods(http.MethodPost)
	s.router.HandleFunc("/sessions/new", s.handleNewSession).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type replyPayload struct {
	Text           string  `json:"text"`
	ToolCalls      int     `json:"tool_calls"`
	LatencySeconds float64 `json:"latency_seconds"`
}

type turnPayload struct {
	Framework string            `json:"framework"`
	Reply     *replyPayload     `json:"reply,omitempty"`
	Report    evaluation.Report `json:"report,omitempty"`
	Error     string            `json:"error,omitempty"`
}

type chatResponse struct {
	UserID  string         `json:"user_id"`
	Results []*turnPayload `json:"results"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.Message == "" {
		http.Error(w, "user_id and message are required", http.StatusBadRequest)
		return
	}

	results, err := s.runner.Run(r.Context(), req.UserID, req.Message)
	resp := chatResponse{UserID: req.UserID}
	for _, res := range results {
		p := &turnPayload{Framework: res.Framework, Report: res.Report}
		if res.Reply != nil {
			p.Reply = &replyPayload{
				Text:           res.Reply.Text,
				ToolCalls:      res.Reply.ToolCalls,
				LatencySeconds: res.Reply.Latency.Seconds(),
			}
		}
		if res.Err != nil {
			p.Error = res.Err.Error()
		}
		resp.Results = append(resp.Results, p)
	}
	if err != nil {
		log.Errorf("server: chat turn for user %s: %v", req.UserID, err)
		s.writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

type newSessionRequest struct {
	UserID string `json:"user_id"`
}

type newSessionResponse struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}
	s.runner.ResetUser(req.UserID)
	s.writeJSON(w, http.StatusOK, newSessionResponse{
		UserID:    req.UserID,
		SessionID: uuid.NewString(),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("server: encode response: %v", err)
	}
}
