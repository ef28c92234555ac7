//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package arena runs the same user turn through every registered chatbot,
// scores each reply with the evaluation engine, and returns the replies and
// score reports side by side.
package arena

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/panjf2000/ants/v2"

	"github.com/wxarena/wxarena/chatbot"
	"github.com/wxarena/wxarena/evaluation"
	"github.com/wxarena/wxarena/internal/botcache"
	"github.com/wxarena/wxarena/log"
	"github.com/wxarena/wxarena/preference"
	"github.com/wxarena/wxarena/telemetry"
)

const (
	defaultPoolSize     = 16
	defaultHistoryLimit = 10
)

// Entrant is one framework competing in the arena.
type Entrant struct {
	// Framework is the identifier passed to the evaluator, e.g. "openai".
	Framework string
	// Build constructs the bot for one user. The arena caches the result
	// per user and rebuilds it after that user's preferences change.
	Build func(ctx context.Context, userID string) (chatbot.Bot, error)
	// Prefs is the preference store backing the bot. Optional; without it
	// the evaluator sees no preference payload and bots are never rebuilt.
	Prefs preference.Store
}

// TurnResult is the outcome of one entrant for one turn.
type TurnResult struct {
	Framework string            `json:"framework"`
	Reply     *chatbot.Reply    `json:"reply,omitempty"`
	Report    evaluation.Report `json:"report,omitempty"`
	Err       error             `json:"-"`
}

// Arena fans one turn out to all entrants.
type Arena struct {
	entrants     []Entrant
	eval         *evaluation.Evaluator
	pool         *ants.Pool
	historyLimit int

	mu      sync.Mutex
	history map[string][]evaluation.Turn
	caches  map[string]*botcache.Cache[chatbot.Bot]
	seen    map[string]time.Time
}

// Option configures the Arena.
type Option func(*Arena)

// WithEvaluator overrides the evaluation engine.
func WithEvaluator(e *evaluation.Evaluator) Option {
	return func(a *Arena) { a.eval = e }
}

// WithHistoryLimit caps the per-user history window handed to the evaluator.
func WithHistoryLimit(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.historyLimit = n
		}
	}
}

// New creates an arena over the given entrants.
func New(entrants []Entrant, opt ...Option) (*Arena, error) {
	a := &Arena{
		entrants:     entrants,
		eval:         evaluation.New(),
		historyLimit: defaultHistoryLimit,
		history:      make(map[string][]evaluation.Turn),
		caches:       make(map[string]*botcache.Cache[chatbot.Bot]),
		seen:         make(map[string]time.Time),
	}
	for _, o := range opt {
		o(a)
	}
	for _, e := range a.entrants {
		a.caches[e.Framework] = botcache.New[chatbot.Bot]()
	}
	pool, err := ants.NewPool(defaultPoolSize)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	a.pool = pool
	return a, nil
}

// Close releases the worker pool.
func (a *Arena) Close() {
	a.pool.Release()
}

// Run sends the message through every entrant concurrently and returns one
// result per entrant, in registration order. A single entrant failing is
// reported only in its TurnResult; the returned error is non-nil only when
// every entrant failed.
func (a *Arena) Run(ctx context.Context, userID, message string) ([]*TurnResult, error) {
	results := make([]*TurnResult, len(a.entrants))
	var wg sync.WaitGroup
	for i, e := range a.entrants {
		i, e := i, e
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = a.runOne(ctx, e, userID, message)
		}
		if err := a.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	var merr *multierror.Error
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", r.Framework, r.Err))
		}
	}
	if failed > 0 && failed == len(results) {
		return results, merr.ErrorOrNil()
	}
	return results, nil
}

// ResetUser drops the user's history windows and cached bots, starting the
// next turn from a clean session.
func (a *Arena) ResetUser(userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range a.entrants {
		key := e.Framework + "/" + userID
		delete(a.history, key)
		delete(a.seen, key)
	}
	for _, c := range a.caches {
		c.Invalidate(userID)
	}
}

func (a *Arena) runOne(ctx context.Context, e Entrant, userID, message string) *TurnResult {
	res := &TurnResult{Framework: e.Framework}

	ctx, span := telemetry.Tracer.Start(ctx, telemetry.OperationChat)
	defer span.End()

	bot, err := a.botFor(ctx, e, userID)
	if err != nil {
		res.Err = fmt.Errorf("build bot: %w", err)
		return res
	}
	reply, err := bot.Chat(ctx, userID, message)
	if err != nil {
		res.Err = err
		return res
	}
	res.Reply = reply
	res.Report = a.evaluate(ctx, e, userID, message, reply)
	a.remember(e.Framework, userID, message, reply.Text)
	return res
}

// botFor returns the cached bot for the user, rebuilding it when the
// preference store reports a newer last-updated time than the one observed
// on the previous turn.
func (a *Arena) botFor(ctx context.Context, e Entrant, userID string) (chatbot.Bot, error) {
	cache := a.caches[e.Framework]
	if e.Prefs != nil {
		if lu, err := e.Prefs.LastUpdated(ctx, userID); err == nil {
			key := e.Framework + "/" + userID
			a.mu.Lock()
			if last, ok := a.seen[key]; ok && lu.After(last) {
				cache.Invalidate(userID)
			}
			a.seen[key] = lu
			a.mu.Unlock()
		}
	}
	return cache.GetOrCreate(userID, func() (chatbot.Bot, error) {
		return e.Build(ctx, userID)
	})
}

func (a *Arena) evaluate(ctx context.Context, e Entrant, userID, message string, reply *chatbot.Reply) evaluation.Report {
	ctx, span := telemetry.Tracer.Start(ctx, telemetry.OperationEvaluate)
	defer span.End()

	secs := reply.Latency.Seconds()
	calls := reply.ToolCalls
	in := &evaluation.Input{
		Query:          message,
		Response:       reply.Text,
		Framework:      e.Framework,
		Weather:        reply.Weather,
		History:        a.historyFor(e.Framework, userID),
		LatencySeconds: &secs,
		ToolCalls:      &calls,
	}
	if e.Prefs != nil {
		payload, err := e.Prefs.Load(ctx, userID)
		if err != nil {
			log.Warnf("arena: load preferences for user %s: %v", userID, err)
		} else {
			in.Preferences = payload
		}
	}
	return a.eval.Evaluate(ctx, in)
}

func (a *Arena) historyFor(framework, userID string) []evaluation.Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	turns := a.history[framework+"/"+userID]
	out := make([]evaluation.Turn, len(turns))
	copy(out, turns)
	return out
}

func (a *Arena) remember(framework, userID, message, response string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := framework + "/" + userID
	turns := append(a.history[key], evaluation.Turn{User: message, Assistant: response})
	if len(turns) > a.historyLimit {
		turns = turns[len(turns)-a.historyLimit:]
	}
	a.history[key] = turns
}
