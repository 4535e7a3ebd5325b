// Package viewstate derives render-ready state for the feed and detail screens.
//
// Each model is owned by a single goroutine (the UI loop). Only Fetch may run
// elsewhere; Request, Apply and every accessor must be called by the owner.
// Results reach the owner either as messages (Request/Fetch/Apply) or through
// Load with a Dispatch that enqueues onto the owner's queue.
package viewstate

import (
	"context"

	"github.com/tesso57/postfeed/internal/application/usecase"
)

// Subscriber receives load notifications on the owner goroutine.
type Subscriber interface {
	DataLoaded()
	Failed(message string)
}

// SubscriberFuncs adapts plain functions to Subscriber. Nil fields are skipped.
type SubscriberFuncs struct {
	OnDataLoaded func()
	OnError      func(message string)
}

// DataLoaded implements Subscriber.
func (s SubscriberFuncs) DataLoaded() {
	if s.OnDataLoaded != nil {
		s.OnDataLoaded()
	}
}

// Failed implements Subscriber.
func (s SubscriberFuncs) Failed(message string) {
	if s.OnError != nil {
		s.OnError(message)
	}
}

// Dispatch enqueues fn onto the owner goroutine.
type Dispatch func(fn func())

// Request identifies one issued load. Only the most recent request of a model
// may apply its result.
type Request struct {
	Seq uint64
	ctx context.Context
}

// Context returns the context the load was issued with.
func (r Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

type loadGate struct {
	seq        uint64
	settled    uint64
	closed     bool
	subscriber Subscriber
}

func (g *loadGate) next(ctx context.Context) Request {
	g.seq++
	return Request{Seq: g.seq, ctx: ctx}
}

// accept reports whether a result for req may mutate state.
func (g *loadGate) accept(req Request) bool {
	if g.closed || req.Seq != g.seq {
		return false
	}
	g.settled = req.Seq
	return req.Context().Err() == nil
}

func (g *loadGate) pending() bool {
	return !g.closed && g.settled != g.seq
}

func (g *loadGate) notify(err error) {
	if g.subscriber == nil {
		return
	}
	if err != nil {
		g.subscriber.Failed(usecase.ErrorMessage(err))
		return
	}
	g.subscriber.DataLoaded()
}
