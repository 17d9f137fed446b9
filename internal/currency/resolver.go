// Package currency decides whether a checkout session is priced in INR or USD.
package currency

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/whiteboardproductions/site/go/internal/models"
)

type Resolver struct {
	lookup Lookuper
}

// NewResolver builds a resolver. A nil lookup sends every request straight to
// the local heuristic.
func NewResolver(lookup Lookuper) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve always yields a currency. Lookup failures are not retried and are
// never reported to the caller.
func (r *Resolver) Resolve(ctx context.Context, clientIP string, hints Hints) models.Currency {
	if r.lookup == nil {
		return Guess(hints)
	}

	cur, err := r.lookup.Lookup(ctx, clientIP)
	if err != nil {
		guess := Guess(hints)
		log.Debug().
			Err(err).
			Str("language", hints.Language).
			Str("timeZone", hints.TimeZone).
			Str("currency", string(guess)).
			Msg("Geo lookup failed, using local heuristic")
		return guess
	}
	return cur
}

// Pending is an in-flight resolution. Once discarded its result is never
// handed out, even if the lookup settles afterwards.
type Pending struct {
	done   chan struct{}
	cancel context.CancelFunc
	stale  atomic.Bool
	result models.Currency
}

func (r *Resolver) Start(ctx context.Context, clientIP string, hints Hints) *Pending {
	ctx, cancel := context.WithCancel(ctx)
	p := &Pending{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(p.done)
		defer cancel()
		p.result = r.Resolve(ctx, clientIP, hints)
	}()

	return p
}

func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Result reports the settled currency, or false while the lookup is still in
// flight or after Discard.
func (p *Pending) Result() (models.Currency, bool) {
	select {
	case <-p.done:
	default:
		return "", false
	}
	if p.stale.Load() {
		return "", false
	}
	return p.result, true
}

// Wait blocks until the lookup settles or ctx ends.
func (p *Pending) Wait(ctx context.Context) (models.Currency, bool) {
	select {
	case <-p.done:
		return p.Result()
	case <-ctx.Done():
		return "", false
	}
}

func (p *Pending) Discard() {
	p.stale.Store(true)
	p.cancel()
}
