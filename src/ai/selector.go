package ai

import (
	"context"

	"github.com/rs/zerolog"
)

// Selector tries providers one after another until one answers.
type Selector struct {
	providers map[ProviderID]Provider
	forced    ProviderID
	fallback  []ProviderID
	log       zerolog.Logger
}

// NewSelector registers providers by ID. forced is the raw preference; an
// unrecognized value means no preference.
func NewSelector(providers []Provider, forced string, logger zerolog.Logger) *Selector {
	s := &Selector{
		providers: make(map[ProviderID]Provider, len(providers)),
		fallback:  DefaultFallback,
		log:       logger,
	}
	for _, p := range providers {
		s.providers[p.ID()] = p
	}
	if id, ok := ParseProviderID(forced); ok {
		s.forced = id
	}
	return s
}

// Order returns the providers Select would attempt, in attempt order.
// Each provider appears at most once.
func (s *Selector) Order() []ProviderID {
	seen := make(map[ProviderID]bool, len(s.fallback)+1)
	var order []ProviderID
	add := func(id ProviderID) {
		if id == "" || seen[id] {
			return
		}
		if _, ok := s.providers[id]; !ok {
			return
		}
		seen[id] = true
		order = append(order, id)
	}
	add(s.forced)
	for _, id := range s.fallback {
		add(id)
	}
	return order
}

// Select returns the first successful result. Each failed attempt is logged
// as a warning and recorded; when every attempt fails the returned error is
// a KindExhausted *Error carrying those attempts.
func (s *Selector) Select(ctx context.Context) (HelloResult, error) {
	var attempts []Attempt

	for _, id := range s.Order() {
		if err := ctx.Err(); err != nil {
			return HelloResult{}, err
		}

		p := s.providers[id]
		result, err := p.Hello(ctx)
		if err == nil {
			s.log.Debug().Str("provider", string(id)).Str("model", result.Model).Msg("provider answered")
			return result, nil
		}

		if ctx.Err() != nil {
			return HelloResult{}, ctx.Err()
		}

		s.log.Warn().Str("provider", id.DisplayName()).Err(err).Msg("provider failed")
		attempts = append(attempts, Attempt{Provider: id, Err: err})
	}

	return HelloResult{}, &Error{Kind: KindExhausted, Attempts: attempts}
}
