package courseapi

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// TermResolver probes a configured list of recent terms for course data when
// the requested term has none.
//
// The probe is a strictly sequential linear scan, most-recent-first, one full
// round trip per term. No backoff, no parallelism, no caching across calls.
type TermResolver struct {
	client *Client
	terms  []string
	log    zerolog.Logger
}

// NewTermResolver creates a resolver over the injected term list
// (most recent first).
func NewTermResolver(client *Client, terms []string, log zerolog.Logger) *TermResolver {
	return &TermResolver{
		client: client,
		terms:  terms,
		log:    log.With().Str("component", "term_resolver").Logger(),
	}
}

// Resolve finds section data for subject+number, trying preferredTerm first
// when it is non-empty and not the upstream sentinel, then every configured
// term in order. It returns the first usable result and the term that
// produced it. When every term comes up empty the result is StatusNotFound
// and the term is ""; exhaustion is not an error.
func (r *TermResolver) Resolve(ctx context.Context, subject, number, preferredTerm string) (Result, string) {
	if preferredTerm != "" && preferredTerm != notFoundSentinel {
		if res := r.probe(ctx, subject, number, preferredTerm); res.OK() {
			return res, preferredTerm
		}
	}

	for _, term := range r.terms {
		if term == preferredTerm {
			continue // already probed
		}
		if ctx.Err() != nil {
			return Result{Status: StatusError, Err: ctx.Err()}, ""
		}
		if res := r.probe(ctx, subject, number, term); res.OK() {
			return res, term
		}
	}

	r.log.Debug().
		Str("subject", subject).
		Str("number", number).
		Msg("All fallback terms exhausted")
	return Result{Status: StatusNotFound}, ""
}

func (r *TermResolver) probe(ctx context.Context, subject, number, term string) Result {
	query := fmt.Sprintf("%s %s %s", subject, number, term)
	return r.client.Sections(ctx, query)
}
