package ai

import (
	"context"
)

// Provider defines the contract for interacting with text-generation models.
// This interface allows for swapping different backends (OpenAI-compatible, Gemini)
// without touching the trip or chat services.
type Provider interface {
	// GenerateTrip performs one generation call and decodes the reply into a TripPlan.
	// It is single attempt: no retry, no caching, all-or-nothing.
	GenerateTrip(ctx context.Context, req TripRequest) (*TripPlan, error)

	// Chat sends a bounded window of prior messages plus the new user message and
	// returns the assistant's reply text verbatim.
	Chat(ctx context.Context, history []Message) (string, error)
}
