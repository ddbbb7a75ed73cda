package prompt

import (
	"context"
)

type EnhanceRequest struct {
	Prompt string
}

type EnhanceResponse struct {
	Prompt   string            `json:"prompt"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Provider string            `json:"-"`
}

// Enhancer rewrites a user prompt into a richer image-generation prompt.
// Implementations fall back to returning the user text unchanged.
type Enhancer interface {
	Enhance(ctx context.Context, req EnhanceRequest) (*EnhanceResponse, error)
}

// FallbackFunc observes every downgrade to the pass-through.
type FallbackFunc func(reason string, err error)

// StaticEnhancer is the pass-through: it returns the user text as given.
type StaticEnhancer struct{}

func NewStaticEnhancer() *StaticEnhancer {
	return &StaticEnhancer{}
}

func (s *StaticEnhancer) Enhance(ctx context.Context, req EnhanceRequest) (*EnhanceResponse, error) {
	return &EnhanceResponse{
		Prompt:   req.Prompt,
		Metadata: map[string]string{},
		Provider: staticProviderName,
	}, nil
}

var _ Enhancer = (*StaticEnhancer)(nil)
