package imagegen

import (
	"context"

	"github.com/gameasset/relay/internal/domain"
)

// Requester obtains generated image bytes for a text prompt.
type Requester interface {
	Generate(ctx context.Context, prompt string) (*domain.ImageResult, error)
}
