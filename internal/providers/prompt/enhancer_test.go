package prompt

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

type fakeEnhancer struct {
	enhance func(context.Context, EnhanceRequest) (*EnhanceResponse, error)
}

func (f fakeEnhancer) Enhance(ctx context.Context, req EnhanceRequest) (*EnhanceResponse, error) {
	return f.enhance(ctx, req)
}

func TestStaticEnhancerReturnsInputUnchanged(t *testing.T) {
	inputs := []string{"sword", "  padded  ", "multi\nline", "ünïcödé 🐉", "a"}
	for _, in := range inputs {
		res, err := NewStaticEnhancer().Enhance(context.Background(), EnhanceRequest{Prompt: in})
		require.NoError(t, err)
		assert.Equal(t, in, res.Prompt)
		assert.Equal(t, staticProviderName, res.Provider)
		assert.NotNil(t, res.Metadata)
	}
}

func TestBuildEnhancePrompt(t *testing.T) {
	assert.Equal(t, "Rewrite it.\nPrompt: a slime monster", buildEnhancePrompt("Rewrite it.", "a slime monster"))
	assert.Equal(t, "Prompt: a slime monster", buildEnhancePrompt("  ", "a slime monster"))
}

func TestPassthroughTagsReason(t *testing.T) {
	res := passthrough(context.Background(), EnhanceRequest{Prompt: "tree"}, "empty_response")
	assert.Equal(t, "tree", res.Prompt)
	assert.Equal(t, "empty_response", res.Metadata[fallbackReasonKey])

	res = passthrough(context.Background(), EnhanceRequest{Prompt: "tree"}, "")
	assert.NotContains(t, res.Metadata, fallbackReasonKey)
}
