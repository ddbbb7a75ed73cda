package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailOpenPassesThroughProviderResult(t *testing.T) {
	inner := fakeEnhancer{enhance: func(ctx context.Context, req EnhanceRequest) (*EnhanceResponse, error) {
		return &EnhanceResponse{Prompt: "enhanced " + req.Prompt, Provider: geminiProviderName}, nil
	}}
	res, err := FailOpen(inner, nil).Enhance(context.Background(), EnhanceRequest{Prompt: "bow"})
	require.NoError(t, err)
	assert.Equal(t, "enhanced bow", res.Prompt)
	assert.Equal(t, geminiProviderName, res.Provider)
}

func TestFailOpenDowngrades(t *testing.T) {
	cases := []struct {
		name   string
		inner  Enhancer
		reason string
	}{
		{
			name: "error",
			inner: fakeEnhancer{enhance: func(context.Context, EnhanceRequest) (*EnhanceResponse, error) {
				return nil, errors.New("quota exhausted")
			}},
			reason: "enhancer_error",
		},
		{
			name: "nil result",
			inner: fakeEnhancer{enhance: func(context.Context, EnhanceRequest) (*EnhanceResponse, error) {
				return nil, nil
			}},
			reason: "empty_result",
		},
		{
			name: "blank prompt",
			inner: fakeEnhancer{enhance: func(context.Context, EnhanceRequest) (*EnhanceResponse, error) {
				return &EnhanceResponse{Prompt: " \n"}, nil
			}},
			reason: "empty_result",
		},
		{
			name: "panic",
			inner: fakeEnhancer{enhance: func(context.Context, EnhanceRequest) (*EnhanceResponse, error) {
				panic("nil map write")
			}},
			reason: "panic",
		},
		{
			name:   "missing enhancer",
			inner:  nil,
			reason: "no_enhancer",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var observed []string
			guard := FailOpen(tc.inner, func(reason string, err error) {
				observed = append(observed, reason)
			})
			res, err := guard.Enhance(context.Background(), EnhanceRequest{Prompt: "magic staff"})
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, "magic staff", res.Prompt)
			assert.Equal(t, staticProviderName, res.Provider)
			assert.Equal(t, tc.reason, res.Metadata[fallbackReasonKey])
			if tc.inner != nil {
				assert.Equal(t, []string{tc.reason}, observed)
			}
		})
	}
}
