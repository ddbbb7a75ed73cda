package prompt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

type GeminiOptions struct {
	APIKey      string
	Model       string
	BaseURL     string
	Instruction string
	HTTPClient  *http.Client
	OnFallback  FallbackFunc
}

type GeminiEnhancer struct {
	client      *genai.Client
	model       string
	instruction string
	onFallback  FallbackFunc
}

const (
	geminiDefaultTimeout = 30 * time.Second
	defaultGeminiModel   = "gemini-2.5-flash-lite"
)

func NewGeminiEnhancer(ctx context.Context, opts GeminiOptions) (*GeminiEnhancer, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: geminiDefaultTimeout}
	}
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"); base != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: base + "/"}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &GeminiEnhancer{
		client:      client,
		model:       coalesce(opts.Model, defaultGeminiModel),
		instruction: opts.Instruction,
		onFallback:  opts.OnFallback,
	}, nil
}

// Model returns the configured Gemini model identifier.
func (g *GeminiEnhancer) Model() string {
	return g.model
}

func (g *GeminiEnhancer) Enhance(ctx context.Context, req EnhanceRequest) (*EnhanceResponse, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildEnhancePrompt(g.instruction, req.Prompt)), nil)
	if err != nil {
		return g.useFallback(ctx, req, "generate_content", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return g.useFallback(ctx, req, "empty_candidates", errors.New("no candidates"))
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return g.useFallback(ctx, req, "empty_response", errors.New("empty response"))
	}
	return &EnhanceResponse{
		Prompt:   text,
		Metadata: map[string]string{"model": g.model},
		Provider: geminiProviderName,
	}, nil
}

func (g *GeminiEnhancer) useFallback(ctx context.Context, req EnhanceRequest, reason string, err error) (*EnhanceResponse, error) {
	if g.onFallback != nil {
		g.onFallback(reason, err)
	}
	return passthrough(ctx, req, reason), nil
}

var _ Enhancer = (*GeminiEnhancer)(nil)
