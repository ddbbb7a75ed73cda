package prompt

import (
	"context"
	"strings"
)

const (
	staticProviderName = "static"
	geminiProviderName = "gemini"
	openAIProviderName = "openai"
)

const fallbackReasonKey = "fallback_reason"

func buildEnhancePrompt(instruction, userText string) string {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return "Prompt: " + userText
	}
	return instruction + "\nPrompt: " + userText
}

// passthrough returns the user text unchanged, tagged with the reason the
// provider result was not used.
func passthrough(ctx context.Context, req EnhanceRequest, reason string) *EnhanceResponse {
	res, _ := NewStaticEnhancer().Enhance(ctx, req)
	if reason != "" {
		res.Metadata[fallbackReasonKey] = reason
	}
	return res
}

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}
