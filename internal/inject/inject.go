package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/do"

	"github.com/gameasset/relay/internal/http/handlers"
	"github.com/gameasset/relay/internal/http/httpapi"
	"github.com/gameasset/relay/internal/imagegen"
	"github.com/gameasset/relay/internal/infra"
	"github.com/gameasset/relay/internal/providers/prompt"
)

// Setup registers every service the relay needs. Nothing is constructed until
// it is first invoked.
func Setup(ctx context.Context, cfg *infra.Config, logger infra.Logger) *do.Injector {
	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Debug().Msg(fmt.Sprintf(format, args...))
		},
	})

	do.ProvideValue[*infra.Config](injector, cfg)
	do.ProvideValue[infra.Logger](injector, logger)
	do.Provide[*http.Client](injector, func(i *do.Injector) (*http.Client, error) {
		return infra.NewOutboundClient(do.MustInvoke[*infra.Config](i)), nil
	})

	do.Provide[prompt.Enhancer](injector, func(i *do.Injector) (prompt.Enhancer, error) {
		return newEnhancer(ctx, i), nil
	})
	do.Provide[imagegen.Requester](injector, newRequester)
	do.Provide[*handlers.App](injector, func(i *do.Injector) (*handlers.App, error) {
		return handlers.NewApp(
			do.MustInvoke[*infra.Config](i),
			do.MustInvoke[prompt.Enhancer](i),
			do.MustInvoke[imagegen.Requester](i),
			do.MustInvoke[infra.Logger](i),
		), nil
	})
	do.Provide[http.Handler](injector, func(i *do.Injector) (http.Handler, error) {
		return httpapi.NewRouter(do.MustInvoke[*handlers.App](i)), nil
	})

	return injector
}

func newRequester(i *do.Injector) (imagegen.Requester, error) {
	cfg := do.MustInvoke[*infra.Config](i)
	return imagegen.NewClipdropClient(imagegen.ClipdropOptions{
		BaseURL:    cfg.ClipdropBaseURL,
		APIKey:     cfg.ClipdropAPIKey,
		HTTPClient: do.MustInvoke[*http.Client](i),
		Timeout:    cfg.OutboundTimeout,
	}), nil
}

// newEnhancer picks the text model named by PROMPT_PROVIDER. Without a usable
// key, or when the client cannot be built, prompts pass through unchanged.
func newEnhancer(ctx context.Context, i *do.Injector) prompt.Enhancer {
	cfg := do.MustInvoke[*infra.Config](i)
	logger := do.MustInvoke[infra.Logger](i)
	httpClient := do.MustInvoke[*http.Client](i)

	onFallback := func(reason string, err error) {
		logger.Warn().
			Err(err).
			Str("provider", cfg.PromptProvider).
			Str("reason", reason).
			Msg("prompt enhancement fell back to original prompt")
	}

	if !cfg.PromptProviderConfigured() {
		logger.Info().Str("provider", cfg.PromptProvider).Msg("text provider key not configured; prompts pass through")
		return prompt.FailOpen(prompt.NewStaticEnhancer(), onFallback)
	}

	var (
		next prompt.Enhancer
		err  error
	)
	switch cfg.PromptProvider {
	case infra.ProviderOpenAI:
		next, err = prompt.NewOpenAIEnhancer(prompt.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrgID,
			Instruction:  cfg.EnhanceInstruction,
			HTTPClient:   httpClient,
			OnFallback:   onFallback,
			OnWarning: func(reason, detail string) {
				logger.Warn().Str("reason", reason).Str("detail", detail).Msg("openai model setting")
			},
		})
	default:
		next, err = prompt.NewGeminiEnhancer(ctx, prompt.GeminiOptions{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			BaseURL:     cfg.GeminiBaseURL,
			Instruction: cfg.EnhanceInstruction,
			HTTPClient:  httpClient,
			OnFallback:  onFallback,
		})
	}
	if err != nil {
		logger.Error().Err(err).Str("provider", cfg.PromptProvider).Msg("text provider unavailable; prompts pass through")
		return prompt.FailOpen(prompt.NewStaticEnhancer(), onFallback)
	}
	return prompt.FailOpen(next, onFallback)
}
