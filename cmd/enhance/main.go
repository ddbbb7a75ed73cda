package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/do"

	"github.com/gameasset/relay/internal/infra"
	"github.com/gameasset/relay/internal/inject"
	"github.com/gameasset/relay/internal/providers/prompt"
)

// enhance runs a single prompt through the configured text provider, using the
// same wiring as the API server.
func main() {
	var (
		promptFlag   string
		providerFlag string
	)
	flag.StringVar(&promptFlag, "prompt", "", "Prompt to enhance (reads remaining args when empty)")
	flag.StringVar(&providerFlag, "provider", "", "Prompt provider override (gemini or openai)")
	flag.Parse()

	_ = godotenv.Load()

	text := strings.TrimSpace(promptFlag)
	if text == "" {
		text = strings.TrimSpace(strings.Join(flag.Args(), " "))
	}
	if text == "" {
		fmt.Fprintln(os.Stderr, "a prompt is required via -prompt or arguments")
		os.Exit(1)
	}

	if p := strings.TrimSpace(providerFlag); p != "" {
		_ = os.Setenv("PROMPT_PROVIDER", p)
	}
	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := infra.NewLogger("cli").With().Str("cmd", "enhance").Str("provider", cfg.PromptProvider).Logger()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.OutboundTimeout)
	defer cancel()

	injector := inject.Setup(ctx, cfg, logger)
	defer func() { _ = injector.Shutdown() }()

	res, err := do.MustInvoke[prompt.Enhancer](injector).Enhance(ctx, prompt.EnhanceRequest{Prompt: text})
	if err != nil {
		fmt.Fprintf(os.Stderr, "enhance failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(res.Prompt)
	if reason := res.Metadata["fallback_reason"]; reason != "" {
		fmt.Fprintf(os.Stderr, "provider=%s fallback_reason=%s\n", res.Provider, reason)
	} else {
		fmt.Fprintf(os.Stderr, "provider=%s\n", res.Provider)
	}
}
