package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type failOpen struct {
	next       Enhancer
	onFallback FallbackFunc
}

// FailOpen guards an Enhancer so that enhancement can never fail a request.
// Errors, panics and empty results all become a pass-through of the input.
func FailOpen(next Enhancer, onFallback FallbackFunc) Enhancer {
	return &failOpen{next: next, onFallback: onFallback}
}

func (f *failOpen) Enhance(ctx context.Context, req EnhanceRequest) (res *EnhanceResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			f.emit("panic", fmt.Errorf("enhancer panic: %v", r))
			res, err = passthrough(ctx, req, "panic"), nil
		}
	}()
	if f.next == nil {
		return passthrough(ctx, req, "no_enhancer"), nil
	}
	res, err = f.next.Enhance(ctx, req)
	if err != nil {
		f.emit("enhancer_error", err)
		return passthrough(ctx, req, "enhancer_error"), nil
	}
	if res == nil || strings.TrimSpace(res.Prompt) == "" {
		f.emit("empty_result", errors.New("enhancer returned no prompt"))
		return passthrough(ctx, req, "empty_result"), nil
	}
	return res, nil
}

func (f *failOpen) emit(reason string, err error) {
	if f.onFallback != nil {
		f.onFallback(reason, err)
	}
}
