package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
)

// Sentinel errors for the provider failure taxonomy. Callers match with
// errors.Is; the concrete *ProviderError carries status and model detail.
var (
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderRateLimited = errors.New("provider rate limited")
	ErrInvalidModel        = errors.New("invalid model")
	ErrContentTooLong      = errors.New("content too long")

	// ErrNotConfigured is returned when no API key was present at startup.
	ErrNotConfigured = errors.New("llm provider not configured")
)

// ProviderError is a classified provider failure.
type ProviderError struct {
	Sentinel error
	Status   int
	Model    string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s (model=%s, status=%d): %v", e.Sentinel, e.Model, e.Status, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Is lets errors.Is match the classified sentinel.
func (e *ProviderError) Is(target error) bool { return target == e.Sentinel }

// classify maps a raw SDK error onto the failure taxonomy. Network errors
// and 5xx responses classify as unavailable.
func classify(err error, model string) *ProviderError {
	pe := &ProviderError{Sentinel: ErrProviderUnavailable, Model: model, Err: err}

	var apierr *openai.Error
	if !errors.As(err, &apierr) {
		return pe
	}
	pe.Status = apierr.StatusCode

	msg := strings.ToLower(apierr.Error())
	switch {
	case apierr.StatusCode == 429:
		pe.Sentinel = ErrProviderRateLimited
	case apierr.StatusCode == 413,
		apierr.StatusCode == 400 && (strings.Contains(msg, "context length") ||
			strings.Contains(msg, "too long") || strings.Contains(msg, "maximum context")):
		pe.Sentinel = ErrContentTooLong
	case apierr.StatusCode == 404,
		apierr.StatusCode == 400 && strings.Contains(msg, "model"):
		pe.Sentinel = ErrInvalidModel
	}
	return pe
}
