package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// MaxAttempts bounds the calls made for a single Generate.
	MaxAttempts = 5
	// BaseDelay is the wait after the first failed attempt; it doubles per attempt.
	BaseDelay = time.Second
)

// ErrUnknown is reported when the retry loop ends without a single attempt.
var ErrUnknown = errors.New("Unknown AI Error")

// Result is the outcome of one Generate call.
type Result struct {
	Text     string
	Err      error
	Attempts int
}

// OK reports whether generation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// String renders the result the way clients of the HTTP API see it: the
// generated text, or a terminal error line.
func (r Result) String() string {
	switch {
	case r.Err == nil:
		return r.Text
	case errors.Is(r.Err, ErrUnknown):
		return ErrUnknown.Error()
	default:
		return fmt.Sprintf("AI Error after %d retries: %s", r.Attempts, r.Err.Error())
	}
}

// Resilient wraps a ChatModel with bounded retries and exponential backoff.
// Every error is retried the same way; there is no jitter.
type Resilient struct {
	model  ChatModel
	logger *slog.Logger
	// timer is nil in production; tests swap it to observe waits.
	timer backoff.Timer
}

// NewResilient wraps model. A nil logger falls back to slog.Default().
func NewResilient(model ChatModel, logger *slog.Logger) *Resilient {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resilient{model: model, logger: logger}
}

func newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(BaseDelay),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxInterval(BaseDelay<<(MaxAttempts-1)),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(exp, MaxAttempts-1), ctx)
}

// Generate sends p to the model, retrying failed attempts after 1s, 2s, 4s and 8s.
// It never returns an error directly: failures are carried in Result.Err.
func (r *Resilient) Generate(ctx context.Context, p Prompt) Result {
	attempts := 0
	op := func() (string, error) {
		if err := ctx.Err(); err != nil {
			return "", backoff.Permanent(err)
		}
		attempts++
		return r.model.Ask(ctx, p.SystemInstruction, p.Text)
	}
	notify := func(err error, wait time.Duration) {
		r.logger.Warn("generation attempt failed, retrying",
			slog.Int("attempt", attempts),
			slog.Duration("wait", wait),
			slog.Any("error", err))
	}

	text, err := backoff.RetryNotifyWithTimerAndData(op, newBackOff(ctx), notify, r.timer)
	if err == nil {
		return Result{Text: text, Attempts: attempts}
	}
	if attempts == 0 {
		return Result{Err: fmt.Errorf("%w: %w", ErrUnknown, err)}
	}
	r.logger.Error("generation failed", slog.Int("attempts", attempts), slog.Any("error", err))
	return Result{Err: err, Attempts: attempts}
}
