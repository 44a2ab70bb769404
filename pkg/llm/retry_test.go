package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTimer fires immediately and remembers every requested wait.
type recordingTimer struct {
	waits []time.Duration
	c     chan time.Time
}

func newRecordingTimer() *recordingTimer {
	return &recordingTimer{waits: []time.Duration{}, c: make(chan time.Time, 1)}
}

func (t *recordingTimer) Start(d time.Duration) {
	t.waits = append(t.waits, d)
	t.c <- time.Now()
}

func (t *recordingTimer) Stop() {}
func (t *recordingTimer) C() <-chan time.Time { return t.c }

// scriptedModel fails the first failures calls, then answers with reply.
type scriptedModel struct {
	failures int
	reply    string
	calls    int
	system   []string
	prompts  []string
}

func (m *scriptedModel) Ask(_ context.Context, system, prompt string) (string, error) {
	m.calls++
	m.system = append(m.system, system)
	m.prompts = append(m.prompts, prompt)
	if m.calls <= m.failures {
		return "", fmt.Errorf("quota exceeded (call %d)", m.calls)
	}
	return m.reply, nil
}

func newTestResilient(m ChatModel) (*Resilient, *recordingTimer) {
	r := NewResilient(m, nil)
	timer := newRecordingTimer()
	r.timer = timer
	return r, timer
}

func TestGenerateSucceedsOnAttemptK(t *testing.T) {
	expectedWaits := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}

	for k := 0; k < MaxAttempts; k++ {
		t.Run(fmt.Sprintf("attempt %d", k), func(t *testing.T) {
			model := &scriptedModel{failures: k, reply: "  generated\ntext  "}
			r, timer := newTestResilient(model)

			res := r.Generate(context.Background(), Prompt{Text: "p", SystemInstruction: "sys"})

			require.True(t, res.OK())
			assert.Equal(t, "  generated\ntext  ", res.Text)
			assert.Equal(t, res.Text, res.String())
			assert.Equal(t, k+1, model.calls)
			assert.Equal(t, k+1, res.Attempts)
			assert.Equal(t, expectedWaits[:k], timer.waits)
		})
	}
}

func TestGenerateExhaustsAttempts(t *testing.T) {
	model := &scriptedModel{failures: 100}
	r, timer := newTestResilient(model)

	res := r.Generate(context.Background(), Prompt{Text: "p"})

	assert.False(t, res.OK())
	assert.Equal(t, MaxAttempts, model.calls)
	assert.Equal(t, MaxAttempts, res.Attempts)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}, timer.waits)
	assert.Equal(t, "AI Error after 5 retries: quota exceeded (call 5)", res.String())
	assert.True(t, strings.HasPrefix(res.String(), "AI Error after 5 retries: "))
}

func TestGeneratePassesPromptAndInstruction(t *testing.T) {
	model := &scriptedModel{reply: "ok"}
	r, _ := newTestResilient(model)

	r.Generate(context.Background(), Prompt{Text: "body", SystemInstruction: "be a recruiter"})

	assert.Equal(t, []string{"be a recruiter"}, model.system)
	assert.Equal(t, []string{"body"}, model.prompts)
}

func TestGenerateFreshCounterPerCall(t *testing.T) {
	model := &scriptedModel{failures: 3, reply: "ok"}
	r, timer := newTestResilient(model)

	first := r.Generate(context.Background(), Prompt{Text: "a"})
	require.True(t, first.OK())
	assert.Equal(t, 4, first.Attempts)

	second := r.Generate(context.Background(), Prompt{Text: "b"})
	require.True(t, second.OK())
	assert.Equal(t, 1, second.Attempts)
	assert.Len(t, timer.waits, 3)
}

func TestGenerateStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	model := &scriptedModel{failures: 100}
	r := NewResilient(model, nil)
	r.timer = &cancelingTimer{cancel: cancel, c: make(chan time.Time)}

	res := r.Generate(ctx, Prompt{Text: "p"})

	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, 1, model.calls)
	assert.Equal(t, "AI Error after 1 retries: context canceled", res.String())
}

func TestGenerateUnknownWhenNothingRan(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	model := &scriptedModel{}
	r, _ := newTestResilient(model)

	res := r.Generate(ctx, Prompt{Text: "p"})

	assert.Equal(t, 0, model.calls)
	assert.ErrorIs(t, res.Err, ErrUnknown)
	assert.Equal(t, "Unknown AI Error", res.String())
}

func TestUnavailableAlwaysFails(t *testing.T) {
	missing := errors.New("api key is required")
	r, timer := newTestResilient(Unavailable{Err: missing})

	res := r.Generate(context.Background(), Prompt{Text: "p"})

	assert.ErrorIs(t, res.Err, missing)
	assert.Len(t, timer.waits, MaxAttempts-1)
	assert.Equal(t, "AI Error after 5 retries: api key is required", res.String())
}

// cancelingTimer cancels the context instead of firing.
type cancelingTimer struct {
	cancel context.CancelFunc
	c      chan time.Time
}

func (t *cancelingTimer) Start(time.Duration) { t.cancel() }
func (t *cancelingTimer) Stop() {}
func (t *cancelingTimer) C() <-chan time.Time { return t.c }
