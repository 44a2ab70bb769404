package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/artem13815/atsmatch/mocks"
	"github.com/artem13815/atsmatch/pkg/llm"
)

func TestResilientForwardsToModel(t *testing.T) {
	model := new(mocks.MockChatModel)
	model.On("Ask", mock.Anything, "be a recruiter", "Analyze this resume").Return("- Go", nil).Once()

	res := llm.NewResilient(model, nil).Generate(context.Background(),
		llm.Prompt{Text: "Analyze this resume", SystemInstruction: "be a recruiter"})

	assert.True(t, res.OK())
	assert.Equal(t, "- Go", res.String())
	assert.Equal(t, 1, res.Attempts)
	model.AssertExpectations(t)
}

func TestResilientRetriesFailedCall(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the first backoff interval")
	}
	model := new(mocks.MockChatModel)
	model.On("Ask", mock.Anything, "", "p").Return("", errors.New("503 overloaded")).Once()
	model.On("Ask", mock.Anything, "", "p").Return("ok", nil).Once()

	res := llm.NewResilient(model, nil).Generate(context.Background(), llm.Prompt{Text: "p"})

	assert.True(t, res.OK())
	assert.Equal(t, 2, res.Attempts)
	model.AssertNumberOfCalls(t, "Ask", 2)
}
