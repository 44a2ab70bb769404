package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/artem13815/atsmatch/pkg/llm"
)

type MockChatModel struct {
	mock.Mock
}

func (m *MockChatModel) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, p llm.Prompt) llm.Result {
	args := m.Called(ctx, p)
	return args.Get(0).(llm.Result)
}
