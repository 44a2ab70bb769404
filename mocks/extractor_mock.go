package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/artem13815/atsmatch/pkg/resume"
)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(filename string, data []byte) resume.Extraction {
	args := m.Called(filename, data)
	return args.Get(0).(resume.Extraction)
}
