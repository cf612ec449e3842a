package testutil

import "sync"

// MockTranscriber is a configurable fake implementation of api.Transcriber
// for exercising the conversion pipeline without a real engine.
type MockTranscriber struct {
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error
	ResponseMap     map[string]string
	ErrorMap        map[string]error

	Calls []string
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "this is a mock transcription result",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
	}
}

func (m *MockTranscriber) Name() string { return "mock" }

// Transcript implements the api.Transcriber interface.
func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, inputFilePath)

	if err, ok := m.ErrorMap[inputFilePath]; ok {
		return "", err
	}
	if m.DefaultError != nil {
		return "", m.DefaultError
	}
	if response, ok := m.ResponseMap[inputFilePath]; ok {
		return response, nil
	}
	return m.DefaultResponse, nil
}

func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockTranscriber) WithDefaultResponse(response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultResponse = response
	return m
}

func (m *MockTranscriber) WithDefaultError(err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultError = err
	return m
}

func (m *MockTranscriber) SetResponseForFile(filePath, response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponseMap[filePath] = response
	return m
}

func (m *MockTranscriber) SetErrorForFile(filePath string, err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMap[filePath] = err
	return m
}
