package testutil

import (
	"fmt"
	"sync"
	"time"

	"audio2text/internal/app/model"
)

// MockTranscriptionDAO is an in-memory repository.TranscriptionDAO.
type MockTranscriptionDAO struct {
	mu sync.Mutex

	Records    []model.Transcription
	CloseError error
	Closed     bool
}

func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{}
}

func (m *MockTranscriptionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return m.CloseError
}

func (m *MockTranscriptionDAO) RecordToDB(fileName, inputPath, wavFileName string, audioDuration int,
	engine, modelName, transcription string,
	lastConversionTime time.Time, hasError int, errorMessage string) {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Records = append(m.Records, model.Transcription{
		ID:                 len(m.Records) + 1,
		FileName:           fileName,
		InputPath:          inputPath,
		WavFileName:        wavFileName,
		AudioDuration:      audioDuration,
		Engine:             engine,
		ModelName:          modelName,
		Transcription:      transcription,
		LastConversionTime: lastConversionTime,
		HasError:           hasError,
		ErrorMessage:       errorMessage,
	})
}

func (m *MockTranscriptionDAO) GetRecent(limit int) ([]model.Transcription, error) {
	all, err := m.GetAll()
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *MockTranscriptionDAO) GetAll() ([]model.Transcription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reversed := make([]model.Transcription, 0, len(m.Records))
	for i := len(m.Records) - 1; i >= 0; i-- {
		reversed = append(reversed, m.Records[i])
	}
	return reversed, nil
}

func (m *MockTranscriptionDAO) CheckIfFileProcessed(fileName string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.Records {
		if r.FileName == fileName && r.HasError == 0 {
			return r.ID, nil
		}
	}
	return 0, fmt.Errorf("file %q has not been processed", fileName)
}

func (m *MockTranscriptionDAO) WithCloseError(err error) *MockTranscriptionDAO {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseError = err
	return m
}

// LastRecord returns the most recently recorded attempt, or nil.
func (m *MockTranscriptionDAO) LastRecord() *model.Transcription {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Records) == 0 {
		return nil
	}
	r := m.Records[len(m.Records)-1]
	return &r
}
