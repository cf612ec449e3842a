package repository

import (
	"time"

	"audio2text/internal/app/model"
)

// TranscriptionDAO records transcription attempts and serves history queries.
type TranscriptionDAO interface {
	Close() error

	RecordToDB(fileName, inputPath, wavFileName string, audioDuration int,
		engine, modelName, transcription string,
		lastConversionTime time.Time, hasError int, errorMessage string)

	GetRecent(limit int) ([]model.Transcription, error)

	GetAll() ([]model.Transcription, error)

	CheckIfFileProcessed(fileName string) (int, error)
}
