package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"audio2text/internal/app/model"
	"audio2text/internal/app/repository"
	"audio2text/internal/app/util/logger"
)

// Ensure SQLiteDB implements TranscriptionDAO
var _ repository.TranscriptionDAO = (*SQLiteDB)(nil)

// RecordToDB inserts one transcription attempt. Insert failures are logged,
// not propagated: history is best effort and must never fail a transcription.
func (sdb *SQLiteDB) RecordToDB(fileName, inputPath, wavFileName string, audioDuration int,
	engine, modelName, transcription string,
	lastConversionTime time.Time, hasError int, errorMessage string) {

	insertSQL := `
		INSERT INTO transcriptions (
			file_name, input_path, wav_file_name, audio_duration,
			engine, model_name, transcription,
			last_conversion_time, has_error, error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := sdb.db.Exec(insertSQL,
		fileName, inputPath, wavFileName, audioDuration,
		engine, modelName, transcription,
		lastConversionTime, hasError, errorMessage)
	if err != nil {
		logger.S().Errorf("failed to insert transcription record: %v", err)
	}
}

const selectColumns = `
	id, file_name, input_path,
	COALESCE(wav_file_name, '') as wav_file_name,
	COALESCE(audio_duration, 0) as audio_duration,
	COALESCE(engine, '') as engine,
	COALESCE(model_name, '') as model_name,
	COALESCE(transcription, '') as transcription,
	last_conversion_time, has_error,
	COALESCE(error_message, '') as error_message`

// GetRecent returns the most recent attempts, newest first.
func (sdb *SQLiteDB) GetRecent(limit int) ([]model.Transcription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transcriptions
		ORDER BY last_conversion_time DESC, id DESC
		LIMIT ?`, selectColumns)

	rows, err := sdb.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanTranscriptions(rows)
}

// GetAll returns every recorded attempt, newest first.
func (sdb *SQLiteDB) GetAll() ([]model.Transcription, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transcriptions
		ORDER BY last_conversion_time DESC, id DESC`, selectColumns)

	rows, err := sdb.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanTranscriptions(rows)
}

// CheckIfFileProcessed returns the id of a prior successful transcription of
// fileName, or an error if none exists.
func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `
		SELECT id FROM transcriptions
		WHERE file_name = ? AND has_error = 0
		ORDER BY last_conversion_time DESC
		LIMIT 1`

	var id int
	err := sdb.db.QueryRow(query, fileName).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("file %q has not been processed", fileName)
	}
	if err != nil {
		return 0, fmt.Errorf("query failed: %w", err)
	}
	return id, nil
}

func scanTranscriptions(rows *sql.Rows) ([]model.Transcription, error) {
	var transcriptions []model.Transcription
	for rows.Next() {
		var t model.Transcription
		err := rows.Scan(
			&t.ID, &t.FileName, &t.InputPath, &t.WavFileName,
			&t.AudioDuration, &t.Engine, &t.ModelName, &t.Transcription,
			&t.LastConversionTime, &t.HasError, &t.ErrorMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		transcriptions = append(transcriptions, t)
	}
	return transcriptions, rows.Err()
}
