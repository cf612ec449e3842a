package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio2text/internal/app/repository"
)

// TestSQLiteDAOInterface verifies SQLiteDB implements TranscriptionDAO.
func TestSQLiteDAOInterface(t *testing.T) {
	var _ repository.TranscriptionDAO = (*SQLiteDB)(nil)
}

func TestRecordAndQueryRoundTrip(t *testing.T) {
	db := NewSQLiteDB(filepath.Join(t.TempDir(), "transcription.db"))
	defer db.Close()

	earlier := time.Now().Add(-time.Hour)
	now := time.Now()

	db.RecordToDB("a.mp3", "/audio/a.mp3", "a2t-x.wav", 42,
		"whisper_cpp", "base", "first transcript", earlier, 0, "")
	db.RecordToDB("b.mp3", "/audio/b.mp3", "", 0,
		"whisper_cpp", "base", "", now, 1, "ffmpeg not found")

	recent, err := db.GetRecent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Newest first.
	assert.Equal(t, "b.mp3", recent[0].FileName)
	assert.Equal(t, 1, recent[0].HasError)
	assert.Equal(t, "ffmpeg not found", recent[0].ErrorMessage)

	assert.Equal(t, "a.mp3", recent[1].FileName)
	assert.Equal(t, "first transcript", recent[1].Transcription)
	assert.Equal(t, 42, recent[1].AudioDuration)
	assert.Equal(t, "whisper_cpp", recent[1].Engine)
	assert.Equal(t, "base", recent[1].ModelName)

	all, err := db.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	limited, err := db.GetRecent(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "b.mp3", limited[0].FileName)
}

func TestCheckIfFileProcessed(t *testing.T) {
	db := NewSQLiteDB(filepath.Join(t.TempDir(), "transcription.db"))
	defer db.Close()

	db.RecordToDB("ok.mp3", "/audio/ok.mp3", "w.wav", 10,
		"whisper_cpp", "base", "text", time.Now(), 0, "")
	db.RecordToDB("bad.mp3", "/audio/bad.mp3", "", 0,
		"whisper_cpp", "base", "", time.Now(), 1, "boom")

	id, err := db.CheckIfFileProcessed("ok.mp3")
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	// Failed attempts do not count as processed.
	_, err = db.CheckIfFileProcessed("bad.mp3")
	assert.Error(t, err)

	_, err = db.CheckIfFileProcessed("never-seen.mp3")
	assert.Error(t, err)
}

func TestGetRecentQueryError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("disk I/O error"))

	sdb := &SQLiteDB{db: mockDB}
	_, err = sdb.GetRecent(5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordToDBInsertErrorIsSwallowed(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec("INSERT INTO transcriptions").WillReturnError(errors.New("table locked"))

	sdb := &SQLiteDB{db: mockDB}
	// History is best effort: the call must not panic or fail the pipeline.
	sdb.RecordToDB("a.mp3", "/a.mp3", "", 0, "mock", "base", "", time.Now(), 1, "x")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentScansRows(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	columns := []string{
		"id", "file_name", "input_path", "wav_file_name", "audio_duration",
		"engine", "model_name", "transcription", "last_conversion_time",
		"has_error", "error_message",
	}
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows(columns).
			AddRow(7, "a.mp3", "/audio/a.mp3", "w.wav", 90,
				"openai", "base", "hello", when, 0, ""))

	sdb := &SQLiteDB{db: mockDB}
	rows, err := sdb.GetRecent(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].ID)
	assert.Equal(t, "openai", rows[0].Engine)
	assert.Equal(t, when, rows[0].LastConversionTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}
