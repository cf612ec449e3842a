package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"audio2text/internal/app/util/logger"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file_name TEXT NOT NULL,
	input_path TEXT NOT NULL,
	wav_file_name TEXT,
	audio_duration INTEGER DEFAULT 0,
	engine TEXT,
	model_name TEXT,
	transcription TEXT,
	last_conversion_time TIMESTAMP NOT NULL,
	has_error INTEGER DEFAULT 0,
	error_message TEXT
);
CREATE INDEX IF NOT EXISTS idx_transcriptions_file_name ON transcriptions(file_name);
`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (creating if needed) the history database at dbPath and
// ensures the schema exists.
func NewSQLiteDB(dbPath string) *SQLiteDB {
	if err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm); err != nil {
		logger.S().Fatalf("failed to create database directory: %v", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbPath))
	if err != nil {
		logger.S().Fatalf("failed to open database: %v", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		logger.S().Fatalf("failed to create table: %v", err)
	}

	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}
