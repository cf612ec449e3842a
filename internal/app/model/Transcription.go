package model

import "time"

// Transcription is one recorded transcription attempt, successful or not.
type Transcription struct {
	ID                 int
	FileName           string
	InputPath          string
	WavFileName        string
	AudioDuration      int
	Engine             string
	ModelName          string
	Transcription      string
	LastConversionTime time.Time
	HasError           int
	ErrorMessage       string
}
