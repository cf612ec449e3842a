package api

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcript(inputFilePath string) (string, error)
}

// Named is implemented by engines that report a name for history records.
type Named interface {
	Name() string
}
