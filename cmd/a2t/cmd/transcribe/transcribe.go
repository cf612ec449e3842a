package transcribe

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio2text/internal/app"
	"audio2text/internal/app/model"
	"audio2text/internal/config"
)

var batch bool
var pattern string
var modelName string

func init() {
	Cmd.Flags().BoolVar(&batch, "batch", false,
		"transcribe all MP3 files in the working directory")
	Cmd.Flags().StringVar(&pattern, "pattern", "",
		`file glob for batch processing (e.g. "*.mp3")`)
	Cmd.Flags().StringVar(&modelName, "model", "base",
		"Whisper model size (tiny, base, small, medium, large)")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe [audio-file]",
	Short: "Transcribe audio files to text",
	Long: `Transcribe audio files to text

- With a file argument, transcribe that file and print the text to stdout
- With --batch or --pattern, process every matching file and write one
  <name>_transcript.txt per input, overwriting existing transcripts
- Without arguments, batch process all MP3 files in the working directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := model.ParseModelSize(modelName)
		if err != nil {
			return err
		}

		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}

		converter := app.InitializeConverter(cfg, size)
		defer converter.Close()

		if batch || pattern != "" {
			return converter.TranscribeBatch(pattern)
		}

		if len(args) == 1 {
			fmt.Println(converter.TranscribeFile(args[0]))
			return nil
		}

		return converter.TranscribeBatch("")
	},
}
