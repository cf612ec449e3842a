package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio2text/cmd/a2t/cmd/export"
	"audio2text/cmd/a2t/cmd/history"
	"audio2text/cmd/a2t/cmd/transcribe"
	"audio2text/cmd/a2t/cmd/version"
	"audio2text/internal/app/util/logger"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "An application for converting audio files to text transcripts",
	Long: `An application for converting audio files to text transcripts.

- Transcribe a single WAV or MP3 file and print the text to stdout
- Batch process every file matching a glob pattern, one transcript file per input
- MP3 inputs are normalized to mono 16kHz WAV with ffmpeg before transcription
- Every run is recorded to a local sqlite history database`,
	TraverseChildren: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(Verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
