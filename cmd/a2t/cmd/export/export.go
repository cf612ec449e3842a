package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio2text/internal/app/converter/export"
	"audio2text/internal/app/repository/sqlite"
	"audio2text/internal/config"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transcription history to excel",
	Long: `Export the transcription history to excel

- Exports every recorded transcription attempt, including failed ones`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}

		dbPath, err := cfg.ResolveDBPath()
		if err != nil {
			return err
		}

		db := sqlite.NewSQLiteDB(dbPath)
		defer db.Close()

		transcriptions, err := db.GetAll()
		if err != nil {
			return err
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			return err
		}

		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}
