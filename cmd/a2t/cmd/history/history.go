package history

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"audio2text/internal/app/repository/sqlite"
	"audio2text/internal/config"
)

var limit int

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of history entries to show")
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent transcription history",
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

		transcriptions, err := db.GetRecent(limit)
		if err != nil {
			return err
		}

		if len(transcriptions) == 0 {
			fmt.Println("no transcriptions recorded yet")
			return nil
		}

		for _, t := range transcriptions {
			status := "ok"
			if t.HasError != 0 {
				status = "error: " + t.ErrorMessage
			}
			fmt.Printf("%s  %-30s  %s/%s  %ds  %s\n",
				t.LastConversionTime.Format(time.DateTime),
				t.FileName, t.Engine, t.ModelName, t.AudioDuration, status)
		}
		return nil
	},
}
