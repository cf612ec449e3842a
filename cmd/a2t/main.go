package main

import (
	"fmt"
	"os"

	"audio2text/cmd/a2t/cmd"
	"audio2text/internal/config"
)

func main() {
	// Load .env if present; missing configuration only matters once a
	// component that needs it runs.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
