package main

import (
	"fmt"
	"os"

	"voice2site/cmd/v2s/cmd"
	"voice2site/internal/config"
)

func main() {
	// Variables already present in the environment win over .env files
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	cmd.Execute()
}
