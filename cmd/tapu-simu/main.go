// Command tapu-simu drives the battle engine from the shell: running a
// format/team pair to completion, generating a single turn against a
// serialized state, or dumping a state for inspection.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mingu600/tapu-simu/internal/telemetry"
)

func main() {
	// Load .env for local development; not fatal if absent (env vars may
	// already be set directly), matching the teacher's main.go.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	var shutdown func(context.Context) error
	if os.Getenv("TAPU_SIMU_OTEL_DISABLED") == "" {
		var err error
		shutdown, err = telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Engine will run without observability")
		}
	}
	if shutdown != nil {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
