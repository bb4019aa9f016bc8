package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Best effort: missing .env just means plain environment variables.
	if err := godotenv.Load(".env"); err == nil {
		slog.Debug(".env loaded")
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
