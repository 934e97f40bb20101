// Package main provides the entry point for the CV builder server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvserver",
	Short: "CV builder backend",
	Long:  "CV builder backend: CRUD storage for CV documents and themes, AI-assisted text extraction and tailoring, and paginated A4 PDF rendering via a headless browser.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
