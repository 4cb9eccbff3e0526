// Package main provides the entry point for the CV document generator.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvgen",
	Short: "Bilingual CV PDF generator",
	Long:  "cvgen renders the portfolio's bilingual CV data into print-ready PDF documents: a fixed two-column A4 layout with automatic pagination, justified text, embedded avatar/QR images and clickable links, one document per language.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
