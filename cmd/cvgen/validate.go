package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/statick88/statick88.github.io/internal/config"
	"github.com/statick88/statick88.github.io/internal/cv"
	"github.com/statick88/statick88.github.io/internal/observability"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the CV data documents without rendering",
	Long:  "Checks both CV data documents against the embedded JSON Schema and the field-level rules (email/url formats, ISO dates), reporting every violation with its field path.",
	RunE:  runValidate,
}

var (
	valDataES string
	valDataEN string
)

func init() {
	validateCmd.Flags().StringVar(&valDataES, "data-es", "", "Path to the Spanish CV document")
	validateCmd.Flags().StringVar(&valDataEN, "data-en", "", "Path to the English CV document")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	defaults := config.Defaults()
	pathES, pathEN := valDataES, valDataEN
	if pathES == "" {
		pathES = defaults.DataES
	}
	if pathEN == "" {
		pathEN = defaults.DataEN
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, path := range []string{pathES, pathEN} {
		if _, err := cv.Load(path); err != nil {
			return err
		}
		printer.PrintValidationOK(path)
	}
	return nil
}
