package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/statick88/statick88.github.io/internal/config"
	"github.com/statick88/statick88.github.io/internal/cv"
	"github.com/statick88/statick88.github.io/internal/observability"
	"github.com/statick88/statick88.github.io/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the CV documents for both languages",
	Long: `Reads the two CV data documents, renders both language variants and writes
both PDF files. The variants share no mutable state and render concurrently;
outputs are only written once both renders succeed.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerate,
}

var (
	genConfigPath string
	genDataES     string
	genDataEN     string
	genOutES      string
	genOutEN      string
	genAvatar     string
	genFontDir    string
	genLang       string
	genVerbose    bool
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVar(&genDataES, "data-es", "", "Path to the Spanish CV document")
	generateCmd.Flags().StringVar(&genDataEN, "data-en", "", "Path to the English CV document")
	generateCmd.Flags().StringVar(&genOutES, "out-es", "", "Output path of the Spanish PDF")
	generateCmd.Flags().StringVar(&genOutEN, "out-en", "", "Output path of the English PDF")
	generateCmd.Flags().StringVar(&genAvatar, "avatar", "", "Path to the avatar image (optional)")
	generateCmd.Flags().StringVar(&genFontDir, "fonts", "", "Directory holding the TrueType faces (optional, falls back to the built-in face)")
	generateCmd.Flags().StringVarP(&genLang, "lang", "l", "", "Render a single variant (es or en); default renders both")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print per-variant generation summaries")

	rootCmd.AddCommand(generateCmd)
}

// variant pairs one input document with one output path.
type variant struct {
	lang cv.Language
	data string
	out  string
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(cmd)
	if err != nil {
		return err
	}

	variants := []variant{
		{lang: cv.LangES, data: cfg.DataES, out: cfg.OutES},
		{lang: cv.LangEN, data: cfg.DataEN, out: cfg.OutEN},
	}
	if cfg.Lang != "" {
		only, err := cv.ParseLanguage(cfg.Lang)
		if err != nil {
			return err
		}
		kept := variants[:0]
		for _, v := range variants {
			if v.lang == only {
				kept = append(kept, v)
			}
		}
		variants = kept
	}

	var avatar []byte
	if cfg.Avatar != "" {
		// A missing avatar skips the picture; it never fails the run.
		avatar, _ = os.ReadFile(cfg.Avatar)
	}

	opts := render.Options{Avatar: avatar, FontDir: cfg.FontDir}

	// Render all variants before writing anything, so a failed render never
	// leaves a stale half of the output pair behind.
	results := make([]*render.Result, len(variants))
	var g errgroup.Group
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			rec, err := cv.Load(v.data)
			if err != nil {
				return err
			}
			result, err := render.Render(rec, v.lang, opts)
			if err != nil {
				return fmt.Errorf("failed to render %s variant: %w", v.lang, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	for i, v := range variants {
		if err := writeOutput(v.out, results[i].PDF); err != nil {
			return err
		}
		if cfg.Verbose {
			printer.PrintVariant(string(v.lang), v.out, results[i])
		}
	}
	return nil
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", path, err)
	}
	return nil
}

// mergedConfig layers config file values under explicitly set CLI flags,
// then fills remaining gaps from the fixed site defaults.
func mergedConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if genConfigPath != "" {
		loaded, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("data-es") {
		cfg.DataES = genDataES
	}
	if cmd.Flags().Changed("data-en") {
		cfg.DataEN = genDataEN
	}
	if cmd.Flags().Changed("out-es") {
		cfg.OutES = genOutES
	}
	if cmd.Flags().Changed("out-en") {
		cfg.OutEN = genOutEN
	}
	if cmd.Flags().Changed("avatar") {
		cfg.Avatar = genAvatar
	}
	if cmd.Flags().Changed("fonts") {
		cfg.FontDir = genFontDir
	}
	if cmd.Flags().Changed("lang") {
		cfg.Lang = genLang
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
