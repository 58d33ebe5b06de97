// Command bundlegen writes bundle.Record adapters for struct types marked
// with a //bundle:derive directive.
//
// Typical use from a package:
//
//	//go:generate go run github.com/edwinsyarief/bundle/cmd/bundlegen $GOFILE
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edwinsyarief/bundle/internal/gen"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	skipColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "bundlegen [flags] <file.go|dir>...",
	Short: "Generate type-indexed accessors for Go structs",
	Long: `bundlegen reads Go source files, finds struct types preceded by a
//bundle:derive directive and writes the bundle.Record methods for them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().String("config", "", "config file (default ./"+gen.DefaultConfigFile+" if present)")
	rootCmd.Flags().String("suffix", "", "output file suffix, overrides config")
	rootCmd.Flags().Int("jobs", 0, "files processed concurrently, overrides config")
	rootCmd.Flags().Bool("stdout", false, "print generated code instead of writing files")
	rootCmd.Flags().BoolP("verbose", "v", false, "log every record")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupColor(cmd); err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	g, err := gen.New(cfg, gen.NewLogger(cmd.ErrOrStderr(), level))
	if err != nil {
		return err
	}

	results, err := g.Run(cmd.Context(), args, !toStdout)
	if err != nil {
		errColor.Fprintf(cmd.ErrOrStderr(), "bundlegen: %v\n", err)
		return err
	}
	out := cmd.OutOrStdout()
	for _, res := range results {
		switch {
		case res.Code == nil:
			if verbose {
				skipColor.Fprintf(out, "skip  %s\n", res.Source)
			}
		case toStdout:
			fmt.Fprintf(out, "// %s\n%s\n", res.Output, res.Code)
		default:
			okColor.Fprintf(out, "wrote %s", res.Output)
			fmt.Fprintf(out, " (%d records)\n", len(res.Records))
		}
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (gen.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return gen.Config{}, err
	}
	cfg, err := gen.LoadConfig(path, path != "")
	if err != nil {
		return gen.Config{}, err
	}
	if cmd.Flags().Changed("suffix") {
		if cfg.Suffix, err = cmd.Flags().GetString("suffix"); err != nil {
			return gen.Config{}, err
		}
	}
	if cmd.Flags().Changed("jobs") {
		if cfg.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return gen.Config{}, err
		}
	}
	return cfg, cfg.Validate()
}

func setupColor(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q (want auto|on|off)", mode)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
