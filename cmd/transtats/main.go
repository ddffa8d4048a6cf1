package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/frederic-klein/relkit/internal/config"
	"github.com/frederic-klein/relkit/internal/execx"
	"github.com/frederic-klein/relkit/internal/i18n"
	"github.com/frederic-klein/relkit/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	poDir      string
	localeDir  string
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transtats",
		Short: "Print an HTML table of translation progress per language",
		Long: "transtats measures every message catalog with msgfmt --statistics and prints an HTML page " +
			"listing each language, its native name, the percentage translated and its translation of " +
			"the program summary.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), stdout, stderr, nil)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	f.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	f.StringVar(&poDir, "po-dir", "", "Directory of <lang>.po files (overrides config)")
	f.StringVar(&localeDir, "locale-dir", "", "Directory of compiled catalogs (overrides config)")

	return rootCmd
}

// runReport uses runner to invoke msgfmt, or real processes when nil.
func runReport(ctx context.Context, stdout, stderr io.Writer, runner execx.Runner) error {
	logger, err := logging.New(logLevel, logFormat, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	tc := cfg.Translations
	if poDir != "" {
		tc.PODir = poDir
	}
	if localeDir != "" {
		tc.LocaleDir = localeDir
	}

	langs := append([]string(nil), tc.Languages...)
	sort.Strings(langs)
	if len(langs) == 0 {
		langs, err = i18n.SupportedLanguages(tc.PODir)
		if err != nil {
			return err
		}
	}
	logger.Info("measuring translations", "languages", len(langs), "po_dir", tc.PODir)

	if runner == nil {
		runner = execx.OSRunner{Logger: logger}
	}
	reporter := &i18n.Reporter{
		Stats:       i18n.NewStatsCollector(runner, tc.MsgfmtCommand, tc.PODir, logger),
		Translator:  i18n.NewCatalog(tc.LocaleDir, tc.Domain),
		NativeNames: tc.NativeNames,
		Summary:     tc.Summary,
		Logger:      logger,
	}
	rows := reporter.Rows(ctx, langs)

	if err := i18n.RenderReport(stdout, tc.Summary, rows); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
