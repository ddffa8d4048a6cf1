package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/frederic-klein/relkit/internal/config"
	"github.com/frederic-klein/relkit/internal/downloader"
	"github.com/frederic-klein/relkit/internal/execx"
	"github.com/frederic-klein/relkit/internal/logging"
	"github.com/frederic-klein/relkit/internal/obs"
	"github.com/frederic-klein/relkit/internal/snippet"
)

const usageLine = "invoke with either --make-download (OSC directory) or --make-html"

var errNoMode = errors.New("no mode given")

type options struct {
	configPath   string
	logLevel     string
	logFormat    string
	makeDownload string
	makeHTML     bool
	fetch        bool
	destDir      string
	outputPath   string
	filesDir     string
	header       string
	snippetDir   string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errNoMode) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "obsdl (--make-download DIR | --make-html)",
		Short: "Download packages from OpenSUSE Build Service and list them as HTML",
		Long: "obsdl finds the packages built on OpenSUSE Build Service for every repository of an OSC " +
			"project and writes a script that downloads them under distribution-tagged names, or " +
			"writes an HTML snippet of download links for the files already collected.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command line %s", args[0])
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	f := rootCmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Config file")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	f.StringVar(&opts.makeDownload, "make-download", "", "OSC project directory to build the download script from")
	f.BoolVar(&opts.makeHTML, "make-html", false, "Write the HTML snippet for the files directory")
	f.BoolVar(&opts.fetch, "fetch", false, "With --make-download, also download the packages")
	f.StringVar(&opts.destDir, "dest", ".", "Directory --fetch downloads into")
	f.StringVarP(&opts.outputPath, "output", "o", "", "Download script path (overrides config)")
	f.StringVar(&opts.filesDir, "files-dir", "", "Directory of collected packages (overrides config)")
	f.StringVar(&opts.header, "header", "", "Snippet header (overrides config)")
	f.StringVar(&opts.snippetDir, "snippet-dir", "", "Directory the snippet is written to (overrides config)")

	return rootCmd
}

func run(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	download := opts.makeDownload != ""
	switch {
	case !download && !opts.makeHTML:
		fmt.Fprintln(stdout, usageLine)
		return errNoMode
	case download && opts.makeHTML:
		return errors.New("unknown command line: --make-download and --make-html are exclusive")
	case opts.fetch && !download:
		return errors.New("unknown command line: --fetch requires --make-download")
	}

	logger, err := logging.New(opts.logLevel, opts.logFormat, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.outputPath != "" {
		cfg.OBS.ScriptPath = opts.outputPath
	}
	if opts.filesDir != "" {
		cfg.HTML.FilesDir = opts.filesDir
	}
	if opts.header != "" {
		cfg.HTML.Header = opts.header
	}
	if opts.snippetDir != "" {
		cfg.HTML.OutputDir = opts.snippetDir
	}

	if download {
		return makeDownload(ctx, cfg, opts, execx.OSRunner{Logger: logger}, logger)
	}
	return makeHTML(cfg, logger)
}

func makeDownload(ctx context.Context, cfg *config.Config, opts *options, runner execx.Runner, logger *slog.Logger) error {
	logger.Info("getting URLs from OpenSUSE Build Service", "dir", opts.makeDownload)
	repoURLs, err := obs.RepoURLs(ctx, runner, cfg.OBS.OSCCommand, opts.makeDownload)
	if err != nil {
		return err
	}

	scraper := obs.NewScraper(cfg.OBS.ListingLimit, logger)
	fileURLs := scraper.FilesInRepos(ctx, repoURLs)

	jobs, err := downloader.Plan(fileURLs, logger)
	if err != nil {
		return err
	}
	if err := downloader.WriteScriptFile(cfg.OBS.ScriptPath, jobs); err != nil {
		return err
	}
	logger.Info("wrote download script", "path", cfg.OBS.ScriptPath, "files", len(jobs))

	if !opts.fetch {
		return nil
	}
	results := downloader.NewFetcher(logger).Fetch(ctx, jobs, opts.destDir)
	if n := downloader.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d downloads failed", n, len(results))
	}
	return nil
}

func makeHTML(cfg *config.Config, logger *slog.Logger) error {
	entries, err := os.ReadDir(cfg.HTML.FilesDir)
	if err != nil {
		return fmt.Errorf("reading files dir: %w", err)
	}
	filenames := make([]string, 0, len(entries))
	for _, e := range entries {
		filenames = append(filenames, e.Name())
	}

	logger.Info("creating HTML snippet", "files", len(filenames))
	records, err := snippet.Build(filenames, cfg.HTML.DownloadBaseURL, logger)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.HTML.OutputDir, snippet.FileName(cfg.HTML.Header))
	if err := snippet.WriteFile(path, records); err != nil {
		return err
	}
	logger.Info("wrote HTML snippet", "path", path, "links", len(records))
	return nil
}
