// Package config loads the relkit YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/frederic-klein/relkit/internal/downloader"
	"github.com/frederic-klein/relkit/internal/i18n"
	"github.com/frederic-klein/relkit/internal/obs"
	"github.com/frederic-klein/relkit/internal/snippet"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "relkit.yaml"

// Config holds the settings of both tools.
type Config struct {
	OBS          OBSConfig          `yaml:"obs"`
	HTML         HTMLConfig         `yaml:"html"`
	Translations TranslationsConfig `yaml:"translations"`
}

// OBSConfig configures obsdl --make-download.
type OBSConfig struct {
	OSCCommand   string `yaml:"osc_command"`
	ListingLimit int64  `yaml:"listing_limit"`
	ScriptPath   string `yaml:"script_path"`
}

// HTMLConfig configures obsdl --make-html.
type HTMLConfig struct {
	FilesDir        string `yaml:"files_dir"`
	Header          string `yaml:"header"`
	DownloadBaseURL string `yaml:"download_base_url"`
	OutputDir       string `yaml:"output_dir"`
}

// TranslationsConfig configures transtats.
type TranslationsConfig struct {
	PODir         string            `yaml:"po_dir"`
	LocaleDir     string            `yaml:"locale_dir"`
	Domain        string            `yaml:"domain"`
	Summary       string            `yaml:"summary"`
	MsgfmtCommand string            `yaml:"msgfmt_command"`
	Languages     []string          `yaml:"languages"`
	NativeNames   map[string]string `yaml:"native_names"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		OBS: OBSConfig{
			OSCCommand:   "osc",
			ListingLimit: obs.DefaultListingLimit,
			ScriptPath:   downloader.DefaultScriptPath,
		},
		HTML: HTMLConfig{
			FilesDir:        "files",
			Header:          "Installation package",
			DownloadBaseURL: snippet.DefaultBaseURL,
			OutputDir:       ".",
		},
		Translations: TranslationsConfig{
			PODir:         filepath.Join("..", "bleachbit", "po"),
			LocaleDir:     filepath.Join("..", "bleachbit", "locale"),
			Domain:        "bleachbit",
			Summary:       i18n.DefaultSummary,
			MsgfmtCommand: "msgfmt",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields both tools rely on.
func (c *Config) Validate() error {
	var errs []error
	if c.OBS.OSCCommand == "" {
		errs = append(errs, errors.New("obs.osc_command must not be empty"))
	}
	if c.OBS.ListingLimit <= 0 {
		errs = append(errs, fmt.Errorf("obs.listing_limit must be positive, got %d", c.OBS.ListingLimit))
	}
	if c.OBS.ScriptPath == "" {
		errs = append(errs, errors.New("obs.script_path must not be empty"))
	}
	if c.HTML.Header == "" {
		errs = append(errs, errors.New("html.header must not be empty"))
	}
	if c.Translations.Domain == "" {
		errs = append(errs, errors.New("translations.domain must not be empty"))
	}
	if c.Translations.MsgfmtCommand == "" {
		errs = append(errs, errors.New("translations.msgfmt_command must not be empty"))
	}
	return errors.Join(errs...)
}
