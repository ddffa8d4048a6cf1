package downloader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter/v2"

	"github.com/frederic-klein/relkit/internal/distro"
)

// Job is one package to download under a distribution-tagged name.
type Job struct {
	URL      string
	DestPath string
}

// Result is the outcome of fetching one Job.
type Result struct {
	Job     Job
	Skipped bool // DestPath already existed
	Error   error
}

// Plan maps package URLs to download jobs. Any URL that cannot be renamed
// aborts planning: a wrong tag would silently overwrite another package.
func Plan(urls []string, logger *slog.Logger) ([]Job, error) {
	if logger == nil {
		logger = slog.Default()
	}

	jobs := make([]Job, 0, len(urls))
	for _, url := range urls {
		name, err := distro.RenameForURL(url)
		if err != nil {
			var ce *distro.ClassifyError
			if errors.As(err, &ce) {
				logger.Error("cannot name package",
					"url", url,
					"distro", string(ce.Family),
					"ver", ce.Version,
					"error", err)
			}
			return nil, fmt.Errorf("planning download of %s: %w", url, err)
		}
		jobs = append(jobs, Job{URL: url, DestPath: name})
	}
	return jobs, nil
}

// Fetcher downloads jobs directly instead of through the generated script.
type Fetcher struct {
	client *getter.Client
	logger *slog.Logger
}

// NewFetcher creates a Fetcher backed by go-getter.
func NewFetcher(logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		logger: logger,
	}
}

// Fetch downloads each job into destDir, one at a time. Existing files are
// kept, like wget -nc.
func (f *Fetcher) Fetch(ctx context.Context, jobs []Job, destDir string) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, f.fetchOne(ctx, job, destDir))
	}
	return results
}

func (f *Fetcher) fetchOne(ctx context.Context, job Job, destDir string) Result {
	dest := filepath.Join(destDir, job.DestPath)
	if _, err := os.Stat(dest); err == nil {
		f.logger.Info("file exists, not downloading", "path", dest)
		return Result{Job: job, Skipped: true}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return Result{Job: job, Error: fmt.Errorf("creating directory: %w", err)}
	}

	f.logger.Info("fetching file", "url", job.URL, "dest", dest)
	req := &getter.Request{
		Src:             job.URL,
		Dst:             dest,
		GetMode:         getter.ModeFile,
		DisableSymlinks: true,
	}
	if _, err := f.client.Get(ctx, req); err != nil {
		f.logger.Warn("download failed", "url", job.URL, "error", err)
		return Result{Job: job, Error: fmt.Errorf("fetching %s: %w", job.URL, err)}
	}
	return Result{Job: job}
}

// Failed counts results with an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Error != nil {
			n++
		}
	}
	return n
}
