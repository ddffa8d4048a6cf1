package obs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
)

// DefaultListingLimit caps how much of a directory listing is read.
const DefaultListingLimit = 100000

var packageLink = regexp.MustCompile(`"([a-z0-9_.-]*)(rpm|deb)"`)

// Listing is the outcome of scraping one repository directory. Err is set
// when the directory could not be fetched; Files is then empty.
type Listing struct {
	URL   string
	Files []string
	Err   error
}

// Scraper reads OBS directory listings over HTTP.
type Scraper struct {
	client *http.Client
	limit  int64
	logger *slog.Logger
}

// NewScraper creates a scraper reading at most limit bytes per listing.
func NewScraper(limit int64, logger *slog.Logger) *Scraper {
	if limit <= 0 {
		limit = DefaultListingLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{
		client: &http.Client{},
		limit:  limit,
		logger: logger,
	}
}

// ListingURL maps a repository URL (…/Fedora_28/home:user.repo) to the
// sub-directory holding its architecture-independent packages.
func ListingURL(repoURL string) string {
	base := repoURL[:strings.LastIndex(repoURL, "/")+1]
	if strings.Contains(repoURL, "buntu") || strings.Contains(repoURL, "ebian") {
		return base + "all/"
	}
	return base + "noarch/"
}

// ListRepo scrapes the package directory belonging to repoURL.
func (s *Scraper) ListRepo(ctx context.Context, repoURL string) Listing {
	return s.ListDir(ctx, ListingURL(repoURL))
}

// ListDir fetches a directory listing and returns the absolute URLs of the
// .rpm and .deb files it links to, deduplicated in order of appearance.
func (s *Scraper) ListDir(ctx context.Context, dirURL string) Listing {
	s.logger.Info("opening url", "url", dirURL)

	body, err := s.fetch(ctx, dirURL)
	if err != nil {
		s.logger.Warn("skipping repository", "url", dirURL, "error", err)
		return Listing{URL: dirURL, Err: err}
	}

	seen := make(map[string]bool)
	var files []string
	for _, m := range packageLink.FindAllStringSubmatch(body, -1) {
		fileURL := dirURL + m[1] + m[2]
		if seen[fileURL] {
			continue
		}
		seen[fileURL] = true
		s.logger.Debug("found fileurl", "url", fileURL)
		files = append(files, fileURL)
	}
	return Listing{URL: dirURL, Files: files}
}

// FilesInRepos concatenates the listings of every repository. Unreachable
// repositories contribute nothing.
func (s *Scraper) FilesInRepos(ctx context.Context, repoURLs []string) []string {
	s.logger.Info("getting files in repos", "repos", len(repoURLs))
	var files []string
	for _, repoURL := range repoURLs {
		files = append(files, s.ListRepo(ctx, repoURL).Files...)
	}
	s.logger.Info("found files", "count", len(files))
	return files
}

func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.limit))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(data), nil
}
