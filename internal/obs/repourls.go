// Package obs lists the packages published in OpenSUSE Build Service
// repositories.
package obs

import (
	"context"
	"fmt"
	"strings"

	"github.com/frederic-klein/relkit/internal/execx"
)

// RepoURLs runs "osc repourls" inside the checked-out OSC project dir and
// returns one repository URL per line. The list ends at the first line
// shorter than three characters.
func RepoURLs(ctx context.Context, runner execx.Runner, oscCommand, dir string) ([]string, error) {
	out, err := runner.Run(ctx, dir, oscCommand, "repourls")
	if err != nil {
		return nil, fmt.Errorf("listing repository URLs: %w", err)
	}
	return parseRepoURLs(string(out.Stdout)), nil
}

func parseRepoURLs(output string) []string {
	var urls []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			break
		}
		urls = append(urls, line)
	}
	return urls
}
