package src

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

type VersionDetails struct {
	Branch string
	Status string
	Number string
	Commit string
}

var releaseStatuses = map[string]bool{
	"Pre-Alpha":   true,
	"Alpha":       true,
	"Pre-Beta":    true,
	"Beta":        true,
	"Pre-Release": true,
	"Release":     true,
}

// FormatVersion validates the build version and renders it as
// "<branch> <status> <number> <commit>" with a normalized number.
func FormatVersion(d VersionDetails) (string, error) {
	v, err := version.NewVersion(d.Number)
	if err != nil {
		return "", fmt.Errorf("invalid version number %q: %w", d.Number, err)
	}
	if !releaseStatuses[d.Status] {
		return "", fmt.Errorf("unknown release status %q", d.Status)
	}
	return fmt.Sprintf("%s %s %s %s", d.Branch, d.Status, v.String(), d.Commit), nil
}
