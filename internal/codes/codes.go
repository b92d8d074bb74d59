// Package codes expands course code arguments, substituting file contents
// for arguments that name a course list file.
package codes

import (
	"fmt"
	"os"
	"strings"
)

// Expand returns the final course code list. Any argument containing a "."
// is treated as a path to a newline-delimited file of course codes and is
// replaced in place by its contents. Blank lines are dropped.
func Expand(args []string) ([]string, error) {
	expanded := make([]string, 0, len(args))

	for _, arg := range args {
		if !strings.Contains(arg, ".") {
			expanded = append(expanded, arg)
			continue
		}

		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("reading course list %s: %w", arg, err)
		}

		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			expanded = append(expanded, line)
		}
	}

	return expanded, nil
}
