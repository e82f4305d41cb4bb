package meshio_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeRaw writes content verbatim to path, for tests constructing a
// malformed archive by hand.
func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// removeSection copies src to dst with the named section (header plus every
// line up to the next "#" header) dropped entirely.
func removeSection(t *testing.T, src, dst, header string) {
	t.Helper()
	raw, err := os.ReadFile(src)
	require.NoError(t, err)

	lines := strings.Split(string(raw), "\n")
	var out []string
	skipping := false
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			skipping = line == header
			if skipping {
				continue
			}
		}
		if skipping {
			continue
		}
		out = append(out, line)
	}
	require.NoError(t, os.WriteFile(dst, []byte(strings.Join(out, "\n")), 0o644))
}
