package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Lines splits map text the way the classifier does: on LF, with a
// trailing CR dropped from each line and no empty line after a final LF.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// CRLF joins lines with CR LF terminators, as the linker writes them.
func CRLF(lines ...string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\r\n")
	}
	return b.String()
}

// TestdataDir returns the module's integration/testdata directory.
func TestdataDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "integration", "testdata")
}

// LoadFixture reads a map file from the shared testdata directory and
// returns its lines.
func LoadFixture(t testing.TB, name string) []string {
	t.Helper()
	path := filepath.Join(TestdataDir(), name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", path, err)
	}
	return Lines(string(data))
}
