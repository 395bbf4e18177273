// Package testutil provides shared testing helpers for the go-cli-utils
// test suites: uniquely named temporary files and YAML fixture loading.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// TempFile writes content to a uniquely named file under t.TempDir and
// returns its path. The file is removed together with the test's temp
// directory when the test finishes.
func TempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "testfile-"+uuid.New().String()+".txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file %s: %v", path, err)
	}
	return path
}

// TempPath returns a uniquely named path (with the given suffix) under
// t.TempDir without creating anything at it, for tests that exercise file
// creation themselves.
func TempPath(t *testing.T, suffix string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "testfile-"+uuid.New().String()+suffix)
}

// LoadFixture unmarshals the YAML fixture at path into out, failing the
// test on read or parse errors.
func LoadFixture(t *testing.T, path string, out interface{}) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		t.Fatalf("failed to parse fixture %s: %v", path, err)
	}
}
