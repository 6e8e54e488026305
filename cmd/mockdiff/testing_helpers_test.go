package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

// writeDoc writes a JSON document into dir and returns its path
func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// usePair points the global flags at a fresh database/candidate pair and
// restores every flag when the test ends
func usePair(t *testing.T, db, mock string) string {
	t.Helper()
	dir := t.TempDir()

	t.Cleanup(resetFlags)

	configPath = filepath.Join(dir, "none.yaml")
	storeName = "orders"
	dbPath = filepath.Join(dir, "db.json")
	if db != "" {
		writeDoc(t, dir, "db.json", db)
	}
	mockPath = writeDoc(t, dir, "mock.json", mock)
	return dbPath
}

// resetFlags restores every package-level flag to its default
func resetFlags() {
	verbose, quiet, jsonOut, staged = false, false, false, false
	configPath, storeName, dbPath, mockPath = "", "", "", ""
	diffFormat, diffOnlyDiff, diffSide, diffWidth = "text", false, "database", 0
	pathsDump = false
}

// readJSON decodes the document at path
func readJSON(t *testing.T, path string) any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("invalid JSON in %s: %v", path, err)
	}
	return v
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
