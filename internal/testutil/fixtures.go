// Package testutil copies record fixtures from testdata/ into temp dirs so
// tests can write to them.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// Fixture sets relative to the repository root. Each directory holds a
// database.json and a mock.json.
const (
	// OrdersFixture is an array of order records paired by id. o1 differs
	// in amount, payment.card and tags; o2 is equal apart from key order;
	// o3 exists only in the mock.
	OrdersFixture = "testdata/orders"

	// ProfileFixture is a single object document.
	ProfileFixture = "testdata/profile"
)

// Pair is a writable copy of a fixture set.
type Pair struct {
	Dir      string
	Database string
	Mock     string
}

// SetupPair copies fixture into a temp directory and returns the copies.
// Calls t.Skip if the fixture is not found.
//
// Example:
//
//	pair := testutil.SetupPair(t, testutil.OrdersFixture)
//	store, err := recordstore.Open(recordstore.Options{Database: pair.Database, ...})
func SetupPair(t *testing.T, fixture string) Pair {
	t.Helper()

	src := resolveTestPath(t, fixture)
	dir := t.TempDir()
	pair := Pair{
		Dir:      dir,
		Database: filepath.Join(dir, "database.json"),
		Mock:     filepath.Join(dir, "mock.json"),
	}
	copyFile(t, filepath.Join(src, "database.json"), pair.Database)
	copyFile(t, filepath.Join(src, "mock.json"), pair.Mock)
	return pair
}

// SetupMockOnly is SetupPair without the database file.
func SetupMockOnly(t *testing.T, fixture string) Pair {
	t.Helper()
	pair := SetupPair(t, fixture)
	if err := os.Remove(pair.Database); err != nil {
		t.Fatalf("Failed to remove database copy: %v", err)
	}
	return pair
}

// resolveTestPath finds the fixture from whatever directory the test runs in.
func resolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	candidates := []string{
		relativePath,
		"../" + relativePath,
		"../../" + relativePath,
		"../../../" + relativePath,
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("Fixture not found at any candidate path starting from: %s", relativePath)
	return ""
}

// copyFile copies src to dst. Calls t.Fatal if the copy fails.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Skipf("Fixture not found: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", dst, err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		t.Fatalf("Failed to copy fixture: %v", err)
	}
}
