package recordstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mockdiff/pkg/compare"
	"github.com/joshuapare/mockdiff/pkg/diffnode"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func openPair(t *testing.T, db, mock string, staged bool) (*Store, *compare.Controller, string) {
	t.Helper()
	dir := t.TempDir()
	opts := Options{
		Store:     "orders",
		Database:  writeFile(t, dir, "db.json", db),
		Candidate: writeFile(t, dir, "mock.json", mock),
		Staged:    staged,
		Backup:    true,
	}
	s, err := Open(opts)
	require.NoError(t, err)
	return s, s.NewController(), opts.Database
}

func readBack(t *testing.T, path string) any {
	t.Helper()
	doc, err := ReadDocument(path)
	require.NoError(t, err)
	return doc
}

func TestOpen_MissingAndEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(Options{
		Store:     "orders",
		Database:  filepath.Join(dir, "missing.json"),
		Candidate: writeFile(t, dir, "empty.json", "  \n"),
	})
	require.NoError(t, err)
	assert.Nil(t, s.Database())
	assert.Nil(t, s.Candidate())

	_, err = Open(Options{Database: writeFile(t, dir, "bad.json", "{")})
	require.Error(t, err)
}

func TestStore_DirectTransfer(t *testing.T) {
	s, ctrl, dbPath := openPair(t,
		`[{"id":"o1","amount":100,"status":"open"}]`,
		`[{"id":"o1","amount":150,"status":"closed"}]`,
		false)

	amount := diffnode.Find(ctrl.RenderDatabase(), tree.NewPath("orders", "o1", "amount"))
	require.NotNil(t, amount)
	require.NoError(t, amount.Transfer(context.Background(), ctrl))

	want := mustDecode(t, `[{"id":"o1","amount":150,"status":"open"}]`)
	assert.True(t, tree.Equal(want, readBack(t, dbPath)))
	assert.True(t, tree.Equal(want, ctrl.Database()), "controller sees reloaded data")
	assert.True(t, tree.Equal(want, s.Database()))

	// The sibling status edit is still pending on the candidate side.
	status := diffnode.Find(ctrl.RenderDatabase(), tree.NewPath("orders", "o1", "status"))
	require.NotNil(t, status)
	assert.True(t, status.CanTransfer)

	_, err := os.Stat(dbPath + ".bak")
	require.NoError(t, err)
}

func TestStore_StagedTransferAndCommit(t *testing.T) {
	s, ctrl, dbPath := openPair(t,
		`[{"id":"o1","amount":100,"status":"open"}]`,
		`[{"id":"o1","amount":150,"status":"closed"}]`,
		true)
	ctx := context.Background()

	for _, key := range []string{"amount", "status"} {
		n := diffnode.Find(ctrl.RenderDatabase(), tree.NewPath("orders", "o1", key))
		require.NotNil(t, n)
		require.NoError(t, n.Transfer(ctx, ctrl))
	}
	require.Equal(t, 2, ctrl.Pending().Len())

	// Nothing written yet, but the staged values render.
	assert.True(t, tree.Equal(mustDecode(t, `[{"id":"o1","amount":100,"status":"open"}]`), readBack(t, dbPath)))
	amount := diffnode.Find(ctrl.RenderDatabase(), tree.NewPath("orders", "o1", "amount"))
	assert.Equal(t, "150", amount.Display)
	assert.False(t, amount.CanTransfer)

	n, err := s.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Zero(t, ctrl.Pending().Len())
	assert.True(t, tree.Equal(mustDecode(t, `[{"id":"o1","amount":150,"status":"closed"}]`), readBack(t, dbPath)))

	for _, node := range diffnode.Flatten(ctrl.RenderDatabase()) {
		assert.False(t, node.Different(), node.Path.String())
	}

	n, err = s.Commit(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_CommitFailureKeepsPending(t *testing.T) {
	s, ctrl, dbPath := openPair(t, `[{"id":"o1","a":1}]`, `[{"id":"o1","a":2}]`, true)
	ctrl.SetPending(tree.NewPath("orders", "ghost", "a"), 1.0)

	_, err := s.Commit(context.Background())
	require.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, 1, ctrl.Pending().Len())
	assert.True(t, tree.Equal(mustDecode(t, `[{"id":"o1","a":1}]`), readBack(t, dbPath)))

	s.Discard()
	assert.Zero(t, ctrl.Pending().Len())
}

func TestStore_Clone(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "db.json")
	s, err := Open(Options{
		Store:     "orders",
		Database:  dbPath,
		Candidate: writeFile(t, dir, "mock.json", `[{"id":"x","v":1}]`),
	})
	require.NoError(t, err)
	ctrl := s.NewController()
	require.True(t, ctrl.CanClone())

	ctrl.OpenClone()
	require.NoError(t, ctrl.Clone(context.Background(), "order_1"))
	assert.False(t, ctrl.CloneOpen())
	assert.True(t, tree.Equal(mustDecode(t, `[{"id":"order_1","v":1}]`), readBack(t, dbPath)))
	assert.True(t, ctrl.CanApprove())

	ctrl.OpenClone()
	err = ctrl.Clone(context.Background(), "order_1")
	require.ErrorIs(t, err, ErrRecordExists)
	assert.True(t, ctrl.CloneOpen())
	assert.Contains(t, ctrl.CloneError(), "already exists")
}

func TestStore_Approve(t *testing.T) {
	_, ctrl, dbPath := openPair(t, `[{"id":"a","v":1}]`, `[{"id":"a","v":2},{"id":"b","v":3}]`, false)

	require.NoError(t, ctrl.Approve(context.Background()))
	assert.True(t, tree.Equal(mustDecode(t, `[{"id":"a","v":2},{"id":"b","v":3}]`), readBack(t, dbPath)))
	assert.Zero(t, diffnode.Summarize(ctrl.RenderDatabase()).Modified)
}

func TestStore_CancelledContext(t *testing.T) {
	_, ctrl, _ := openPair(t, `{"a":1}`, `{"a":2}`, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ctrl.RequestTransfer(ctx, tree.NewPath("orders", "a"), 2.0)
	require.ErrorIs(t, err, context.Canceled)
}
