package recordstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuapare/mockdiff/internal/logger"
	"github.com/joshuapare/mockdiff/pkg/compare"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

// Options controls how a Store reads and writes its documents.
type Options struct {
	// Store is the root path segment used by the controller.
	Store string
	// Database is the file holding the authoritative document.
	Database string
	// Candidate is the file holding the mock document. It is never written.
	Candidate string
	// Staged holds transfers as pending updates until Commit.
	Staged bool
	// Backup copies the database file to <file>.bak before the first write.
	Backup bool
}

// Store is a compare.Host backed by two JSON files.
type Store struct {
	opts      Options
	db        any
	candidate any
	ctrl      *compare.Controller
	backedUp  bool
}

// Open reads both documents. Missing files are absent sides.
func Open(opts Options) (*Store, error) {
	s := &Store{opts: opts}

	if opts.Database != "" {
		db, err := ReadDocument(opts.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		s.db = db
	}
	if opts.Candidate != "" {
		cand, err := ReadDocument(opts.Candidate)
		if err != nil {
			return nil, fmt.Errorf("open candidate: %w", err)
		}
		s.candidate = cand
	}

	logger.Debug("recordstore: opened",
		"database", opts.Database,
		"candidate", opts.Candidate,
		"staged", opts.Staged,
	)
	return s, nil
}

// NewController creates a controller over the loaded documents with the
// store as its host.
func (s *Store) NewController() *compare.Controller {
	s.ctrl = compare.New(s.opts.Store, s.db, s.candidate, s)
	return s.ctrl
}

// Database returns the current authoritative document.
func (s *Store) Database() any { return s.db }

// Candidate returns the candidate document.
func (s *Store) Candidate() any { return s.candidate }

// Staged reports whether transfers are held as pending updates.
func (s *Store) Staged() bool { return s.opts.Staged }

// UpdateExisting applies a transfer. In staged mode the value is only handed
// to the controller as a pending update.
func (s *Store) UpdateExisting(ctx context.Context, path tree.Path, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.opts.Staged {
		if s.ctrl == nil {
			return errors.New("recordstore: staged mode needs a controller")
		}
		s.ctrl.SetPending(path, value)
		logger.Debug("recordstore: staged", "path", path.String())
		return nil
	}

	updated, err := UpdateByPath(s.db, path, value)
	if err != nil {
		return fmt.Errorf("update %s: %w", path, err)
	}
	return s.write(updated)
}

// CreateNew appends a copy of the candidate record under newID.
func (s *Store) CreateNew(ctx context.Context, newID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	updated, err := CloneRecord(s.db, s.candidate, newID)
	if err != nil {
		return err
	}
	return s.write(updated)
}

// ApproveNew makes the candidate authoritative.
func (s *Store) ApproveNew(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	updated, err := ApproveRecords(s.db, s.candidate)
	if err != nil {
		return err
	}
	return s.write(updated)
}

// DatabaseRecordChanged reloads the database file and hands both sides back
// to the controller.
func (s *Store) DatabaseRecordChanged(ctx context.Context, storeName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.opts.Database != "" {
		db, err := ReadDocument(s.opts.Database)
		if err != nil {
			return err
		}
		s.db = db
	}
	if s.ctrl != nil {
		s.ctrl.SetData(s.db, s.candidate)
	}
	logger.Debug("recordstore: reloaded", "store", storeName)
	return nil
}

// Commit writes every pending update in one patch and clears them from the
// controller. It returns how many paths were written. On failure nothing is
// written and the pending updates stay staged.
func (s *Store) Commit(ctx context.Context) (int, error) {
	if s.ctrl == nil {
		return 0, nil
	}
	pending := s.ctrl.Pending()
	if pending.Len() == 0 {
		return 0, nil
	}

	updated, err := ApplyUpdates(s.db, pending.Entries())
	if err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	if err := s.write(updated); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	for _, u := range pending.Entries() {
		s.ctrl.ClearPending(u.Path)
	}
	logger.Info("recordstore: committed", "paths", pending.Len())

	if err := s.DatabaseRecordChanged(ctx, s.opts.Store); err != nil {
		return pending.Len(), err
	}
	return pending.Len(), nil
}

// Discard drops every pending update without writing.
func (s *Store) Discard() {
	if s.ctrl != nil {
		s.ctrl.ClearAllPending()
	}
}

func (s *Store) write(doc any) error {
	if s.opts.Database == "" {
		return errors.New("recordstore: no database file configured")
	}
	if s.opts.Backup && !s.backedUp {
		if err := backupFile(s.opts.Database); err != nil {
			return err
		}
		s.backedUp = true
	}
	if err := WriteDocument(s.opts.Database, doc); err != nil {
		return err
	}
	s.db = doc
	logger.Debug("recordstore: wrote database", "path", s.opts.Database)
	return nil
}
