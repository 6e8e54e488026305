package recordstore

import "errors"

var (
	// ErrNoDocument indicates the database side has no document to write into.
	ErrNoDocument = errors.New("recordstore: no database document")
	// ErrNoCandidate indicates the candidate side has no record to copy.
	ErrNoCandidate = errors.New("recordstore: no candidate record")
	// ErrRecordNotFound indicates a path names a record id the document lacks.
	ErrRecordNotFound = errors.New("recordstore: record not found")
	// ErrRecordExists indicates a clone target id is already taken.
	ErrRecordExists = errors.New("recordstore: record already exists")
	// ErrShape indicates the document layout cannot hold the requested change.
	ErrShape = errors.New("recordstore: unsupported document shape")
	// ErrPath indicates a path too short to address anything below the store.
	ErrPath = errors.New("recordstore: invalid path")
)
