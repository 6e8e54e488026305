package compare

import (
	"context"

	"github.com/joshuapare/mockdiff/pkg/tree"
)

// Host is the application that owns the records. Every method may block and
// may fail; the controller treats them as opaque.
type Host interface {
	// ApproveNew commits the candidate record as authoritative.
	ApproveNew(ctx context.Context) error
	// CreateNew stores the candidate under newID. It fails if newID exists.
	CreateNew(ctx context.Context, newID string) error
	// UpdateExisting applies one path's value on the database side.
	UpdateExisting(ctx context.Context, path tree.Path, value any) error
}

// ChangeNotifier is implemented by hosts that want to hear when a successful
// action means the database side should be reloaded.
type ChangeNotifier interface {
	DatabaseRecordChanged(ctx context.Context, storeName string) error
}
