package compare

import (
	"context"

	"github.com/joshuapare/mockdiff/internal/logger"
	"github.com/joshuapare/mockdiff/pkg/pathset"
	"github.com/joshuapare/mockdiff/pkg/tree"
)

// Controller owns the view state of one database/candidate record pair.
// It is not safe for concurrent use.
type Controller struct {
	storeName string
	database  any
	candidate any
	host      Host

	expanded pathset.Set
	pending  Pending

	cloneOpen bool
	cloneErr  string
	lastErr   error
}

// New creates a controller and seeds its expansion set from both sides.
// host must not be nil.
func New(storeName string, database, candidate any, host Host) *Controller {
	c := &Controller{host: host}
	c.Initialize(storeName, database, candidate)
	return c
}

// Initialize resets the controller for a new record pair. Every object node
// on either side starts expanded. Absent sides are fine.
func (c *Controller) Initialize(storeName string, database, candidate any) {
	c.storeName = storeName
	c.database = database
	c.candidate = candidate
	c.expanded = pathset.Seed(storeName, database, candidate)
	c.pending = Pending{}
	c.cloneOpen = false
	c.cloneErr = ""
	c.lastErr = nil

	logger.Debug("compare: initialized",
		"store", storeName,
		"database", tree.ShapeOf(database).String(),
		"candidate", tree.ShapeOf(candidate).String(),
		"expanded", c.expanded.Len(),
	)
}

// SetData replaces both sides after the host reloaded them. Expansion and
// pending state are kept; paths that no longer exist are ignored.
func (c *Controller) SetData(database, candidate any) {
	c.database = database
	c.candidate = candidate
}

// StoreName returns the root segment of every path.
func (c *Controller) StoreName() string { return c.storeName }

// Database returns the authoritative side.
func (c *Controller) Database() any { return c.database }

// Candidate returns the candidate side.
func (c *Controller) Candidate() any { return c.candidate }

// Expanded returns the current expansion snapshot.
func (c *Controller) Expanded() pathset.Set { return c.expanded }

// SetExpanded replaces the expansion set, e.g. for expand-all.
func (c *Controller) SetExpanded(s pathset.Set) { c.expanded = s }

// Toggle flips the expansion of path. Toggling twice restores the old state.
func (c *Controller) Toggle(path string) {
	c.expanded = c.expanded.Toggle(path)
	logger.Debug("compare: toggle", "path", path, "expanded", c.expanded.Contains(path))
}

// Pending returns the current pending-update snapshot.
func (c *Controller) Pending() Pending { return c.pending }

// SetPending stages value at path. Hosts call this when they hold a write
// open instead of applying it immediately.
func (c *Controller) SetPending(path tree.Path, value any) {
	c.pending = c.pending.with(path, value)
}

// ClearPending drops the staged value at path, once the host has applied it.
func (c *Controller) ClearPending(path tree.Path) {
	c.pending = c.pending.without(path.String())
}

// ClearAllPending drops every staged value.
func (c *Controller) ClearAllPending() {
	c.pending = Pending{}
}

// LastError returns the most recent host failure, or nil.
func (c *Controller) LastError() error { return c.lastErr }

// RequestTransfer forwards a transfer of value to path on the database side.
// Undefined values are ignored. The controller does not stage anything
// itself; only the host knows whether the write succeeded.
func (c *Controller) RequestTransfer(ctx context.Context, path tree.Path, value any) error {
	if !tree.IsDefined(value) {
		logger.Debug("compare: transfer ignored, value undefined", "path", path.String())
		return nil
	}

	if err := c.host.UpdateExisting(ctx, path, value); err != nil {
		c.lastErr = hostError("update "+path.String(), err)
		logger.Warn("compare: transfer failed", "path", path.String(), "error", err)
		return c.lastErr
	}

	logger.Info("compare: transfer forwarded", "path", path.String())
	c.notifyChanged(ctx)
	return nil
}

// CanApprove reports whether the approve affordance is offered.
func (c *Controller) CanApprove() bool {
	return tree.ShapeOf(c.database) != tree.ShapeAbsent
}

// CanClone reports whether the clone affordance is offered: there is a
// candidate and no database record yet.
func (c *Controller) CanClone() bool {
	return tree.ShapeOf(c.database) == tree.ShapeAbsent &&
		tree.ShapeOf(c.candidate) != tree.ShapeAbsent
}

// OpenClone shows the clone surface and clears any previous host error.
func (c *Controller) OpenClone() {
	c.cloneOpen = true
	c.cloneErr = ""
}

// CancelClone hides the clone surface.
func (c *Controller) CancelClone() {
	c.cloneOpen = false
	c.cloneErr = ""
}

// CloneOpen reports whether the clone surface is showing.
func (c *Controller) CloneOpen() bool { return c.cloneOpen }

// CloneError returns the host failure message to redisplay on the clone surface.
func (c *Controller) CloneError() string { return c.cloneErr }

// Clone validates newID and asks the host to create the candidate under it.
// Validation failures change nothing. A host failure keeps the clone surface
// open with the message available from CloneError.
func (c *Controller) Clone(ctx context.Context, newID string) error {
	if err := ValidateID(newID); err != nil {
		return err
	}

	if err := c.host.CreateNew(ctx, newID); err != nil {
		c.cloneErr = err.Error()
		c.lastErr = hostError("create "+newID, err)
		logger.Warn("compare: clone failed", "id", newID, "error", err)
		return c.lastErr
	}

	c.cloneOpen = false
	c.cloneErr = ""
	logger.Info("compare: cloned", "store", c.storeName, "id", newID)
	c.notifyChanged(ctx)
	return nil
}

// Approve asks the host to commit the candidate as authoritative.
func (c *Controller) Approve(ctx context.Context) error {
	if !c.CanApprove() {
		return ErrNoDatabaseRecord
	}

	if err := c.host.ApproveNew(ctx); err != nil {
		c.lastErr = hostError("approve", err)
		logger.Warn("compare: approve failed", "store", c.storeName, "error", err)
		return c.lastErr
	}

	logger.Info("compare: approved", "store", c.storeName)
	c.notifyChanged(ctx)
	return nil
}

// notifyChanged tells the host the database side moved. The action already
// succeeded, so a failed notification is only logged.
func (c *Controller) notifyChanged(ctx context.Context) {
	n, ok := c.host.(ChangeNotifier)
	if !ok {
		return
	}
	if err := n.DatabaseRecordChanged(ctx, c.storeName); err != nil {
		logger.Warn("compare: change notification failed", "store", c.storeName, "error", err)
	}
}
