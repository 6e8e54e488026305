// Package compare orchestrates one database/candidate record pair.
//
// A Controller owns the expansion set and the pending-update snapshot for the
// pair, renders either side as a diffnode forest, and forwards user intent
// (transfer, clone, approve) to a Host. The controller never persists
// anything: the host decides whether a write happened and feeds the outcome
// back through SetPending, ClearPending and SetData.
//
// # Quick Start
//
//	ctrl := compare.New("orders", dbRecords, mockRecords, host)
//	for _, n := range ctrl.RenderDatabase() {
//	    n.Walk(func(n *diffnode.Node) bool {
//	        if n.CanTransfer {
//	            _ = n.Transfer(ctx, ctrl)
//	        }
//	        return true
//	    })
//	}
//
// # Error Handling
//
// Clone ids are validated before the host is involved and fail with a
// *ValidationError. Host failures are returned wrapped, remembered in
// LastError, and leave expansion and pending state untouched.
package compare
