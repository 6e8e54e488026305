// Package diffnode renders one side of a record pair as a tree of nodes.
//
// Render is a pure function of (path, value, comparison value, expansion set,
// pending snapshot, read-only flag). It decides whether each position differs
// from the other side, what to display there, whether it is expanded, and
// whether a transfer from the comparison side is offered. Nodes never change
// state themselves; a transfer is handed to a Transferer, which is the single
// write channel back to the owner of the data.
//
// Children are materialized only for expanded objects and follow the keys of
// the rendered side. Keys present only on the comparison side are not shown.
package diffnode
