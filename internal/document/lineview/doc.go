// Package lineview provides read-only, lazily evaluated views over the
// lines of a textstore.Store.
//
// Two flavors exist: Trimmed ranges exclude the line's EOL sequence, Raw
// ranges include it. Neither view keeps state of its own — every query is
// answered from the store's line-head table, so views can never go stale.
package lineview
