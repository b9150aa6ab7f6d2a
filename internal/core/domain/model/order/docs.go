// Package order implements the customer-order aggregate: the order lifecycle
// state machine, line items with their free-form variant metadata, and the
// size-resolution rules that make inconsistently entered line data matchable
// against the catalog.
package order
