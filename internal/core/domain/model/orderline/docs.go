// Package orderline provides the ledger of requested, picked and packed
// quantities per product line of an order, plus the box assignment made at
// packing time. The ledger is coordinated with, but independent of, the
// order's workflow status: quantities can be reported while the order moves
// through its stages.
package orderline
