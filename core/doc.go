// Package core determines which features of an OTU table are shared by a set
// of samples or replicate groups.
//
// A count passes in a sample when it is nonzero and at least as large as the
// threshold. A feature is core for a plain selection when it passes in every
// selected sample. For replicate groups each group first keeps the features
// passing in enough of its replicates (see Tolerance), and the core is what
// every group keeps.
//
// Feature sets are roaring bitmaps over table rows, so results come back in
// table order.
package core
