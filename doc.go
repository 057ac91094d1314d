// Package panbiom holds the input plumbing shared by the panbiom packages and
// commands: opening local or Google Storage paths, sniffing compression and
// guessing the delimiter of tabular OTU data.
//
// The core/accessory/unique computation itself lives in package core, the
// abundance matrix in otutable, and the subset-space accounting in curve.
package panbiom
