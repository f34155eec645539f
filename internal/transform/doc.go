// Package transform turns completed transcript blocks into EVM records.
//
// Two variants share the Transformer capability: GeneStructure synthesizes
// gene, exon and CDS identifiers around each transcript, and
// SplicedAlignment rewrites coding segments into protein match spans scored
// by alignment identity. Transforms are pure; the caller decides where the
// records go.
package transform
