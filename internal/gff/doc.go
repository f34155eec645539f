// Package gff models the tab-delimited annotation lines emitted by miniprot
// and the EVM dialects derived from them.
//
// Records are kept as opaque text apart from the feature type and the
// attribute column, which is parsed into an ordered list of key/value pairs
// so callers can look pairs up by name and re-serialize them without
// disturbing the original order or spelling. The Classifier tags each input
// line as a block boundary, a comment, or a data record, and the Writer
// emits records back out one per line.
package gff
