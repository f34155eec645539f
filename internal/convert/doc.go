// Package convert drives a single pass over a miniprot annotation stream.
//
// Lines flow strictly forward: each one is classified, fed to the block
// accumulator, and every completed block is transformed and written before
// the next line is read. Only one block is alive at a time. The package
// also owns the input source (plain or gzip-compressed files) and the output
// sink (stdout or a lock-protected file).
package convert
