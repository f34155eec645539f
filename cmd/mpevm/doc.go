// Package main hosts the mpevm CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes one conversion command per EVM
// dialect (`gene` for gene structures, `alignment` for spliced protein
// alignments) plus configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so the conversion commands only
// wire an input, an output, and a transform together.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
