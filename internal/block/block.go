// Package block groups a classified line stream into per-transcript blocks.
package block

import (
	"mpevm/internal/gff"
)

// Block holds the records collected for one transcript.
type Block struct {
	Transcript     *gff.Record
	CodingSegments []gff.Record
	// StopMarker is retained but never emitted by any transform.
	StopMarker *gff.Record
}

// Empty reports whether no transcript record has been collected.
func (b Block) Empty() bool {
	return b.Transcript == nil
}

// Clone returns a deep copy so the receiver can be reused without aliasing.
func (b Block) Clone() Block {
	out := Block{}
	if b.Transcript != nil {
		rec := b.Transcript.Clone()
		out.Transcript = &rec
	}
	if b.StopMarker != nil {
		rec := b.StopMarker.Clone()
		out.StopMarker = &rec
	}
	if len(b.CodingSegments) > 0 {
		out.CodingSegments = make([]gff.Record, len(b.CodingSegments))
		for i, seg := range b.CodingSegments {
			out.CodingSegments[i] = seg.Clone()
		}
	}
	return out
}

// FlushFunc receives each completed block.
type FlushFunc func(Block) error

// Accumulator is the block state machine. It owns exactly one in-flight
// block and hands a copy of it to the flush callback at every boundary that
// follows collected data, and once more at end of input.
type Accumulator struct {
	current Block
	flush   FlushFunc

	flushed   int
	discarded int
}

// NewAccumulator returns an Accumulator in the empty state.
func NewAccumulator(flush FlushFunc) *Accumulator {
	return &Accumulator{flush: flush}
}

// Feed applies one classified line.
func (a *Accumulator) Feed(line gff.Line) error {
	switch line.Kind {
	case gff.KindBoundary:
		if a.current.Empty() {
			return nil
		}
		return a.emit()
	case gff.KindTranscript:
		rec := line.Record
		a.current.Transcript = &rec
	case gff.KindCodingSegment:
		a.current.CodingSegments = append(a.current.CodingSegments, line.Record)
	case gff.KindStopMarker:
		rec := line.Record
		a.current.StopMarker = &rec
	}
	return nil
}

// Finish flushes the final block at end of input. A block without a
// transcript is dropped; its coding segments are counted as discarded.
func (a *Accumulator) Finish() error {
	if a.current.Empty() {
		a.discarded += len(a.current.CodingSegments)
		a.current = Block{}
		return nil
	}
	return a.emit()
}

// Pending returns a copy of the in-flight block.
func (a *Accumulator) Pending() Block {
	return a.current.Clone()
}

// Flushed returns the number of blocks handed to the flush callback.
func (a *Accumulator) Flushed() int {
	return a.flushed
}

// Discarded returns the number of coding segments dropped at end of input
// because no transcript record accompanied them.
func (a *Accumulator) Discarded() int {
	return a.discarded
}

func (a *Accumulator) emit() error {
	done := a.current.Clone()
	a.current = Block{}
	a.flushed++
	if a.flush == nil {
		return nil
	}
	return a.flush(done)
}
