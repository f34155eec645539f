package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"mpevm/internal/block"
	"mpevm/internal/gff"
	"mpevm/internal/logging"
	"mpevm/internal/transform"
)

// Options configures line classification and diagnostics.
type Options struct {
	BoundaryMarker string
	CommentPrefix  string
	Logger         *slog.Logger
}

// Stats summarizes one conversion run.
type Stats struct {
	LinesRead         int
	Boundaries        int
	Comments          int
	Transcripts       int
	CodingSegments    int
	StopMarkers       int
	OtherRecords      int
	BlocksFlushed     int
	RecordsWritten    int
	DiscardedSegments int
	// WrittenByType counts emitted records per feature type.
	WrittenByType map[string]int
}

// WrittenTypes returns the emitted feature types in sorted order.
func (s Stats) WrittenTypes() []string {
	types := make([]string, 0, len(s.WrittenByType))
	for typ := range s.WrittenByType {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

func (s *Stats) count(kind gff.Kind) {
	switch kind {
	case gff.KindBoundary:
		s.Boundaries++
	case gff.KindComment:
		s.Comments++
	case gff.KindTranscript:
		s.Transcripts++
	case gff.KindCodingSegment:
		s.CodingSegments++
	case gff.KindStopMarker:
		s.StopMarkers++
	case gff.KindOther:
		s.OtherRecords++
	}
}

// Converter runs the classify → accumulate → transform → emit pipeline for
// one output dialect.
type Converter struct {
	transformer    transform.Transformer
	boundaryMarker string
	commentPrefix  string
	logger         *slog.Logger
}

// New returns a Converter that emits records produced by t.
func New(t transform.Transformer, opts Options) *Converter {
	return &Converter{
		transformer:    t,
		boundaryMarker: opts.BoundaryMarker,
		commentPrefix:  opts.CommentPrefix,
		logger:         logging.NewComponentLogger(opts.Logger, "convert"),
	}
}

// Run reads r to the end and writes converted records to w. The returned
// Stats are valid even when an error stops the run early. Output produced
// before an error is flushed.
func (c *Converter) Run(ctx context.Context, r io.Reader, w io.Writer) (stats Stats, err error) {
	logger := logging.WithContext(ctx, c.logger).With(logging.String(logging.FieldVariant, c.transformer.Name()))
	stats.WrittenByType = map[string]int{}

	out := gff.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("write output: %w", flushErr)
		}
		stats.RecordsWritten = out.Count()
	}()

	classifier := gff.NewClassifier(c.boundaryMarker, c.commentPrefix)
	acc := block.NewAccumulator(func(b block.Block) error {
		recs, err := c.transformer.Transform(b)
		if err != nil {
			return err
		}
		if logger.Enabled(ctx, slog.LevelDebug) {
			id, _ := b.Transcript.Attributes.Get("ID")
			logger.Debug("block flushed", logging.Args(
				logging.String(logging.FieldTranscriptID, id),
				logging.Int(logging.FieldLine, b.Transcript.Line),
				logging.Int("segments", len(b.CodingSegments)),
				logging.Int("records", len(recs)),
			)...)
		}
		if err := out.WriteAll(recs); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		for _, rec := range recs {
			stats.WrittenByType[rec.Type]++
		}
		return nil
	})
	defer func() {
		stats.BlocksFlushed = acc.Flushed()
		stats.DiscardedSegments = acc.Discarded()
	}()

	src := newLineSource(r)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		text, lineNo, ok := src.Next()
		if !ok {
			break
		}
		stats.LinesRead = lineNo

		line, err := classifier.Classify(text, lineNo)
		if err != nil {
			return stats, err
		}
		stats.count(line.Kind)
		if err := acc.Feed(line); err != nil {
			return stats, err
		}
	}
	if err := src.Err(); err != nil {
		return stats, fmt.Errorf("read input: %w", err)
	}

	pending := acc.Pending()
	if err := acc.Finish(); err != nil {
		return stats, err
	}
	if n := acc.Discarded(); n > 0 {
		logger.Warn("coding segments without a transcript record were dropped", logging.Args(
			logging.Int("segments", n),
			logging.Int(logging.FieldLine, pending.CodingSegments[0].Line),
		)...)
	}
	return stats, nil
}

// Canceled reports whether err stems from context cancellation.
func Canceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
