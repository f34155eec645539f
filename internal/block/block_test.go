package block

import (
	"errors"
	"testing"

	"mpevm/internal/gff"
)

func record(t *testing.T, typ, attrs string, lineNo int) gff.Record {
	t.Helper()
	rec, err := gff.ParseRecord("chr1\tminiprot\t"+typ+"\t1\t9\t0\t+\t.\t"+attrs, lineNo)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	return rec
}

func line(kind gff.Kind, rec gff.Record) gff.Line {
	return gff.Line{Kind: kind, Number: rec.Line, Record: rec}
}

func boundary() gff.Line {
	return gff.Line{Kind: gff.KindBoundary}
}

func TestFirstBoundaryDoesNotFlush(t *testing.T) {
	var got []Block
	acc := NewAccumulator(func(b Block) error {
		got = append(got, b)
		return nil
	})
	if err := acc.Feed(boundary()); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := acc.Feed(gff.Line{Kind: gff.KindComment}); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no flush, got %d", len(got))
	}
}

func TestBlocksFlushAtBoundaryAndEnd(t *testing.T) {
	var got []Block
	acc := NewAccumulator(func(b Block) error {
		got = append(got, b)
		return nil
	})

	feed := []gff.Line{
		boundary(),
		line(gff.KindTranscript, record(t, "mRNA", "ID=t1", 2)),
		line(gff.KindCodingSegment, record(t, "CDS", "Parent=t1;Rank=1", 3)),
		line(gff.KindCodingSegment, record(t, "CDS", "Parent=t1;Rank=2", 4)),
		line(gff.KindStopMarker, record(t, "stop_codon", "Parent=t1", 5)),
		line(gff.KindOther, record(t, "five_prime_UTR", "Parent=t1", 6)),
		boundary(),
		line(gff.KindTranscript, record(t, "mRNA", "ID=t2", 8)),
		line(gff.KindCodingSegment, record(t, "CDS", "Parent=t2", 9)),
	}
	for _, l := range feed {
		if err := acc.Feed(l); err != nil {
			t.Fatalf("Feed: %v", err)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 flush before end, got %d", len(got))
	}
	if err := acc.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(got) != 2 || acc.Flushed() != 2 {
		t.Fatalf("expected 2 flushes, got %d (%d)", len(got), acc.Flushed())
	}

	first := got[0]
	if v, _ := first.Transcript.Attributes.Get("ID"); v != "t1" {
		t.Fatalf("first transcript = %q", v)
	}
	if len(first.CodingSegments) != 2 {
		t.Fatalf("first block segments = %d", len(first.CodingSegments))
	}
	if first.CodingSegments[0].Line != 3 || first.CodingSegments[1].Line != 4 {
		t.Fatalf("segments reordered: %d, %d", first.CodingSegments[0].Line, first.CodingSegments[1].Line)
	}
	if first.StopMarker == nil || first.StopMarker.Line != 5 {
		t.Fatalf("stop marker not retained: %+v", first.StopMarker)
	}
	if got[1].StopMarker != nil {
		t.Fatal("stop marker leaked into the next block")
	}
	if len(got[1].CodingSegments) != 1 {
		t.Fatalf("second block segments = %d", len(got[1].CodingSegments))
	}
}

func TestLastTranscriptWins(t *testing.T) {
	var got []Block
	acc := NewAccumulator(func(b Block) error {
		got = append(got, b)
		return nil
	})
	_ = acc.Feed(line(gff.KindTranscript, record(t, "mRNA", "ID=a", 1)))
	_ = acc.Feed(line(gff.KindTranscript, record(t, "mRNA", "ID=b", 2)))
	if err := acc.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if v, _ := got[0].Transcript.Attributes.Get("ID"); v != "b" {
		t.Fatalf("transcript = %q, want b", v)
	}
}

func TestFinishOnEmptyBlockIsNoop(t *testing.T) {
	calls := 0
	acc := NewAccumulator(func(Block) error {
		calls++
		return nil
	})
	_ = acc.Feed(boundary())
	_ = acc.Feed(line(gff.KindCodingSegment, record(t, "CDS", "Parent=x", 2)))
	if err := acc.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no flush, got %d", calls)
	}
	if acc.Discarded() != 1 {
		t.Fatalf("discarded = %d, want 1", acc.Discarded())
	}
}

func TestFlushedBlockIsACopy(t *testing.T) {
	var got []Block
	acc := NewAccumulator(func(b Block) error {
		got = append(got, b)
		return nil
	})
	_ = acc.Feed(line(gff.KindTranscript, record(t, "mRNA", "ID=t1", 1)))
	_ = acc.Feed(line(gff.KindCodingSegment, record(t, "CDS", "Parent=t1", 2)))
	_ = acc.Feed(boundary())
	_ = acc.Feed(line(gff.KindTranscript, record(t, "mRNA", "ID=t2", 4)))
	_ = acc.Feed(line(gff.KindCodingSegment, record(t, "CDS", "Parent=t2", 5)))

	if len(got[0].CodingSegments) != 1 || got[0].CodingSegments[0].Line != 2 {
		t.Fatalf("flushed block changed after reset: %+v", got[0].CodingSegments)
	}
	pending := acc.Pending()
	if v, _ := pending.Transcript.Attributes.Get("ID"); v != "t2" {
		t.Fatalf("pending transcript = %q", v)
	}
}

func TestFlushErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	acc := NewAccumulator(func(Block) error { return boom })
	_ = acc.Feed(line(gff.KindTranscript, record(t, "mRNA", "ID=t1", 1)))
	if err := acc.Feed(boundary()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestSegmentsBeforeFirstTranscriptCarryAcrossBoundary(t *testing.T) {
	var got []Block
	acc := NewAccumulator(func(b Block) error {
		got = append(got, b)
		return nil
	})

	feed := []gff.Line{
		line(gff.KindCodingSegment, record(t, "CDS", "Parent=t0", 1)),
		boundary(),
		line(gff.KindTranscript, record(t, "mRNA", "ID=t1", 3)),
		line(gff.KindCodingSegment, record(t, "CDS", "Parent=t1", 4)),
	}
	for _, l := range feed {
		if err := acc.Feed(l); err != nil {
			t.Fatalf("Feed: %v", err)
		}
	}
	if len(got) != 0 {
		t.Fatalf("boundary on a block without transcript flushed %d blocks", len(got))
	}
	if err := acc.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 flush, got %d", len(got))
	}
	segs := got[0].CodingSegments
	if len(segs) != 2 {
		t.Fatalf("segments = %d, want 2", len(segs))
	}
	if segs[0].Line != 1 || segs[1].Line != 4 {
		t.Fatalf("segments out of input order: %d, %d", segs[0].Line, segs[1].Line)
	}
	if acc.Discarded() != 0 {
		t.Fatalf("discarded = %d", acc.Discarded())
	}
}
