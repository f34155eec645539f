package gff

import (
	"strings"

	"golang.org/x/text/cases"
)

// Kind tags a classified input line.
type Kind int

const (
	KindBoundary Kind = iota
	KindComment
	KindTranscript
	KindCodingSegment
	KindStopMarker
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindBoundary:
		return "boundary"
	case KindComment:
		return "comment"
	case KindTranscript:
		return "transcript"
	case KindCodingSegment:
		return "coding_segment"
	case KindStopMarker:
		return "stop_marker"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Feature types recognised in miniprot output and produced for EVM.
const (
	TypeTranscript    = "mRNA"
	TypeCodingSegment = "CDS"
	TypeStopMarker    = "stop_codon"
	TypeGene          = "gene"
	TypeExon          = "exon"
)

// Default sentinels used by miniprot.
const (
	DefaultBoundaryMarker = "##PAF"
	DefaultCommentPrefix  = "#"
)

// Line is a classified input line. Record is only set for data kinds.
type Line struct {
	Kind   Kind
	Number int
	Record Record
}

// Classifier tags lines by their leading sentinel or feature type. A
// Classifier is not safe for concurrent use.
type Classifier struct {
	boundary string
	comment  string
	fold     cases.Caser
	types    map[string]Kind
}

// NewClassifier returns a Classifier for the given sentinels. Empty values
// fall back to the miniprot defaults.
func NewClassifier(boundaryMarker, commentPrefix string) *Classifier {
	if boundaryMarker == "" {
		boundaryMarker = DefaultBoundaryMarker
	}
	if commentPrefix == "" {
		commentPrefix = DefaultCommentPrefix
	}
	fold := cases.Fold()
	return &Classifier{
		boundary: boundaryMarker,
		comment:  commentPrefix,
		fold:     fold,
		types: map[string]Kind{
			fold.String(TypeTranscript):    KindTranscript,
			fold.String(TypeCodingSegment): KindCodingSegment,
			fold.String(TypeStopMarker):    KindStopMarker,
		},
	}
}

// Classify inspects one line (without its trailing newline). lineNo is the
// 1-based position used in error reports.
func (c *Classifier) Classify(text string, lineNo int) (Line, error) {
	switch {
	case strings.HasPrefix(text, c.boundary):
		return Line{Kind: KindBoundary, Number: lineNo}, nil
	case strings.HasPrefix(text, c.comment):
		return Line{Kind: KindComment, Number: lineNo}, nil
	}

	rec, err := ParseRecord(text, lineNo)
	if err != nil {
		return Line{}, err
	}
	kind, ok := c.types[c.fold.String(rec.Type)]
	if !ok {
		kind = KindOther
	}
	return Line{Kind: kind, Number: lineNo, Record: rec}, nil
}
