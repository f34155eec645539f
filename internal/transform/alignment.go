package transform

import (
	"strconv"
	"strings"

	"mpevm/internal/block"
	"mpevm/internal/gff"
)

// SplicedAlignment emits one protein match record per coding segment, all
// carrying the transcript's first attribute as their identifier.
type SplicedAlignment struct {
	opts Options
}

// NewSplicedAlignment returns the spliced-alignment transform.
func NewSplicedAlignment(opts Options) *SplicedAlignment {
	return &SplicedAlignment{opts: opts}
}

func (s *SplicedAlignment) Name() string { return VariantAlignment }

// Transform rewrites each coding segment. The score column becomes the
// identity attribute as a percentage with two decimals.
func (s *SplicedAlignment) Transform(b block.Block) ([]gff.Record, error) {
	if b.Empty() {
		return nil, nil
	}
	if len(b.Transcript.Attributes) == 0 {
		return nil, gff.Malformed(*b.Transcript, "transcript record has no attributes")
	}
	head := b.Transcript.Attributes[0]

	out := make([]gff.Record, 0, len(b.CodingSegments))
	for _, seg := range b.CodingSegments {
		identity, err := s.identity(seg)
		if err != nil {
			return nil, err
		}

		match := seg.Clone()
		match.Source = s.opts.AlignmentSource
		match.Type = s.opts.MatchType
		match.Score = strconv.FormatFloat(identity*100, 'f', 2, 64)
		match.Attributes[0] = head
		out = append(out, match)
	}
	return out, nil
}

func (s *SplicedAlignment) identity(seg gff.Record) (float64, error) {
	i := seg.Attributes.IndexFold(s.opts.IdentityKey)
	if i < 0 {
		return 0, gff.Malformed(seg, "coding segment has no %s attribute", s.opts.IdentityKey)
	}
	raw := strings.TrimSpace(seg.Attributes[i].Value)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, gff.Malformed(seg, "%s attribute %q is not a number", s.opts.IdentityKey, raw)
	}
	return value, nil
}
