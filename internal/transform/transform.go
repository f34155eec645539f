package transform

import (
	"fmt"
	"sort"
	"strings"

	"mpevm/internal/block"
	"mpevm/internal/gff"
)

// Transformer converts one completed block into output records.
type Transformer interface {
	Name() string
	Transform(block.Block) ([]gff.Record, error)
}

// Options carries the labels and identifier prefixes written by the
// transforms.
type Options struct {
	AlignerName     string
	AlignmentSource string
	MatchType       string
	IdentityKey     string
	GeneIDPrefix    string
	CDSIDPrefix     string
}

// DefaultOptions matches miniprot output and EVM expectations.
func DefaultOptions() Options {
	return Options{
		AlignerName:     "miniprot",
		AlignmentSource: "miniprot_protAln",
		MatchType:       "nucleotide_to_protein_match",
		IdentityKey:     "Identity",
		GeneIDPrefix:    "G_",
		CDSIDPrefix:     "CDS_",
	}
}

// Variant names accepted by New.
const (
	VariantGene      = "gene"
	VariantAlignment = "alignment"
)

// New returns the transform registered under name.
func New(name string, opts Options) (Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case VariantGene:
		return NewGeneStructure(opts), nil
	case VariantAlignment:
		return NewSplicedAlignment(opts), nil
	default:
		return nil, fmt.Errorf("unknown transform %q (available: %s)", name, strings.Join(Variants(), ", "))
	}
}

// Variants lists the registered transform names.
func Variants() []string {
	names := []string{VariantGene, VariantAlignment}
	sort.Strings(names)
	return names
}

// transcriptID returns the value of the transcript's ID attribute and its
// position in the attribute list.
func transcriptID(rec gff.Record) (string, int, error) {
	i := rec.Attributes.Index("ID")
	if i < 0 || rec.Attributes[i].Value == "" {
		return "", -1, gff.Malformed(rec, "transcript record has no ID attribute")
	}
	return rec.Attributes[i].Value, i, nil
}
