package transform

import (
	"fmt"

	"mpevm/internal/block"
	"mpevm/internal/gff"
)

// GeneStructure emits a synthesized gene, the transcript re-parented onto
// it, and an exon/CDS pair per coding segment.
type GeneStructure struct {
	opts Options
}

// NewGeneStructure returns the gene-structure transform.
func NewGeneStructure(opts Options) *GeneStructure {
	return &GeneStructure{opts: opts}
}

func (g *GeneStructure) Name() string { return VariantGene }

// Transform emits gene, transcript, then exon/CDS pairs in segment order.
// The stop marker is never emitted.
func (g *GeneStructure) Transform(b block.Block) ([]gff.Record, error) {
	if b.Empty() {
		return nil, nil
	}
	tx := b.Transcript.Clone()
	id, idPos, err := transcriptID(tx)
	if err != nil {
		return nil, err
	}
	geneID := g.opts.GeneIDPrefix + id

	out := make([]gff.Record, 0, 2+2*len(b.CodingSegments))

	gene := tx.Clone()
	gene.Type = gff.TypeGene
	gene.Attributes = gff.Attributes{
		gff.Attr("ID", geneID),
		gff.Attr("Name", fmt.Sprintf("%s model %s", g.opts.AlignerName, id)),
	}
	gene.Line = 0
	out = append(out, gene)

	tx.Attributes = tx.Attributes.InsertAfter(idPos, gff.Attr("Parent", geneID))
	out = append(out, tx)

	for i, seg := range b.CodingSegments {
		n := i + 1

		exon := seg.Clone()
		exon.Type = gff.TypeExon
		exon.Phase = gff.NullValue
		exon.Attributes = seg.Attributes.Prepend(gff.Attr("ID", fmt.Sprintf("%s.%d", id, n)))
		exon.Line = 0

		cds := seg.Clone()
		cds.Attributes = seg.Attributes.Prepend(gff.Attr("ID", fmt.Sprintf("%s%s.%d", g.opts.CDSIDPrefix, id, n)))

		out = append(out, exon, cds)
	}
	return out, nil
}
