package gff

import "strings"

// FieldCount is the number of tab-separated columns in a record.
const FieldCount = 9

// NullValue fills columns that carry no value.
const NullValue = "."

// Column positions within a record line.
const (
	FieldSeqID = iota
	FieldSource
	FieldType
	FieldStart
	FieldEnd
	FieldScore
	FieldStrand
	FieldPhase
	FieldAttributes
)

// Record is one annotation line. Apart from Type and Attributes every column
// is carried through verbatim.
type Record struct {
	SeqID      string
	Source     string
	Type       string
	Start      string
	End        string
	Score      string
	Strand     string
	Phase      string
	Attributes Attributes

	// Line is the 1-based input line the record was read from, or zero for
	// synthesized records.
	Line int
}

// ParseRecord splits a single line (without its newline) into a Record.
// Tabs beyond the ninth column stay inside the attribute column.
func ParseRecord(line string, lineNo int) (Record, error) {
	fields := strings.SplitN(line, "\t", FieldCount)
	if len(fields) < FieldCount {
		return Record{}, &MalformedRecordError{
			Line:   lineNo,
			Text:   line,
			Reason: "expected 9 tab-separated fields",
		}
	}
	return Record{
		SeqID:      fields[FieldSeqID],
		Source:     fields[FieldSource],
		Type:       fields[FieldType],
		Start:      fields[FieldStart],
		End:        fields[FieldEnd],
		Score:      fields[FieldScore],
		Strand:     fields[FieldStrand],
		Phase:      fields[FieldPhase],
		Attributes: ParseAttributes(fields[FieldAttributes]),
		Line:       lineNo,
	}, nil
}

// Clone returns a copy that shares no attribute storage with r.
func (r Record) Clone() Record {
	r.Attributes = r.Attributes.Clone()
	return r
}

// Fields returns the nine columns in output order.
func (r Record) Fields() []string {
	return []string{
		r.SeqID,
		r.Source,
		r.Type,
		r.Start,
		r.End,
		r.Score,
		r.Strand,
		r.Phase,
		r.Attributes.String(),
	}
}

// String renders the record as a tab-delimited line without a newline.
func (r Record) String() string {
	return strings.Join(r.Fields(), "\t")
}
