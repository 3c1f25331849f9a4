package fastq

// Builder constructs a record from field byte ranges the parser has
// already located and validated (ASCII-checked when the parser's variant
// is Textual, length-matched against the sequence). Implementations must
// copy name, sequence, and qualities rather than retaining the slices, as
// they alias the parser's internal buffer and are invalidated on the next
// call to Next.
//
// Two canonical builders ship: RawBuilder and TextualBuilder. A caller
// may supply any other Builder to NewParserWithBuilder to control how
// records are constructed from the same validated fields. Build always
// returns a *Record; the parser does not produce any other record type.
type Builder interface {
	Build(name, sequence, qualities []byte) (*Record, error)
}

type rawBuilder struct{}

func (rawBuilder) Build(name, sequence, qualities []byte) (*Record, error) {
	return newRecordUnchecked(name, sequence, qualities, false), nil
}

type textualBuilder struct{}

func (textualBuilder) Build(name, sequence, qualities []byte) (*Record, error) {
	return newRecordUnchecked(name, sequence, qualities, true), nil
}

var (
	// RawBuilder builds Raw-variant Records without re-validating ASCII.
	RawBuilder Builder = rawBuilder{}
	// TextualBuilder builds Textual-variant Records without re-scanning
	// for ASCII: the parser has already swept the whole record once.
	TextualBuilder Builder = textualBuilder{}
)
