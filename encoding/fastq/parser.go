package fastq

import (
	"bytes"
	"errors"
	"io"
)

// Parser reads FASTQ records from a stream in four-line groups, growing
// an owned buffer as needed so records of arbitrary size are supported
// without ever copying a field out of the I/O buffer more than once.
//
// A Parser is not safe for concurrent use. Once Next or
// FirstRecordHasSecondHeader returns a non-EOF error, the Parser is
// poisoned: every subsequent call returns that same error.
type Parser struct {
	r       io.Reader
	variant Variant
	builder Builder

	buf         []byte
	recordStart int
	bufEnd      int

	recordCount      int
	eof              bool
	syntheticNewline bool

	firstRecordReady bool
	firstHeaderFlag  bool
	pendingFirst     *Record

	err error
}

// NewParser constructs a Parser that reads variant-shaped records from r,
// using initialCapacity (which must be >= 1) as the starting buffer size;
// the buffer doubles on demand as larger records are encountered.
func NewParser(r io.Reader, variant Variant, initialCapacity int) (*Parser, error) {
	builder := RawBuilder
	if variant == Textual {
		builder = TextualBuilder
	}
	return newParser(r, variant, builder, initialCapacity)
}

// NewParserWithBuilder constructs a Parser like NewParser, but hands each
// record's validated fields to builder instead of one of the two
// canonical builders. Per the parser's contract, a custom builder always
// receives ASCII-validated (textual) fields.
func NewParserWithBuilder(r io.Reader, builder Builder, initialCapacity int) (*Parser, error) {
	return newParser(r, Textual, builder, initialCapacity)
}

func newParser(r io.Reader, variant Variant, builder Builder, initialCapacity int) (*Parser, error) {
	if initialCapacity < 1 {
		return nil, errors.New("fastq: initial buffer capacity must be >= 1")
	}
	return &Parser{
		r:       r,
		variant: variant,
		builder: builder,
		buf:     make([]byte, initialCapacity),
	}, nil
}

// FirstRecordHasSecondHeader forces the first record to be located (but
// not yet returned by Next) and reports whether its second header line
// ("+" line) repeated the read name. It is an artifact of the wire
// format's optional second-header repetition, exposed once so a caller
// rewriting the stream knows whether to preserve that repetition; it may
// be called at most meaningfully once, before the first call to Next, but
// is idempotent and safe to call repeatedly or not at all.
func (p *Parser) FirstRecordHasSecondHeader() (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	if !p.firstRecordReady {
		rec, flag, err := p.scanOne()
		if err != nil {
			return false, err
		}
		p.firstHeaderFlag = flag
		p.pendingFirst = rec
		p.firstRecordReady = true
	}
	return p.firstHeaderFlag, nil
}

// Next returns the next record in the stream, or io.EOF once the stream
// is exhausted. Any other error poisons the Parser.
func (p *Parser) Next() (*Record, error) {
	if p.err != nil {
		return nil, p.err
	}
	if !p.firstRecordReady {
		if _, err := p.FirstRecordHasSecondHeader(); err != nil {
			return nil, err
		}
	}
	if p.pendingFirst != nil {
		rec := p.pendingFirst
		p.pendingFirst = nil
		return rec, nil
	}
	rec, _, err := p.scanOne()
	return rec, err
}

// scanOne drives the fill/locate/materialize loop for a single record.
func (p *Parser) scanOne() (*Record, bool, error) {
	for {
		if p.eof {
			return nil, false, io.EOF
		}
		nameEnd, seqEnd, hdr2End, qualEnd, ok := p.locateRecord()
		if !ok {
			if err := p.fill(); err != nil {
				p.err = err
				return nil, false, err
			}
			if p.eof {
				return nil, false, io.EOF
			}
			continue
		}
		rec, hdr2NonEmpty, err := p.materialize(nameEnd, seqEnd, hdr2End, qualEnd)
		if err != nil {
			p.err = err
			return nil, false, err
		}
		p.recordStart = qualEnd + 1
		p.recordCount++
		return rec, hdr2NonEmpty, nil
	}
}

// locateRecord looks for four successive '\n' bytes within
// buf[recordStart:bufEnd] using a fast byte scan, and returns their
// absolute positions. ok is false if fewer than four are present yet.
func (p *Parser) locateRecord() (nameEnd, seqEnd, hdr2End, qualEnd int, ok bool) {
	data := p.buf[p.recordStart:p.bufEnd]
	i1 := bytes.IndexByte(data, '\n')
	if i1 < 0 {
		return 0, 0, 0, 0, false
	}
	i2 := bytes.IndexByte(data[i1+1:], '\n')
	if i2 < 0 {
		return 0, 0, 0, 0, false
	}
	i2 += i1 + 1
	i3 := bytes.IndexByte(data[i2+1:], '\n')
	if i3 < 0 {
		return 0, 0, 0, 0, false
	}
	i3 += i2 + 1
	i4 := bytes.IndexByte(data[i3+1:], '\n')
	if i4 < 0 {
		return 0, 0, 0, 0, false
	}
	i4 += i3 + 1
	base := p.recordStart
	return base + i1, base + i2, base + i3, base + i4, true
}

// trimCR returns end-1 if the byte immediately before position end is
// '\r', implementing the CRLF tolerance: a line ending in "\r\n" has its
// field content end one byte earlier than its LF position alone implies.
func trimCR(buf []byte, end int) int {
	if end > 0 && buf[end-1] == '\r' {
		return end - 1
	}
	return end
}

// materialize validates and extracts the record whose four lines end at
// nameEnd, seqEnd, hdr2End, and qualEnd (absolute '\n' positions), and
// hands its fields to p.builder. It reports whether the second header was
// non-empty, which only matters for the very first record in the stream.
func (p *Parser) materialize(nameEnd, seqEnd, hdr2End, qualEnd int) (*Record, bool, error) {
	buf := p.buf
	rs := p.recordStart
	base := p.recordCount * 4

	if buf[rs] != '@' {
		return nil, false, &FormatError{Line: base, Reason: "record does not start with '@'", Snippet: buf[rs:nameEnd]}
	}
	if buf[seqEnd+1] != '+' {
		return nil, false, &FormatError{Line: base + 2, Reason: "third line does not start with '+'", Snippet: buf[seqEnd+1 : hdr2End]}
	}

	nameFieldEnd := trimCR(buf, nameEnd)
	seqFieldEnd := trimCR(buf, seqEnd)
	hdr2FieldEnd := trimCR(buf, hdr2End)
	qualFieldEnd := trimCR(buf, qualEnd)

	name := buf[rs+1 : nameFieldEnd]
	sequence := buf[nameEnd+1 : seqFieldEnd]
	secondHeader := buf[seqEnd+2 : hdr2FieldEnd]
	qualities := buf[hdr2End+1 : qualFieldEnd]

	hdr2NonEmpty := len(secondHeader) > 0
	if hdr2NonEmpty && !bytes.Equal(secondHeader, name) {
		return nil, false, &FormatError{Line: base + 2, Reason: "second header does not match read name", Snippet: buf[rs:qualEnd]}
	}
	if len(qualities) != len(sequence) {
		return nil, false, &FormatError{Line: base + 3, Reason: "sequence and qualities have different lengths", Snippet: buf[rs:qualEnd]}
	}

	if p.variant == Textual {
		if !IsASCII(buf[rs:qualEnd]) {
			return nil, false, &FormatError{Line: base, Reason: "non-ASCII byte in record", Snippet: buf[rs:qualEnd]}
		}
	}

	rec, err := p.builder.Build(name, sequence, qualities)
	if err != nil {
		return nil, false, err
	}
	return rec, hdr2NonEmpty, nil
}

// fill implements the fill protocol: grow or shift the buffer, then read
// more bytes from the stream source. It sets p.eof on a clean end of
// stream, appends a synthetic newline for a file missing its final line
// terminator, and returns a *FormatError for a stream that ends mid-record.
func (p *Parser) fill() error {
	if p.recordStart == 0 && p.bufEnd == len(p.buf) {
		if err := p.growBuffer(); err != nil {
			return err
		}
	} else if p.recordStart != 0 {
		copy(p.buf, p.buf[p.recordStart:p.bufEnd])
		p.bufEnd -= p.recordStart
		p.recordStart = 0
	}

	n, err := p.r.Read(p.buf[p.bufEnd:])
	if err != nil && err != io.EOF {
		return &IOError{Err: err}
	}
	if n == 0 {
		return p.handleFillEOF()
	}
	p.bufEnd += n
	return nil
}

// handleFillEOF implements fill-protocol step 4: the read returned zero
// bytes, so the stream has ended.
func (p *Parser) handleFillEOF() error {
	if p.bufEnd > 0 && p.buf[p.bufEnd-1] != '\n' {
		p.buf[p.bufEnd] = '\n'
		p.bufEnd++
		p.syntheticNewline = true
		return nil
	}
	if p.bufEnd > 0 {
		newlines := bytes.Count(p.buf[:p.bufEnd], []byte{'\n'})
		line := p.recordCount*4 + newlines
		if p.syntheticNewline {
			line--
		}
		return &FormatError{Line: line, Reason: "premature end of file inside a record", Snippet: p.buf[:p.bufEnd]}
	}
	p.eof = true
	return nil
}

// growBuffer doubles the buffer's capacity in place, preserving its
// contents, and recovers an allocation panic into ErrOutOfMemory so a
// failure poisons the Parser like any other error instead of crashing it.
func (p *Parser) growBuffer() (err error) {
	defer func() {
		if recover() != nil {
			err = ErrOutOfMemory
		}
	}()
	grown := make([]byte, len(p.buf)*2)
	copy(grown, p.buf)
	p.buf = grown
	return nil
}
