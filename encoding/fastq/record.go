// Package fastq implements a streaming FASTQ parser and record codec: the
// core of a sequence-file library, without file opening, compression, or
// FASTA support. See the package-level operations NewParser, NewRecord,
// NewTextualRecord, IDsMatch, and SyncPairedHeads.
package fastq

import (
	"bytes"
	"fmt"
)

// Variant selects how a Record's fields are interpreted and validated.
type Variant int

const (
	// Raw records hold opaque byte strings. Qualities are always
	// present and must match the sequence length.
	Raw Variant = iota
	// Textual records hold 7-bit ASCII text. Qualities are optional,
	// but when present must match the sequence length.
	Textual
)

func (v Variant) String() string {
	switch v {
	case Raw:
		return "Raw"
	case Textual:
		return "Textual"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Record holds one FASTQ entry: a name, a sequence, and (usually) a
// quality string. Records are immutable after construction; Slice returns
// a new Record rather than modifying the receiver. Fields are
// owned outright; no Record aliases a parser's internal buffer.
type Record struct {
	name      []byte
	sequence  []byte
	qualities []byte // nil means absent
	textual   bool
}

func copyBytes(src []byte) []byte {
	if src == nil {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}

func hasLineTerminator(b []byte) bool {
	return bytes.IndexByte(b, '\n') >= 0 || bytes.IndexByte(b, '\r') >= 0
}

// NewRecord constructs a Raw-variant record. qualities must be non-nil
// (the raw variant always carries qualities) and its length must
// match len(sequence); otherwise NewRecord fails with ErrWrongType or a
// *LengthMismatchError respectively.
func NewRecord(name, sequence, qualities []byte) (*Record, error) {
	if qualities == nil {
		return nil, ErrWrongType
	}
	if hasLineTerminator(name) {
		return nil, ErrWrongType
	}
	if len(qualities) != len(sequence) {
		return nil, &LengthMismatchError{Name: name, SeqLen: len(sequence), QualLen: len(qualities)}
	}
	return &Record{
		name:      copyBytes(name),
		sequence:  copyBytes(sequence),
		qualities: copyBytes(qualities),
		textual:   false,
	}, nil
}

// NewTextualRecord constructs a Textual-variant record. qualities may be
// nil to indicate it is absent. Every byte of name, sequence, and
// qualities (if present) must be in [0, 127]; otherwise NewTextualRecord
// fails with a *NonASCIIError. If qualities is non-nil its length must
// match len(sequence); otherwise it fails with a *LengthMismatchError.
func NewTextualRecord(name, sequence, qualities []byte) (*Record, error) {
	if hasLineTerminator(name) {
		return nil, ErrWrongType
	}
	if !IsASCII(name) || !IsASCII(sequence) || (qualities != nil && !IsASCII(qualities)) {
		return nil, &NonASCIIError{Snippet: name}
	}
	if qualities != nil && len(qualities) != len(sequence) {
		return nil, &LengthMismatchError{Name: name, SeqLen: len(sequence), QualLen: len(qualities)}
	}
	return &Record{
		name:      copyBytes(name),
		sequence:  copyBytes(sequence),
		qualities: copyBytes(qualities),
		textual:   true,
	}, nil
}

// newRecordUnchecked builds a Record from field ranges that a caller has
// already validated (ASCII-checked and length-matched): the parser's
// materialization path, which must not scan twice. name, sequence, and
// qualities are copied; qualities may be nil to mean absent.
func newRecordUnchecked(name, sequence, qualities []byte, textual bool) *Record {
	return &Record{
		name:      copyBytes(name),
		sequence:  copyBytes(sequence),
		qualities: copyBytes(qualities),
		textual:   textual,
	}
}

// Variant reports which variant r was constructed as.
func (r *Record) Variant() Variant {
	if r.textual {
		return Textual
	}
	return Raw
}

// Name returns the record's read name, excluding the leading '@'.
func (r *Record) Name() []byte { return r.name }

// Sequence returns the record's base sequence.
func (r *Record) Sequence() []byte { return r.sequence }

// Len returns the length of the record's sequence.
func (r *Record) Len() int { return len(r.sequence) }

// HasQualities reports whether the record carries a quality string.
func (r *Record) HasQualities() bool { return r.qualities != nil }

// QualitiesBytes returns the record's quality string as ASCII bytes. It
// fails with ErrMissingQualities if the record has none.
func (r *Record) QualitiesBytes() ([]byte, error) {
	if r.qualities == nil {
		return nil, ErrMissingQualities
	}
	return r.qualities, nil
}

// Slice returns a new record whose sequence (and qualities, if present) is
// sequence[start:end]; name is carried unchanged. Bounds follow normal Go
// half-open slicing semantics and panic the same way on an invalid range.
func (r *Record) Slice(start, end int) *Record {
	sliced := &Record{
		name:     r.name,
		sequence: r.sequence[start:end],
		textual:  r.textual,
	}
	if r.qualities != nil {
		sliced.qualities = r.qualities[start:end]
	}
	return sliced
}

// Equal reports whether r and other have identical name, sequence, and
// qualities (including whether qualities is present at all). It is the
// only comparison this package defines; Record has no ordering.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		return false
	}
	if (r.qualities == nil) != (other.qualities == nil) {
		return false
	}
	return bytes.Equal(r.name, other.name) &&
		bytes.Equal(r.sequence, other.sequence) &&
		bytes.Equal(r.qualities, other.qualities)
}

// IsMate reports whether r and other are reads from the same pair, per
// IDsMatch applied to their names.
func (r *Record) IsMate(other *Record) bool {
	return IDsMatch(r.name, other.name)
}

// String returns a human-readable dump of r, with any field longer than
// 100 bytes elided in the middle.
func (r *Record) String() string {
	quals := "<absent>"
	if r.qualities != nil {
		quals = fmt.Sprintf("%q", shorten(r.qualities, reprLimit))
	}
	return fmt.Sprintf("Record{Variant: %s, Name: %q, Sequence: %q, Qualities: %s}",
		r.Variant(), shorten(r.name, reprLimit), shorten(r.sequence, reprLimit), quals)
}
