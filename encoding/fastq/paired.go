package fastq

import "io"

// ErrDiscordant is returned when one paired stream ends before the other.
var ErrDiscordant = NewDiscordantError()

// DiscordantError reports that a PairedReader's two streams disagree on
// how many records they hold, or disagree on mate identity.
type DiscordantError struct {
	Reason string
}

// NewDiscordantError constructs the default discordant-pair error.
func NewDiscordantError() *DiscordantError {
	return &DiscordantError{Reason: "paired FASTQ streams are discordant"}
}

func (e *DiscordantError) Error() string { return e.Reason }

// PairedReader composes two Parsers to read matched mate pairs from two
// FASTQ streams. It is the streaming analogue of SyncPairedHeads: instead
// of resynchronizing two in-memory buffers, it checks each successive
// pair of records for mate identity as they are parsed.
type PairedReader struct {
	p1, p2 *Parser
	err    error
}

// NewPairedReader constructs a PairedReader over two already-constructed
// Parsers, one per mate stream.
func NewPairedReader(p1, p2 *Parser) *PairedReader {
	return &PairedReader{p1: p1, p2: p2}
}

// Next returns the next mate pair, or io.EOF once both streams are
// exhausted at the same record. If one stream ends before the other, or
// a pair's two names fail IDsMatch, Next returns a *DiscordantError and
// the PairedReader is poisoned like a Parser.
func (p *PairedReader) Next() (r1, r2 *Record, err error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	r1, err1 := p.p1.Next()
	r2, err2 := p.p2.Next()
	switch {
	case err1 == io.EOF && err2 == io.EOF:
		return nil, nil, io.EOF
	case err1 == io.EOF || err2 == io.EOF:
		p.err = ErrDiscordant
		return nil, nil, p.err
	case err1 != nil:
		p.err = err1
		return nil, nil, err1
	case err2 != nil:
		p.err = err2
		return nil, nil, err2
	}
	if !r1.IsMate(r2) {
		p.err = &DiscordantError{Reason: "mate names do not match: " + r1.String() + " / " + r2.String()}
		return nil, nil, p.err
	}
	return r1, r2, nil
}
