package fastq

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"
)

const defaultParserBufferSize = 1 << 16

// Downsample reads mate pairs from r1In and r2In through a PairedReader
// and writes each pair to r1Out/r2Out with independent probability rate.
// The PRNG is seeded deterministically, so repeated runs over the same
// input select the same pairs.
func Downsample(rate float64, r1In, r2In io.Reader, r1Out, r2Out io.Writer) error {
	if rate < 0.0 || rate > 1.0 {
		return errors.New("rate must be between 0 and 1 (inclusive)")
	}
	random := rand.New(rand.NewSource(0))
	pr, err := newRawPairedReader(r1In, r2In)
	if err != nil {
		return errors.Wrap(err, "error constructing paired reader")
	}
	w1 := NewWriter(r1Out, false)
	w2 := NewWriter(r2Out, false)
	for {
		r1, r2, err := pr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "error reading paired input")
		}
		if random.Float64() >= rate {
			continue
		}
		if err := w1.Write(r1); err != nil {
			return errors.Wrap(err, "error writing R1 output")
		}
		if err := w2.Write(r2); err != nil {
			return errors.Wrap(err, "error writing R2 output")
		}
	}
}

// DownsampleToCount is like Downsample, but selects pairs so the output
// holds approximately count pairs rather than a fixed fraction of the
// input. It makes one pass to count records, then a second to sample at
// the rate that count implies; both input readers must support Seek via
// io.ReaderAt-backed construction by the caller (a *bytes.Reader or a
// re-opened file), since Downsample's single-pass Parsers cannot rewind.
func DownsampleToCount(totalCount int64, r1In io.ReadSeeker, r2In io.ReadSeeker, r1Out, r2Out io.Writer) error {
	if totalCount < 0 {
		return errors.New("count must be non-negative")
	}
	n, err := countPairs(r1In, r2In)
	if err != nil {
		return errors.Wrap(err, "error counting input records")
	}
	if _, err := r1In.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "error rewinding R1 input")
	}
	if _, err := r2In.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "error rewinding R2 input")
	}
	rate := 1.0
	if n > 0 {
		rate = float64(totalCount) / float64(n)
	}
	if rate > 1.0 {
		rate = 1.0
	}
	return Downsample(rate, r1In, r2In, r1Out, r2Out)
}

func countPairs(r1In, r2In io.Reader) (int64, error) {
	pr, err := newRawPairedReader(r1In, r2In)
	if err != nil {
		return 0, err
	}
	var n int64
	for {
		_, _, err := pr.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		n++
	}
}

func newRawPairedReader(r1In, r2In io.Reader) (*PairedReader, error) {
	p1, err := NewParser(r1In, Raw, defaultParserBufferSize)
	if err != nil {
		return nil, err
	}
	p2, err := NewParser(r2In, Raw, defaultParserBufferSize)
	if err != nil {
		return nil, err
	}
	return NewPairedReader(p1, p2), nil
}
