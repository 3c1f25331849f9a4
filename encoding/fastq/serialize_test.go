package fastq

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastqBytesRoundTrip(t *testing.T) {
	r, err := NewRecord([]byte("r1"), []byte("ACGT"), []byte("IIII"))
	assert.NoError(t, err)
	buf, err := r.FastqBytes(false)
	assert.NoError(t, err)
	assert.Equal(t, "@r1\nACGT\n+\nIIII\n", string(buf))

	buf2, err := r.FastqBytes(true)
	assert.NoError(t, err)
	assert.Equal(t, "@r1\nACGT\n+r1\nIIII\n", string(buf2))
}

func TestFastqBytesMissingQualities(t *testing.T) {
	r, err := NewTextualRecord([]byte("r1"), []byte("ACGT"), nil)
	assert.NoError(t, err)
	_, err = r.FastqBytes(false)
	assert.Same(t, ErrMissingQualities, err)
}

func TestFastqBytesEmptyName(t *testing.T) {
	r, err := NewRecord([]byte(""), []byte("ACGT"), []byte("IIII"))
	assert.NoError(t, err)
	buf, err := r.FastqBytes(false)
	assert.NoError(t, err)
	assert.Equal(t, "@\nACGT\n+\nIIII\n", string(buf))
}

func TestFastqBytesThenReparse(t *testing.T) {
	r, _ := NewRecord([]byte("r1 desc"), []byte("ACGTACGTAC"), []byte("IIIIIIIIII"))
	buf, err := r.FastqBytes(false)
	assert.NoError(t, err)

	p, err := NewParser(bytes.NewReader(buf), Raw, 16)
	assert.NoError(t, err)
	got, err := p.Next()
	assert.NoError(t, err)
	assert.True(t, r.Equal(got))
	_, err = p.Next()
	assert.Equal(t, io.EOF, err)
}
