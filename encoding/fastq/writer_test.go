package fastq

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterRoundTrip(t *testing.T) {
	data := "@r1\nAC\n+\nII\n@r2\nGT\n+\nJJ\n"
	p, err := NewParser(strings.NewReader(data), Textual, 4096)
	assert.NoError(t, err)

	var out bytes.Buffer
	w := NewWriter(&out, false)
	for {
		r, err := p.Next()
		if err != nil {
			break
		}
		assert.NoError(t, w.Write(r))
	}
	assert.Equal(t, data, out.String())
}

func TestWriterTwoHeaders(t *testing.T) {
	r, _ := NewRecord([]byte("r1"), []byte("AC"), []byte("II"))
	var out bytes.Buffer
	w := NewWriter(&out, true)
	assert.NoError(t, w.Write(r))
	assert.Equal(t, "@r1\nAC\n+r1\nII\n", out.String())
}

func TestWriterMissingQualitiesPoisons(t *testing.T) {
	r, _ := NewTextualRecord([]byte("r1"), []byte("AC"), nil)
	var out bytes.Buffer
	w := NewWriter(&out, false)
	err1 := w.Write(r)
	assert.Same(t, ErrMissingQualities, err1)
	err2 := w.Write(r)
	assert.Same(t, err1, err2)
}
