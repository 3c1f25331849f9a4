package fastq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rec(name byte) string {
	return "@" + string(name) + "\nACGT\n+\nIIII\n"
}

func nRecords(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += rec(byte('a' + i%26))
	}
	return s
}

func TestSyncPairedHeadsEqualLength(t *testing.T) {
	b1 := []byte(nRecords(3))
	b2 := []byte(nRecords(3))
	len1, len2 := SyncPairedHeads(b1, len(b1), b2, len(b2))
	assert.Equal(t, len(b1), len1)
	assert.Equal(t, len(b2), len2)
}

func TestSyncPairedHeadsTrailingPartial(t *testing.T) {
	full := []byte(nRecords(3))
	partial := append([]byte(nRecords(3)), []byte("@partial\nAC")...)
	len1, len2 := SyncPairedHeads(full, len(full), partial, len(partial))
	assert.Equal(t, len(full), len1)
	assert.Equal(t, len(full), len2)
}

func TestSyncPairedHeadsShorterThanOneRecord(t *testing.T) {
	b1 := []byte("@r\nAC\n")
	b2 := []byte(nRecords(1))
	len1, len2 := SyncPairedHeads(b1, len(b1), b2, len(b2))
	assert.Equal(t, 0, len1)
	assert.Equal(t, 0, len2)
}

func TestSyncPairedHeadsIdempotent(t *testing.T) {
	b1 := []byte(nRecords(5))
	b2 := append([]byte(nRecords(5)), []byte("@extra\nA\n+\nI\n")...)
	len1a, len2a := SyncPairedHeads(b1, len(b1), b2, len(b2))
	len1b, len2b := SyncPairedHeads(b1, len1a, b2, len2a)
	assert.Equal(t, len1a, len1b)
	assert.Equal(t, len2a, len2b)
}

func TestSyncPairedHeadsWithinBounds(t *testing.T) {
	b1 := []byte(nRecords(10))
	b2 := []byte(nRecords(6))
	len1, len2 := SyncPairedHeads(b1, len(b1), b2, len(b2))
	assert.LessOrEqual(t, len1, len(b1))
	assert.LessOrEqual(t, len2, len(b2))
}
