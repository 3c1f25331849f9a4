package fastq

import "bytes"

// idLen returns the length of the ID prefix of name: the run of bytes up
// to the first space or tab, or the whole name if it contains neither.
// This is a bounded scan over a known length, not a NUL-terminated
// strcspn: name is a byte slice with no implied sentinel.
func idLen(name []byte) int {
	for i, b := range name {
		if b == ' ' || b == '\t' {
			return i
		}
	}
	return len(name)
}

func isMateDigit(b byte) bool {
	return b == '1' || b == '2' || b == '3'
}

// IDsMatch reports whether name1 and name2 identify reads from the same
// pair. The ID of a name is its prefix up to the first space or tab (or
// the whole name). Paired-end tooling commonly appends a mate suffix such
// as "/1", "/2", ".1", ".2" to otherwise-identical names; IDsMatch
// tolerates exactly one trailing mate-number digit, and only when it is
// stripped from both names at once.
//
// IDsMatch is a pure byte-level comparison: non-ASCII input is permitted,
// and two empty IDs compare equal.
func IDsMatch(name1, name2 []byte) bool {
	n2 := idLen(name2)
	if len(name1) < n2 {
		return false
	}
	if n2 < len(name1) {
		c := name1[n2]
		if c != ' ' && c != '\t' {
			return false
		}
	}
	k := n2
	if k > 0 && isMateDigit(name1[k-1]) && isMateDigit(name2[k-1]) {
		k--
	}
	return bytes.Equal(name1[:k], name2[:k])
}
