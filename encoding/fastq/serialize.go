package fastq

// FastqBytes renders r in FASTQ wire format:
//
//	@name\n
//	sequence\n
//	+[name]\n
//	qualities\n
//
// The name after '+' is repeated only when twoHeaders is true. The result
// is a single, exactly-sized, freshly allocated buffer filled by direct
// byte copy; there is no intermediate concatenation. FastqBytes fails with
// ErrMissingQualities if r has no quality string.
func (r *Record) FastqBytes(twoHeaders bool) ([]byte, error) {
	if r.qualities == nil {
		return nil, ErrMissingQualities
	}
	nameLen := len(r.name)
	size := 1 + nameLen + 1 + len(r.sequence) + 1 + 1 + 1 + len(r.qualities) + 1
	if twoHeaders {
		size += nameLen
	}
	buf := make([]byte, size)
	pos := 0
	buf[pos] = '@'
	pos++
	pos += copy(buf[pos:], r.name)
	buf[pos] = '\n'
	pos++
	pos += copy(buf[pos:], r.sequence)
	buf[pos] = '\n'
	pos++
	buf[pos] = '+'
	pos++
	if twoHeaders {
		pos += copy(buf[pos:], r.name)
	}
	buf[pos] = '\n'
	pos++
	pos += copy(buf[pos:], r.qualities)
	buf[pos] = '\n'
	pos++
	return buf[:pos], nil
}
