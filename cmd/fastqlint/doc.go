/*Command fastqlint reads a FASTQ stream on stdin, validates every record,
and (unless -check-only is set) rewrites the records to stdout with LF
line endings, repeating the name on the '+' line only when -two-headers
is set. It exits
nonzero and reports the offending line number on the first malformed
record.

Usage: cat reads.fastq | fastqlint -variant=textual > /dev/null
*/
package main
