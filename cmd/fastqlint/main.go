package main

// See doc.go for documentation
import (
	"flag"
	"io"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/emollier/dnaio/encoding/fastq"
)

var (
	variantFlag   = flag.String("variant", "textual", "record variant to validate against: \"textual\" (ASCII-only) or \"raw\" (opaque bytes)")
	twoHeaders    = flag.Bool("two-headers", false, "repeat the read name on each record's '+' line when rewriting")
	checkOnly     = flag.Bool("check-only", false, "validate only; do not rewrite the stream to stdout")
	bufferSize    = flag.Int("buffer-size", 1<<16, "initial parser buffer size in bytes")
)

func parseVariant() fastq.Variant {
	switch *variantFlag {
	case "textual":
		return fastq.Textual
	case "raw":
		return fastq.Raw
	default:
		log.Fatalf("unknown -variant %q: want \"textual\" or \"raw\"", *variantFlag)
		panic("unreachable")
	}
}

func main() {
	shutdown := grail.Init()
	defer shutdown()

	p, err := fastq.NewParser(os.Stdin, parseVariant(), *bufferSize)
	if err != nil {
		log.Fatalf("fastqlint: %v", err)
	}

	var w *fastq.Writer
	if !*checkOnly {
		w = fastq.NewWriter(io.Writer(os.Stdout), *twoHeaders)
	}

	var n int
	for {
		r, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("fastqlint: malformed record after %d valid records: %v", n, err)
		}
		n++
		if w != nil {
			if err := w.Write(r); err != nil {
				log.Fatalf("fastqlint: error writing record %d: %v", n, err)
			}
		}
	}
	log.Printf("fastqlint: %d records ok", n)
}
