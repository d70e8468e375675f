package chunker_test

import (
	"strings"
	"testing"

	"github.com/dshills/tonetint/internal/chunker"
)

const review = `The hotel was lovely and the staff were friendly. Our room, however, was
tiny and the A.C. didn't work... We asked twice! Dr. Smith at the front desk
said it'd be fixed "tomorrow". It wasn't. Breakfast was great though.`

func BenchmarkSplit_Paragraph(b *testing.B) {
	c, err := chunker.New(chunker.DefaultChunkSize, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if chunks := c.Split(review); len(chunks) == 0 {
			b.Fatal("no chunks")
		}
	}
}

func BenchmarkSplit_LongText(b *testing.B) {
	text := strings.Repeat(review+" ", 200)
	c, err := chunker.New(chunker.MaxDemoChunkSize, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if chunks := c.Split(text); len(chunks) == 0 {
			b.Fatal("no chunks")
		}
	}
}
