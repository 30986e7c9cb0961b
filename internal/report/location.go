// Package report implements the structured diagnostic model described by
// the semantic core: user-visible compile errors carry an ordered sequence
// of text fragments and source locations, while internal consistency
// faults are reported separately as ICE panics.
//
// The shapes here are grounded on ComedicChimera-chai's bootstrap/report
// package (TextPosition, the Raise/CatchErrors panic convention, and the
// mutex-guarded Reporter), adapted so that a failing elaboration unwinds
// back to a single Go error value instead of calling os.Exit.
package report

import "fmt"

// Location identifies a span of source text by file and byte offset, as
// produced by the external lexer/parser.
type Location struct {
	FileID int
	Offset int
	Length int
}

// Over returns the smallest location spanning both a and b. Both must
// refer to the same file.
func Over(a, b Location) Location {
	start := a.Offset
	if b.Offset < start {
		start = b.Offset
	}

	end := a.Offset + a.Length
	if bend := b.Offset + b.Length; bend > end {
		end = bend
	}

	return Location{FileID: a.FileID, Offset: start, Length: end - start}
}

func (l Location) String() string {
	return fmt.Sprintf("file %d, offset %d, length %d", l.FileID, l.Offset, l.Length)
}
