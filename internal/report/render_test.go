package report

import (
	"strconv"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

// stripAnsi removes pterm's SGR escape sequences so assertions can match
// on plain text content.
func stripAnsi(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestLineBoundsFirstLine(t *testing.T) {
	text := "line one\nline two\nline three\n"
	start, end, col, lineNo := lineBounds(text, 2)
	if lineNo != 1 {
		t.Fatalf("lineNo = %d, want 1", lineNo)
	}
	if text[start:end] != "line one" {
		t.Fatalf("excerpt = %q, want %q", text[start:end], "line one")
	}
	if col != 2 {
		t.Fatalf("col = %d, want 2", col)
	}
}

func TestLineBoundsLaterLine(t *testing.T) {
	text := "line one\nline two\nline three\n"
	// offset 11 lands inside "line two" (bytes 9..17), at its 3rd byte.
	start, end, col, lineNo := lineBounds(text, 11)
	if lineNo != 2 {
		t.Fatalf("lineNo = %d, want 2", lineNo)
	}
	if text[start:end] != "line two" {
		t.Fatalf("excerpt = %q, want %q", text[start:end], "line two")
	}
	if col != 2 {
		t.Fatalf("col = %d, want 2", col)
	}
}

func TestLineBoundsThirdLine(t *testing.T) {
	text := "line one\nline two\nline three\n"
	_, _, _, lineNo := lineBounds(text, 20)
	if lineNo != 3 {
		t.Fatalf("lineNo = %d, want 3", lineNo)
	}
}

// renderExcerpt must print the real 1-indexed line number in its gutter,
// not a hardcoded "1" regardless of where loc actually falls.
func TestRenderExcerptUsesRealLineNumber(t *testing.T) {
	src := SourceText{Path: "t.vfy", Text: "line one\nline two\nline three\n"}
	loc := Location{FileID: 0, Offset: 9, Length: 4} // "line" at the start of line two

	out := stripAnsi(renderExcerpt(src, loc, pterm.FgRed))
	lines := strings.SplitN(out, "|", 2)
	if strconv.Itoa(2) != lines[0] {
		t.Fatalf("gutter = %q, want %q", lines[0], "2")
	}
	if !strings.Contains(out, "line two") {
		t.Fatalf("excerpt does not contain the line two text: %q", out)
	}
}

// A location fragment's caret line must underline exactly
// loc.Length bytes, the SPEC_FULL §8 property this test package exists
// to cover.
func TestRenderExcerptCaretWidthMatchesLocationLength(t *testing.T) {
	src := SourceText{Path: "t.vfy", Text: "var abcde: Int = 1;\n"}
	loc := Location{FileID: 0, Offset: 4, Length: 5} // "abcde"

	out := stripAnsi(renderExcerpt(src, loc, pterm.FgRed))
	nl := strings.IndexByte(out, '\n')
	caretLine := out[nl+1:]
	caretLine = strings.TrimRight(caretLine, "\n")

	carets := strings.Count(caretLine, "^")
	if carets != loc.Length {
		t.Fatalf("caret count = %d, want %d (caret line: %q)", carets, loc.Length, caretLine)
	}
}

func TestRenderExcerptCaretWidthClampedToLineEnd(t *testing.T) {
	src := SourceText{Path: "t.vfy", Text: "ab\nrest of file\n"}
	// loc claims a length of 10 starting right at "ab", but the line is
	// only 2 bytes long.
	loc := Location{FileID: 0, Offset: 0, Length: 10}

	out := stripAnsi(renderExcerpt(src, loc, pterm.FgRed))
	nl := strings.IndexByte(out, '\n')
	caretLine := strings.TrimRight(out[nl+1:], "\n")

	if carets := strings.Count(caretLine, "^"); carets != 2 {
		t.Fatalf("caret count = %d, want 2 (clamped to line length)", carets)
	}
}

func TestRenderFallsBackToBareLocationWithoutSourceText(t *testing.T) {
	d := Diagnostic{
		Kind:    KindTypeMismatch,
		IsError: true,
		Fragments: []Fragment{
			Text("expected "),
			At(Location{FileID: 3, Offset: 7, Length: 2}),
		},
	}

	out := stripAnsi(Render(d, nil))
	if !strings.Contains(out, "file 3, offset 7, length 2") {
		t.Fatalf("expected bare location text, got %q", out)
	}
}

func TestRenderIncludesExcerptWhenSourceTextAvailable(t *testing.T) {
	sources := map[int]SourceText{
		0: {Path: "t.vfy", Text: "record A {}\nrecord A {}\n"},
	}
	d := Diagnostic{
		Kind:    KindEntityRedefined,
		IsError: true,
		Fragments: []Fragment{
			Text("entity redefined: "),
			At(Location{FileID: 0, Offset: 19, Length: 1}),
		},
	}

	out := stripAnsi(Render(d, sources))
	if !strings.Contains(out, "2|") {
		t.Fatalf("expected gutter line number 2, got %q", out)
	}
	if !strings.Contains(out, "record A {}") {
		t.Fatalf("expected excerpt text, got %q", out)
	}
}
