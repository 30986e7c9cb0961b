package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Colors for the three message classes a diagnostic can fall into, styled
// the way src/logging/display.go styles them.
var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	infoColorFG  = pterm.FgLightGreen
)

// SourceText maps a file id (as carried on every Location) to the path and
// full text of the corresponding source file, so diagnostics can be
// rendered with an underlined code excerpt. The core itself never reads
// source text; only this CLI-facing renderer does.
type SourceText struct {
	Path string
	Text string
}

// Render writes a diagnostic to the terminal in the teacher's banner +
// code-excerpt style. sources may be nil, in which case locations are
// rendered as bare file/offset/length triples (e.g. when no source text is
// available, as in a unit test).
func Render(d Diagnostic, sources map[int]SourceText) string {
	var sb strings.Builder

	bg, fg, label := errorStyleBG, errorColorFG, string(d.Kind)+" Error"
	if !d.IsError {
		bg, fg, label = warnStyleBG, warnColorFG, string(d.Kind)+" Warning"
	}

	sb.WriteString("\n-- ")
	sb.WriteString(bg.Sprint(label))
	sb.WriteString(" --\n")

	for _, f := range d.Fragments {
		if f.HasLocation {
			if src, ok := sources[f.At.FileID]; ok {
				sb.WriteString(renderExcerpt(src, f.At, fg))
			} else {
				sb.WriteString(infoColorFG.Sprint(f.At.String()))
			}
		} else {
			sb.WriteString(f.Text)
		}
	}

	sb.WriteRune('\n')
	return sb.String()
}

// renderExcerpt prints the source line(s) containing loc with a caret
// underline beneath the erroneous span, mirroring
// displayCodeSelection's single-line case. Multi-line spans fall back to
// underlining from the start column to the end of the first line, since
// the AST contract only carries byte offsets, not line/column pairs: the
// lexer/parser (out of scope) is responsible for translating offsets to
// positions when it builds the original error-reporting UI.
func renderExcerpt(src SourceText, loc Location, fg pterm.Color) string {
	lineStart, lineEnd, col, lineNo := lineBounds(src.Text, loc.Offset)

	var sb strings.Builder
	sb.WriteString(infoColorFG.Sprint(strconv.Itoa(lineNo)))
	sb.WriteString("|  ")
	sb.WriteString(src.Text[lineStart:lineEnd])
	sb.WriteRune('\n')

	sb.WriteString(strings.Repeat(" ", col+3))
	width := loc.Length
	if lineStart+col+width > lineEnd {
		width = lineEnd - lineStart - col
	}
	if width < 1 {
		width = 1
	}
	sb.WriteString(fg.Sprint(strings.Repeat("^", width)))
	sb.WriteRune('\n')

	return sb.String()
}

// lineBounds finds the [start, end) byte range of the line containing
// offset, offset's column within that line, and its 1-indexed line
// number (one more than the count of '\n' bytes before offset).
func lineBounds(text string, offset int) (start, end, col, lineNo int) {
	start = strings.LastIndexByte(text[:offset], '\n') + 1
	if rel := strings.IndexByte(text[offset:], '\n'); rel >= 0 {
		end = offset + rel
	} else {
		end = len(text)
	}
	col = offset - start
	lineNo = strings.Count(text[:offset], "\n") + 1
	return
}

// Summary renders the closing line of a compile run, mirroring
// displayCompilationFinished's pass/fail banner.
func Summary(ok bool, errorCount int) string {
	if ok {
		return infoColorFG.Sprint("compilation succeeded")
	}
	return errorColorFG.Sprint(fmt.Sprintf("compilation failed: %d error(s)", errorCount))
}
