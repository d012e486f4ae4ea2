// Package layout provides the pure text transforms used by the renderer:
// centering, paragraph-preserving wrapping and indentation. All functions
// are deterministic and total; widths are measured in display cells so
// wide runes center and wrap correctly.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CenterBlock centers a multi-line text as one rigid block on width.
// Every line is padded by (width - longestLine)/2 spaces. When width is
// smaller than the longest line the block is cropped instead: each line
// loses the same number of leading cells the padding would have added.
func CenterBlock(text string, width int) string {
	lines := splitKeepends(text)
	longest := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(strings.TrimSuffix(line, "\n")); w > longest {
			longest = w
		}
	}
	pad := (width - longest) / 2
	if width < longest {
		pad = -((longest - width + 1) / 2)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(shiftLine(line, pad))
	}
	return b.String()
}

// CenterBlockV centers the block horizontally on width and vertically on
// height by prepending (height - lineCount)/2 blank lines.
func CenterBlockV(text string, width, height int) string {
	out := CenterBlock(text, width)
	n := len(splitKeepends(text))
	if height > n {
		out = strings.Repeat("\n", (height-n)/2) + out
	}
	return out
}

// CenterLine centers each line independently on its own length rather
// than the block's longest line.
func CenterLine(text string, width int) string {
	var b strings.Builder
	for _, line := range splitKeepends(text) {
		w := runewidth.StringWidth(strings.TrimSuffix(line, "\n"))
		pad := (width - w) / 2
		if width < w {
			pad = -((w - width + 1) / 2)
		}
		b.WriteString(shiftLine(line, pad))
	}
	return b.String()
}

// Wrap wraps each existing paragraph of text independently so blank-line
// breaks survive exactly. firstLineIndent narrows the first line's budget
// as if that many spaces were prefixed and later stripped; it is used when
// the text continues on an already partially filled line. By default runs
// of interior whitespace collapse to single spaces; preserveWhitespace
// keeps them.
func Wrap(text string, width, firstLineIndent int, preserveWhitespace bool) string {
	var b strings.Builder
	first := true
	for _, line := range splitKeepends(text) {
		hadNL := strings.HasSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\n")

		budget := width
		if first {
			budget = width - firstLineIndent
			if budget < 1 {
				budget = 1
			}
		}
		wrapped := wrapLine(line, budget, width, preserveWhitespace)
		b.WriteString(strings.Join(wrapped, "\n"))
		if hadNL {
			b.WriteString("\n")
		}
		first = false
	}
	return b.String()
}

// Indent prefixes every line with width spaces. With dedentFirstLine the
// first line keeps its position, for text continuing an existing line.
func Indent(text string, width int, dedentFirstLine bool) string {
	prefix := strings.Repeat(" ", width)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 && dedentFirstLine {
			continue
		}
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// wrapLine fills one source line into rows no wider than budget cells for
// the first row and width cells after. A single token wider than its row
// is placed alone rather than broken.
func wrapLine(line string, budget, width int, preserveWhitespace bool) []string {
	tokens := tokenize(line, preserveWhitespace)
	if len(tokens) == 0 {
		return []string{""}
	}

	rows := []string{}
	cur := ""
	limit := budget
	for _, tok := range tokens {
		sep := ""
		if !preserveWhitespace && cur != "" {
			sep = " "
		}
		if cur != "" && runewidth.StringWidth(cur)+runewidth.StringWidth(sep)+runewidth.StringWidth(tok) > limit {
			rows = append(rows, cur)
			cur = ""
			sep = ""
			limit = width
			if !preserveWhitespace {
				tok = strings.TrimLeft(tok, " \t")
				if tok == "" {
					continue
				}
			} else if isSpaces(tok) {
				// Whitespace runs never start a continuation row.
				continue
			}
		}
		cur += sep + tok
	}
	if cur != "" || len(rows) == 0 {
		rows = append(rows, cur)
	}
	return rows
}

func tokenize(line string, preserveWhitespace bool) []string {
	if !preserveWhitespace {
		return strings.Fields(line)
	}
	tokens := []string{}
	cur := strings.Builder{}
	curSpace := false
	for _, r := range line {
		space := r == ' ' || r == '\t'
		if cur.Len() > 0 && space != curSpace {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
		curSpace = space
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

func isSpaces(s string) bool {
	return strings.TrimLeft(s, " \t") == ""
}

// shiftLine pads the line left by pad cells, or crops its first -pad
// cells when pad is negative.
func shiftLine(line string, pad int) string {
	if pad > 0 {
		return strings.Repeat(" ", pad) + line
	}
	if pad < 0 {
		return cropLeft(line, -pad)
	}
	return line
}

func cropLeft(line string, cells int) string {
	dropped := 0
	for i, r := range line {
		if dropped >= cells || r == '\n' {
			return line[i:]
		}
		dropped += runewidth.RuneWidth(r)
	}
	return ""
}

func splitKeepends(text string) []string {
	if text == "" {
		return []string{""}
	}
	parts := strings.SplitAfter(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
