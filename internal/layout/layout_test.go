package layout

import (
	"strings"
	"testing"
)

func TestCenterBlockPadsEveryLineEqually(t *testing.T) {
	got := CenterBlock("ab\nlongest\ncd", 11)
	want := "  ab\n  longest\n  cd"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCenterBlockNeverPadsRight(t *testing.T) {
	got := CenterBlock("hi", 10)
	for _, line := range strings.Split(got, "\n") {
		if strings.HasSuffix(line, " ") {
			t.Fatalf("line %q has trailing padding", line)
		}
	}
}

func TestCenterBlockCropsWhenBlockIsWider(t *testing.T) {
	// Longest line is 9 wide on a width of 6: ceil(3/2) = 2 cells cropped
	// from the left of every line.
	got := CenterBlock("abcdefghi\nxy", 6)
	want := "cdefghi\n"
	if !strings.HasPrefix(got, want) {
		t.Fatalf("got %q, first line should lose 2 leading cells", got)
	}
}

func TestCenterBlockVAddsLeadingBlankLines(t *testing.T) {
	got := CenterBlockV("a\nb", 3, 6)
	if !strings.HasPrefix(got, "\n\n") {
		t.Fatalf("got %q, want 2 leading newlines", got)
	}
	if strings.HasPrefix(got, "\n\n\n") {
		t.Fatalf("got %q, too many leading newlines", got)
	}
}

func TestCenterLineCentersEachLineIndependently(t *testing.T) {
	got := CenterLine("ab\nabcd", 8)
	want := "   ab\n  abcd"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog again and again"
	for _, line := range strings.Split(Wrap(text, 10, 0, false), "\n") {
		if len(line) > 10 {
			t.Fatalf("line %q exceeds width 10", line)
		}
	}
}

func TestWrapPreservesParagraphBreaks(t *testing.T) {
	text := "first paragraph here\n\nsecond paragraph here"
	got := Wrap(text, 12, 0, false)
	if !strings.Contains(got, "\n\n") {
		t.Fatalf("paragraph break lost: %q", got)
	}
}

func TestWrapCollapsesInteriorWhitespaceByDefault(t *testing.T) {
	got := Wrap("a    b\tc", 20, 0, false)
	if got != "a b c" {
		t.Fatalf("got %q want %q", got, "a b c")
	}
}

func TestWrapPreservesWhitespaceWhenAsked(t *testing.T) {
	got := Wrap("a    b", 20, 0, true)
	if got != "a    b" {
		t.Fatalf("got %q want %q", got, "a    b")
	}
}

func TestWrapFirstLineIndentNarrowsOnlyFirstLine(t *testing.T) {
	text := "aaa bbb ccc ddd"
	got := strings.Split(Wrap(text, 8, 4, false), "\n")
	if got[0] != "aaa" {
		t.Fatalf("first line %q should fit in 4 cells", got[0])
	}
	for _, line := range got[1:] {
		if len(line) > 8 {
			t.Fatalf("continuation line %q exceeds width 8", line)
		}
	}
}

func TestWrapPlacesOversizeTokenAlone(t *testing.T) {
	got := Wrap("a superlongtoken b", 6, 0, false)
	lines := strings.Split(got, "\n")
	found := false
	for _, line := range lines {
		if line == "superlongtoken" {
			found = true
		}
	}
	if !found {
		t.Fatalf("oversize token should sit on its own line: %q", got)
	}
}

func TestIndentPrefixesLines(t *testing.T) {
	got := Indent("a\nb", 3, false)
	want := "   a\n   b"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestIndentDedentFirstLineAndSkipsEmpty(t *testing.T) {
	got := Indent("a\n\nb", 2, true)
	want := "a\n\n  b"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWrapThenIndentRoundTripWidth(t *testing.T) {
	// Continuing text at column 5 on a 12-wide region: wrap with the
	// first-line budget narrowed, then indent everything but the first
	// line back under the column.
	text := "alpha beta gamma delta"
	wrapped := Wrap(text, 12, 5, false)
	indented := Indent(wrapped, 5, true)
	lines := strings.Split(indented, "\n")
	if len(lines[0])+5 > 12 {
		t.Fatalf("first line %q overflows at column 5", lines[0])
	}
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "     ") {
			t.Fatalf("line %q not indented under column 5", line)
		}
		if len(strings.TrimPrefix(line, "     ")) > 12 {
			t.Fatalf("line %q exceeds the wrap width after its indent", line)
		}
	}
}

func TestWideRunesCountAsTwoCells(t *testing.T) {
	// Two double-width runes measure 4 cells, so centering on 8 pads by 2.
	got := CenterLine("日本", 8)
	if got != "  日本" {
		t.Fatalf("got %q want %q", got, "  日本")
	}
}
