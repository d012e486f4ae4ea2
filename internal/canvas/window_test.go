package canvas

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func readLine(s tcell.SimulationScreen, x, y, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestWriteStringPaintsAtWindowOrigin(t *testing.T) {
	s, sim := newTestScreen(t)
	win := s.NewWindow(5, 3, 20, 4)
	win.WriteString("hello")
	if got := readLine(sim, 5, 3, 5); got != "hello" {
		t.Fatalf("got %q want hello", got)
	}
	if cx, cy := win.Cursor(); cx != 5 || cy != 0 {
		t.Fatalf("cursor = (%d,%d), want (5,0)", cx, cy)
	}
}

func TestNewlineMovesToNextRow(t *testing.T) {
	s, sim := newTestScreen(t)
	win := s.NewWindow(2, 2, 10, 3)
	win.WriteString("ab\ncd")
	if got := readLine(sim, 2, 3, 2); got != "cd" {
		t.Fatalf("second row = %q, want cd", got)
	}
}

func TestWritesWrapAtRightEdgeAndClampAtBottom(t *testing.T) {
	s, sim := newTestScreen(t)
	win := s.NewWindow(0, 0, 3, 2)
	win.WriteString("abcdefgh")
	if got := readLine(sim, 0, 0, 3); got != "abc" {
		t.Fatalf("row 0 = %q, want abc", got)
	}
	// The bottom-right cell keeps being overwritten by the overflow.
	if got := readLine(sim, 0, 1, 3); got != "deh" {
		t.Fatalf("row 1 = %q, want deh", got)
	}
	if cx, cy := win.Cursor(); cx != 2 || cy != 1 {
		t.Fatalf("cursor = (%d,%d), want clamped at (2,1)", cx, cy)
	}
}

func TestSetCellIgnoresOutOfWindowCoordinates(t *testing.T) {
	s, sim := newTestScreen(t)
	win := s.NewWindow(10, 10, 4, 2)
	win.SetCell(-1, 0, 'x', tcell.StyleDefault)
	win.SetCell(4, 0, 'x', tcell.StyleDefault)
	win.SetCell(0, 2, 'x', tcell.StyleDefault)
	if r, _, _, _ := sim.GetContent(9, 10); r == 'x' {
		t.Fatalf("out-of-window write escaped left")
	}
	if r, _, _, _ := sim.GetContent(14, 10); r == 'x' {
		t.Fatalf("out-of-window write escaped right")
	}
}

func TestClearToBottomKeepsTextAboveCursor(t *testing.T) {
	s, sim := newTestScreen(t)
	win := s.NewWindow(0, 0, 5, 3)
	win.WriteString("aaaaa\nbbbbb\nccccc")
	win.MoveTo(0, 1)
	win.ClearToBottom()
	if got := readLine(sim, 0, 0, 5); got != "aaaaa" {
		t.Fatalf("row 0 = %q, want aaaaa", got)
	}
	if got := readLine(sim, 0, 1, 5); strings.TrimSpace(got) != "" {
		t.Fatalf("row 1 = %q, want blank", got)
	}
	if got := readLine(sim, 0, 2, 5); strings.TrimSpace(got) != "" {
		t.Fatalf("row 2 = %q, want blank", got)
	}
}

func TestBorderDrawsCorners(t *testing.T) {
	s, sim := newTestScreen(t)
	win := s.NewWindow(1, 1, 6, 4)
	win.Border()
	corners := [][2]int{{1, 1}, {6, 1}, {1, 4}, {6, 4}}
	want := []rune{tcell.RuneULCorner, tcell.RuneURCorner, tcell.RuneLLCorner, tcell.RuneLRCorner}
	for i, c := range corners {
		r, _, _, _ := sim.GetContent(c[0], c[1])
		if r != want[i] {
			t.Fatalf("corner %d = %q, want %q", i, r, want[i])
		}
	}
}

func TestResizeRelocatesWindow(t *testing.T) {
	s, sim := newTestScreen(t)
	win := s.NewWindow(0, 0, 4, 1)
	win.Resize(10, 5, 4, 1)
	win.WriteString("hi")
	if got := readLine(sim, 10, 5, 2); got != "hi" {
		t.Fatalf("got %q want hi at new origin", got)
	}
}
