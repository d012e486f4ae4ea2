package canvas

import "github.com/gdamore/tcell/v2"

// Window is a rectangular region of the screen with its own cursor and
// background style, the cell the game's writes address. Writes never
// leave the region: text wraps at the right edge and clamps at the
// bottom-right cell instead of scrolling off.
type Window struct {
	s          *Screen
	x, y, w, h int
	cx, cy     int
	bg         tcell.Style
}

// NewWindow carves a window out of the screen at (x, y).
func (s *Screen) NewWindow(x, y, w, h int) *Window {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Window{s: s, x: x, y: y, w: w, h: h, bg: tcell.StyleDefault}
}

func (w *Window) Size() (int, int) { return w.w, w.h }

func (w *Window) Cursor() (int, int) { return w.cx, w.cy }

func (w *Window) MoveTo(x, y int) {
	w.cx = clamp(x, 0, w.w-1)
	w.cy = clamp(y, 0, w.h-1)
}

// Background returns the window's background style; it is the implicit
// attribute for unstyled writes.
func (w *Window) Background() tcell.Style { return w.bg }

// SetBackground records the style and repaints the region with it.
func (w *Window) SetBackground(style tcell.Style) {
	w.bg = style
	w.fill()
}

// WriteString paints text at the cursor in the window background style.
func (w *Window) WriteString(text string) {
	w.WriteStringStyled(text, w.bg)
}

// WriteStringStyled paints text at the cursor, advancing it. Newlines
// move to the start of the next row; at the bottom-right cell the cursor
// stays put so the final cell is overwritten rather than lost.
func (w *Window) WriteStringStyled(text string, style tcell.Style) {
	for _, r := range text {
		if r == '\n' {
			w.cx = 0
			if w.cy < w.h-1 {
				w.cy++
			}
			continue
		}
		w.s.tc.SetContent(w.x+w.cx, w.y+w.cy, r, nil, style)
		w.advance()
	}
}

func (w *Window) advance() {
	if w.cx < w.w-1 {
		w.cx++
		return
	}
	if w.cy < w.h-1 {
		w.cx = 0
		w.cy++
	}
	// Bottom-right: cursor clamps.
}

// SetCell paints one rune at window-relative coordinates without moving
// the cursor. Out-of-window coordinates are dropped.
func (w *Window) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return
	}
	w.s.tc.SetContent(w.x+x, w.y+y, r, nil, style)
}

// Clear blanks the region and homes the cursor.
func (w *Window) Clear() {
	w.fill()
	w.cx, w.cy = 0, 0
}

// ClearToBottom blanks from the cursor to the end of the window, leaving
// the cursor in place.
func (w *Window) ClearToBottom() {
	for x := w.cx; x < w.w; x++ {
		w.s.tc.SetContent(w.x+x, w.y+w.cy, ' ', nil, w.bg)
	}
	for y := w.cy + 1; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			w.s.tc.SetContent(w.x+x, w.y+y, ' ', nil, w.bg)
		}
	}
}

func (w *Window) fill() {
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			w.s.tc.SetContent(w.x+x, w.y+y, ' ', nil, w.bg)
		}
	}
}

// Border draws a box on the window's outer edge.
func (w *Window) Border() {
	right, bottom := w.w-1, w.h-1
	for x := 1; x < right; x++ {
		w.s.tc.SetContent(w.x+x, w.y, tcell.RuneHLine, nil, w.bg)
		w.s.tc.SetContent(w.x+x, w.y+bottom, tcell.RuneHLine, nil, w.bg)
	}
	for y := 1; y < bottom; y++ {
		w.s.tc.SetContent(w.x, w.y+y, tcell.RuneVLine, nil, w.bg)
		w.s.tc.SetContent(w.x+right, w.y+y, tcell.RuneVLine, nil, w.bg)
	}
	w.s.tc.SetContent(w.x, w.y, tcell.RuneULCorner, nil, w.bg)
	w.s.tc.SetContent(w.x+right, w.y, tcell.RuneURCorner, nil, w.bg)
	w.s.tc.SetContent(w.x, w.y+bottom, tcell.RuneLLCorner, nil, w.bg)
	w.s.tc.SetContent(w.x+right, w.y+bottom, tcell.RuneLRCorner, nil, w.bg)
}

// HLine draws n horizontal line cells starting at the cursor.
func (w *Window) HLine(n int) {
	for i := 0; i < n && w.cx+i < w.w; i++ {
		w.s.tc.SetContent(w.x+w.cx+i, w.y+w.cy, tcell.RuneHLine, nil, w.bg)
	}
}

// ShowCursor makes the terminal cursor visible at this window's cursor.
func (w *Window) ShowCursor() {
	w.s.tc.ShowCursor(w.x+w.cx, w.y+w.cy)
}

// Flush pushes pending cells to the terminal.
func (w *Window) Flush() { w.s.tc.Show() }

// Screen returns the screen this window paints into.
func (w *Window) Screen() *Screen { return w.s }

// Resize changes the window extent in place. Used by the menu's opening
// animation; content is not preserved.
func (w *Window) Resize(x, y, width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	w.x, w.y, w.w, w.h = x, y, width, height
	w.cx, w.cy = 0, 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
