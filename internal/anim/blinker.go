package anim

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"quizbox/internal/canvas"
)

// CursorStyle selects how the cursor presents while the game waits.
type CursorStyle int

const (
	CursorDefault CursorStyle = iota // terminal's own cursor
	CursorNone                       // invisible
	CursorWaiting                    // blinking solid block
	CursorInput                      // blinking underline
)

const blinkInterval = 150 * time.Millisecond

// Seven frames per cycle: four solid, three blank.
var (
	waitingFrames = []rune{tcell.RuneBlock, tcell.RuneBlock, tcell.RuneBlock, tcell.RuneBlock, ' ', ' ', ' '}
	inputFrames   = []rune{tcell.RuneS9, tcell.RuneS9, tcell.RuneS9, tcell.RuneS9, ' ', ' ', ' '}
)

// Blinker is a background loop repainting one fixed cell to simulate a
// blinking cursor. The starter owns it and must call Stop before the
// cell's window is cleared or torn down; otherwise the loop keeps
// writing into a region its owner no longer controls.
type Blinker struct {
	stop chan struct{}
	done chan struct{}
}

// SetCursor applies a cursor style at the window's current cursor cell.
// The animated styles return a running Blinker the caller must stop;
// the static styles return nil.
func SetCursor(win *canvas.Window, style CursorStyle) *Blinker {
	switch style {
	case CursorNone:
		win.Screen().HideCursor()
		return nil
	case CursorWaiting:
		win.Screen().HideCursor()
		return startBlink(win, waitingFrames, blinkInterval)
	case CursorInput:
		win.Screen().HideCursor()
		return startBlink(win, inputFrames, blinkInterval)
	default:
		win.ShowCursor()
		return nil
	}
}

func startBlink(win *canvas.Window, frames []rune, interval time.Duration) *Blinker {
	col, row := win.Cursor()
	b := &Blinker{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(b.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-b.stop:
				return
			case <-ticker.C:
				win.SetCell(col, row, frames[i], win.Background())
				win.Flush()
				i = (i + 1) % len(frames)
			}
		}
	}()
	return b
}

// Stop signals the loop and waits until it has exited, so the caller can
// safely repaint the cell afterwards. Safe to call more than once.
func (b *Blinker) Stop() {
	if b == nil {
		return
	}
	select {
	case <-b.stop:
	default:
		close(b.stop)
	}
	<-b.done
}
