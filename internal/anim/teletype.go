// Package anim implements the reveal effects: sequential "teletype"
// painting, randomized "fade-in", and the blinking cursor task. Every
// effect blocks its caller; the blinker is the only background task and
// must be stopped by whoever started it.
package anim

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"quizbox/internal/canvas"
)

const DefaultFPS = 30

// Options controls a teletype run.
type Options struct {
	FPS           float64
	ByLine        bool // paint whole lines per frame instead of runes
	Style         *tcell.Style
	Interruptible bool
}

// Teletype paints text one unit at a time at 1/fps intervals, reporting
// whether a keypress cut the animation short. On interruption the
// remaining text is painted in one shot, so the window always ends up
// with the full text. Returns canvas.ErrInterrupted only for Ctrl+C.
func Teletype(win *canvas.Window, text string, opts Options) (bool, error) {
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	spf := time.Duration(float64(time.Second) / fps)

	style := win.Background()
	if opts.Style != nil {
		style = *opts.Style
	}

	var units []string
	if opts.ByLine {
		units = splitAfterLines(text)
	} else {
		for _, r := range text {
			units = append(units, string(r))
		}
	}

	screen := win.Screen()
	for i, unit := range units {
		if screen.Interrupted() {
			return false, canvas.ErrInterrupted
		}
		win.WriteStringStyled(unit, style)
		if opts.Interruptible {
			if _, hit := screen.PollKey(); hit {
				win.WriteStringStyled(strings.Join(units[i+1:], ""), style)
				win.Flush()
				return true, nil
			}
		}
		win.Flush()
		time.Sleep(spf)
	}
	return false, nil
}

func splitAfterLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.SplitAfter(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
