package anim

import (
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"quizbox/internal/canvas"
)

type cellRef struct {
	x, y int
	r    rune
}

// FadeIn reveals already-positioned text by painting its non-blank cells
// in random order. Total duration stays constant regardless of how many
// cells there are (per-cell delay = duration / (5 × cells)), so denser
// text animates faster per cell. Interruption semantics mirror Teletype:
// the remaining cells land instantly and the call reports true.
func FadeIn(win *canvas.Window, text string, duration time.Duration, style *tcell.Style, interruptible bool, rng *rand.Rand) (bool, error) {
	st := win.Background()
	if style != nil {
		st = *style
	}

	maxX, maxY := win.Size()
	cells := []cellRef{}
	for y, line := range strings.Split(text, "\n") {
		x := 0
		for _, r := range line {
			if r != ' ' && y < maxY && x < maxX {
				cells = append(cells, cellRef{x: x, y: y, r: r})
			}
			x++
		}
	}
	if len(cells) == 0 {
		return false, nil
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	spf := duration / time.Duration(5*len(cells))

	screen := win.Screen()
	screen.HideCursor()
	for i, c := range cells {
		if screen.Interrupted() {
			return false, canvas.ErrInterrupted
		}
		win.SetCell(c.x, c.y, c.r, st)
		if interruptible {
			if _, hit := screen.PollKey(); hit {
				for _, rest := range cells[i+1:] {
					win.SetCell(rest.x, rest.y, rest.r, st)
				}
				win.Flush()
				return true, nil
			}
		}
		win.Flush()
		time.Sleep(spf)
	}
	return false, nil
}
