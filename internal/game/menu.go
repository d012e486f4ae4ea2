package game

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"quizbox/internal/anim"
	"quizbox/internal/content"
	"quizbox/internal/layout"
)

const (
	menuWidth     = 50
	menuHeight    = 18
	menuSteps     = 5
	menuStepDelay = 100 * time.Millisecond
	menuMaxItems  = 26 // one letter label each
)

// choosePack returns the quiz to play: the configured one, or the
// player's pick from the library menu.
func (g *Game) choosePack() (content.Pack, error) {
	if g.cfg.QuizID != "" {
		return content.FindPack(g.packs, g.cfg.QuizID)
	}
	return g.menu()
}

// menu draws the library box with an opening sweep, lists the loaded
// quizzes under letter labels and blocks until one is picked. Keys
// outside the label range are ignored without comment.
func (g *Game) menu() (content.Pack, error) {
	items := g.packs
	if len(items) > menuMaxItems {
		items = items[:menuMaxItems]
	}

	cols, rows := g.screen.Size()
	w, h := menuWidth, menuHeight
	if w > cols {
		w = cols
	}
	if needed := len(items) + 6; h < needed {
		h = needed
	}
	if h > rows {
		h = rows
	}
	x := (cols - w) / 2
	y := (rows - h) / 2

	// Opening sweep: the box grows from a slit to full height.
	box := g.screen.NewWindow(x, y+h/2, w, 1)
	for step := 1; step <= menuSteps; step++ {
		hh := h * step / menuSteps
		if hh < 1 {
			hh = 1
		}
		box.Resize(x, y+(h-hh)/2, w, hh)
		box.Clear()
		box.Border()
		box.Flush()
		if step < menuSteps {
			time.Sleep(menuStepDelay)
		}
	}

	strs := items[0].Strings
	inner := g.screen.NewWindow(x+2, y+1, w-4, h-2)
	innerW, _ := inner.Size()
	inner.WriteString(layout.CenterLine(strs.MenuHeading, innerW) + "\n\n")
	for i, p := range items {
		label := unicode.ToUpper(content.Label("a", i))
		inner.WriteString(truncate(fmt.Sprintf("%c) %s", label, p.Name), innerW) + "\n")
	}
	inner.WriteString("\n" + strs.MenuPrompt)
	inner.Flush()

	g.screen.FlushInput()
	blinker := anim.SetCursor(inner, anim.CursorInput)
	defer blinker.Stop()
	for {
		r, err := g.screen.WaitKey()
		if err != nil {
			return content.Pack{}, err
		}
		idx := int(unicode.ToLower(r) - 'a')
		if idx < 0 || idx >= len(items) {
			continue
		}
		blinker.Stop()
		inner.WriteString(strings.ToUpper(string(r)))
		inner.Flush()
		time.Sleep(items[idx].Display.Pauses.InputReflect())
		return items[idx], nil
	}
}
