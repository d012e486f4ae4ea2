// Package game drives the quiz flow: library menu, title screen, intro,
// timed question rounds and the results reveal, looping back to the
// title until the player leaves.
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"quizbox/internal/anim"
	"quizbox/internal/canvas"
	"quizbox/internal/content"
	"quizbox/internal/input"
	"quizbox/internal/layout"
	"quizbox/internal/telemetry"
)

// Prompter reads one validated response per question. The play loop
// depends on this rather than on the concrete controller so flow tests
// can script responses.
type Prompter interface {
	Await(req input.Request) (rune, error)
}

// windows is the fixed screen layout for one quiz. All regions share the
// screen; main covers everything and carries the border.
type windows struct {
	main   *canvas.Window // full screen
	title  *canvas.Window // round indicator row
	body   *canvas.Window // intro, questions, results
	prompt *canvas.Window // continue/restart prompts, bottom row
	status *canvas.Window // warnings and errors, bottom row
}

type Game struct {
	cfg    Config
	log    *telemetry.Logger
	screen *canvas.Screen
	packs  []content.Pack

	pack     content.Pack
	wins     windows
	prompter Prompter // nil selects a real timed controller per quiz
	rng      *rand.Rand
}

func New(cfg Config, log *telemetry.Logger, screen *canvas.Screen, packs []content.Pack) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(packs) == 0 {
		return nil, errors.New("no quiz packs loaded")
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:    cfg,
		log:    log,
		screen: screen,
		packs:  packs,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Run selects a quiz and loops title, intro, play, results until the
// player interrupts. A timed-out session skips results and falls back to
// the title screen.
func (g *Game) Run() error {
	pack, err := g.choosePack()
	if err != nil {
		return err
	}
	g.pack = pack
	g.log.Info("quiz selected", map[string]any{"quiz_id": pack.QuizID, "name": pack.Name})

	g.layoutWindows()

	for {
		session, err := newSession(g.pack, g.rng)
		if err != nil {
			return err
		}
		g.log.Info("session started", map[string]any{
			"session_id": session.ID,
			"quiz_id":    g.pack.QuizID,
			"rounds":     len(session.Questions),
		})
		if err := g.runSession(session); err != nil {
			return err
		}
	}
}

func (g *Game) runSession(s *Session) error {
	def, err := s.Palette.Style("default")
	if err != nil {
		return err
	}
	g.applyBackground(def)

	if err := g.titleScreen(); err != nil {
		return err
	}
	if err := g.awaitAnyKey(g.pack.Strings.ContinuePrompt); err != nil {
		return err
	}
	g.wins.main.Clear()

	if err := g.introScreen(); err != nil {
		return err
	}
	if err := g.awaitAnyKey(g.pack.Strings.ContinuePrompt); err != nil {
		return err
	}
	g.wins.body.Clear()
	g.frameMain()

	done, err := g.play(s)
	if err != nil {
		return err
	}
	if !done {
		// Timed out: back to the title screen.
		g.log.Info("session abandoned", map[string]any{"session_id": s.ID})
		g.wins.main.Clear()
		return nil
	}

	g.wins.title.Clear()
	g.wins.body.Clear()
	g.frameMain()
	if err := g.results(s); err != nil {
		return err
	}
	if err := g.awaitAnyKey(g.pack.Strings.RestartPrompt); err != nil {
		return err
	}
	g.wins.main.Clear()
	return nil
}

// layoutWindows carves the fixed regions out of the screen using the
// pack's margins. The prompt and status rows share the same cells; they
// are never populated at the same time.
func (g *Game) layoutWindows() {
	cols, rows := g.screen.Size()
	m := g.pack.Display.Margins
	contentW := cols - 2*m.X
	g.wins.main = g.screen.NewWindow(0, 0, cols, rows)
	g.wins.title = g.screen.NewWindow(m.X, 1, contentW, 1)
	g.wins.body = g.screen.NewWindow(m.X, m.Y, contentW, rows-2*m.Y)
	g.wins.prompt = g.screen.NewWindow(m.X, rows-2, contentW, 1)
	g.wins.status = g.screen.NewWindow(m.X, rows-2, contentW, 1)
}

func (g *Game) applyBackground(style tcell.Style) {
	g.wins.main.SetBackground(style)
	for _, w := range []*canvas.Window{g.wins.title, g.wins.body, g.wins.prompt, g.wins.status} {
		w.SetBackground(style)
	}
	g.wins.main.Flush()
}

func (g *Game) frameMain() {
	g.wins.main.Border()
	g.wins.main.Flush()
}

// awaitAnyKey shows a prompt with a blinking wait cursor and blocks for
// any keypress.
func (g *Game) awaitAnyKey(text string) error {
	win := g.wins.prompt
	win.Clear()
	w, _ := win.Size()
	win.WriteString(truncate(layout.CenterLine(text, w-2)+" ", w-1))
	win.Flush()
	g.screen.FlushInput()
	blinker := anim.SetCursor(win, anim.CursorWaiting)
	_, err := g.screen.WaitKey()
	blinker.Stop()
	win.Clear()
	win.Flush()
	return err
}

// displayStatus repaints the status row. A positive fps teletypes the
// text; zero paints it at once. The warning timer calls this while the
// foreground is blocked in a key read, so the row has exactly one writer
// at any moment.
func (g *Game) displayStatus(text string, style tcell.Style, fps float64) {
	win := g.wins.status
	win.Clear()
	w, _ := win.Size()
	text = truncate(text, w-1)
	if fps > 0 {
		_, _ = anim.Teletype(win, text, anim.Options{FPS: fps, Style: &style})
	} else {
		win.WriteStringStyled(text, style)
	}
	win.Flush()
}

func (g *Game) teletype(win *canvas.Window, text string, fps float64, style *tcell.Style) error {
	_, err := anim.Teletype(win, text, anim.Options{FPS: fps, Style: style})
	return err
}

func (g *Game) pause(d time.Duration) { time.Sleep(d) }

// contentWidth is the wrap width for body text, never wider than the
// body window itself.
func (g *Game) contentWidth() int {
	width, _ := g.wins.body.Size()
	if g.pack.Display.WrapWidth < width {
		width = g.pack.Display.WrapWidth
	}
	return width
}

func (g *Game) titleScreen() error {
	cols, rows := g.screen.Size()
	g.screen.HideCursor()
	text := layout.CenterBlockV(g.pack.Title, cols, rows)
	spec := g.pack.Display.Animation
	var err error
	if spec.TitleStyle == "teletype" {
		_, err = anim.Teletype(g.wins.main, text, anim.Options{FPS: spec.FPS, ByLine: true, Interruptible: true})
	} else {
		_, err = anim.FadeIn(g.wins.main, text, spec.FadeDuration(), nil, true, g.rng)
	}
	return err
}

func (g *Game) introScreen() error {
	text := layout.Wrap(g.pack.Intro, g.contentWidth(), 0, false)
	_, err := anim.Teletype(g.wins.body, text, anim.Options{
		FPS:           g.pack.Display.Animation.FPS,
		Interruptible: true,
	})
	return err
}

func truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
