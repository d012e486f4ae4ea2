// Package canvas wraps tcell with the character-cell surface the game
// draws on: a screen with a pumped key channel and blocking / timed /
// non-blocking reads, plus cursor-addressed windows and a named style
// palette. A single foreground task drives all drawing; the only other
// writers are the warning timer and the cursor blinker, which each touch
// cells nothing else owns while they run.
package canvas

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrTimeout reports that a timed key read expired with no input.
	ErrTimeout = errors.New("canvas: key read timed out")
	// ErrInterrupted reports that the player interrupted the process
	// (Ctrl+C). Callers unwind, stopping any background tasks they own.
	ErrInterrupted = errors.New("canvas: interrupted")
)

// Screen owns the tcell screen and the event pump. All key reads go
// through the pump's channel so timed and non-blocking reads are a
// select away.
type Screen struct {
	tc tcell.Screen

	keys        chan rune
	interrupted chan struct{}
	pumpDone    chan struct{}
	intOnce     sync.Once
	finiOnce    sync.Once
}

// New initializes the real terminal screen.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	return start(tc), nil
}

// NewSimulation builds a Screen over a tcell simulation screen. Tests
// inject keys with the returned SimulationScreen.
func NewSimulation(cols, rows int) (*Screen, tcell.SimulationScreen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, nil, err
	}
	sim.SetSize(cols, rows)
	return start(sim), sim, nil
}

func start(tc tcell.Screen) *Screen {
	tc.SetStyle(tcell.StyleDefault)
	tc.HideCursor()
	tc.Clear()
	s := &Screen{
		tc:          tc,
		keys:        make(chan rune, 64),
		interrupted: make(chan struct{}),
		pumpDone:    make(chan struct{}),
	}
	go s.pump()
	return s
}

// pump translates tcell events into the key channel. It exits when the
// screen is finalized (PollEvent returns nil).
func (s *Screen) pump() {
	defer close(s.pumpDone)
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				s.intOnce.Do(func() { close(s.interrupted) })
				continue
			}
			r := keyRune(ev)
			select {
			case s.keys <- r:
			default:
				// Buffer full; stale input is flushed before every
				// prompt anyway.
			}
		case *tcell.EventResize:
			s.tc.Sync()
		}
	}
}

func keyRune(ev *tcell.EventKey) rune {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune()
	case tcell.KeyEnter:
		return '\n'
	case tcell.KeyEsc:
		return 0x1b
	default:
		return 0
	}
}

// FlushInput discards any buffered keypresses.
func (s *Screen) FlushInput() {
	for {
		select {
		case <-s.keys:
		default:
			return
		}
	}
}

// PollKey returns a pending keypress without blocking.
func (s *Screen) PollKey() (rune, bool) {
	select {
	case r := <-s.keys:
		return r, true
	default:
		return 0, false
	}
}

// WaitKey blocks until a key arrives or the player interrupts.
func (s *Screen) WaitKey() (rune, error) {
	select {
	case r := <-s.keys:
		return r, nil
	case <-s.interrupted:
		return 0, ErrInterrupted
	}
}

// WaitKeyTimeout blocks up to d for a key. It returns ErrTimeout when
// nothing arrives in time.
func (s *Screen) WaitKeyTimeout(d time.Duration) (rune, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case r := <-s.keys:
		return r, nil
	case <-s.interrupted:
		return 0, ErrInterrupted
	case <-timer.C:
		return 0, ErrTimeout
	}
}

// Interrupted reports whether Ctrl+C has been seen.
func (s *Screen) Interrupted() bool {
	select {
	case <-s.interrupted:
		return true
	default:
		return false
	}
}

func (s *Screen) Size() (int, int) { return s.tc.Size() }

func (s *Screen) Show() { s.tc.Show() }

func (s *Screen) Beep() { _ = s.tc.Beep() }

func (s *Screen) ShowCursor(x, y int) { s.tc.ShowCursor(x, y) }

func (s *Screen) HideCursor() { s.tc.HideCursor() }

// Fini restores the terminal and waits for the event pump to exit so no
// background task outlives the screen it paints into.
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		s.tc.Fini()
		<-s.pumpDone
	})
}
