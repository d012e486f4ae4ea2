// Package input implements the timed response read: a blocking key wait
// raced against a cancelable warning timer.
package input

import (
	"errors"
	"time"
	"unicode"

	"quizbox/internal/canvas"
)

// ErrTimeout reports that no accepted key arrived within the request's
// timeout. It ends the play session, not the process.
var ErrTimeout = errors.New("input: response timed out")

// Request describes one timed read. Warning must be strictly less than
// Timeout; Accepted is matched case-insensitively.
type Request struct {
	Timeout  time.Duration
	Warning  time.Duration
	Accepted []rune
}

func (r Request) Validate() error {
	if r.Timeout <= 0 {
		return errors.New("input: timeout must be positive")
	}
	if r.Warning <= 0 || r.Warning >= r.Timeout {
		return errors.New("input: warning threshold must be positive and below the timeout")
	}
	if len(r.Accepted) == 0 {
		return errors.New("input: no accepted responses")
	}
	return nil
}

// Controller reads one validated response per Await call. Warn paints
// the time warning and Invalid the bad-key notice; both run without any
// other writer touching their cells: Warn fires only while the
// foreground is blocked in the read, and the controller waits for a
// fired warning to finish painting before it returns or retries.
type Controller struct {
	win     *canvas.Window
	Warn    func()
	Invalid func()
}

func New(win *canvas.Window, warn, invalid func()) *Controller {
	return &Controller{win: win, Warn: warn, Invalid: invalid}
}

// Await discards stale input, shows the cursor at the prompt, and blocks
// until an accepted key, the timeout, or an interrupt. Invalid keys
// re-prompt with a fresh warning timer; the previous timer is always
// dead first, so at most one is ever armed.
func (c *Controller) Await(req Request) (rune, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	screen := c.win.Screen()
	for {
		screen.FlushInput()
		c.win.ShowCursor()
		c.win.Flush()

		fired := make(chan struct{})
		timer := time.AfterFunc(req.Warning, func() {
			defer close(fired)
			if c.Warn != nil {
				c.Warn()
			}
		})

		r, err := screen.WaitKeyTimeout(req.Timeout)

		// Cancel unconditionally; stopping an already-fired timer is a
		// no-op, but then the warning paint must finish before anyone
		// else writes.
		if !timer.Stop() {
			<-fired
		}
		screen.HideCursor()

		if errors.Is(err, canvas.ErrTimeout) {
			return 0, ErrTimeout
		}
		if err != nil {
			return 0, err
		}
		if accepted(req.Accepted, r) {
			return r, nil
		}
		if c.Invalid != nil {
			c.Invalid()
		}
	}
}

func accepted(set []rune, r rune) bool {
	lr := unicode.ToLower(r)
	for _, a := range set {
		if unicode.ToLower(a) == lr {
			return true
		}
	}
	return false
}
