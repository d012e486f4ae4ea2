package game

import (
	"fmt"
	"strings"

	"quizbox/internal/content"
	"quizbox/internal/layout"
	"quizbox/internal/tally"
)

// results tallies the responses and plays the reveal: drumroll, the
// outcome sentence with the outcome name highlighted, the story and the
// closing rule.
func (g *Game) results(s *Session) error {
	disp := g.pack.Display
	strs := g.pack.Strings

	res := tally.Resolve(s.Responses)
	outcome := res.Winner
	if res.Tie || outcome == "" {
		outcome = g.pack.Outcomes.Default
	}
	s.Outcome = outcome
	msg, ok := g.pack.Outcomes.Messages[outcome]
	if !ok {
		return fmt.Errorf("outcome %q has no message template", outcome)
	}

	g.log.Info("session tallied", map[string]any{
		"session_id": s.ID,
		"responses":  s.Responses,
		"counts":     res.Counts,
		"tie":        res.Tie,
		"outcome":    outcome,
	})

	width := g.contentWidth()
	body := g.wins.body
	g.screen.HideCursor()
	g.screen.FlushInput()

	if err := g.drumroll(width); err != nil {
		return err
	}

	// The outcome name gets its own color when the template carries one;
	// it lands in the session palette on first use.
	style := body.Background().Bold(true)
	switch {
	case s.Palette.Has(outcome):
		st, err := s.Palette.Style(outcome)
		if err != nil {
			return err
		}
		style = st
	case msg.Color != (content.ColorSpec{}):
		st, err := s.Palette.Register(outcome, msg.Color.FG, msg.Color.BG)
		if err != nil {
			return err
		}
		style = st
	}

	slow := disp.Animation.FPSSlow
	if err := g.teletype(body, layout.Wrap(msg.Pre, width, 0, true), slow, nil); err != nil {
		return err
	}
	col, _ := body.Cursor()
	name := layout.Indent(layout.Wrap(outcome, width, col, false), col, true)
	if err := g.teletype(body, name, slow, &style); err != nil {
		return err
	}
	col, _ = body.Cursor()
	post := layout.Indent(layout.Wrap(msg.Post, width, col, true), col, true)
	if err := g.teletype(body, post+"\n\n", slow, nil); err != nil {
		return err
	}
	g.pause(disp.Pauses.Result())

	if msg.Story != "" {
		story := layout.Wrap(msg.Story, width, 0, false)
		if err := g.teletype(body, story+"\n\n", disp.Animation.FPS, nil); err != nil {
			return err
		}
		g.pause(disp.Pauses.Result())
	}

	dim := body.Background().Dim(true)
	end := strings.Repeat(strs.LineSeparator, width) + "\n\n" + strs.EndMessage
	return g.teletype(body, end, disp.Animation.FPS, &dim)
}

// drumroll teases the verdict with throwaway guesses: one random word
// from each of the three pools per line, up to three lines, each wiped
// before the next.
func (g *Game) drumroll(width int) error {
	disp := g.pack.Display
	strs := g.pack.Strings
	body := g.wins.body
	fps := disp.Animation.FPS

	if strs.DrumrollHeader != "" {
		if err := g.teletype(body, strs.DrumrollHeader+"\n\n", fps, nil); err != nil {
			return err
		}
	}
	g.pause(disp.Pauses.DrumrollPrePost())
	col, row := body.Cursor()

	n := 3
	pools := make([][]string, len(strs.DrumrollPools))
	for i, pool := range strs.DrumrollPools {
		pools[i] = append([]string(nil), pool...)
		g.rng.Shuffle(len(pools[i]), func(a, b int) { pools[i][a], pools[i][b] = pools[i][b], pools[i][a] })
		if len(pools[i]) < n {
			n = len(pools[i])
		}
	}

	for i := 0; i < n; i++ {
		line := pools[0][i] + " " + pools[1][i] + " " + pools[2][i] + "....."
		if err := g.teletype(body, layout.Wrap(line, width, 0, false), fps, nil); err != nil {
			return err
		}
		g.pause(disp.Pauses.Drumroll())
		body.MoveTo(col, row)
		body.ClearToBottom()
		body.Flush()
	}

	if strs.DrumrollFooter != "" {
		if err := g.teletype(body, strs.DrumrollFooter+"\n\n", fps, nil); err != nil {
			return err
		}
	}
	g.pause(disp.Pauses.DrumrollPrePost())
	body.Clear()
	body.Flush()
	return nil
}
