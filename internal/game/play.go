package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"quizbox/internal/content"
	"quizbox/internal/input"
	"quizbox/internal/layout"
)

// play runs the question rounds. It returns true when every round got a
// valid response, false when one timed out; the caller decides what each
// means for the session.
func (g *Game) play(s *Session) (bool, error) {
	disp := g.pack.Display
	strs := g.pack.Strings

	warnStyle, err := s.Palette.Style("warning")
	if err != nil {
		return false, err
	}
	errStyle, err := s.Palette.Style("error")
	if err != nil {
		return false, err
	}

	prompter := g.prompter
	if prompter == nil {
		prompter = input.New(g.wins.body,
			func() { g.displayStatus(strs.TimeoutWarning, warnStyle, disp.Animation.FPSFast) },
			func() {
				g.screen.Beep()
				g.displayStatus(strs.ErrInvalidInput, errStyle, disp.Animation.FPSFast)
			})
	}

	bold := g.wins.body.Background().Bold(true)
	dim := g.wins.body.Background().Dim(true)
	width := g.contentWidth()
	last := content.Label(strs.QuestionLabel, len(s.Questions)-1)

	for i, q := range s.Questions {
		g.wins.title.Clear()
		g.wins.body.Clear()
		g.wins.status.Clear()
		g.wins.status.Flush()

		round := fmt.Sprintf("[ %c of %c ]", content.Label(strs.QuestionLabel, i), last)
		if err := g.teletype(g.wins.title, round, disp.Animation.FPS, &dim); err != nil {
			return false, err
		}

		question := layout.Wrap(q.Question, width, 0, false) + "\n\n"
		if err := g.teletype(g.wins.body, question, disp.Animation.FPS, &bold); err != nil {
			return false, err
		}

		accepted := make([]rune, 0, len(q.Answers))
		for j, a := range q.Answers {
			label := content.Label(strs.AnswerLabel, j)
			accepted = append(accepted, label)
			if err := g.teletype(g.wins.body, string(unicode.ToUpper(label)), disp.Animation.FPS, &bold); err != nil {
				return false, err
			}
			if err := g.teletype(g.wins.body, " - ", disp.Animation.FPS, &dim); err != nil {
				return false, err
			}
			// The answer hangs indented under its own first line.
			col, _ := g.wins.body.Cursor()
			answer := layout.Indent(layout.Wrap(a.Text, width, col, false), col, true)
			if err := g.teletype(g.wins.body, answer+"\n\n", disp.Animation.FPS, nil); err != nil {
				return false, err
			}
		}

		if err := g.teletype(g.wins.body, strs.InputPrompt+strs.PromptMark, disp.Animation.FPS, &bold); err != nil {
			return false, err
		}

		r, err := prompter.Await(input.Request{
			Timeout:  g.pack.Input.ResponseTimeout(),
			Warning:  g.pack.Input.WarningAfter(),
			Accepted: accepted,
		})
		if errors.Is(err, input.ErrTimeout) {
			g.screen.Beep()
			g.displayStatus(strs.ErrNoInput, errStyle, disp.Animation.FPSFast)
			g.pause(2 * time.Second)
			g.log.Info("response timed out", map[string]any{"session_id": s.ID, "round": i + 1})
			return false, nil
		}
		if err != nil {
			return false, err
		}

		idx := answerIndex(strs.AnswerLabel, r)
		s.Responses = append(s.Responses, q.Answers[idx].Category)
		g.wins.status.Clear()
		g.wins.status.Flush()
		g.wins.body.WriteStringStyled(strings.ToUpper(string(r)), bold)
		g.wins.body.Flush()
		g.log.Debug("response", map[string]any{"session_id": s.ID, "round": i + 1, "key": string(r)})
		g.pause(disp.Pauses.InputReflect())
	}
	return true, nil
}

// answerIndex maps an accepted key back to its answer position. The
// controller already matched it case-insensitively against the label
// range.
func answerIndex(base string, r rune) int {
	b := unicode.ToLower([]rune(base)[0])
	return int(unicode.ToLower(r) - b)
}
