package game

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"quizbox/internal/canvas"
	"quizbox/internal/content"
)

// Session is one playthrough: a drawn question set, the responses
// collected so far and the style palette built for this run. Replaying
// starts a fresh Session; nothing carries over.
type Session struct {
	ID        string
	Questions []content.Question
	Responses []string
	Outcome   string
	Palette   *canvas.Palette
}

func newSession(pack content.Pack, rng *rand.Rand) (*Session, error) {
	qs := make([]content.Question, len(pack.Questions.Items))
	for i, q := range pack.Questions.Items {
		// Answers are copied so shuffling never mutates the loaded pack.
		answers := append([]content.Answer(nil), q.Answers...)
		qs[i] = content.Question{Question: q.Question, Answers: answers}
	}
	if pack.Questions.Randomize {
		rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	}
	if len(qs) > pack.Questions.PerSession {
		qs = qs[:pack.Questions.PerSession]
	}
	if pack.Questions.Randomize {
		for _, q := range qs {
			a := q.Answers
			rng.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
		}
	}

	palette, err := buildPalette(pack)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.NewString(),
		Questions: qs,
		Palette:   palette,
	}, nil
}

// buildPalette registers the pack's color sets in name order so
// registration is deterministic across runs.
func buildPalette(pack content.Pack) (*canvas.Palette, error) {
	def := pack.Display.Colors["default"]
	palette, err := canvas.NewPalette(def.FG, def.BG)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(pack.Display.Colors))
	for name := range pack.Display.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := pack.Display.Colors[name]
		if _, err := palette.Register(name, c.FG, c.BG); err != nil {
			return nil, err
		}
	}
	return palette, nil
}
