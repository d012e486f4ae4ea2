package canvas

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette maps configured color-set names to styles. Registrations are
// append-only for the life of a session and names are unique; an unknown
// color name is a content error surfaced to the caller.
type Palette struct {
	defFG  tcell.Color
	defBG  tcell.Color
	styles map[string]tcell.Style
	order  []string
}

// NewPalette resolves the default foreground/background color names.
// Empty names fall back to the terminal defaults.
func NewPalette(defaultFG, defaultBG string) (*Palette, error) {
	fg, err := resolveColor(defaultFG)
	if err != nil {
		return nil, err
	}
	bg, err := resolveColor(defaultBG)
	if err != nil {
		return nil, err
	}
	return &Palette{defFG: fg, defBG: bg, styles: map[string]tcell.Style{}}, nil
}

// Register binds a name to a fg/bg color pair. Missing fg or bg merge
// with the palette defaults, the way a partial color set inherits the
// surrounding color environment.
func (p *Palette) Register(name, fg, bg string) (tcell.Style, error) {
	if name == "" {
		return tcell.StyleDefault, fmt.Errorf("palette: color set name is empty")
	}
	if _, ok := p.styles[name]; ok {
		return tcell.StyleDefault, fmt.Errorf("palette: color set %q already registered", name)
	}
	f, err := resolveColor(fg)
	if err != nil {
		return tcell.StyleDefault, fmt.Errorf("color set %q: %w", name, err)
	}
	b, err := resolveColor(bg)
	if err != nil {
		return tcell.StyleDefault, fmt.Errorf("color set %q: %w", name, err)
	}
	if fg == "" {
		f = p.defFG
	}
	if bg == "" {
		b = p.defBG
	}
	style := tcell.StyleDefault.Foreground(f).Background(b)
	p.styles[name] = style
	p.order = append(p.order, name)
	return style, nil
}

// Style looks a registered color set up by name.
func (p *Palette) Style(name string) (tcell.Style, error) {
	style, ok := p.styles[name]
	if !ok {
		return tcell.StyleDefault, fmt.Errorf("palette: unknown color set %q", name)
	}
	return style, nil
}

// Has reports whether name is already registered.
func (p *Palette) Has(name string) bool {
	_, ok := p.styles[name]
	return ok
}

// Names returns the registration order, for logging.
func (p *Palette) Names() []string {
	return append([]string(nil), p.order...)
}

func resolveColor(name string) (tcell.Color, error) {
	if name == "" {
		return tcell.ColorDefault, nil
	}
	c, ok := tcell.ColorNames[strings.ToLower(name)]
	if !ok {
		return tcell.ColorDefault, fmt.Errorf("unknown color name %q", name)
	}
	return c, nil
}
