package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/quotecanvas"
	"github.com/gogpu/quotecanvas/editor"
)

type choice struct {
	value string
	label string
}

// field is one row of the form. Text fields edit through a textinput;
// choice fields cycle through a closed set.
type field struct {
	section string
	label   string

	input   textinput.Model
	choices []choice

	value  func(quotecanvas.Card) string
	commit func(*editor.Editor, string) error

	// onEnter fields commit only when enter is pressed.
	onEnter bool
	err     error
}

func (f *field) isChoice() bool { return f.choices != nil }

func (f *field) choiceIndex(card quotecanvas.Card) int {
	cur := f.value(card)
	for i, c := range f.choices {
		if c.value == cur {
			return i
		}
	}
	return -1
}

func (f *field) cycle(e *editor.Editor, delta int) {
	n := len(f.choices)
	i := f.choiceIndex(e.Card())
	if i < 0 {
		i = 0
		if delta > 0 {
			delta--
		}
	}
	f.err = f.commit(e, f.choices[((i+delta)%n+n)%n].value)
}

func newTextField(section, label string, value func(quotecanvas.Card) string, commit func(*editor.Editor, string) error) *field {
	in := textinput.New()
	in.Prompt = ""
	in.Width = 40
	in.CharLimit = 1000
	return &field{section: section, label: label, input: in, value: value, commit: commit}
}

func newChoiceField(section, label string, choices []choice, value func(quotecanvas.Card) string, commit func(*editor.Editor, string) error) *field {
	return &field{section: section, label: label, choices: choices, value: value, commit: commit}
}

// buildForm returns the fields in form order, seeded from card.
func buildForm(card quotecanvas.Card) []*field {
	var fields []*field

	for i, el := range quotecanvas.Elements {
		section := ""
		if i == 0 {
			section = "Content"
		}
		content := quotecanvas.Field(el)
		fields = append(fields, newTextField(section, el.Label(),
			func(c quotecanvas.Card) string {
				v, _ := c.Content.Value(content)
				return v
			},
			func(e *editor.Editor, v string) error {
				return e.Apply(quotecanvas.SetContent{Field: content, Value: v})
			}))
	}

	image := newTextField("", "Background image",
		func(quotecanvas.Card) string { return "" },
		loadImage)
	image.onEnter = true
	image.input.Placeholder = "path to an image, enter to load"
	fields = append(fields, image)

	families := make([]choice, len(quotecanvas.FontFamilies))
	for i, f := range quotecanvas.FontFamilies {
		families[i] = choice{value: string(f), label: string(f)}
	}
	for i, el := range quotecanvas.Elements {
		section := ""
		if i == 0 {
			section = "Customize"
		}
		style := func(c quotecanvas.Card) quotecanvas.TextStyle {
			s, _ := c.Text(el)
			return s
		}
		fields = append(fields,
			newTextField(section, el.Label()+" size",
				func(c quotecanvas.Card) string { return fmt.Sprintf("%g", style(c).FontSize) },
				func(e *editor.Editor, v string) error { return e.SetFontSizeText(el, v) }),
			newTextField("", el.Label()+" color",
				func(c quotecanvas.Card) string { return style(c).Color },
				func(e *editor.Editor, v string) error {
					if err := checkColor(v); err != nil {
						return err
					}
					return e.Apply(quotecanvas.SetColor{Element: el, Color: v})
				}),
			newChoiceField("", el.Label()+" font", families,
				func(c quotecanvas.Card) string { return string(style(c).FontFamily) },
				func(e *editor.Editor, v string) error {
					return e.Apply(quotecanvas.SetFontFamily{Element: el, Family: quotecanvas.FontFamily(v)})
				}),
		)
	}

	fields = append(fields, newTextField("Canvas", "Background color",
		func(c quotecanvas.Card) string { return c.Canvas.Background },
		func(e *editor.Editor, v string) error {
			if err := checkColor(v); err != nil {
				return err
			}
			return e.Apply(quotecanvas.SetBackground{Color: v})
		}))

	effects := make([]choice, len(quotecanvas.BackgroundEffects))
	for i, fx := range quotecanvas.BackgroundEffects {
		effects[i] = choice{value: string(fx), label: fx.Label()}
	}
	fields = append(fields, newChoiceField("", "Background effect", effects,
		func(c quotecanvas.Card) string { return string(c.Canvas.BackgroundEffect) },
		func(e *editor.Editor, v string) error {
			return e.Apply(quotecanvas.SetBackgroundEffect{Effect: quotecanvas.BackgroundEffect(v)})
		}))

	containers := make([]choice, len(quotecanvas.ContainerStyles))
	for i, cs := range quotecanvas.ContainerStyles {
		containers[i] = choice{value: string(cs), label: cs.Label()}
	}
	fields = append(fields, newChoiceField("", "Container", containers,
		func(c quotecanvas.Card) string { return string(c.Canvas.ContainerStyle) },
		func(e *editor.Editor, v string) error {
			return e.Apply(quotecanvas.SetContainerStyle{Style: quotecanvas.ContainerStyle(v)})
		}))

	for _, f := range fields {
		if !f.isChoice() {
			f.input.SetValue(f.value(card))
		}
	}
	return fields
}

func checkColor(v string) error {
	if _, err := colorful.Hex(v); err != nil {
		return fmt.Errorf("invalid color %q", v)
	}
	return nil
}

func loadImage(e *editor.Editor, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return e.ClearBackgroundImage()
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}
	return e.LoadBackgroundImage(path)
}
