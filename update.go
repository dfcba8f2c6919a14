package quotecanvas

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Update is a single field-level change to a Card. The set of updates is
// closed; use Card.Apply to produce the updated card.
type Update interface {
	apply(c *Card) error
}

// SetContent replaces one content field.
type SetContent struct {
	Field Field
	Value string
}

func (u SetContent) apply(c *Card) error {
	switch u.Field {
	case FieldBook:
		c.Content.Book = u.Value
	case FieldPhrase:
		c.Content.Phrase = u.Value
	case FieldUsername:
		c.Content.Username = u.Value
	default:
		return ErrUnknownField
	}
	return nil
}

// SetFontSize replaces the font size of one element.
type SetFontSize struct {
	Element Element
	Size    float64
}

func (u SetFontSize) apply(c *Card) error {
	if !(u.Size > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFontSize, u.Size)
	}
	s, err := c.textPtr(u.Element)
	if err != nil {
		return err
	}
	s.FontSize = u.Size
	return nil
}

// SetColor replaces the text color of one element.
type SetColor struct {
	Element Element
	Color   string
}

func (u SetColor) apply(c *Card) error {
	s, err := c.textPtr(u.Element)
	if err != nil {
		return err
	}
	s.Color = u.Color
	return nil
}

// SetFontFamily replaces the font family of one element.
type SetFontFamily struct {
	Element Element
	Family  FontFamily
}

func (u SetFontFamily) apply(c *Card) error {
	if _, err := ParseFontFamily(string(u.Family)); err != nil {
		return err
	}
	s, err := c.textPtr(u.Element)
	if err != nil {
		return err
	}
	s.FontFamily = u.Family
	return nil
}

// SetBackground replaces the background color.
type SetBackground struct {
	Color string
}

func (u SetBackground) apply(c *Card) error {
	c.Canvas.Background = u.Color
	return nil
}

// SetBackgroundImage replaces the embedded background image. An empty Data
// removes the image; the stored effect is kept.
type SetBackgroundImage struct {
	Data string
}

func (u SetBackgroundImage) apply(c *Card) error {
	c.Canvas.BackgroundImage = u.Data
	return nil
}

// SetBackgroundEffect replaces the stored effect. It may be set before an
// image is present; it is rendered once one is.
type SetBackgroundEffect struct {
	Effect BackgroundEffect
}

func (u SetBackgroundEffect) apply(c *Card) error {
	if _, err := ParseBackgroundEffect(string(u.Effect)); err != nil {
		return err
	}
	c.Canvas.BackgroundEffect = u.Effect
	return nil
}

// SetContainerStyle replaces the aspect preset. Unknown presets are stored
// as given and render square.
type SetContainerStyle struct {
	Style ContainerStyle
}

func (u SetContainerStyle) apply(c *Card) error {
	c.Canvas.ContainerStyle = u.Style
	return nil
}

// Apply returns a copy of c with u applied. c itself is never modified, and
// on error the returned card equals c.
func (c Card) Apply(u Update) (Card, error) {
	next := c
	if err := u.apply(&next); err != nil {
		return c, err
	}
	return next, nil
}

// ParseFontSize coerces form input to a font size the way a number field
// does: leading whitespace is skipped, then the leading integer is used and
// the rest ignored ("32px" is 32, "12.5" is 12). Input without a leading
// integer, or with a value that is not positive, is rejected.
func ParseFontSize(raw string) (float64, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFontSize, raw)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFontSize, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFontSize, raw)
	}
	return float64(n), nil
}
