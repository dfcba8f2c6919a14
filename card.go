package quotecanvas

// QuoteContent is the text shown on the card.
type QuoteContent struct {
	Book     string
	Phrase   string
	Username string
}

// TextStyle styles one text element.
type TextStyle struct {
	// FontSize is in design pixels (see DesignWidth).
	FontSize float64

	// Color is a CSS style hex color such as "#333333".
	Color string

	FontFamily FontFamily
}

// CanvasStyle styles the card surface.
type CanvasStyle struct {
	// Background is the fill color drawn below everything else.
	Background string

	// BackgroundImage is an embedded data URL, or empty.
	BackgroundImage string

	// BackgroundEffect only applies while BackgroundImage is set. The stored
	// value survives clearing the image.
	BackgroundEffect BackgroundEffect

	ContainerStyle ContainerStyle
}

// HasBackgroundImage reports whether a background image is set.
func (s CanvasStyle) HasBackgroundImage() bool { return s.BackgroundImage != "" }

// ActiveEffect returns the effect that is actually rendered: the stored
// effect when an image is present, EffectNone otherwise.
func (s CanvasStyle) ActiveEffect() BackgroundEffect {
	if !s.HasBackgroundImage() {
		return EffectNone
	}
	return s.BackgroundEffect
}

// Card is the complete editable state of a quote card.
type Card struct {
	Content  QuoteContent
	Book     TextStyle
	Phrase   TextStyle
	Username TextStyle
	Canvas   CanvasStyle
}

// Element identifies one of the three text blocks.
type Element uint8

// Text elements, in layout order from top to bottom.
const (
	ElementBook Element = iota
	ElementPhrase
	ElementUsername
)

// Elements lists the text elements in layout order.
var Elements = []Element{ElementBook, ElementPhrase, ElementUsername}

// String returns the element name.
func (e Element) String() string {
	switch e {
	case ElementBook:
		return "book"
	case ElementPhrase:
		return "phrase"
	case ElementUsername:
		return "username"
	default:
		return "unknown"
	}
}

// Label returns the element's form label.
func (e Element) Label() string {
	switch e {
	case ElementBook:
		return "Book / Author"
	case ElementPhrase:
		return "Quote"
	case ElementUsername:
		return "Username"
	default:
		return "Unknown"
	}
}

// Field identifies a QuoteContent field. Content fields and text elements
// share their order, so Field(e) names the text shown by element e.
type Field uint8

// Content fields.
const (
	FieldBook Field = iota
	FieldPhrase
	FieldUsername
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldBook:
		return "book"
	case FieldPhrase:
		return "phrase"
	case FieldUsername:
		return "username"
	default:
		return "unknown"
	}
}

// Text returns the style of element e.
func (c Card) Text(e Element) (TextStyle, error) {
	switch e {
	case ElementBook:
		return c.Book, nil
	case ElementPhrase:
		return c.Phrase, nil
	case ElementUsername:
		return c.Username, nil
	default:
		return TextStyle{}, ErrUnknownElement
	}
}

// textPtr returns a pointer to the style of element e inside c.
func (c *Card) textPtr(e Element) (*TextStyle, error) {
	switch e {
	case ElementBook:
		return &c.Book, nil
	case ElementPhrase:
		return &c.Phrase, nil
	case ElementUsername:
		return &c.Username, nil
	default:
		return nil, ErrUnknownElement
	}
}

// Value returns the content of field f.
func (q QuoteContent) Value(f Field) (string, error) {
	switch f {
	case FieldBook:
		return q.Book, nil
	case FieldPhrase:
		return q.Phrase, nil
	case FieldUsername:
		return q.Username, nil
	default:
		return "", ErrUnknownField
	}
}
