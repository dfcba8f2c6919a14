package quotecanvas

import (
	"errors"
	"testing"
)

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	orig := DefaultCard()
	next, err := orig.Apply(SetContent{Field: FieldPhrase, Value: "B"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if next.Content.Phrase != "B" {
		t.Errorf("Phrase = %q, want %q", next.Content.Phrase, "B")
	}
	if orig.Content.Phrase == "B" {
		t.Error("Apply mutated the receiver")
	}
}

func TestApplyChangesExactlyOneField(t *testing.T) {
	base := DefaultCard()

	tests := []struct {
		name   string
		update Update
		check  func(c Card) bool
	}{
		{"book", SetContent{Field: FieldBook, Value: "A"}, func(c Card) bool { return c.Content.Book == "A" }},
		{"username", SetContent{Field: FieldUsername, Value: "C"}, func(c Card) bool { return c.Content.Username == "C" }},
		{"font size", SetFontSize{Element: ElementPhrase, Size: 64}, func(c Card) bool { return c.Phrase.FontSize == 64 }},
		{"color", SetColor{Element: ElementUsername, Color: "#ff0000"}, func(c Card) bool { return c.Username.Color == "#ff0000" }},
		{"family", SetFontFamily{Element: ElementBook, Family: FontInter}, func(c Card) bool { return c.Book.FontFamily == FontInter }},
		{"background", SetBackground{Color: "#000"}, func(c Card) bool { return c.Canvas.Background == "#000" }},
		{"image", SetBackgroundImage{Data: "data:image/png;base64,AA=="}, func(c Card) bool { return c.Canvas.HasBackgroundImage() }},
		{"effect", SetBackgroundEffect{Effect: EffectGrain}, func(c Card) bool { return c.Canvas.BackgroundEffect == EffectGrain }},
		{"container", SetContainerStyle{Style: ContainerReel}, func(c Card) bool { return c.Canvas.ContainerStyle == ContainerReel }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base.Apply(tt.update)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if !tt.check(got) {
				t.Errorf("update %T not applied", tt.update)
			}
			if got == base {
				t.Error("card unchanged")
			}
		})
	}
}

func TestApplyNestedMergeKeepsSiblings(t *testing.T) {
	base := DefaultCard()
	got, err := base.Apply(SetColor{Element: ElementPhrase, Color: "#123456"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Phrase.FontSize != base.Phrase.FontSize || got.Phrase.FontFamily != base.Phrase.FontFamily {
		t.Error("nested merge dropped sibling fields")
	}
	if got.Book != base.Book || got.Username != base.Username {
		t.Error("other elements changed")
	}
}

func TestApplyRejects(t *testing.T) {
	base := DefaultCard()
	tests := []struct {
		name   string
		update Update
		want   error
	}{
		{"zero size", SetFontSize{Element: ElementBook, Size: 0}, ErrInvalidFontSize},
		{"negative size", SetFontSize{Element: ElementBook, Size: -4}, ErrInvalidFontSize},
		{"bad element", SetColor{Element: Element(9), Color: "#fff"}, ErrUnknownElement},
		{"bad field", SetContent{Field: Field(7), Value: "x"}, ErrUnknownField},
		{"bad family", SetFontFamily{Element: ElementBook, Family: "Comic Sans"}, ErrUnknownFontFamily},
		{"bad effect", SetBackgroundEffect{Effect: "sepia"}, ErrUnknownEffect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base.Apply(tt.update)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.want)
			}
			if got != base {
				t.Error("failed update changed the card")
			}
		})
	}
}

func TestEffectSurvivesImageRemoval(t *testing.T) {
	c, _ := DefaultCard().Apply(SetBackgroundEffect{Effect: EffectBlur})
	if c.Canvas.ActiveEffect() != EffectNone {
		t.Errorf("ActiveEffect() without image = %q, want none", c.Canvas.ActiveEffect())
	}

	c, _ = c.Apply(SetBackgroundImage{Data: "data:image/png;base64,AA=="})
	if c.Canvas.ActiveEffect() != EffectBlur {
		t.Errorf("ActiveEffect() with image = %q, want blur", c.Canvas.ActiveEffect())
	}

	c, _ = c.Apply(SetBackgroundImage{Data: ""})
	if c.Canvas.BackgroundEffect != EffectBlur {
		t.Error("clearing the image reset the stored effect")
	}
	if c.Canvas.ActiveEffect() != EffectNone {
		t.Error("effect still active without image")
	}
}

func TestParseFontSize(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"32", 32, false},
		{"  48", 48, false},
		{"32px", 32, false},
		{"12.5", 12, false},
		{"+7", 7, false},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"-", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFontSize(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFontSize(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFontSize) {
				t.Errorf("error %v is not ErrInvalidFontSize", err)
			}
			if got != tt.want {
				t.Errorf("ParseFontSize(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseFontFamily(t *testing.T) {
	for _, f := range FontFamilies {
		got, err := ParseFontFamily(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFontFamily(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFontFamily("Papyrus"); !errors.Is(err, ErrUnknownFontFamily) {
		t.Errorf("ParseFontFamily(Papyrus) error = %v", err)
	}
}

func TestCardTextAndValue(t *testing.T) {
	c := DefaultCard()
	for i, e := range Elements {
		s, err := c.Text(e)
		if err != nil {
			t.Fatalf("Text(%v) error = %v", e, err)
		}
		if s.FontSize <= 0 {
			t.Errorf("%v: default font size %v", e, s.FontSize)
		}
		if _, err := c.Content.Value(Field(i)); err != nil {
			t.Errorf("Value(%v) error = %v", Field(i), err)
		}
	}
	if _, err := c.Text(Element(3)); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("Text(3) error = %v", err)
	}
}
