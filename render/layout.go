// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/quotecanvas"
)

// Layout constants, in design pixels unless noted.
const (
	basePadding = 16.0
	// paddingFactor multiplies the scaled base padding on every side.
	paddingFactor = 4.0
	// phraseMaxWidth is the fraction of the content box the phrase may use.
	phraseMaxWidth = 0.85
	// phraseLineHeight is relative to the phrase font size.
	phraseLineHeight = 1.4
	// usernameTracking is the username letter spacing in em.
	usernameTracking = 0.2
)

// Rect is an axis-aligned rectangle in preview units.
type Rect struct {
	X, Y, W, H float64
}

// Line is one laid out line of a text block.
type Line struct {
	Text string
	// X is the left edge of the line; lines are centered in their block.
	X        float64
	Baseline float64
	Width    float64
}

// TextBlock is one of the three positioned text elements.
type TextBlock struct {
	Element quotecanvas.Element
	Family  quotecanvas.FontFamily
	// Size is the font size in preview units.
	Size          float64
	Color         string
	LetterSpacing float64
	LineHeight    float64
	Box           Rect
	Lines         []Line
}

// Preview is the laid out card: everything needed to paint it at any pixel
// ratio. A Preview is immutable once returned by Layout.
type Preview struct {
	Card    quotecanvas.Card
	Width   float64
	Height  float64
	Scale   float64
	Padding float64
	Content Rect
	Blocks  [3]TextBlock
}

// Block returns the block of element e.
func (p *Preview) Block(e quotecanvas.Element) TextBlock {
	if int(e) >= len(p.Blocks) {
		return TextBlock{}
	}
	return p.Blocks[e]
}

// LayerKind identifies a background layer.
type LayerKind uint8

// Layer kinds, listed back to front.
const (
	LayerColor LayerKind = iota
	LayerImage
	LayerEffect
	LayerScrim
)

// String returns the layer kind name.
func (k LayerKind) String() string {
	switch k {
	case LayerColor:
		return "color"
	case LayerImage:
		return "image"
	case LayerEffect:
		return "effect"
	case LayerScrim:
		return "scrim"
	default:
		return "unknown"
	}
}

// Layer is one background layer.
type Layer struct {
	Kind LayerKind
	// Blur is set on the image layer for the blur effect.
	Blur bool
	// Effect is set on effect layers.
	Effect quotecanvas.BackgroundEffect
}

// Layers returns the background layers back to front. Without a background
// image only the color layer is returned, whatever effect is stored.
func (p *Preview) Layers() []Layer {
	layers := []Layer{{Kind: LayerColor}}
	canvas := p.Card.Canvas
	if !canvas.HasBackgroundImage() {
		return layers
	}

	effect := canvas.ActiveEffect()
	layers = append(layers, Layer{Kind: LayerImage, Blur: effect == quotecanvas.EffectBlur})
	switch effect {
	case quotecanvas.EffectGrain, quotecanvas.EffectRadialShadow, quotecanvas.EffectDarkOverlay:
		layers = append(layers, Layer{Kind: LayerEffect, Effect: effect})
	}
	return append(layers, Layer{Kind: LayerScrim})
}

// Renderer lays out and rasterizes cards. It is safe for concurrent use.
type Renderer struct {
	fonts          FontResolver
	images         *imageCache
	referenceWidth float64
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = NewFonts()
	}
	return &Renderer{
		fonts:          o.fonts,
		images:         newImageCache(o.imageCacheSize),
		referenceWidth: o.referenceWidth,
	}
}

// ReferenceWidth returns the preview width.
func (r *Renderer) ReferenceWidth() float64 { return r.referenceWidth }

// Layout computes the preview of card.
func (r *Renderer) Layout(card quotecanvas.Card) (*Preview, error) {
	w, h := quotecanvas.PreviewSize(r.referenceWidth, card.Canvas.ContainerStyle)
	scale := w / quotecanvas.DesignWidth
	pad := basePadding * scale * paddingFactor

	content := Rect{X: pad, Y: pad, W: max(w-2*pad, 0), H: max(h-2*pad, 0)}
	p := &Preview{
		Card:    card,
		Width:   w,
		Height:  h,
		Scale:   scale,
		Padding: pad,
		Content: content,
	}

	book, err := r.block(blockSpec{
		element:  quotecanvas.ElementBook,
		text:     card.Content.Book,
		style:    card.Book,
		scale:    scale,
		maxWidth: content.W,
	})
	if err != nil {
		return nil, err
	}
	phrase, err := r.block(blockSpec{
		element:    quotecanvas.ElementPhrase,
		text:       "“" + card.Content.Phrase + "”",
		style:      card.Phrase,
		scale:      scale,
		maxWidth:   content.W * phraseMaxWidth,
		lineHeight: phraseLineHeight,
	})
	if err != nil {
		return nil, err
	}
	username, err := r.block(blockSpec{
		element:  quotecanvas.ElementUsername,
		text:     cases.Upper(language.Und).String(card.Content.Username),
		style:    card.Username,
		scale:    scale,
		maxWidth: content.W,
		tracking: usernameTracking,
	})
	if err != nil {
		return nil, err
	}

	// Space-between: first block at the top, last at the bottom, the middle
	// one centered in what is left. Overflow collapses the gaps.
	gap := max((content.H-book.Box.H-phrase.Box.H-username.Box.H)/2, 0)
	book.place(content.Y, w)
	phrase.place(book.Box.Y+book.Box.H+gap, w)
	username.place(phrase.Box.Y+phrase.Box.H+gap, w)

	p.Blocks = [3]TextBlock{book.TextBlock, phrase.TextBlock, username.TextBlock}

	quotecanvas.Logger().Debug("render: layout",
		"container", card.Canvas.ContainerStyle,
		"width", w, "height", h,
		"phraseLines", len(phrase.Lines))
	return p, nil
}

type blockSpec struct {
	element  quotecanvas.Element
	text     string
	style    quotecanvas.TextStyle
	scale    float64
	maxWidth float64
	// lineHeight is relative to the font size; zero uses the font's own.
	lineHeight float64
	// tracking is letter spacing in em.
	tracking float64
}

// blockLayout is a TextBlock whose vertical position is not yet known.
type blockLayout struct {
	TextBlock
	ascent, descent float64
}

func (r *Renderer) block(bs blockSpec) (*blockLayout, error) {
	size := bs.style.FontSize * bs.scale
	face, err := r.fonts.Face(bs.style.FontFamily, size)
	if err != nil {
		return nil, err
	}
	m := face.Metrics()

	lh := m.LineHeight()
	if bs.lineHeight > 0 {
		lh = bs.lineHeight * size
	}
	spacing := bs.tracking * size

	var lines []Line
	if bs.text != "" {
		for _, s := range wrapLines(bs.text, face, bs.maxWidth, spacing) {
			lines = append(lines, Line{Text: s, Width: measure(s, face, spacing)})
		}
	}

	return &blockLayout{
		TextBlock: TextBlock{
			Element:       bs.element,
			Family:        bs.style.FontFamily,
			Size:          size,
			Color:         bs.style.Color,
			LetterSpacing: spacing,
			LineHeight:    lh,
			Box:           Rect{W: bs.maxWidth, H: float64(len(lines)) * lh},
			Lines:         lines,
		},
		ascent:  m.Ascent,
		descent: m.Descent,
	}, nil
}

// place positions the block at y and centers it and its lines horizontally
// in a region of the given width.
func (b *blockLayout) place(y, width float64) {
	cx := width / 2
	b.Box.X = cx - b.Box.W/2
	b.Box.Y = y
	halfLeading := (b.LineHeight - (b.ascent + b.descent)) / 2
	for i := range b.Lines {
		l := &b.Lines[i]
		l.X = cx - l.Width/2
		l.Baseline = y + float64(i)*b.LineHeight + halfLeading + b.ascent
	}
}

// measure returns the advance of s including letter spacing after every
// character.
func measure(s string, face text.Face, spacing float64) float64 {
	return face.Advance(s) + spacing*float64(utf8.RuneCountInString(s))
}

// wrapLines breaks s into lines no wider than maxWidth. Hard line breaks are
// kept; trailing spaces do not count toward a line's width.
func wrapLines(s string, face text.Face, maxWidth, spacing float64) []string {
	if spacing == 0 {
		wrapped := text.WrapText(s, face, maxWidth, text.WrapWordChar)
		lines := make([]string, 0, len(wrapped))
		for _, w := range wrapped {
			lines = append(lines, strings.TrimRight(w.Text, " "))
		}
		return lines
	}

	// Letter spacing widens every character, which WrapText does not know
	// about, so break on spaces here.
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var cur string
		for _, word := range strings.Fields(para) {
			next := word
			if cur != "" {
				next = cur + " " + word
			}
			if cur != "" && measure(next, face, spacing) > maxWidth {
				lines = append(lines, cur)
				next = word
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return lines
}
