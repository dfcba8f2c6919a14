// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"fmt"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/quotecanvas"
)

// blurSigma is the background blur in preview units.
const blurSigma = 4.0

// scrimAlpha is the opacity of the black scrim drawn over every image.
const scrimAlpha = 0.10

// PixelSize returns the bitmap size of p rasterized at ratio.
func PixelSize(p *Preview, ratio float64) (w, h int) {
	return int(math.Round(p.Width * ratio)), int(math.Round(p.Height * ratio))
}

// Rasterize paints p into a new gg.Context of PixelSize(p, ratio). The
// caller owns the context and should Close it.
//
// ctx is checked between layers; a cancelled context aborts with ctx.Err().
func (r *Renderer) Rasterize(ctx context.Context, p *Preview, ratio float64) (*gg.Context, error) {
	if p == nil {
		return nil, ErrNoPreview
	}
	if !(ratio > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPixelRatio, ratio)
	}

	w, h := PixelSize(p, ratio)
	dc := gg.NewContext(w, h)
	fail := func(err error) (*gg.Context, error) {
		_ = dc.Close()
		return nil, err
	}

	for _, layer := range p.Layers() {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		if err := r.paintLayer(dc, p, layer, ratio); err != nil {
			return fail(err)
		}
	}

	for _, b := range p.Blocks {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		if err := r.paintBlock(dc, b, ratio); err != nil {
			return fail(err)
		}
	}
	return dc, nil
}

func (r *Renderer) paintLayer(dc *gg.Context, p *Preview, layer Layer, ratio float64) error {
	w, h := float64(dc.Width()), float64(dc.Height())
	switch layer.Kind {
	case LayerColor:
		dc.ClearWithColor(ParseColor(p.Card.Canvas.Background))
	case LayerImage:
		return r.paintImage(dc, p.Card.Canvas.BackgroundImage, layer.Blur, ratio)
	case LayerEffect:
		switch layer.Effect {
		case quotecanvas.EffectGrain:
			paintGrain(dc, ratio)
		case quotecanvas.EffectRadialShadow:
			return paintRadialShadow(dc)
		case quotecanvas.EffectDarkOverlay:
			return paintDarkOverlay(dc)
		}
	case LayerScrim:
		dc.SetRGBA(0, 0, 0, scrimAlpha)
		dc.DrawRectangle(0, 0, w, h)
		return dc.Fill()
	}
	return nil
}

// paintImage draws the background image cover-fit and centered.
func (r *Renderer) paintImage(dc *gg.Context, src string, blur bool, ratio float64) error {
	img, err := r.images.decode(src)
	if err != nil {
		return err
	}
	fitted := imaging.Fill(img, dc.Width(), dc.Height(), imaging.Center, imaging.Lanczos)
	if blur {
		fitted = imaging.Blur(fitted, blurSigma*ratio)
	}
	dc.DrawImage(gg.ImageBufFromImage(fitted), 0, 0)
	return nil
}

func (r *Renderer) paintBlock(dc *gg.Context, b TextBlock, ratio float64) error {
	if len(b.Lines) == 0 {
		return nil
	}
	face, err := r.fonts.Face(b.Family, b.Size*ratio)
	if err != nil {
		return err
	}
	dc.SetFont(face)
	c := ParseColor(b.Color)
	dc.SetRGBA(c.R, c.G, c.B, c.A)

	spacing := b.LetterSpacing * ratio
	for _, l := range b.Lines {
		x, y := l.X*ratio, l.Baseline*ratio
		if spacing == 0 {
			dc.DrawString(l.Text, x, y)
			continue
		}
		for _, ch := range l.Text {
			s := string(ch)
			dc.DrawString(s, x, y)
			x += face.Advance(s) + spacing
		}
	}
	return nil
}

// ParseColor converts a hex color. Anything unparseable paints opaque black.
func ParseColor(s string) gg.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return gg.Black
	}
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}
