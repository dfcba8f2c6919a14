// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/gg"
)

// grainLayer is one tiled dot pattern of the grain texture. Sizes are in
// preview units.
type grainLayer struct {
	tile       float64
	color      gg.RGBA
	solidUntil float64 // distance from the tile center with full color
	fadeUntil  float64 // distance where the color reaches transparent
}

// grainLayers are listed bottom to top.
var grainLayers = []grainLayer{
	{tile: 4, color: gg.RGBA{R: 1, G: 1, B: 1, A: 0.03}, solidUntil: 1, fadeUntil: 2},
	{tile: 3, color: gg.RGBA{A: 0.03}, solidUntil: 1, fadeUntil: 1},
	{tile: 2, color: gg.RGBA{A: 0.05}, solidUntil: 1, fadeUntil: 1},
}

const grainOpacity = 0.55

// colorFilter is a contrast followed by a brightness adjustment, applied to
// straight-alpha color channels. Alpha is unchanged.
type colorFilter struct {
	contrast   float64
	brightness float64
}

var (
	grainFilter       = colorFilter{contrast: 1.30, brightness: 1.05}
	darkOverlayFilter = colorFilter{contrast: 1.20, brightness: 0.90}
)

func (f colorFilter) apply(c gg.RGBA) gg.RGBA {
	ch := func(v float64) float64 {
		v = min(max((v-0.5)*f.contrast+0.5, 0), 1)
		return min(v*f.brightness, 1)
	}
	return gg.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// paintGrain multiplies a fine noise texture over the canvas.
func paintGrain(dc *gg.Context, ratio float64) {
	w, h := dc.Width(), dc.Height()
	pm := gg.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / ratio
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / ratio
			pm.SetPixel(x, y, grainAt(u, v))
		}
	}
	dc.DrawImageEx(gg.ImageBufFromImage(pm.ToImage()), gg.DrawImageOptions{
		Interpolation: gg.InterpNearest,
		Opacity:       grainOpacity,
		BlendMode:     gg.BlendMultiply,
	})
}

// grainAt returns the composited grain color at preview point (u, v), with
// the grain filter applied.
func grainAt(u, v float64) gg.RGBA {
	var out gg.RGBA
	for _, l := range grainLayers {
		half := l.tile / 2
		d := math.Hypot(math.Mod(u, l.tile)-half, math.Mod(v, l.tile)-half)
		a := l.color.A * stopAlpha(d, l.solidUntil, l.fadeUntil)
		if a == 0 {
			continue
		}
		out = over(gg.RGBA{R: l.color.R, G: l.color.G, B: l.color.B, A: a}, out)
	}
	if out.A == 0 {
		return out
	}
	return grainFilter.apply(out)
}

// stopAlpha is 1 up to solid, 0 from fade on, linear in between.
func stopAlpha(d, solid, fade float64) float64 {
	switch {
	case d <= solid:
		return 1
	case d >= fade:
		return 0
	default:
		return 1 - (d-solid)/(fade-solid)
	}
}

// over composites straight-alpha src over dst.
func over(src, dst gg.RGBA) gg.RGBA {
	a := src.A + dst.A*(1-src.A)
	if a == 0 {
		return gg.RGBA{}
	}
	mix := func(s, d float64) float64 {
		return (s*src.A + d*dst.A*(1-src.A)) / a
	}
	return gg.RGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: a}
}


// farthestCorner returns the distance from (cx, cy) to the farthest corner
// of a w x h rectangle, the default extent of a CSS circle gradient.
func farthestCorner(cx, cy, w, h float64) float64 {
	return math.Hypot(max(cx, w-cx), max(cy, h-cy))
}

// paintRadialShadow darkens the edges: transparent up to half the extent,
// black at 120% of it.
func paintRadialShadow(dc *gg.Context) error {
	w, h := float64(dc.Width()), float64(dc.Height())
	cx, cy := w/2, h/2
	r := farthestCorner(cx, cy, w, h)

	brush := gg.NewRadialGradientBrush(cx, cy, 0, 1.2*r).
		AddColorStop(0, gg.Transparent).
		AddColorStop(0.5/1.2, gg.Transparent).
		AddColorStop(1, gg.Black)
	dc.SetFillBrush(brush)
	dc.DrawRectangle(0, 0, w, h)
	return dc.Fill()
}

const (
	darkOverlayOpacity = 0.85
	darkOverlayBase    = 0.55
)

// darkSpot is a soft black spot of the dark overlay, at a position relative
// to the canvas size.
type darkSpot struct {
	fx, fy float64
	alpha  float64
}

// darkSpots are listed bottom to top.
var darkSpots = []darkSpot{
	{fx: 0.8, fy: 0.7, alpha: 0.4},
	{fx: 0.2, fy: 0.3, alpha: 0.5},
}

// paintDarkOverlay multiplies a dark base plus two soft spots over the
// canvas. The overlay's color filter is applied to each stop color.
func paintDarkOverlay(dc *gg.Context) error {
	w, h := float64(dc.Width()), float64(dc.Height())

	dc.PushLayer(gg.BlendMultiply, darkOverlayOpacity)
	defer dc.PopLayer()

	base := darkOverlayFilter.apply(gg.RGBA{A: darkOverlayBase})
	dc.SetRGBA(base.R, base.G, base.B, base.A)
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return err
	}

	for _, s := range darkSpots {
		cx, cy := s.fx*w, s.fy*h
		brush := gg.NewRadialGradientBrush(cx, cy, 0, farthestCorner(cx, cy, w, h)).
			AddColorStop(0, darkOverlayFilter.apply(gg.RGBA2(0, 0, 0, s.alpha))).
			AddColorStop(0.7, gg.Transparent)
		dc.SetFillBrush(brush)
		dc.DrawRectangle(0, 0, w, h)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
