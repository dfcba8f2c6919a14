// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"

	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"

	"github.com/gogpu/quotecanvas"
)

// FontResolver returns a face for a family at a pixel size.
// Implementations must be safe for concurrent use.
type FontResolver interface {
	Face(family quotecanvas.FontFamily, size float64) (text.Face, error)
}

// Fonts is the default FontResolver. It looks families up among the
// installed system fonts and falls back to the embedded Go fonts.
// FontSources are heavyweight, so they are parsed once and cached.
type Fonts struct {
	system   bool
	cacheDir string

	mu      sync.Mutex
	sources *lru.Cache[string, *text.FontSource]

	scanOnce sync.Once
	fontMap  *fontscan.FontMap
	scanErr  error
}

// FontsOption configures Fonts.
type FontsOption func(*Fonts)

// WithoutSystemFonts disables the system font lookup; only the embedded Go
// fonts are used. Output is then identical on every machine.
func WithoutSystemFonts() FontsOption {
	return func(f *Fonts) {
		f.system = false
	}
}

// WithFontCacheDir sets where the system font index is cached. Empty uses
// the user cache directory.
func WithFontCacheDir(dir string) FontsOption {
	return func(f *Fonts) {
		f.cacheDir = dir
	}
}

// NewFonts creates a resolver.
func NewFonts(opts ...FontsOption) *Fonts {
	f := &Fonts{system: true}
	for _, opt := range opts {
		opt(f)
	}
	// Room for every family plus the three embedded faces.
	f.sources, _ = lru.New[string, *text.FontSource](len(quotecanvas.FontFamilies) + 3)
	return f
}

// EmbeddedFonts returns a resolver that never touches the system fonts.
func EmbeddedFonts() *Fonts {
	return NewFonts(WithoutSystemFonts())
}

// Face implements FontResolver.
func (f *Fonts) Face(family quotecanvas.FontFamily, size float64) (text.Face, error) {
	src, err := f.source(family)
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

func (f *Fonts) source(family quotecanvas.FontFamily) (*text.FontSource, error) {
	key := string(family)
	if src, ok := f.sources.Get(key); ok {
		return src, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if src, ok := f.sources.Get(key); ok {
		return src, nil
	}

	if f.system {
		if src := f.systemSource(family); src != nil {
			f.sources.Add(key, src)
			return src, nil
		}
	}

	src, err := f.embeddedSource(family)
	if err != nil {
		return nil, err
	}
	f.sources.Add(key, src)
	return src, nil
}

// systemSource returns the installed font for family, or nil.
func (f *Fonts) systemSource(family quotecanvas.FontFamily) *text.FontSource {
	log := quotecanvas.Logger()

	f.scanOnce.Do(func() {
		f.fontMap = fontscan.NewFontMap(scanLogger{})
		f.scanErr = f.fontMap.UseSystemFonts(f.cacheDir)
		if f.scanErr != nil {
			log.Warn("render: system font scan failed", "err", f.scanErr)
		}
	})
	if f.scanErr != nil {
		return nil
	}

	loc, ok := f.fontMap.FindSystemFont(string(family))
	if !ok {
		log.Warn("render: font family not installed, using embedded font", "family", family)
		return nil
	}
	if loc.Index != 0 {
		// Collections are not supported by the parser.
		log.Warn("render: font is part of a collection, using embedded font", "family", family, "file", loc.File)
		return nil
	}

	src, err := text.NewFontSourceFromFile(loc.File)
	if err != nil {
		log.Warn("render: cannot load system font", "family", family, "file", loc.File, "err", err)
		return nil
	}
	log.Debug("render: using system font", "family", family, "file", loc.File)
	return src
}

// embeddedSource picks the closest Go font for family.
func (f *Fonts) embeddedSource(family quotecanvas.FontFamily) (*text.FontSource, error) {
	name, data := "goregular", goregular.TTF
	switch {
	case family.SmallCaps():
		name, data = "gosmallcaps", gosmallcaps.TTF
	case family.Script():
		name, data = "goitalic", goitalic.TTF
	}

	key := "embedded:" + name
	if src, ok := f.sources.Get(key); ok {
		return src, nil
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("render: parse embedded font %s: %w", name, err)
	}
	f.sources.Add(key, src)
	return src, nil
}

// scanLogger routes fontscan diagnostics to the package logger.
type scanLogger struct{}

func (scanLogger) Printf(format string, args ...interface{}) {
	quotecanvas.Logger().Debug(fmt.Sprintf("fontscan: "+format, args...))
}
