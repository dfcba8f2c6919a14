// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/quotecanvas"

// Option configures a Renderer during creation.
//
// Example:
//
//	r := render.New(render.WithFonts(render.EmbeddedFonts()))
type Option func(*options)

type options struct {
	fonts          FontResolver
	referenceWidth float64
	imageCacheSize int
}

func defaultOptions() options {
	return options{
		fonts:          nil, // NewFonts() when nil
		referenceWidth: quotecanvas.PreviewWidth,
		imageCacheSize: 8,
	}
}

// WithFonts sets the font resolver. The default resolves installed system
// fonts and falls back to the embedded Go fonts.
func WithFonts(f FontResolver) Option {
	return func(o *options) {
		o.fonts = f
	}
}

// WithReferenceWidth sets the preview width. Font sizes scale linearly with
// it (width / quotecanvas.DesignWidth). Non-positive widths are ignored.
func WithReferenceWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.referenceWidth = w
		}
	}
}

// WithImageCacheSize sets how many decoded background images are kept.
func WithImageCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.imageCacheSize = n
		}
	}
}
