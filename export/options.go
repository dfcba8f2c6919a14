// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"time"

	"github.com/gogpu/quotecanvas"
)

// Option configures a Pipeline during creation.
type Option func(*options)

type options struct {
	ratio      float64
	timeout    time.Duration
	dir        string
	shareTitle string
	sharer     Sharer
	clipboard  ImageClipboard
}

func defaultOptions() options {
	return options{
		ratio:      quotecanvas.ExportPixelRatio,
		timeout:    DefaultTimeout,
		dir:        ".",
		shareTitle: ShareTitle,
		clipboard:  NewSystemClipboard(),
	}
}

// WithPixelRatio sets the device pixel ratio used for capture.
// Non-positive values are ignored.
func WithPixelRatio(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.ratio = r
		}
	}
}

// WithTimeout bounds a single capture. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.timeout = d
		}
	}
}

// WithDownloadDir sets where Download writes files.
func WithDownloadDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.dir = dir
		}
	}
}

// WithShareTitle sets the title passed to the share target.
func WithShareTitle(title string) Option {
	return func(o *options) {
		o.shareTitle = title
	}
}

// WithSharer sets the share target. Without one, Share falls back to the
// clipboard.
func WithSharer(s Sharer) Option {
	return func(o *options) {
		o.sharer = s
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c ImageClipboard) Option {
	return func(o *options) {
		o.clipboard = c
	}
}
