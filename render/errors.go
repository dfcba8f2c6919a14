// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Sentinel errors for the render package.
var (
	// ErrExternalImage is returned when the background image is not embedded
	// data and therefore cannot be captured.
	ErrExternalImage = errors.New("render: background image is not embedded data")

	// ErrInvalidDataURL is returned for a malformed data URL.
	ErrInvalidDataURL = errors.New("render: invalid data URL")

	// ErrNotImage is returned when embedded data is not an image type.
	ErrNotImage = errors.New("render: data is not an image")

	// ErrNoPreview is returned when rasterizing a nil preview.
	ErrNoPreview = errors.New("render: no preview to rasterize")

	// ErrInvalidPixelRatio is returned for a pixel ratio that is not positive.
	ErrInvalidPixelRatio = errors.New("render: pixel ratio must be positive")
)
