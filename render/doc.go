// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render lays out and rasterizes quote cards.
//
// Rendering happens in two steps. [Renderer.Layout] is a pure function of a
// [quotecanvas.Card]: it sizes the region, resolves font metrics and places
// every text line, producing a [Preview]. [Renderer.Rasterize] paints a
// Preview into a gg.Context at a pixel ratio, multiplying every coordinate
// and font size, so the same Preview drives both the on-screen preview and
// the 2x export.
//
// # Layers
//
// Back to front:
//
//   - background color
//   - background image, cover-fit and centered (blurred for the blur effect)
//   - effect overlay: grain, radial shadow or dark overlay
//   - a fixed 10% black scrim whenever an image is present
//   - book, phrase and username text
//
// Effects are skipped entirely when no background image is set.
//
// # Background images
//
// Images must be embedded as data URLs. Any other reference is external
// content that cannot be captured and fails with [ErrExternalImage].
package render
