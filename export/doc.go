// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export turns a rendered preview into a PNG and delivers it.
//
// [Pipeline.Capture] rasterizes a [render.Preview] at twice its reference
// width and encodes it as PNG. [Pipeline.Export] captures and then hands the
// bytes to one output channel:
//
//   - [Download] writes quote-canvas.png into the download directory
//   - [Share] passes the file to a [Sharer]; without one it falls back to
//     the clipboard
//   - [Clipboard] places the PNG on the system clipboard
//
// Only one export runs at a time; overlapping calls fail fast with
// [ErrExportInProgress]. Every failure is an [*Error] whose [Kind] can be
// matched with errors.Is:
//
//	if errors.Is(err, export.CaptureFailed) { ... }
//
// A user cancelling the share sheet is not an error; the result reports
// [ShareCancelled].
package export
