// Package quotecanvas describes a social media quote card: the quote text,
// per-element text styles and the canvas styling (background color, an
// optional embedded background image, an effect and an aspect preset).
//
// # Overview
//
// The root package is plain data plus a closed set of field-level updates.
// Rendering lives in [github.com/gogpu/quotecanvas/render], PNG export in
// [github.com/gogpu/quotecanvas/export] and the mutable editing session in
// [github.com/gogpu/quotecanvas/editor].
//
//	card := quotecanvas.DefaultCard()
//	card, err := card.Apply(quotecanvas.SetContainerStyle{Style: quotecanvas.ContainerSquare})
//
// # Units
//
// Font sizes are design pixels against a 1080 pixel wide canvas
// ([DesignWidth]). The on-screen preview is [PreviewWidth] units wide and
// exports are rendered at [ExportPixelRatio] times that, so a stored size
// maps to the same number of pixels in the exported PNG.
//
// # Aspect presets
//
//	portrait   1080/1350
//	square     1
//	landscape  16/9
//	reel       9/16
//
// Unknown presets fall back to square.
package quotecanvas

const (
	// DesignWidth is the canvas width font sizes are expressed against.
	DesignWidth = 1080.0

	// PreviewWidth is the reference width of the rendered preview.
	PreviewWidth = 540.0

	// ExportPixelRatio is the supersampling factor used on export.
	ExportPixelRatio = 2.0
)
