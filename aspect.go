package quotecanvas

// aspectRatios maps every preset to width/height.
var aspectRatios = map[ContainerStyle]float64{
	ContainerPortrait:  1080.0 / 1350.0,
	ContainerSquare:    1,
	ContainerLandscape: 16.0 / 9.0,
	ContainerReel:      9.0 / 16.0,
}

// AspectRatio returns width/height for the preset. Unknown presets are square.
func AspectRatio(c ContainerStyle) float64 {
	if r, ok := aspectRatios[c]; ok {
		return r
	}
	return 1
}

// PreviewSize returns the size of a region of the given width laid out with
// preset c.
func PreviewSize(width float64, c ContainerStyle) (w, h float64) {
	return width, width / AspectRatio(c)
}
