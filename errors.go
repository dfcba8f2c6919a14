package quotecanvas

import "errors"

// Sentinel errors for the card model.
var (
	// ErrUnknownFontFamily is returned when a family is not in FontFamilies.
	ErrUnknownFontFamily = errors.New("quotecanvas: unknown font family")

	// ErrUnknownEffect is returned when an effect name is not recognized.
	ErrUnknownEffect = errors.New("quotecanvas: unknown background effect")

	// ErrInvalidFontSize is returned when a font size is not a positive number.
	ErrInvalidFontSize = errors.New("quotecanvas: invalid font size")

	// ErrUnknownField is returned for a content field outside the closed set.
	ErrUnknownField = errors.New("quotecanvas: unknown content field")

	// ErrUnknownElement is returned for a text element outside the closed set.
	ErrUnknownElement = errors.New("quotecanvas: unknown text element")
)
