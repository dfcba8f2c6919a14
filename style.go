package quotecanvas

import "fmt"

// ContainerStyle names an aspect ratio preset.
//
// It is a string type so values read from configuration that do not match a
// known preset stay representable; [AspectRatio] treats them as square.
type ContainerStyle string

// Container presets.
const (
	ContainerPortrait  ContainerStyle = "portrait"
	ContainerSquare    ContainerStyle = "square"
	ContainerLandscape ContainerStyle = "landscape"
	ContainerReel      ContainerStyle = "reel"
)

// ContainerStyles lists the presets in menu order.
var ContainerStyles = []ContainerStyle{
	ContainerPortrait,
	ContainerSquare,
	ContainerLandscape,
	ContainerReel,
}

// Label returns the human readable preset name.
func (c ContainerStyle) Label() string {
	switch c {
	case ContainerPortrait:
		return "Social Post (Portrait)"
	case ContainerSquare:
		return "Square Post"
	case ContainerLandscape:
		return "Landscape Post"
	case ContainerReel:
		return "Reel / Story"
	default:
		return string(c)
	}
}

// Known reports whether c is one of the defined presets.
func (c ContainerStyle) Known() bool {
	_, ok := aspectRatios[c]
	return ok
}

// BackgroundEffect selects the overlay drawn above a background image.
type BackgroundEffect string

// Background effects. Effects are mutually exclusive.
const (
	EffectNone         BackgroundEffect = "none"
	EffectBlur         BackgroundEffect = "blur"
	EffectGrain        BackgroundEffect = "grain"
	EffectRadialShadow BackgroundEffect = "radial-shadow"
	EffectDarkOverlay  BackgroundEffect = "darkOverlay"
)

// BackgroundEffects lists the effects in menu order.
var BackgroundEffects = []BackgroundEffect{
	EffectNone,
	EffectBlur,
	EffectGrain,
	EffectRadialShadow,
	EffectDarkOverlay,
}

// Label returns the human readable effect name.
func (e BackgroundEffect) Label() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectBlur:
		return "Blur"
	case EffectGrain:
		return "Grainy Texture"
	case EffectRadialShadow:
		return "Radial Shadow"
	case EffectDarkOverlay:
		return "Dark Overlay"
	default:
		return string(e)
	}
}

// ParseBackgroundEffect returns the effect named s.
func ParseBackgroundEffect(s string) (BackgroundEffect, error) {
	for _, e := range BackgroundEffects {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEffect, s)
}

// FontFamily is one of the families offered by the editor.
type FontFamily string

// Font families.
const (
	FontPlayfairDisplay   FontFamily = "Playfair Display"
	FontCormorantGaramond FontFamily = "Cormorant Garamond"
	FontInter             FontFamily = "Inter"
	FontRoboto            FontFamily = "Roboto"
	FontTimesNewRoman     FontFamily = "Times New Roman"
	FontDancingScript     FontFamily = "Dancing Script"
	FontCormorantSC       FontFamily = "Cormorant SC"
	FontEBGaramond        FontFamily = "EB Garamond"
)

// FontFamilies lists the allowed families in menu order.
var FontFamilies = []FontFamily{
	FontPlayfairDisplay,
	FontCormorantGaramond,
	FontInter,
	FontRoboto,
	FontTimesNewRoman,
	FontDancingScript,
	FontCormorantSC,
	FontEBGaramond,
}

// ParseFontFamily returns the family named s.
func ParseFontFamily(s string) (FontFamily, error) {
	for _, f := range FontFamilies {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFontFamily, s)
}

// SmallCaps reports whether the family is a small-caps cut.
func (f FontFamily) SmallCaps() bool { return f == FontCormorantSC }

// Script reports whether the family is a handwriting face.
func (f FontFamily) Script() bool { return f == FontDancingScript }

// Sans reports whether the family is sans-serif.
func (f FontFamily) Sans() bool { return f == FontInter || f == FontRoboto }
