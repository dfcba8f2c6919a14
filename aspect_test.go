package quotecanvas

import (
	"math"
	"testing"
)

func TestAspectRatio(t *testing.T) {
	tests := []struct {
		style ContainerStyle
		want  float64
	}{
		{ContainerPortrait, 1080.0 / 1350.0},
		{ContainerSquare, 1},
		{ContainerLandscape, 16.0 / 9.0},
		{ContainerReel, 9.0 / 16.0},
		{"", 1},
		{"1080 / 1350", 1},
		{"panorama", 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			if got := AspectRatio(tt.style); got != tt.want {
				t.Errorf("AspectRatio(%q) = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

func TestPreviewSizeHeight(t *testing.T) {
	for _, style := range ContainerStyles {
		w, h := PreviewSize(PreviewWidth, style)
		if w != PreviewWidth {
			t.Errorf("%s: width = %v, want %v", style, w, PreviewWidth)
		}
		if want := PreviewWidth / AspectRatio(style); h != want {
			t.Errorf("%s: height = %v, want %v", style, h, want)
		}
	}
}

func TestPreviewSizeKnownValues(t *testing.T) {
	tests := []struct {
		style ContainerStyle
		h     float64
	}{
		{ContainerPortrait, 675},
		{ContainerSquare, 540},
		{ContainerLandscape, 303.75},
		{ContainerReel, 960},
	}
	for _, tt := range tests {
		_, h := PreviewSize(PreviewWidth, tt.style)
		if math.Abs(h-tt.h) > 1e-9 {
			t.Errorf("%s: height = %v, want %v", tt.style, h, tt.h)
		}
	}
}

func TestContainerStyleKnown(t *testing.T) {
	for _, s := range ContainerStyles {
		if !s.Known() {
			t.Errorf("%q should be known", s)
		}
	}
	if ContainerStyle("circle").Known() {
		t.Error("circle should not be known")
	}
}
