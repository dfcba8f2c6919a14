// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"strings"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/quotecanvas"
)

const dataURLScheme = "data:"

// EncodeDataURL embeds data as a base64 data URL of the given MIME type.
func EncodeDataURL(mime string, data []byte) string {
	var b strings.Builder
	b.Grow(len(dataURLScheme) + len(mime) + len(";base64,") + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(dataURLScheme)
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// DecodeDataURL returns the MIME type and payload of a base64 image data URL.
func DecodeDataURL(s string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(s, dataURLScheme) {
		return "", nil, fmt.Errorf("%w: %s", ErrExternalImage, truncate(s, 64))
	}
	header, payload, ok := strings.Cut(s[len(dataURLScheme):], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload", ErrInvalidDataURL)
	}
	mime, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: payload is not base64", ErrInvalidDataURL)
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", nil, fmt.Errorf("%w: %q", ErrNotImage, mime)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return mime, data, nil
}

// imageCache keeps decoded background images keyed by the digest of their
// data URL, so re-rendering an unchanged card does not decode again.
type imageCache struct {
	cache *lru.Cache[[sha256.Size]byte, image.Image]
}

func newImageCache(size int) *imageCache {
	c, _ := lru.New[[sha256.Size]byte, image.Image](size)
	return &imageCache{cache: c}
}

// decode returns the image embedded in src. EXIF orientation is applied.
func (c *imageCache) decode(src string) (image.Image, error) {
	key := sha256.Sum256([]byte(src))
	if img, ok := c.cache.Get(key); ok {
		return img, nil
	}

	mime, data, err := DecodeDataURL(src)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s background: %w", mime, err)
	}

	quotecanvas.Logger().Debug("render: decoded background image",
		"mime", mime, "bytes", len(data), "size", img.Bounds().Size())
	c.cache.Add(key, img)
	return img, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
