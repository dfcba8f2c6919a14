package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gogpu/quotecanvas"
	"github.com/gogpu/quotecanvas/export"
	"github.com/gogpu/quotecanvas/render"
)

// DefaultMaxImageBytes is the largest background image accepted.
const DefaultMaxImageBytes = 10 << 20

var (
	// ErrImageTooLarge is returned for uploads above the size limit.
	ErrImageTooLarge = errors.New("editor: image too large")

	// ErrNotAnImage is returned when an upload is not an image.
	ErrNotAnImage = errors.New("editor: file is not an image")
)

// Editor holds the card being edited. Methods are safe for concurrent use.
type Editor struct {
	renderer      *render.Renderer
	pipeline      *export.Pipeline
	maxImageBytes int64

	mu      sync.RWMutex
	card    quotecanvas.Card
	preview *render.Preview // layout of card, nil when stale
}

// Option configures an Editor.
type Option func(*Editor)

// WithCard sets the initial card instead of quotecanvas.DefaultCard.
func WithCard(c quotecanvas.Card) Option {
	return func(e *Editor) { e.card = c }
}

// WithMaxImageBytes sets the upload limit. Non-positive values are ignored.
func WithMaxImageBytes(n int64) Option {
	return func(e *Editor) {
		if n > 0 {
			e.maxImageBytes = n
		}
	}
}

// New creates an editor that lays out with r and exports through p.
func New(r *render.Renderer, p *export.Pipeline, opts ...Option) *Editor {
	e := &Editor{
		renderer:      r,
		pipeline:      p,
		maxImageBytes: DefaultMaxImageBytes,
		card:          quotecanvas.DefaultCard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Card returns a copy of the current card.
func (e *Editor) Card() quotecanvas.Card {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.card
}

// Pipeline returns the export pipeline.
func (e *Editor) Pipeline() *export.Pipeline { return e.pipeline }

// Apply merges one update into the card. On error the card is unchanged.
func (e *Editor) Apply(u quotecanvas.Update) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next, err := e.card.Apply(u)
	if err != nil {
		return err
	}
	e.card = next
	e.preview = nil
	quotecanvas.Logger().Debug("editor: update", "update", fmt.Sprintf("%T", u))
	return nil
}

// SetFontSizeText sets a font size from user input, coercing it the way a
// number field does ("42px" is 42). Invalid input leaves the card unchanged.
func (e *Editor) SetFontSizeText(el quotecanvas.Element, raw string) error {
	size, err := quotecanvas.ParseFontSize(raw)
	if err != nil {
		return err
	}
	return e.Apply(quotecanvas.SetFontSize{Element: el, Size: size})
}

// LoadBackgroundImage reads an image file and embeds it as the background.
func (e *Editor) LoadBackgroundImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return e.ReadBackgroundImage(f)
}

// ReadBackgroundImage embeds the image read from r as the background.
func (e *Editor) ReadBackgroundImage(r io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(r, e.maxImageBytes+1))
	if err != nil {
		return err
	}
	if int64(len(data)) > e.maxImageBytes {
		return fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, e.maxImageBytes)
	}
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !strings.HasPrefix(mime, "image/") {
		return fmt.Errorf("%w: detected %s", ErrNotAnImage, mime)
	}
	quotecanvas.Logger().Info("editor: background image", "mime", mime, "bytes", len(data))
	return e.Apply(quotecanvas.SetBackgroundImage{Data: render.EncodeDataURL(mime, data)})
}

// ClearBackgroundImage removes the background image. The selected effect is
// kept for the next image.
func (e *Editor) ClearBackgroundImage() error {
	return e.Apply(quotecanvas.SetBackgroundImage{})
}

// Preview returns the layout of the current card. The result is shared and
// must not be modified.
func (e *Editor) Preview() (*render.Preview, error) {
	e.mu.RLock()
	p := e.preview
	card := e.card
	e.mu.RUnlock()
	if p != nil {
		return p, nil
	}

	p, err := e.renderer.Layout(card)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	if e.card == card {
		e.preview = p
	}
	e.mu.Unlock()
	return p, nil
}

// ExportJob snapshots the preview now and returns the export to run later,
// typically on another goroutine.
func (e *Editor) ExportJob(ch export.Channel) func(context.Context) Notice {
	p, err := e.Preview()
	if err != nil {
		quotecanvas.Logger().Warn("editor: layout failed", "err", err)
		return func(context.Context) Notice { return NoticeCaptureFailed }
	}
	return func(ctx context.Context) Notice {
		res, err := e.pipeline.Export(ctx, p, ch)
		return NoticeFor(res, err)
	}
}

// Export runs an export of the current card and waits for it.
func (e *Editor) Export(ctx context.Context, ch export.Channel) Notice {
	return e.ExportJob(ch)(ctx)
}
