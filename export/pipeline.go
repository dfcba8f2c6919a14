// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/sync/semaphore"

	"github.com/gogpu/quotecanvas"
	"github.com/gogpu/quotecanvas/render"
)

// Export defaults.
const (
	FileName       = "quote-canvas.png"
	MIMEType       = "image/png"
	ShareTitle     = "My Quote"
	DefaultTimeout = 30 * time.Second
)

// maxDuplicates bounds the "quote-canvas (n).png" search.
const maxDuplicates = 999

// Rasterizer draws a preview into a pixel surface. *render.Renderer
// implements it.
type Rasterizer interface {
	Rasterize(ctx context.Context, p *render.Preview, ratio float64) (*gg.Context, error)
}

// Pipeline captures previews and delivers them to output channels.
// It is safe for concurrent use; exports are serialized.
type Pipeline struct {
	raster Rasterizer
	opts   options
	busy   *semaphore.Weighted
}

// New creates a pipeline drawing with r.
func New(r Rasterizer, opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		raster: r,
		opts:   o,
		busy:   semaphore.NewWeighted(1),
	}
}

// DownloadDir returns the directory Download writes to.
func (p *Pipeline) DownloadDir() string { return p.opts.dir }

// CanShare reports whether Share would reach a share target rather than
// falling back to the clipboard.
func (p *Pipeline) CanShare() bool {
	return p.opts.sharer != nil && p.opts.sharer.CanShare(p.attachment(nil))
}

// Busy reports whether an export is running.
func (p *Pipeline) Busy() bool {
	if p.busy.TryAcquire(1) {
		p.busy.Release(1)
		return false
	}
	return true
}

// Capture rasterizes the preview at the pipeline's pixel ratio and returns
// PNG bytes. A 540-wide preview yields a 1080-wide image.
//
// On timeout Capture returns at once while the rasterizer winds down in the
// background. Export keeps the pipeline busy until it has.
func (p *Pipeline) Capture(ctx context.Context, preview *render.Preview) ([]byte, error) {
	return p.capture(ctx, preview, func() {})
}

// capture calls finished once no rasterization for this call is running.
func (p *Pipeline) capture(ctx context.Context, preview *render.Preview, finished func()) ([]byte, error) {
	if preview == nil {
		finished()
		return nil, &Error{Kind: CaptureFailed, Err: render.ErrNoPreview}
	}
	if p.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.timeout)
		defer cancel()
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		var res result
		func() {
			defer func() {
				if r := recover(); r != nil {
					res = result{err: fmt.Errorf("rasterizer panic: %v", r)}
				}
			}()
			res.data, res.err = p.encode(ctx, preview)
		}()
		finished()
		done <- res
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, &Error{Kind: CaptureFailed, Err: res.err}
		}
		return res.data, nil
	case <-ctx.Done():
		return nil, &Error{Kind: CaptureFailed, Err: ctx.Err()}
	}
}

func (p *Pipeline) encode(ctx context.Context, preview *render.Preview) ([]byte, error) {
	start := time.Now()
	dc, err := p.raster.Rasterize(ctx, preview, p.opts.ratio)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	quotecanvas.Logger().Debug("export: captured",
		"width", dc.Width(), "height", dc.Height(),
		"bytes", buf.Len(), "elapsed", time.Since(start))
	return buf.Bytes(), nil
}

// Export captures the preview and delivers it to ch. It returns
// ErrExportInProgress without capturing if another export is running.
func (p *Pipeline) Export(ctx context.Context, preview *render.Preview, ch Channel) (Result, error) {
	switch ch {
	case Download, Share, Clipboard:
	default:
		return Result{}, ErrUnknownChannel
	}
	if !p.busy.TryAcquire(1) {
		return Result{}, ErrExportInProgress
	}
	// Released once both this call and its rasterization have returned.
	var holders atomic.Int32
	holders.Store(2)
	release := func() {
		if holders.Add(-1) == 0 {
			p.busy.Release(1)
		}
	}
	defer release()

	data, err := p.capture(ctx, preview, release)
	if err != nil {
		quotecanvas.Logger().Warn("export: capture failed", "channel", ch, "err", err)
		return Result{}, err
	}

	var res Result
	switch ch {
	case Download:
		res, err = p.download(data)
	case Share:
		res, err = p.share(ctx, data)
	case Clipboard:
		res, err = p.copy(ctx, data, Clipboard)
	}
	if err != nil {
		quotecanvas.Logger().Warn("export: delivery failed", "channel", ch, "err", err)
		return Result{}, err
	}
	res.Bytes = len(data)
	quotecanvas.Logger().Info("export: done",
		"requested", res.Requested, "delivered", res.Delivered,
		"outcome", res.Outcome, "path", res.Path)
	return res, nil
}

func (p *Pipeline) download(data []byte) (Result, error) {
	path, err := writeUnique(p.opts.dir, FileName, data)
	if err != nil {
		return Result{}, &Error{Kind: DownloadFailed, Err: err}
	}
	return Result{Requested: Download, Delivered: Download, Outcome: Saved, Path: path}, nil
}

func (p *Pipeline) share(ctx context.Context, data []byte) (Result, error) {
	att := p.attachment(data)
	if p.opts.sharer == nil || !p.opts.sharer.CanShare(att) {
		quotecanvas.Logger().Warn("export: no share target, using clipboard")
		return p.copy(ctx, data, Share)
	}
	err := p.opts.sharer.Share(ctx, att)
	switch {
	case err == nil:
		return Result{Requested: Share, Delivered: Share, Outcome: Shared}, nil
	case errors.Is(err, ErrShareCancelled):
		return Result{Requested: Share, Delivered: Share, Outcome: ShareCancelled}, nil
	default:
		return Result{}, &Error{Kind: ShareFailed, Err: err}
	}
}

func (p *Pipeline) copy(ctx context.Context, data []byte, requested Channel) (Result, error) {
	if p.opts.clipboard == nil {
		return Result{}, &Error{Kind: ClipboardFailed, Err: ErrClipboardUnavailable}
	}
	if err := p.opts.clipboard.WriteImage(ctx, data); err != nil {
		return Result{}, &Error{Kind: ClipboardFailed, Err: err}
	}
	return Result{Requested: requested, Delivered: Clipboard, Outcome: Copied}, nil
}

func (p *Pipeline) attachment(data []byte) Attachment {
	return Attachment{
		Name:     FileName,
		MIMEType: MIMEType,
		Title:    p.opts.shareTitle,
		Data:     data,
	}
}

// writeUnique writes data to dir/name, or "base (n).ext" if that exists.
// Existing files are never overwritten.
func writeUnique(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; i <= maxDuplicates; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", err
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("too many copies of %s in %s", name, dir)
}
