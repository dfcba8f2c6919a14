// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/quotecanvas"
	"github.com/gogpu/quotecanvas/render"
)

// fakeRaster returns blank surfaces of the right size, after running hook.
type fakeRaster struct {
	hook  func(ctx context.Context) error
	calls atomic.Int32
}

func (f *fakeRaster) Rasterize(ctx context.Context, p *render.Preview, ratio float64) (*gg.Context, error) {
	f.calls.Add(1)
	if f.hook != nil {
		if err := f.hook(ctx); err != nil {
			return nil, err
		}
	}
	w, h := render.PixelSize(p, ratio)
	return gg.NewContext(w, h), nil
}

type fakeClipboard struct {
	err  error
	data []byte
}

func (c *fakeClipboard) WriteImage(_ context.Context, png []byte) error {
	if c.err != nil {
		return c.err
	}
	c.data = append([]byte(nil), png...)
	return nil
}

type fakeSharer struct {
	can  bool
	err  error
	got  Attachment
	runs int
}

func (s *fakeSharer) CanShare(Attachment) bool { return s.can }

func (s *fakeSharer) Share(_ context.Context, att Attachment) error {
	s.runs++
	s.got = att
	return s.err
}

func squarePreview() *render.Preview {
	return &render.Preview{Width: quotecanvas.PreviewWidth, Height: quotecanvas.PreviewWidth}
}

func TestCaptureRealRenderer(t *testing.T) {
	r := render.New(render.WithFonts(render.EmbeddedFonts()))
	p, err := r.Layout(quotecanvas.DefaultCard())
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	data, err := New(r).Capture(context.Background(), p)
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1080 || b.Dy() != 1350 {
		t.Errorf("size = %dx%d, want 1080x1350", b.Dx(), b.Dy())
	}
}

func TestCaptureErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		hook    func(ctx context.Context) error
		preview *render.Preview
		want    error
	}{
		{"nil preview", nil, nil, render.ErrNoPreview},
		{"rasterizer error", func(context.Context) error { return boom }, squarePreview(), boom},
		{"panic", func(context.Context) error { panic("bad pixel") }, squarePreview(), nil},
		{"timeout", func(ctx context.Context) error {
			<-ctx.Done()
			time.Sleep(10 * time.Millisecond)
			return ctx.Err()
		}, squarePreview(), context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(&fakeRaster{hook: tt.hook}, WithTimeout(20*time.Millisecond))
			_, err := p.Capture(context.Background(), tt.preview)
			if !errors.Is(err, CaptureFailed) {
				t.Fatalf("Capture() error = %v, want CaptureFailed", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Capture() error = %v, want wrapping %v", err, tt.want)
			}
		})
	}
}

func TestExportDownload(t *testing.T) {
	dir := t.TempDir()
	p := New(&fakeRaster{}, WithDownloadDir(dir))

	first, err := p.Export(context.Background(), squarePreview(), Download)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if first.Outcome != Saved || first.Path != filepath.Join(dir, FileName) {
		t.Errorf("first = %+v", first)
	}
	if first.Bytes == 0 {
		t.Error("Bytes = 0")
	}

	second, err := p.Export(context.Background(), squarePreview(), Download)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if want := filepath.Join(dir, "quote-canvas (1).png"); second.Path != want {
		t.Errorf("second.Path = %q, want %q", second.Path, want)
	}

	data, err := os.ReadFile(first.Path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}

func TestExportDownloadKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, FileName)
	if err := os.WriteFile(existing, []byte("mine"), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := New(&fakeRaster{}, WithDownloadDir(dir)).Export(context.Background(), squarePreview(), Download)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if res.Path == existing {
		t.Fatal("overwrote existing file")
	}
	if got, _ := os.ReadFile(existing); string(got) != "mine" {
		t.Errorf("existing file = %q", got)
	}
}

func TestExportDownloadFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := New(&fakeRaster{}, WithDownloadDir(file)).Export(context.Background(), squarePreview(), Download)
	if !errors.Is(err, DownloadFailed) {
		t.Errorf("Export() error = %v, want DownloadFailed", err)
	}
}

func TestExportShare(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name      string
		sharer    *fakeSharer
		clipErr   error
		outcome   Outcome
		delivered Channel
		wantKind  Kind
	}{
		{"shared", &fakeSharer{can: true}, nil, Shared, Share, 0},
		{"cancelled", &fakeSharer{can: true, err: ErrShareCancelled}, nil, ShareCancelled, Share, 0},
		{"failed", &fakeSharer{can: true, err: boom}, nil, 0, 0, ShareFailed},
		{"unsupported falls back", &fakeSharer{can: false}, nil, Copied, Clipboard, 0},
		{"no sharer falls back", nil, nil, Copied, Clipboard, 0},
		{"fallback clipboard fails", nil, boom, 0, 0, ClipboardFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &fakeClipboard{err: tt.clipErr}
			opts := []Option{WithClipboard(clip)}
			if tt.sharer != nil {
				opts = append(opts, WithSharer(tt.sharer))
			}
			res, err := New(&fakeRaster{}, opts...).Export(context.Background(), squarePreview(), Share)
			if tt.wantKind != 0 {
				if KindOf(err) != tt.wantKind {
					t.Fatalf("Export() error = %v, want kind %v", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if res.Outcome != tt.outcome || res.Delivered != tt.delivered || res.Requested != Share {
				t.Errorf("result = %+v", res)
			}
			if res.FellBack() != (tt.delivered == Clipboard) {
				t.Errorf("FellBack() = %v", res.FellBack())
			}
		})
	}
}

func TestExportShareAttachment(t *testing.T) {
	s := &fakeSharer{can: true}
	_, err := New(&fakeRaster{}, WithSharer(s)).Export(context.Background(), squarePreview(), Share)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if s.got.Name != FileName || s.got.MIMEType != "image/png" || s.got.Title != "My Quote" {
		t.Errorf("attachment = %+v", s.got)
	}
	if len(s.got.Data) == 0 {
		t.Error("attachment has no data")
	}
}

func TestExportClipboard(t *testing.T) {
	clip := &fakeClipboard{}
	res, err := New(&fakeRaster{}, WithClipboard(clip)).Export(context.Background(), squarePreview(), Clipboard)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if res.Outcome != Copied || len(clip.data) != res.Bytes {
		t.Errorf("result = %+v, clipboard has %d bytes", res, len(clip.data))
	}

	_, err = New(&fakeRaster{}, WithClipboard(nil)).Export(context.Background(), squarePreview(), Clipboard)
	if !errors.Is(err, ErrClipboardUnavailable) || !errors.Is(err, ClipboardFailed) {
		t.Errorf("nil clipboard error = %v", err)
	}
}

func TestExportCaptureFailureSkipsDelivery(t *testing.T) {
	clip := &fakeClipboard{}
	raster := &fakeRaster{hook: func(context.Context) error { return errors.New("boom") }}
	_, err := New(raster, WithClipboard(clip)).Export(context.Background(), squarePreview(), Clipboard)
	if !errors.Is(err, CaptureFailed) {
		t.Fatalf("Export() error = %v, want CaptureFailed", err)
	}
	if clip.data != nil {
		t.Error("clipboard written after failed capture")
	}
}

func TestExportBusyUntilTimedOutRasterizerReturns(t *testing.T) {
	release := make(chan struct{})
	raster := &fakeRaster{hook: func(ctx context.Context) error {
		<-ctx.Done()
		<-release
		return ctx.Err()
	}}
	p := New(raster, WithTimeout(20*time.Millisecond), WithClipboard(&fakeClipboard{}))

	_, err := p.Export(context.Background(), squarePreview(), Clipboard)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Export() error = %v, want DeadlineExceeded", err)
	}
	if !p.Busy() {
		t.Error("Busy() = false while the timed out rasterizer is still running")
	}
	if _, err := p.Export(context.Background(), squarePreview(), Clipboard); !errors.Is(err, ErrExportInProgress) {
		t.Errorf("Export() error = %v, want ErrExportInProgress", err)
	}

	close(release)
	deadline := time.Now().Add(2 * time.Second)
	for p.Busy() {
		if time.Now().After(deadline) {
			t.Fatal("Busy() still true after the rasterizer returned")
		}
		time.Sleep(time.Millisecond)
	}
	if got := raster.calls.Load(); got != 1 {
		t.Errorf("rasterized %d times, want 1", got)
	}
}

func TestExportInProgress(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	raster := &fakeRaster{hook: func(context.Context) error {
		close(started)
		<-release
		return nil
	}}
	p := New(raster, WithClipboard(&fakeClipboard{}))

	done := make(chan error, 1)
	go func() {
		_, err := p.Export(context.Background(), squarePreview(), Clipboard)
		done <- err
	}()
	<-started

	if !p.Busy() {
		t.Error("Busy() = false during export")
	}
	if _, err := p.Export(context.Background(), squarePreview(), Download); !errors.Is(err, ErrExportInProgress) {
		t.Errorf("overlapping Export() error = %v, want ErrExportInProgress", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Errorf("first Export() error = %v", err)
	}
	if got := raster.calls.Load(); got != 1 {
		t.Errorf("rasterized %d times, want 1", got)
	}
	if p.Busy() {
		t.Error("Busy() = true after export")
	}
}

func TestExportUnknownChannel(t *testing.T) {
	_, err := New(&fakeRaster{}).Export(context.Background(), squarePreview(), Channel(9))
	if !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("Export() error = %v, want ErrUnknownChannel", err)
	}
}

func TestErrorKinds(t *testing.T) {
	err := &Error{Kind: ShareFailed, Err: os.ErrPermission}
	if !errors.Is(err, ShareFailed) || errors.Is(err, CaptureFailed) {
		t.Error("Is() does not match on kind")
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("Is() does not unwrap")
	}
	if KindOf(errors.New("x")) != 0 {
		t.Error("KindOf(plain) != 0")
	}
	if got := (&Error{Kind: CaptureFailed}).Error(); got != "export: capture failed" {
		t.Errorf("Error() = %q", got)
	}
}
