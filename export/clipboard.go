// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// clipTool is a command that reads an image from stdin or a file.
type clipTool struct {
	name string
	args []string
	// file means the PNG is passed as a path substituted for "{file}"
	// instead of on stdin.
	file bool
}

var (
	wlCopy    = clipTool{name: "wl-copy", args: []string{"--type", MIMEType}}
	xclip     = clipTool{name: "xclip", args: []string{"-selection", "clipboard", "-t", MIMEType, "-i"}}
	osascript = clipTool{name: "osascript", args: []string{
		"-e", `set the clipboard to (read (POSIX file "{file}") as «class PNGf»)`,
	}, file: true}
)

// SystemClipboard writes images through the platform clipboard tools:
// osascript on macOS, wl-copy under Wayland and xclip under X11.
type SystemClipboard struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args []string, stdin []byte) error
}

// NewSystemClipboard returns a clipboard for the running platform.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		run:      runTool,
	}
}

// Available reports whether some clipboard tool is installed.
func (c *SystemClipboard) Available() bool {
	_, ok := c.tool()
	return ok
}

func (c *SystemClipboard) tool() (clipTool, bool) {
	var candidates []clipTool
	switch c.goos {
	case "darwin":
		candidates = []clipTool{osascript}
	case "windows":
		// No image clipboard without cgo.
	default:
		if c.getenv("WAYLAND_DISPLAY") != "" {
			candidates = append(candidates, wlCopy)
		}
		candidates = append(candidates, xclip)
	}
	for _, t := range candidates {
		if _, err := c.lookPath(t.name); err == nil {
			return t, true
		}
	}
	return clipTool{}, false
}

// WriteImage places png on the clipboard.
func (c *SystemClipboard) WriteImage(ctx context.Context, png []byte) error {
	t, ok := c.tool()
	if !ok {
		return ErrClipboardUnavailable
	}
	if !t.file {
		return c.run(ctx, t.name, t.args, png)
	}

	dir, err := os.MkdirTemp("", "quotecanvas-clip-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, png, 0o600); err != nil {
		return err
	}
	return c.run(ctx, t.name, substitute(t.args, path, ""), nil)
}

func runTool(ctx context.Context, name string, args []string, stdin []byte) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// substitute replaces {file} and {title} in args.
func substitute(args []string, file, title string) []string {
	r := strings.NewReplacer("{file}", file, "{title}", title)
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = r.Replace(a)
	}
	return out
}
