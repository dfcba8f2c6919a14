// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var _ ImageClipboard = (*SystemClipboard)(nil)

type recordedRun struct {
	name  string
	args  []string
	stdin []byte
}

func fakeSystemClipboard(goos string, env map[string]string, installed ...string) (*SystemClipboard, *[]recordedRun) {
	var runs []recordedRun
	c := &SystemClipboard{
		goos:   goos,
		getenv: func(k string) string { return env[k] },
		lookPath: func(name string) (string, error) {
			for _, n := range installed {
				if n == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", exec.ErrNotFound
		},
		run: func(_ context.Context, name string, args []string, stdin []byte) error {
			rec := recordedRun{name: name, args: args, stdin: stdin}
			// The temporary file only lives for the duration of run.
			for _, a := range args {
				if i := strings.Index(a, `POSIX file "`); i >= 0 {
					path := strings.SplitN(a[i+len(`POSIX file "`):], `"`, 2)[0]
					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					rec.stdin = data
				}
			}
			runs = append(runs, rec)
			return nil
		},
	}
	return c, &runs
}

func TestSystemClipboardTool(t *testing.T) {
	wayland := map[string]string{"WAYLAND_DISPLAY": "wayland-0"}
	tests := []struct {
		name      string
		goos      string
		env       map[string]string
		installed []string
		want      string
	}{
		{"wayland", "linux", wayland, []string{"wl-copy", "xclip"}, "wl-copy"},
		{"x11", "linux", nil, []string{"wl-copy", "xclip"}, "xclip"},
		{"wayland without wl-copy", "linux", wayland, []string{"xclip"}, "xclip"},
		{"macos", "darwin", nil, []string{"osascript"}, "osascript"},
		{"nothing installed", "linux", nil, nil, ""},
		{"windows", "windows", nil, []string{"xclip"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, runs := fakeSystemClipboard(tt.goos, tt.env, tt.installed...)
			err := c.WriteImage(context.Background(), []byte("png"))
			if tt.want == "" {
				if !errors.Is(err, ErrClipboardUnavailable) {
					t.Errorf("WriteImage() error = %v, want ErrClipboardUnavailable", err)
				}
				if c.Available() {
					t.Error("Available() = true")
				}
				return
			}
			if err != nil {
				t.Fatalf("WriteImage() error = %v", err)
			}
			if len(*runs) != 1 || (*runs)[0].name != tt.want {
				t.Fatalf("runs = %+v, want one %s", *runs, tt.want)
			}
			if got := string((*runs)[0].stdin); got != "png" {
				t.Errorf("tool received %q, want the image", got)
			}
		})
	}
}

func TestSystemClipboardRemovesTempFile(t *testing.T) {
	c, runs := fakeSystemClipboard("darwin", nil, "osascript")
	if err := c.WriteImage(context.Background(), []byte("png")); err != nil {
		t.Fatalf("WriteImage() error = %v", err)
	}
	script := (*runs)[0].args[1]
	path := strings.SplitN(strings.SplitN(script, `POSIX file "`, 2)[1], `"`, 2)[0]
	if filepath.Base(path) != FileName {
		t.Errorf("temp file = %q", path)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temp file still present: %v", err)
	}
}

func TestSubstitute(t *testing.T) {
	got := substitute([]string{"--title={title}", "{file}", "plain"}, "/tmp/a.png", "My Quote")
	want := []string{"--title=My Quote", "/tmp/a.png", "plain"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("substitute()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
