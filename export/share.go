// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gogpu/quotecanvas"
)

// CommandSharer shares by running an external command on a temporary copy
// of the file, for example a mail composer or an upload script.
//
// Arguments may contain {file} and {title}; when no argument mentions
// {file} the path is appended. A non-zero exit listed in CancelExitCodes
// means the user cancelled. The temporary file is removed once the
// command exits.
type CommandSharer struct {
	Command         []string
	CancelExitCodes []int

	lookPath func(string) (string, error)
}

// NewCommandSharer returns a sharer running command. An empty command
// yields a sharer that can never share.
func NewCommandSharer(command []string, cancelExitCodes ...int) *CommandSharer {
	return &CommandSharer{
		Command:         command,
		CancelExitCodes: cancelExitCodes,
		lookPath:        exec.LookPath,
	}
}

// CanShare reports whether the command exists and the attachment is an
// image.
func (s *CommandSharer) CanShare(att Attachment) bool {
	if len(s.Command) == 0 || !strings.HasPrefix(att.MIMEType, "image/") {
		return false
	}
	lookPath := s.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath(s.Command[0])
	return err == nil
}

// Share runs the command and waits for it.
func (s *CommandSharer) Share(ctx context.Context, att Attachment) error {
	if len(s.Command) == 0 {
		return errors.New("export: no share command")
	}
	dir, err := os.MkdirTemp("", "quotecanvas-share-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, filepath.Base(att.Name))
	if err := os.WriteFile(path, att.Data, 0o600); err != nil {
		return err
	}

	args := substitute(s.Command[1:], path, att.Title)
	if !slices.ContainsFunc(s.Command[1:], func(a string) bool { return strings.Contains(a, "{file}") }) {
		args = append(args, path)
	}

	quotecanvas.Logger().Debug("export: share", "command", s.Command[0], "file", path)
	err = runTool(ctx, s.Command[0], args, nil)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && slices.Contains(s.CancelExitCodes, exitErr.ExitCode()) {
		return ErrShareCancelled
	}
	return err
}
