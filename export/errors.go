// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"errors"
	"fmt"
)

// Kind classifies export failures.
type Kind uint8

// Failure kinds.
const (
	// CaptureFailed means rasterization or encoding failed, timed out, or
	// there was no preview to capture.
	CaptureFailed Kind = iota + 1

	// ShareFailed means a share target was available but failed for a
	// reason other than the user cancelling.
	ShareFailed

	// ClipboardFailed means the clipboard rejected the image.
	ClipboardFailed

	// DownloadFailed means the file could not be written.
	DownloadFailed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case CaptureFailed:
		return "capture failed"
	case ShareFailed:
		return "share failed"
	case ClipboardFailed:
		return "clipboard failed"
	case DownloadFailed:
		return "download failed"
	default:
		return "unknown"
	}
}

// Error makes Kind usable as an errors.Is target.
func (k Kind) Error() string { return "export: " + k.String() }

// Error is an export failure of a given kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("export: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is e's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the kind of an export error, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Sentinel errors for the export package.
var (
	// ErrExportInProgress is returned when an export is requested while
	// another one has not finished.
	ErrExportInProgress = errors.New("export: another export is in progress")

	// ErrShareCancelled is returned by a Sharer when the user dismissed the
	// share target. The pipeline treats it as success.
	ErrShareCancelled = errors.New("export: share cancelled")

	// ErrClipboardUnavailable is returned when no clipboard tool can take
	// an image on this system.
	ErrClipboardUnavailable = errors.New("export: no image clipboard available")

	// ErrUnknownChannel is returned for a Channel outside the defined set.
	ErrUnknownChannel = errors.New("export: unknown output channel")
)
