// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"context"
	"fmt"
)

// Channel is the destination of an exported image.
type Channel uint8

// Output channels.
const (
	Download Channel = iota
	Share
	Clipboard
)

// Channels lists the channels in menu order.
var Channels = []Channel{Download, Share, Clipboard}

func (c Channel) String() string {
	switch c {
	case Download:
		return "download"
	case Share:
		return "share"
	case Clipboard:
		return "clipboard"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

// Outcome describes what happened to a successful export.
type Outcome uint8

// Outcomes.
const (
	Saved Outcome = iota + 1
	Shared
	ShareCancelled
	Copied
)

func (o Outcome) String() string {
	switch o {
	case Saved:
		return "saved"
	case Shared:
		return "shared"
	case ShareCancelled:
		return "share cancelled"
	case Copied:
		return "copied"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Result reports a finished export.
type Result struct {
	// Requested is the channel the caller asked for.
	Requested Channel

	// Delivered is the channel that received the image. It differs from
	// Requested when Share fell back to the clipboard.
	Delivered Channel

	Outcome Outcome

	// Path is the written file for Download.
	Path string

	// Bytes is the PNG size.
	Bytes int
}

// FellBack reports whether the image went somewhere other than requested.
func (r Result) FellBack() bool { return r.Requested != r.Delivered }

// Attachment is a file handed to a share target.
type Attachment struct {
	Name     string
	MIMEType string
	Title    string
	Data     []byte
}

// Sharer hands a file to the platform share facility.
type Sharer interface {
	// CanShare reports whether the attachment can be shared at all.
	CanShare(Attachment) bool

	// Share blocks until the share target is done. It returns
	// ErrShareCancelled when the user dismissed it.
	Share(context.Context, Attachment) error
}

// ImageClipboard accepts PNG images.
type ImageClipboard interface {
	WriteImage(ctx context.Context, png []byte) error
}
