package editor

import (
	"errors"
	"fmt"

	"github.com/gogpu/quotecanvas/export"
)

// NoticeKind is the severity of a Notice.
type NoticeKind uint8

// Notice kinds.
const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeError
	NoticeInfo
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	case NoticeInfo:
		return "info"
	default:
		return "none"
	}
}

// Notice is a short non-blocking message for the user.
type Notice struct {
	Kind        NoticeKind
	Title       string
	Description string
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool { return n.Kind == NoticeNone }

// Notices shown for export outcomes.
var (
	NoticeCaptureFailed = Notice{
		Kind:        NoticeError,
		Title:       "Error generating image",
		Description: "Could not generate the image. Please try again.",
	}
	NoticeShareFailed = Notice{
		Kind:        NoticeError,
		Title:       "Sharing failed",
		Description: "Could not share the image. Please try again.",
	}
	NoticeCopied = Notice{
		Kind:        NoticeSuccess,
		Title:       "Copied to clipboard",
		Description: "Image copied to clipboard successfully.",
	}
	NoticeCopyFailed = Notice{
		Kind:        NoticeError,
		Title:       "Failed to copy",
		Description: "Could not copy image to clipboard. Please use the download button.",
	}
	NoticeShared = Notice{
		Kind:        NoticeSuccess,
		Title:       "Shared",
		Description: "Image handed to the share target.",
	}
	NoticeBusy = Notice{
		Kind:        NoticeInfo,
		Title:       "Export in progress",
		Description: "Wait for the current export to finish.",
	}
)

// NoticeFor converts an export result into the notice to show. A cancelled
// share yields the zero Notice.
func NoticeFor(res export.Result, err error) Notice {
	if err != nil {
		return noticeForError(err)
	}
	switch res.Outcome {
	case export.Saved:
		return Notice{
			Kind:        NoticeSuccess,
			Title:       "Image saved",
			Description: fmt.Sprintf("Saved to %s.", res.Path),
		}
	case export.Shared:
		return NoticeShared
	case export.Copied:
		return NoticeCopied
	default:
		return Notice{}
	}
}

func noticeForError(err error) Notice {
	if errors.Is(err, export.ErrExportInProgress) {
		return NoticeBusy
	}
	switch export.KindOf(err) {
	case export.ShareFailed:
		return NoticeShareFailed
	case export.ClipboardFailed:
		return NoticeCopyFailed
	case export.DownloadFailed:
		return Notice{
			Kind:        NoticeError,
			Title:       "Download failed",
			Description: "Could not save the image. Check the download folder.",
		}
	default:
		return NoticeCaptureFailed
	}
}
