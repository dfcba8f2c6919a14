package config

import (
	"os"

	"github.com/gogpu/quotecanvas/editor"
	"github.com/gogpu/quotecanvas/export"
	"github.com/gogpu/quotecanvas/render"
)

// FontResolver returns the font resolver described by [fonts].
func (c *Config) FontResolver() *render.Fonts {
	if !c.Fonts.UseSystem {
		return render.EmbeddedFonts()
	}
	var opts []render.FontsOption
	if c.Fonts.CacheDir != "" {
		home, _ := os.UserHomeDir()
		opts = append(opts, render.WithFontCacheDir(expandHome(c.Fonts.CacheDir, home)))
	}
	return render.NewFonts(opts...)
}

// ExportOptions returns the pipeline options described by [export] and
// [share].
func (c *Config) ExportOptions() []export.Option {
	opts := []export.Option{
		export.WithDownloadDir(c.DownloadDir()),
		export.WithTimeout(c.Export.Timeout),
		export.WithShareTitle(c.Share.Title),
	}
	if len(c.Share.Command) > 0 {
		opts = append(opts, export.WithSharer(export.NewCommandSharer(c.Share.Command, c.Share.CancelExitCodes...)))
	}
	return opts
}

// NewEditor builds the renderer, pipeline and editor for this configuration.
func (c *Config) NewEditor(extra ...export.Option) (*editor.Editor, error) {
	card, err := c.Card()
	if err != nil {
		return nil, err
	}
	r := render.New(render.WithFonts(c.FontResolver()))
	p := export.New(r, append(c.ExportOptions(), extra...)...)
	return editor.New(r, p,
		editor.WithCard(card),
		editor.WithMaxImageBytes(c.Upload.MaxBytes),
	), nil
}
