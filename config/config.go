// Package config loads QuoteCanvas settings from a TOML file.
//
// The file lives at <user config dir>/quotecanvas/config.toml unless a path
// is given. Every key is optional; a missing file means defaults.
//
//	[export]
//	dir = "~/Pictures"
//	timeout = "30s"
//
//	[share]
//	command = ["xdg-email", "--attach", "{file}", "--subject", "{title}"]
//	cancel_exit_codes = [130]
//
//	[defaults]
//	container = "square"
//
//	[defaults.phrase_style]
//	font_family = "Playfair Display"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/quotecanvas"
	"github.com/gogpu/quotecanvas/editor"
	"github.com/gogpu/quotecanvas/export"
)

// Config is the full configuration.
type Config struct {
	Export   ExportConfig   `toml:"export"`
	Share    ShareConfig    `toml:"share"`
	Upload   UploadConfig   `toml:"upload"`
	Fonts    FontsConfig    `toml:"fonts"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// ExportConfig controls capture and downloads.
type ExportConfig struct {
	// Dir is where downloads go. Empty means ~/Downloads when it exists,
	// else the working directory. A leading ~ is expanded.
	Dir     string        `toml:"dir"`
	Timeout time.Duration `toml:"timeout"`
}

// ShareConfig configures the share command. Without a command, sharing
// copies to the clipboard.
type ShareConfig struct {
	Command         []string `toml:"command"`
	CancelExitCodes []int    `toml:"cancel_exit_codes"`
	Title           string   `toml:"title"`
}

// UploadConfig limits background images.
type UploadConfig struct {
	MaxBytes int64 `toml:"max_bytes"`
}

// FontsConfig controls font lookup.
type FontsConfig struct {
	UseSystem bool   `toml:"use_system"`
	CacheDir  string `toml:"cache_dir"`
}

// DefaultsConfig overrides the card shown at startup. Unset keys keep the
// built-in sample.
type DefaultsConfig struct {
	Book     *string `toml:"book"`
	Phrase   *string `toml:"phrase"`
	Username *string `toml:"username"`

	BookStyle     StyleConfig `toml:"book_style"`
	PhraseStyle   StyleConfig `toml:"phrase_style"`
	UsernameStyle StyleConfig `toml:"username_style"`

	Background string `toml:"background"`
	Effect     string `toml:"effect"`
	Container  string `toml:"container"`
}

// StyleConfig overrides one text style. Zero values are ignored.
type StyleConfig struct {
	FontSize   float64 `toml:"font_size"`
	Color      string  `toml:"color"`
	FontFamily string  `toml:"font_family"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Export: ExportConfig{Timeout: export.DefaultTimeout},
		Share:  ShareConfig{Title: export.ShareTitle},
		Upload: UploadConfig{MaxBytes: editor.DefaultMaxImageBytes},
		Fonts:  FontsConfig{UseSystem: true},
	}
}

// Dir returns the QuoteCanvas configuration directory.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: no user config directory: %w", err)
	}
	return filepath.Join(dir, "quotecanvas"), nil
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the default configuration file. A missing file yields
// Default().
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	cfg, err := LoadFromPath(path)
	if errors.Is(err, fs.ErrNotExist) {
		quotecanvas.Logger().Debug("config: no file, using defaults", "path", path)
		return Default(), nil
	}
	return cfg, err
}

// LoadFromPath reads and validates the file at path. Unknown keys are an
// error so typos do not pass silently.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	quotecanvas.Logger().Info("config: loaded", "path", path)
	return cfg, nil
}

// Parse decodes and validates configuration text.
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

// DownloadDir resolves Export.Dir.
func (c *Config) DownloadDir() string {
	home, _ := os.UserHomeDir()
	if c.Export.Dir != "" {
		return expandHome(c.Export.Dir, home)
	}
	if home != "" {
		dl := filepath.Join(home, "Downloads")
		if fi, err := os.Stat(dl); err == nil && fi.IsDir() {
			return dl
		}
	}
	return "."
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}

// Card returns the startup card: the built-in sample with the [defaults]
// overrides applied.
func (c *Config) Card() (quotecanvas.Card, error) {
	card := quotecanvas.DefaultCard()
	for _, u := range c.Defaults.updates() {
		next, err := card.Apply(u)
		if err != nil {
			return quotecanvas.DefaultCard(), err
		}
		card = next
	}
	return card, nil
}

func (d DefaultsConfig) updates() []quotecanvas.Update {
	var us []quotecanvas.Update
	content := []struct {
		field quotecanvas.Field
		value *string
	}{
		{quotecanvas.FieldBook, d.Book},
		{quotecanvas.FieldPhrase, d.Phrase},
		{quotecanvas.FieldUsername, d.Username},
	}
	for _, c := range content {
		if c.value != nil {
			us = append(us, quotecanvas.SetContent{Field: c.field, Value: *c.value})
		}
	}
	for _, el := range quotecanvas.Elements {
		s := d.style(el)
		if s.FontSize != 0 {
			us = append(us, quotecanvas.SetFontSize{Element: el, Size: s.FontSize})
		}
		if s.Color != "" {
			us = append(us, quotecanvas.SetColor{Element: el, Color: s.Color})
		}
		if s.FontFamily != "" {
			us = append(us, quotecanvas.SetFontFamily{Element: el, Family: quotecanvas.FontFamily(s.FontFamily)})
		}
	}
	if d.Background != "" {
		us = append(us, quotecanvas.SetBackground{Color: d.Background})
	}
	if d.Effect != "" {
		us = append(us, quotecanvas.SetBackgroundEffect{Effect: quotecanvas.BackgroundEffect(d.Effect)})
	}
	if d.Container != "" {
		us = append(us, quotecanvas.SetContainerStyle{Style: quotecanvas.ContainerStyle(d.Container)})
	}
	return us
}

func (d DefaultsConfig) style(el quotecanvas.Element) StyleConfig {
	switch el {
	case quotecanvas.ElementBook:
		return d.BookStyle
	case quotecanvas.ElementPhrase:
		return d.PhraseStyle
	default:
		return d.UsernameStyle
	}
}

// ValidationError is one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every invalid setting.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate reports all invalid settings at once.
func (c *Config) Validate() error {
	var errs ValidateErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Export.Timeout < 0 {
		add("export.timeout", "must not be negative, got %s", c.Export.Timeout)
	}
	for _, code := range c.Share.CancelExitCodes {
		if code < 1 || code > 255 {
			add("share.cancel_exit_codes", "exit code %d out of range 1-255", code)
		}
	}
	if len(c.Share.Command) > 0 && strings.TrimSpace(c.Share.Command[0]) == "" {
		add("share.command", "program name is empty")
	}
	if c.Upload.MaxBytes <= 0 {
		add("upload.max_bytes", "must be positive, got %d", c.Upload.MaxBytes)
	}

	d := c.Defaults
	for _, el := range quotecanvas.Elements {
		s := d.style(el)
		field := "defaults." + el.String() + "_style"
		if s.FontSize < 0 {
			add(field+".font_size", "must be positive, got %g", s.FontSize)
		}
		if s.Color != "" {
			if _, err := colorful.Hex(s.Color); err != nil {
				add(field+".color", "invalid hex color %q", s.Color)
			}
		}
		if s.FontFamily != "" {
			if _, err := quotecanvas.ParseFontFamily(s.FontFamily); err != nil {
				add(field+".font_family", "unknown family %q", s.FontFamily)
			}
		}
	}
	if d.Background != "" {
		if _, err := colorful.Hex(d.Background); err != nil {
			add("defaults.background", "invalid hex color %q", d.Background)
		}
	}
	if d.Effect != "" {
		if _, err := quotecanvas.ParseBackgroundEffect(d.Effect); err != nil {
			add("defaults.effect", "unknown effect %q", d.Effect)
		}
	}
	if d.Container != "" && !quotecanvas.ContainerStyle(d.Container).Known() {
		quotecanvas.Logger().Warn("config: unknown container, rendering square", "container", d.Container)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
