// Package tui is the terminal front end of the QuoteCanvas editor.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/quotecanvas"
	"github.com/gogpu/quotecanvas/editor"
	"github.com/gogpu/quotecanvas/export"
)

// DefaultToastDuration is how long a notice stays on screen.
const DefaultToastDuration = 4 * time.Second

// exportDoneMsg carries the outcome of a background export.
type exportDoneMsg struct {
	channel export.Channel
	notice  editor.Notice
}

// textCopiedMsg reports the quote text clipboard write.
type textCopiedMsg struct{ err error }

// toastExpiredMsg dismisses toast id if it is still showing.
type toastExpiredMsg struct{ id int }

type toast struct {
	id     int
	notice editor.Notice
}

// Option configures a Model.
type Option func(*Model)

// WithTextClipboard replaces the function used to copy the quote text.
func WithTextClipboard(write func(string) error) Option {
	return func(m *Model) { m.writeText = write }
}

// WithToastDuration sets how long notices stay visible.
func WithToastDuration(d time.Duration) Option {
	return func(m *Model) { m.toastTTL = d }
}

// WithContext sets the context exports run under.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// Model is the Bubble Tea model of the editor.
type Model struct {
	ctx    context.Context
	editor *editor.Editor

	keys    KeyMap
	styles  Styles
	help    help.Model
	spinner spinner.Model

	fields []*field
	focus  int

	exporting bool
	channel   export.Channel

	toast     *toast
	toastSeq  int
	toastTTL  time.Duration
	writeText func(string) error

	width  int
	height int
}

// New creates a model editing e.
func New(e *editor.Editor, opts ...Option) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:       context.Background(),
		editor:    e,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		spinner:   s,
		fields:    buildForm(e.Card()),
		toastTTL:  DefaultToastDuration,
		writeText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.fields[0].input.Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case exportDoneMsg:
		m.exporting = false
		m.keys.setExporting(false)
		return m, m.notify(msg.notice)

	case textCopiedMsg:
		if msg.err != nil {
			quotecanvas.Logger().Warn("tui: copy text failed", "err", msg.err)
			return m, m.notify(editor.Notice{
				Kind:        editor.NoticeError,
				Title:       "Failed to copy",
				Description: "Could not copy the quote text to the clipboard.",
			})
		}
		return m, m.notify(editor.Notice{
			Kind:        editor.NoticeSuccess,
			Title:       "Copied to clipboard",
			Description: "Quote text copied to clipboard.",
		})

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.exporting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blinks and other input internals.
	f := m.fields[m.focus]
	if f.isChoice() {
		return m, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.fields[m.focus]

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Download):
		return m.startExport(export.Download)
	case key.Matches(msg, m.keys.Share):
		return m.startExport(export.Share)
	case key.Matches(msg, m.keys.CopyImage):
		return m.startExport(export.Clipboard)
	case key.Matches(msg, m.keys.CopyText):
		return m, m.copyText()
	case key.Matches(msg, m.keys.ClearImage):
		if err := m.editor.ClearBackgroundImage(); err != nil {
			return m, m.notify(errorNotice("Could not remove image", err))
		}
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.focus - 1)
	}

	if f.isChoice() {
		switch {
		case key.Matches(msg, m.keys.CycleNext):
			f.cycle(m.editor, 1)
		case key.Matches(msg, m.keys.CyclePrev):
			f.cycle(m.editor, -1)
		}
		return m, nil
	}

	if f.onEnter && key.Matches(msg, m.keys.Apply) {
		f.err = f.commit(m.editor, f.input.Value())
		if f.err != nil {
			return m, m.notify(errorNotice("Could not load image", f.err))
		}
		f.input.SetValue("")
		return m, nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if v := f.input.Value(); !f.onEnter && v != before {
		f.err = f.commit(m.editor, v)
	}
	return m, cmd
}

// setFocus moves the focus to field i, wrapping around.
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.fields)
	m.fields[m.focus].input.Blur()
	m.focus = ((i % n) + n) % n
	f := m.fields[m.focus]
	if f.isChoice() {
		return nil
	}
	return f.input.Focus()
}

func (m Model) startExport(ch export.Channel) (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	m.exporting = true
	m.channel = ch
	m.keys.setExporting(true)

	job := m.editor.ExportJob(ch)
	ctx := m.ctx
	run := func() tea.Msg {
		return exportDoneMsg{channel: ch, notice: job(ctx)}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

func (m Model) copyText() tea.Cmd {
	text := QuoteText(m.editor.Card())
	write := m.writeText
	return func() tea.Msg {
		return textCopiedMsg{err: write(text)}
	}
}

// notify shows n and schedules its dismissal.
func (m *Model) notify(n editor.Notice) tea.Cmd {
	if n.IsZero() {
		return nil
	}
	m.toastSeq++
	id := m.toastSeq
	m.toast = &toast{id: id, notice: n}
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func errorNotice(title string, err error) editor.Notice {
	return editor.Notice{Kind: editor.NoticeError, Title: title, Description: err.Error()}
}

// QuoteText formats the card content as plain text.
func QuoteText(c quotecanvas.Card) string {
	var parts []string
	if c.Content.Phrase != "" {
		parts = append(parts, "“"+c.Content.Phrase+"”")
	}
	if c.Content.Book != "" {
		parts = append(parts, c.Content.Book)
	}
	if c.Content.Username != "" {
		parts = append(parts, c.Content.Username)
	}
	return strings.Join(parts, "\n")
}

// View implements tea.Model.
func (m Model) View() string {
	form := m.styles.Form.Render(m.formView())
	preview := m.previewView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, form, preview)

	var footer []string
	if m.toast != nil {
		footer = append(footer, m.toastView(m.toast.notice))
	}
	if m.exporting {
		footer = append(footer, fmt.Sprintf("%s exporting (%s)", m.spinner.View(), m.channel))
	}
	footer = append(footer, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, body, strings.Join(footer, "\n"))
}

func (m Model) formView() string {
	card := m.editor.Card()
	var b strings.Builder
	for i, f := range m.fields {
		if f.section != "" {
			b.WriteString(m.styles.Section.Render(f.section))
			b.WriteByte('\n')
		}
		label := m.styles.Label
		if i == m.focus {
			label = m.styles.LabelFocused
		}
		b.WriteString(label.Render(f.label))
		b.WriteString(m.fieldValue(f, card, i == m.focus))
		if f.err != nil {
			b.WriteString(" ")
			b.WriteString(m.styles.Invalid.Render("!"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) fieldValue(f *field, card quotecanvas.Card, focused bool) string {
	if !f.isChoice() {
		return f.input.View()
	}
	i := f.choiceIndex(card)
	label := f.value(card)
	if i >= 0 {
		label = f.choices[i].label
	}
	if focused {
		return m.styles.Choice.Render("‹ " + label + " ›")
	}
	return m.styles.Value.Render(label)
}

// previewWidth is the preview column count for the terminal width.
func (m Model) previewWidth() int {
	return min(max(m.width-64, 24), 60)
}

func (m Model) previewView() string {
	p, err := m.editor.Preview()
	if err != nil {
		return m.styles.Invalid.Render("preview unavailable: " + err.Error())
	}
	return drawPreview(p, m.previewWidth(), m.styles)
}

func (m Model) toastView(n editor.Notice) string {
	style := m.styles.ToastInfo
	switch n.Kind {
	case editor.NoticeSuccess:
		style = m.styles.ToastSuccess
	case editor.NoticeError:
		style = m.styles.ToastError
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		n.Title,
		m.styles.ToastBody.Render(n.Description),
	))
}

// Run starts the editor on the terminal and blocks until the user quits.
func Run(ctx context.Context, e *editor.Editor, opts ...Option) error {
	opts = append([]Option{WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(e, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
