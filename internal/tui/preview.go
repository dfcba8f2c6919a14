package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/quotecanvas"
	"github.com/gogpu/quotecanvas/render"
)

// imageStandIn is the terminal background used when the card has an image.
const imageStandIn = "#4a4a4a"

// minPreviewRows keeps very wide containers readable.
const minPreviewRows = 6

// drawPreview draws p as a cols wide block of terminal cells. Cells are
// about twice as tall as wide, so rows are halved to keep the aspect.
func drawPreview(p *render.Preview, cols int, st Styles) string {
	rows := int(math.Round(float64(cols) * p.Height / p.Width / 2))
	rows = max(rows, minPreviewRows)

	canvas := p.Card.Canvas
	bg := canvas.Background
	if canvas.HasBackgroundImage() {
		bg = imageStandIn
	}
	if _, err := colorful.Hex(bg); err != nil {
		bg = "#ffffff"
	}
	base := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Width(cols).
		Align(lipgloss.Center)

	grid := make([]string, rows)
	for i := range grid {
		grid[i] = base.Render("")
	}

	next := 0
	for _, b := range p.Blocks {
		if len(b.Lines) == 0 {
			continue
		}
		lines := blockRows(b, cols-2, base)
		row := int(math.Round(b.Box.Y / p.Height * float64(rows)))
		row = max(row, next)
		if row+len(lines) > rows {
			row = max(rows-len(lines), next)
		}
		for i, l := range lines {
			if row+i >= rows {
				break
			}
			grid[row+i] = l
		}
		next = row + len(lines)
	}

	body := strings.Join(grid, "\n")
	w, h := render.PixelSize(p, quotecanvas.ExportPixelRatio)
	caption := fmt.Sprintf("%s · %dx%d", canvas.ContainerStyle.Label(), w, h)
	if canvas.HasBackgroundImage() {
		badge := st.Badge.
			Background(lipgloss.Color(imageStandIn)).
			Foreground(lipgloss.Color(contrastColor(imageStandIn))).
			Render("image · " + canvas.ActiveEffect().Label())
		caption = lipgloss.JoinHorizontal(lipgloss.Top, badge, " ", st.Muted.Render(caption))
	} else {
		caption = st.Muted.Render(caption)
	}
	return lipgloss.JoinVertical(lipgloss.Left, st.Preview.Render(body), caption)
}

// blockRows wraps a text block to width and styles it like the card.
func blockRows(b render.TextBlock, width int, base lipgloss.Style) []string {
	texts := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		texts[i] = l.Text
	}
	style := base.Foreground(lipgloss.Color(b.Color))
	switch {
	case b.Element == quotecanvas.ElementPhrase:
		style = style.Bold(true)
	case b.Family.Script():
		style = style.Italic(true)
	}
	wrapped := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(texts, " "))
	out := strings.Split(wrapped, "\n")
	for i, l := range out {
		out[i] = style.Render(strings.TrimSpace(l))
	}
	return out
}

// contrastColor returns black or white, whichever reads better on hex.
func contrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	if l, _, _ := c.Lab(); l > 0.55 {
		return "#000000"
	}
	return "#ffffff"
}
