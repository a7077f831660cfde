// Package report renders the news dashboard: SVG charts for the
// insights section, an HTML page for the article feed, and a plain-text
// rendering for the terminal.
package report

import (
	"fmt"
	"strings"
)

// ChartConfig holds rendering parameters for SVG charts.
type ChartConfig struct {
	Width        int    // SVG width in pixels
	Height       int    // SVG height in pixels
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	BgColor      string // chart background
	GridColor    string // grid line color
	TextColor    string // axis label color
	BarColor     string // default bar fill
	FontSize     int    // axis label font size
	Title        string // chart title
}

// DefaultChartConfig returns the dark-theme defaults the dashboard uses.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:        600,
		Height:       400,
		MarginTop:    40,
		MarginRight:  60,
		MarginBottom: 50,
		MarginLeft:   70,
		BgColor:      "#303134",
		GridColor:    "#5f6368",
		TextColor:    "#e8eaed",
		BarColor:     "#8ab4f8",
		FontSize:     11,
	}
}

// withDefaults fills any unset dimension or color from the dark-theme
// defaults, leaving caller-set fields (notably Title) alone.
func (c ChartConfig) withDefaults() ChartConfig {
	def := DefaultChartConfig()
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.MarginTop == 0 {
		c.MarginTop = def.MarginTop
	}
	if c.MarginRight == 0 {
		c.MarginRight = def.MarginRight
	}
	if c.MarginBottom == 0 {
		c.MarginBottom = def.MarginBottom
	}
	if c.MarginLeft == 0 {
		c.MarginLeft = def.MarginLeft
	}
	if c.BgColor == "" {
		c.BgColor = def.BgColor
	}
	if c.GridColor == "" {
		c.GridColor = def.GridColor
	}
	if c.TextColor == "" {
		c.TextColor = def.TextColor
	}
	if c.BarColor == "" {
		c.BarColor = def.BarColor
	}
	if c.FontSize == 0 {
		c.FontSize = def.FontSize
	}
	return c
}

// plotArea returns the usable drawing area dimensions.
func (c ChartConfig) plotArea() (x, y, w, h int) {
	return c.MarginLeft, c.MarginTop,
		c.Width - c.MarginLeft - c.MarginRight,
		c.Height - c.MarginTop - c.MarginBottom
}

// BarItem represents a single bar in a bar or column chart.
type BarItem struct {
	Label string
	Value float64
	Color string // optional, falls back to cfg.BarColor
}

// HorizontalBarChart generates an SVG horizontal bar chart. Bars are
// drawn top to bottom in input order, labels to the left of each bar
// and the value at its end.
func HorizontalBarChart(items []BarItem, cfg ChartConfig) string {
	if len(items) == 0 {
		return emptySVG(cfg, "No data")
	}

	cfg = cfg.withDefaults()
	cfg.MarginLeft = 140 // wider for term labels
	if cfg.Title == "" {
		cfg.Title = "Frequency"
	}

	px, py, pw, ph := cfg.plotArea()

	maxVal := 0.0
	for _, item := range items {
		if item.Value > maxVal {
			maxVal = item.Value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barH := float64(ph) / float64(len(items)) * 0.7
	if barH > 26 {
		barH = 26
	}
	gap := (float64(ph) - barH*float64(len(items))) / float64(len(items)+1)

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))

	// X-axis grid
	gridLines := 4
	for i := 0; i <= gridLines; i++ {
		val := maxVal * float64(i) / float64(gridLines)
		x := float64(px) + float64(pw)*float64(i)/float64(gridLines)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="%s" stroke-dasharray="3,3"/>`,
			x, py, x, py+ph, cfg.GridColor))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="middle">%.0f</text>`,
			x, py+ph+18, cfg.FontSize, cfg.TextColor, val))
	}

	for i, item := range items {
		by := float64(py) + gap + float64(i)*(barH+gap)
		color := item.Color
		if color == "" {
			color = cfg.BarColor
		}
		bw := (item.Value / maxVal) * float64(pw)

		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%.1f" width="%.1f" height="%.1f" fill="%s" rx="2"/>`,
			px, by, bw, barH, color))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" font-size="%d" fill="%s" text-anchor="end">%s</text>`,
			px-8, by+barH/2+4, cfg.FontSize, cfg.TextColor, escapeXML(item.Label)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%d" fill="%s">%.0f</text>`,
			float64(px)+bw+5, by+barH/2+4, cfg.FontSize, cfg.TextColor, item.Value))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ColumnChart generates an SVG vertical bar chart with per-item colors,
// the value printed above each column and the label underneath.
func ColumnChart(items []BarItem, cfg ChartConfig) string {
	if len(items) == 0 {
		return emptySVG(cfg, "No data")
	}

	cfg = cfg.withDefaults()
	if cfg.Title == "" {
		cfg.Title = "Distribution"
	}

	px, py, pw, ph := cfg.plotArea()

	maxVal := 0.0
	for _, item := range items {
		if item.Value > maxVal {
			maxVal = item.Value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barW := float64(pw) / float64(len(items)) * 0.6
	gap := (float64(pw) - barW*float64(len(items))) / float64(len(items)+1)

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))

	// Y-axis grid
	gridLines := 4
	for i := 0; i <= gridLines; i++ {
		val := maxVal * float64(i) / float64(gridLines)
		y := py + ph - int(float64(ph)*float64(i)/float64(gridLines))
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-dasharray="3,3"/>`,
			px, y, px+pw, y, cfg.GridColor))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="%d" fill="%s" text-anchor="end">%.0f</text>`,
			px-5, y+4, cfg.FontSize, cfg.TextColor, val))
	}

	for i, item := range items {
		bx := float64(px) + gap + float64(i)*(barW+gap)
		color := item.Color
		if color == "" {
			color = cfg.BarColor
		}
		bh := (item.Value / maxVal) * float64(ph)
		by := float64(py+ph) - bh

		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" rx="2"/>`,
			bx, by, barW, bh, color))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%d" fill="%s" text-anchor="middle">%.0f</text>`,
			bx+barW/2, by-6, cfg.FontSize, cfg.TextColor, item.Value))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			bx+barW/2, py+ph+18, cfg.FontSize, cfg.TextColor, escapeXML(item.Label)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func svgHeader(cfg ChartConfig) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
}

func emptySVG(cfg ChartConfig, msg string) string {
	if cfg.Width == 0 {
		cfg.Width = 400
	}
	if cfg.Height == 0 {
		cfg.Height = 200
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="%d" height="%d" fill="#303134"/><text x="%d" y="%d" text-anchor="middle" fill="#9aa0a6" font-size="14">%s</text></svg>`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height, cfg.Width/2, cfg.Height/2, escapeXML(msg))
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
