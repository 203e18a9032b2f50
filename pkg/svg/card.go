// Package svg provides the generic card chrome and SVG primitives shared
// by all badge renderers: the outer frame with border, background, title
// and accessibility nodes, text width estimation, and the icon catalog.
//
// The package is deliberately dumb about layout: callers hand it final
// geometry and a pre-rendered body, and it serializes the complete,
// self-contained SVG document around them.
package svg

import (
	"bytes"
	"fmt"
)

const (
	// headerFont is the font stack used for card titles.
	headerFont = "'Segoe UI', Ubuntu, Sans-Serif"

	// titlePaddingX and titlePaddingY position the title group.
	titlePaddingX = 25.0
	titlePaddingY = 35.0

	// bodyOffsetY is the vertical start of the card body below the title.
	// bodyOffsetYNoTitle applies when the title is hidden.
	bodyOffsetY        = 55.0
	bodyOffsetYNoTitle = 25.0

	// hiddenTitleHeightTrim is removed from the card height when the
	// title row is not rendered.
	hiddenTitleHeightTrim = 30.0

	// DefaultBorderRadius is the corner radius used unless overridden.
	DefaultBorderRadius = 4.5
)

// CardColors is the resolved color set the chrome paints with. All values
// are hex strings without the leading "#".
type CardColors struct {
	Title      string
	Icon       string
	Text       string
	Background string
	Border     string
	Ring       string
}

// Card is the outer chrome of a badge: frame, background, title row and
// accessibility nodes. Construct with NewCard, then call Render.
type Card struct {
	width  float64
	height float64

	borderRadius      float64
	hideBorder        bool
	hideTitle         bool
	title             string
	titlePrefixIcon   string
	colors            CardColors
	css               string
	a11yTitle         string
	a11yDesc          string
	disableAnimations bool
	body              string
}

// CardOption configures a Card.
type CardOption func(*Card)

// WithTitle sets the visible title text.
func WithTitle(title string) CardOption { return func(c *Card) { c.title = title } }

// WithTitlePrefixIcon places an icon glyph before the title text.
func WithTitlePrefixIcon(icon string) CardOption {
	return func(c *Card) { c.titlePrefixIcon = icon }
}

// WithColors sets the resolved color set.
func WithColors(colors CardColors) CardOption { return func(c *Card) { c.colors = colors } }

// WithCSS appends renderer-specific CSS to the card stylesheet.
func WithCSS(css string) CardOption { return func(c *Card) { c.css = css } }

// WithBorderRadius overrides the default corner radius.
func WithBorderRadius(r float64) CardOption { return func(c *Card) { c.borderRadius = r } }

// WithHideBorder makes the frame stroke transparent.
func WithHideBorder() CardOption { return func(c *Card) { c.hideBorder = true } }

// WithHideTitle removes the title row and trims the card height accordingly.
func WithHideTitle() CardOption { return func(c *Card) { c.hideTitle = true } }

// WithAccessibility sets the <title> and <desc> screen reader nodes.
func WithAccessibility(label, desc string) CardOption {
	return func(c *Card) {
		c.a11yTitle = label
		c.a11yDesc = desc
	}
}

// WithoutAnimations freezes all CSS animations in the output.
func WithoutAnimations() CardOption { return func(c *Card) { c.disableAnimations = true } }

// WithBody sets the pre-rendered card body markup.
func WithBody(body string) CardOption { return func(c *Card) { c.body = body } }

// NewCard creates a card frame with the given outer geometry.
func NewCard(width, height float64, opts ...CardOption) *Card {
	c := &Card{
		width:        width,
		height:       height,
		borderRadius: DefaultBorderRadius,
		colors: CardColors{
			Title:      "2f80ed",
			Icon:       "4c71f2",
			Text:       "434d58",
			Background: "fffefe",
			Border:     "e4e2e2",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hideTitle {
		c.height -= hiddenTitleHeightTrim
	}
	return c
}

// Width returns the card's outer width.
func (c *Card) Width() float64 { return c.width }

// Height returns the card's outer height after any title trim.
func (c *Card) Height() float64 { return c.height }

// Render serializes the complete SVG document.
func (c *Card) Render() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf,
		`<svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" fill="none" xmlns="http://www.w3.org/2000/svg" role="img" aria-labelledby="descId">`+"\n",
		c.width, c.height, c.width, c.height)

	fmt.Fprintf(&buf, `  <title id="titleId">%s</title>`+"\n", EscapeXML(c.a11yTitle))
	fmt.Fprintf(&buf, `  <desc id="descId">%s</desc>`+"\n", EscapeXML(c.a11yDesc))

	c.renderStyle(&buf)
	c.renderBackground(&buf)
	if !c.hideTitle {
		c.renderTitle(&buf)
	}
	c.renderBody(&buf)

	buf.WriteString("</svg>\n")
	return buf.String()
}

func (c *Card) renderStyle(buf *bytes.Buffer) {
	buf.WriteString("  <style>\n")
	fmt.Fprintf(buf, "    .header { font: 600 18px %s; fill: #%s; animation: fadeInAnimation 0.8s ease-in-out forwards; }\n",
		headerFont, c.colors.Title)
	buf.WriteString("    @supports(-moz-appearance: auto) { .header { font-size: 15.5px; } }\n")
	if c.css != "" {
		buf.WriteString(c.css)
	}
	if c.disableAnimations {
		buf.WriteString("    * { animation-duration: 0s !important; animation-delay: 0s !important; }\n")
	} else {
		buf.WriteString("    @keyframes fadeInAnimation { from { opacity: 0; } to { opacity: 1; } }\n")
	}
	buf.WriteString("  </style>\n")
}

func (c *Card) renderBackground(buf *bytes.Buffer) {
	strokeOpacity := 1
	if c.hideBorder {
		strokeOpacity = 0
	}
	fmt.Fprintf(buf,
		`  <rect data-testid="card-bg" x="0.5" y="0.5" rx="%.1f" height="99%%" stroke="#%s" width="%.0f" fill="#%s" stroke-opacity="%d"/>`+"\n",
		c.borderRadius, c.colors.Border, c.width-1, c.colors.Background, strokeOpacity)
}

func (c *Card) renderTitle(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <g data-testid="card-title" transform="translate(%.0f, %.0f)">`+"\n",
		titlePaddingX, titlePaddingY)

	textX := 0.0
	if c.titlePrefixIcon != "" {
		fmt.Fprintf(buf,
			`    <svg class="icon" x="0" y="-13" viewBox="0 0 16 16" version="1.1" width="16" height="16">%s</svg>`+"\n",
			c.titlePrefixIcon)
		textX = 25
	}
	fmt.Fprintf(buf, `    <text x="%.0f" y="0" class="header" data-testid="header">%s</text>`+"\n",
		textX, EscapeXML(c.title))
	buf.WriteString("  </g>\n")
}

func (c *Card) renderBody(buf *bytes.Buffer) {
	offsetY := bodyOffsetY
	if c.hideTitle {
		offsetY = bodyOffsetYNoTitle
	}
	fmt.Fprintf(buf, `  <g data-testid="main-card-body" transform="translate(0, %.0f)">`+"\n", offsetY)
	buf.WriteString(c.body)
	buf.WriteString("\n  </g>\n")
}
