package card

import (
	"fmt"
	"strings"

	"github.com/statscard/statscard/pkg/errors"
	"github.com/statscard/statscard/pkg/svg"
)

// Error card geometry. Wide enough that typical API error messages fit on
// one line.
const (
	errorCardWidth  = 576.0
	errorCardHeight = 120.0
)

// RenderError produces a self-contained SVG describing a failure, themed
// like a regular card so it degrades gracefully inside a README. The
// message is the user-facing summary; secondary carries optional detail
// such as the error code.
func RenderError(message, secondary string, opts Options) string {
	colors := resolveColors(opts)

	var body strings.Builder
	body.WriteString(`    <g transform="translate(25, 10)">` + "\n")
	fmt.Fprintf(&body, `      <text class="error-text" y="15">%s</text>`+"\n", svg.EscapeXML(message))
	if secondary != "" {
		fmt.Fprintf(&body, `      <text class="error-secondary" y="37">%s</text>`+"\n", svg.EscapeXML(secondary))
	}
	body.WriteString("    </g>")

	css := fmt.Sprintf(
		"    .error-text { font: 600 16px 'Segoe UI', Ubuntu, \"Helvetica Neue\", Sans-Serif; fill: #%s; }\n"+
			"    .error-secondary { font: 400 12px 'Segoe UI', Ubuntu, \"Helvetica Neue\", Sans-Serif; fill: #%s; }\n",
		colors.Text, colors.Text)

	c := svg.NewCard(errorCardWidth, errorCardHeight,
		svg.WithTitle("Something went wrong!"),
		svg.WithColors(colors),
		svg.WithCSS(css),
		svg.WithBorderRadius(opts.BorderRadius),
		svg.WithAccessibility("Something went wrong!", message),
		svg.WithoutAnimations(),
		svg.WithBody(body.String()),
	)
	return c.Render()
}

// RenderErrorFor maps an error to the error card, using the structured
// error's user message when available.
func RenderErrorFor(err error, opts Options) string {
	return RenderError(errors.UserMessage(err), string(errors.GetCode(err)), opts)
}
