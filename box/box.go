// Package box renders multi-line text inside a bordered, optionally titled
// terminal box. All width arithmetic uses visible width, so lines that carry
// color escape sequences align with plain ones.
package box

import (
	"strings"

	"github.com/dianlight/conso/style"
)

// Border holds the six glyphs of a box border.
type Border struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

// presets maps border style names to glyph sets.
var presets = map[string]Border{
	"solid":               {"┌", "┐", "└", "┘", "─", "│"},
	"double":              {"╔", "╗", "╚", "╝", "═", "║"},
	"doubleSingle":        {"╓", "╖", "╙", "╜", "─", "║"},
	"doubleSingleRounded": {"╭", "╮", "╰", "╯", "─", "║"},
	"singleThick":         {"┏", "┓", "┗", "┛", "━", "┃"},
	"singleDouble":        {"╒", "╕", "╘", "╛", "═", "│"},
	"singleDoubleRounded": {"╭", "╮", "╰", "╯", "═", "│"},
	"rounded":             {"╭", "╮", "╰", "╯", "─", "│"},
}

// Preset returns the named border glyph set.
func Preset(name string) (Border, bool) {
	b, ok := presets[name]
	return b, ok
}

// Valign selects the vertical placement of the text block within the box.
type Valign string

const (
	ValignTop    Valign = "top"
	ValignCenter Valign = "center"
	ValignBottom Valign = "bottom"
)

// Style configures the box border and layout. Zero fields take defaults:
// solid border, white border color, center valign, padding 2. An explicit
// Border overrides BorderStyle.
type Style struct {
	BorderColor style.Color
	BorderStyle string
	Border      *Border
	Valign      Valign
	Padding     int
}

// Options carries the per-box inputs next to the raw text.
type Options struct {
	Title string
	Style *Style
}

// DefaultStyle returns the default box style.
func DefaultStyle() Style {
	return Style{
		BorderColor: style.White,
		BorderStyle: "solid",
		Valign:      ValignCenter,
		Padding:     2,
	}
}

// Render draws text inside a border described by opts. Odd padding rounds up
// so left and right padding stay symmetric. A title wider than the computed
// box width expands the box rather than overflowing the border. Every emitted
// row has the same visible width regardless of embedded color codes.
func Render(st *style.Styler, text string, opts Options) string {
	bs := DefaultStyle()
	if s := opts.Style; s != nil {
		if s.BorderColor != "" {
			bs.BorderColor = s.BorderColor
		}
		if s.BorderStyle != "" {
			bs.BorderStyle = s.BorderStyle
		}
		if s.Border != nil {
			bs.Border = s.Border
		}
		if s.Valign != "" {
			bs.Valign = s.Valign
		}
		if s.Padding > 0 {
			bs.Padding = s.Padding
		}
	}

	padding := bs.Padding
	if padding < 0 {
		padding = 0
	}
	if padding%2 != 0 {
		padding++
	}

	border := presets["solid"]
	if bs.Border != nil {
		border = *bs.Border
	} else if b, ok := presets[bs.BorderStyle]; ok {
		border = b
	}

	lines := strings.Split(text, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := style.VisibleWidth(line); w > maxWidth {
			maxWidth = w
		}
	}

	width := maxWidth + padding
	height := len(lines) + padding
	titleWidth := style.VisibleWidth(opts.Title)
	if titleWidth > width {
		width = titleWidth
	}
	widthOffset := width + padding

	paint := func(s string) string { return st.Colorize(bs.BorderColor, s) }
	rule := func(n int) string {
		if n <= 0 {
			return ""
		}
		return paint(strings.Repeat(border.Horizontal, n))
	}

	out := make([]string, 0, height+2)

	if opts.Title != "" {
		left := (width - titleWidth) / 2
		right := widthOffset - left - titleWidth
		out = append(out, paint(border.TopLeft)+rule(left)+opts.Title+rule(right)+paint(border.TopRight))
	} else {
		out = append(out, paint(border.TopLeft)+rule(widthOffset)+paint(border.TopRight))
	}

	var valignOffset int
	switch bs.Valign {
	case ValignTop:
		valignOffset = height - len(lines) - padding
	case ValignBottom:
		valignOffset = height - len(lines)
	default:
		valignOffset = (height - len(lines)) / 2
	}

	v := paint(border.Vertical)
	for i := 0; i < height; i++ {
		if i < valignOffset || i >= valignOffset+len(lines) {
			out = append(out, v+strings.Repeat(" ", widthOffset)+v)
			continue
		}
		line := lines[i-valignOffset]
		fill := width - style.VisibleWidth(line)
		out = append(out, v+strings.Repeat(" ", padding)+line+strings.Repeat(" ", fill)+v)
	}

	out = append(out, paint(border.BottomLeft)+rule(widthOffset)+paint(border.BottomRight))
	return strings.Join(out, "\n")
}
