package box

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dianlight/conso/style"
)

type BoxSuite struct {
	suite.Suite
	plain *style.Styler
	color *style.Styler
}

func (suite *BoxSuite) SetupTest() {
	suite.plain = style.New(false, true)
	suite.color = style.New(true, true)
}

func (suite *BoxSuite) rows(out string) []string {
	return strings.Split(out, "\n")
}

func (suite *BoxSuite) TestDefaultStyleGeometry() {
	// width = visible width of "line22" (6) + padding 2 = 8, offset = 10.
	out := Render(suite.plain, "line1\nline22", Options{})
	rows := suite.rows(out)

	suite.Equal("┌──────────┐", rows[0])
	suite.Equal("└──────────┘", rows[len(rows)-1])
	// height = 2 lines + padding 2, plus two border rows.
	suite.Len(rows, 6)

	// center valign: one blank row above, one below.
	suite.Equal("│          │", rows[1])
	suite.Equal("│  line1   │", rows[2])
	suite.Equal("│  line22  │", rows[3])
	suite.Equal("│          │", rows[4])
}

func (suite *BoxSuite) TestEveryRowHasEqualVisibleWidth() {
	text := suite.color.Colorize(style.Red, "alpha") + "\n" + "beta longer line"
	out := Render(suite.color, text, Options{Title: suite.color.Colorize(style.Cyan, "T")})
	rows := suite.rows(out)

	want := style.VisibleWidth(rows[0])
	for _, row := range rows {
		suite.Equal(want, style.VisibleWidth(row), "row %q", row)
	}
	// widthOffset + 2 for the two border glyphs.
	suite.Equal(16+2+2+2, want)
}

func (suite *BoxSuite) TestOddPaddingRoundsUp() {
	three := Render(suite.plain, "x", Options{Style: &Style{Padding: 3}})
	four := Render(suite.plain, "x", Options{Style: &Style{Padding: 4}})
	suite.Equal(four, three)
}

func (suite *BoxSuite) TestValignPlacement() {
	text := "only"
	// height = 1 + padding 2 = 3 body rows.
	top := suite.rows(Render(suite.plain, text, Options{Style: &Style{Valign: ValignTop}}))
	center := suite.rows(Render(suite.plain, text, Options{Style: &Style{Valign: ValignCenter}}))
	bottom := suite.rows(Render(suite.plain, text, Options{Style: &Style{Valign: ValignBottom}}))

	// Body rows start at index 1 (after the top border).
	suite.Contains(top[1], "only")
	suite.Contains(center[2], "only")
	suite.Contains(bottom[3], "only")
}

func (suite *BoxSuite) TestTitleCenteringBiasedLeft() {
	// text "hi", default padding 2: width = 4, left fill = floor((4-1)/2) = 1,
	// right fill completes the row to widthOffset = 6.
	out := Render(suite.plain, "hi", Options{Title: "T"})
	rows := suite.rows(out)
	suite.Equal("┌─T────┐", rows[0])
	suite.Equal("└──────┘", rows[len(rows)-1])
}

func (suite *BoxSuite) TestTitleWiderThanTextExpandsBox() {
	out := Render(suite.plain, "x", Options{Title: "a very long title"})
	rows := suite.rows(out)

	suite.Contains(rows[0], "a very long title")
	want := style.VisibleWidth(rows[0])
	for _, row := range rows {
		suite.Equal(want, style.VisibleWidth(row))
	}
}

func (suite *BoxSuite) TestBorderPresets() {
	for name := range presets {
		b, ok := Preset(name)
		suite.True(ok)
		for _, glyph := range []string{b.TopLeft, b.TopRight, b.BottomLeft, b.BottomRight, b.Horizontal, b.Vertical} {
			suite.NotEmpty(glyph, "preset %s", name)
		}
	}

	out := Render(suite.plain, "x", Options{Style: &Style{BorderStyle: "double"}})
	rows := suite.rows(out)
	suite.True(strings.HasPrefix(rows[0], "╔"))
	suite.True(strings.HasSuffix(rows[0], "╗"))
	suite.True(strings.HasPrefix(rows[len(rows)-1], "╚"))
}

func (suite *BoxSuite) TestExplicitBorderOverridesPreset() {
	b := &Border{"+", "+", "+", "+", "-", "|"}
	out := Render(suite.plain, "x", Options{Style: &Style{BorderStyle: "double", Border: b}})
	rows := suite.rows(out)
	suite.Equal("+-----+", rows[0])
	suite.True(strings.HasPrefix(rows[1], "|"))
}

func (suite *BoxSuite) TestUnknownPresetFallsBackToSolid() {
	out := Render(suite.plain, "x", Options{Style: &Style{BorderStyle: "nope"}})
	suite.True(strings.HasPrefix(suite.rows(out)[0], "┌"))
}

func (suite *BoxSuite) TestBorderColorApplied() {
	out := Render(suite.color, "x", Options{Style: &Style{BorderColor: style.Green}})
	suite.Contains(out, "\x1b[32m")
	suite.Equal(Render(suite.plain, "x", Options{}), style.StripANSI(Render(suite.color, "x", Options{})))
}

func (suite *BoxSuite) TestEmptyTextStillWellFormed() {
	out := Render(suite.plain, "", Options{})
	rows := suite.rows(out)

	// minimum width derived from padding alone: width 2, offset 4.
	suite.Equal("┌────┐", rows[0])
	suite.Equal("└────┘", rows[len(rows)-1])
	want := style.VisibleWidth(rows[0])
	for _, row := range rows {
		suite.Equal(want, style.VisibleWidth(row))
	}
}

func TestBoxSuite(t *testing.T) {
	suite.Run(t, new(BoxSuite))
}
