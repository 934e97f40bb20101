package layout

import (
	"math"
	"strings"

	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// PageSpec fixes the physical page geometry in CSS points. Margins are zero
// at the backend; all spacing is modeled inside the document via the
// theme's padding token so it stays under the constraint engine's control.
type PageSpec struct {
	Width   float64
	Height  float64
	Padding float64
}

// A4 page dimensions in CSS points (210×297mm at 72dpi).
const (
	A4WidthPt  = 595.28
	A4HeightPt = 841.89
)

// A4Page returns the page spec for A4 output with the theme's padding.
func A4Page(theme types.Theme) PageSpec {
	return PageSpec{Width: A4WidthPt, Height: A4HeightPt, Padding: theme.PagePadding}
}

// ContentWidth is the horizontal space available to layout units.
func (p PageSpec) ContentWidth() float64 {
	return p.Width - 2*p.Padding
}

// Bottom is the lowest cursor position content may occupy.
func (p PageSpec) Bottom() float64 {
	return p.Height - p.Padding
}

// Measurer estimates rendered heights for layout units. The estimate is a
// heuristic, not a box-model computation: the paginator biases breaks with
// a generous threshold instead of computing exact fits, and the same
// constraints are re-stated as CSS hints for the render backend.
type Measurer struct {
	theme types.Theme
	opts  types.RenderOptions
	width float64
}

// NewMeasurer builds a measurer for the given theme, options and page.
func NewMeasurer(theme types.Theme, opts types.RenderOptions, spec PageSpec) *Measurer {
	return &Measurer{theme: theme, opts: opts, width: spec.ContentWidth()}
}

// avgGlyphWidthRatio approximates average glyph width as a fraction of the
// font size for the proportional fonts the themes use.
const avgGlyphWidthRatio = 0.52

// wrappedLines estimates how many visual lines a text occupies at the
// given font size and available width.
func (m *Measurer) wrappedLines(text string, fontSize, width float64) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	perLine := width / (fontSize * avgGlyphWidthRatio)
	if perLine < 1 {
		perLine = 1
	}
	return int(math.Ceil(float64(len([]rune(text))) / perLine))
}

// lineFont returns the font size used for a line role.
func (m *Measurer) lineFont(role LineRole) float64 {
	switch role {
	case RoleTitle:
		return m.theme.TitleSize
	case RoleSubtitle, RoleMeta:
		return m.theme.SmallSize
	default:
		return m.theme.BodySize
	}
}

// LineHeight estimates the rendered height of one logical line, including
// wrapping.
func (m *Measurer) LineHeight(line Line, width float64) float64 {
	font := m.lineFont(line.Role)
	rows := m.wrappedLines(line.Text, font, width)
	if rows == 0 {
		return 0
	}
	// Bullets lose a little width to their marker indent.
	if line.Role == RoleBullet {
		rows = m.wrappedLines(line.Text, font, width-12)
	}
	return float64(rows) * font * m.theme.LineHeight
}

// UnitHeight estimates the rendered height of a layout unit at the given
// column width, including the element spacing that follows it.
func (m *Measurer) UnitHeight(u LayoutUnit, width float64) float64 {
	h := 0.0
	for _, line := range u.Lines {
		h += m.LineHeight(line, width)
	}
	return h + m.elementSpacing()
}

// RowHeight estimates a column-group row: the tallest unit in the row at
// the per-column width.
func (m *Measurer) RowHeight(row []LayoutUnit, columns int) float64 {
	if columns < 1 {
		columns = 1
	}
	colWidth := (m.width - columnGap*float64(columns-1)) / float64(columns)
	max := 0.0
	for _, u := range row {
		if h := m.UnitHeight(u, colWidth); h > max {
			max = h
		}
	}
	return max
}

// HeaderHeight estimates a section header: the heading line, its rule, and
// the section spacing above it.
func (m *Measurer) HeaderHeight() float64 {
	return m.theme.HeadingSize*m.theme.LineHeight + headerRuleHeight + m.sectionSpacing()
}

// IdentityHeight estimates the personal-info banner at the top of page 1.
func (m *Measurer) IdentityHeight(contactLines int) float64 {
	h := m.theme.NameSize * m.theme.LineHeight
	h += m.theme.TitleSize * m.theme.LineHeight
	h += float64(contactLines) * m.theme.SmallSize * m.theme.LineHeight
	return h + m.sectionSpacing()
}

func (m *Measurer) sectionSpacing() float64 {
	if m.opts.SectionSpacing > 0 {
		return m.opts.SectionSpacing
	}
	return m.theme.SectionSpacing
}

func (m *Measurer) elementSpacing() float64 {
	if m.opts.ElementSpacing > 0 {
		return m.opts.ElementSpacing
	}
	return m.theme.ElementSpacing
}

const (
	// columnGap separates columns in a column group.
	columnGap = 14.0
	// headerRuleHeight covers the underline and padding under a header.
	headerRuleHeight = 6.0
)
