// Package layout turns a normalized CV into a paginated visual layout.
// It builds a tree of indivisible layout units per section, computes the
// pagination constraints each unit carries (atomicity, keep-with-next,
// column fill), and produces both a deterministic page plan and the styled
// HTML document handed to the render backend.
package layout

// UnitKind identifies the CV entity a layout unit was derived from.
type UnitKind string

// Unit kinds, one per renderable CV entity.
const (
	KindSummary       UnitKind = "summary"
	KindSkillCategory UnitKind = "skill_category"
	KindExperience    UnitKind = "experience"
	KindProject       UnitKind = "project"
	KindEducation     UnitKind = "education"
	KindCertification UnitKind = "certification"
	KindInlineList    UnitKind = "inline_list"
)

// LineRole describes how a rendered line is styled and measured.
type LineRole string

// Line roles within a unit.
const (
	RoleTitle    LineRole = "title"
	RoleSubtitle LineRole = "subtitle"
	RoleBody     LineRole = "body"
	RoleBullet   LineRole = "bullet"
	RoleMeta     LineRole = "meta"
)

// Line is one rendered line (or wrapped paragraph) inside a layout unit.
// Secondary carries right-aligned or trailing text (a period, a level).
type Line struct {
	Role      LineRole
	Text      string
	Secondary string
}

// LayoutUnit is an atomic, indivisible visual block: one experience entry,
// one education entry, one certification, one skill category. The paginator
// never splits a unit across a page boundary; a unit that does not fit in
// the remaining space moves wholly to the next page.
type LayoutUnit struct {
	ID    string
	Kind  UnitKind
	Lines []Line
	// Atomic is true for every CV entity; kept explicit because it is the
	// contract the constraint engine emits to the render backend.
	Atomic bool
	// KeepWithNext glues this unit to its successor so a page break never
	// falls between them.
	KeepWithNext bool
}

// ColumnGroup arranges layout units into equal-width columns, filled in
// document order. A unit never straddles a column boundary.
type ColumnGroup struct {
	Columns int
	Units   []LayoutUnit
	// SplitByCount divides units into contiguous halves by item count
	// (certifications: ceil(n/2) in the left column). When false the units
	// wrap row by row instead (skills).
	SplitByCount bool
}

// ColumnFill returns the units assigned to each column.
// SplitByCount fills the left column with the first ceil(n/cols) units;
// otherwise units are dealt row by row in document order.
func (g *ColumnGroup) ColumnFill() [][]LayoutUnit {
	cols := g.Columns
	if cols < 1 {
		cols = 1
	}
	out := make([][]LayoutUnit, cols)
	if g.SplitByCount {
		per := (len(g.Units) + cols - 1) / cols
		for i, u := range g.Units {
			c := i / per
			if c >= cols {
				c = cols - 1
			}
			out[c] = append(out[c], u)
		}
		return out
	}
	for i, u := range g.Units {
		out[i%cols] = append(out[i%cols], u)
	}
	return out
}

// Rows returns the units grouped into visual rows, one unit per column.
// The paginator treats each row as a single placement because units placed
// side by side share the same vertical extent decision.
func (g *ColumnGroup) Rows() [][]LayoutUnit {
	cols := g.Columns
	if cols < 1 {
		cols = 1
	}
	if g.SplitByCount {
		fill := g.ColumnFill()
		rowCount := 0
		for _, c := range fill {
			if len(c) > rowCount {
				rowCount = len(c)
			}
		}
		rows := make([][]LayoutUnit, 0, rowCount)
		for r := 0; r < rowCount; r++ {
			row := make([]LayoutUnit, 0, cols)
			for c := 0; c < cols; c++ {
				if r < len(fill[c]) {
					row = append(row, fill[c][r])
				}
			}
			rows = append(rows, row)
		}
		return rows
	}
	rows := make([][]LayoutUnit, 0, (len(g.Units)+cols-1)/cols)
	for i := 0; i < len(g.Units); i += cols {
		end := i + cols
		if end > len(g.Units) {
			end = len(g.Units)
		}
		rows = append(rows, g.Units[i:end])
	}
	return rows
}

// Section is a named group of layout units under a localized header.
// Exactly one of Units or Group is populated. The header is never the last
// element on a page: it is glued to its first child.
type Section struct {
	Key   string
	Title string
	Units []LayoutUnit
	Group *ColumnGroup
}

// IsEmpty reports whether the section has nothing to render.
func (s *Section) IsEmpty() bool {
	if s.Group != nil {
		return len(s.Group.Units) == 0
	}
	return len(s.Units) == 0
}
