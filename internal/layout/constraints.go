package layout

import "github.com/yassjustice/resumeBuilder-sub001/internal/types"

// Constraint declares the break-avoidance hints one placement carries.
// These are hints, not guarantees: the paginator honors them exactly in its
// page plan, and restates them declaratively (CSS break properties) for the
// render backend, which may imperfectly honor them under degenerate content
// such as a single unit taller than a page.
type Constraint struct {
	// AvoidBreakInside forbids splitting the placement across pages.
	AvoidBreakInside bool
	// KeepWithNext forbids a page break between this placement and its
	// successor; glued placements are measured as one pseudo-unit.
	KeepWithNext bool
}

// CSSClass returns the stylesheet class carrying the constraint, used by
// the HTML generator.
func (c Constraint) CSSClass() string {
	switch {
	case c.AvoidBreakInside && c.KeepWithNext:
		return "avoid-break keep-with-next"
	case c.AvoidBreakInside:
		return "avoid-break"
	case c.KeepWithNext:
		return "keep-with-next"
	default:
		return ""
	}
}

// UnitConstraint returns the constraint for a layout unit. Every CV entity
// is atomic; a unit glued to its successor additionally keeps with next.
func UnitConstraint(u LayoutUnit) Constraint {
	return Constraint{AvoidBreakInside: u.Atomic, KeepWithNext: u.KeepWithNext}
}

// HeaderConstraint returns the constraint for a section header. With title
// section connection enabled, the header is glued to its first child so it
// is never the last element on a page.
func HeaderConstraint(opts types.RenderOptions) Constraint {
	return Constraint{AvoidBreakInside: true, KeepWithNext: opts.TitleSectionConnection}
}
