package layout

import (
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// PlacementKind identifies what a placement holds.
type PlacementKind string

// Placement kinds.
const (
	PlaceIdentity PlacementKind = "identity"
	PlaceHeader   PlacementKind = "header"
	PlaceUnit     PlacementKind = "unit"
	PlaceRow      PlacementKind = "row"
)

// Placement is one vertical slot the paginator positions: the identity
// banner, a section header, a single unit, or a column-group row. A
// placement is never split; Glue forbids a page break after it.
type Placement struct {
	Kind       PlacementKind
	SectionKey string
	UnitIDs    []string
	Height     float64
	Glue       bool
}

// Placed is a placement assigned to a page at a vertical offset.
type Placed struct {
	Placement
	Page int
	Top  float64
}

// Plan is the deterministic page plan for one document: which placements
// land on which page and where. Equal inputs produce equal plans.
type Plan struct {
	PageCount  int
	Placements []Placed

	pageOf map[string]int
}

// PageOf returns the page a unit was placed on.
func (p *Plan) PageOf(unitID string) (int, bool) {
	page, ok := p.pageOf[unitID]
	return page, ok
}

// LastOnPage returns the final placement on the given page, or nil.
func (p *Plan) LastOnPage(page int) *Placed {
	var last *Placed
	for i := range p.Placements {
		if p.Placements[i].Page == page {
			last = &p.Placements[i]
		}
	}
	return last
}

// Paginate runs the cursor state machine over the section tree and returns
// the page plan. For each placement: if the predicted start position is
// below pageBottom−threshold, or the placement does not fit in the
// remaining space, the whole placement advances to the next page. Glued
// runs (header plus first child) are treated as one pseudo-unit for that
// decision. There is no failure mode: a placement taller than a full page
// is placed alone at the top of its own page and overflows, which the
// render backend resolves by clipping (accepted edge case).
func Paginate(cv *types.CV, sections []Section, theme types.Theme, opts types.RenderOptions) *Plan {
	opts = opts.ApplyDefaults()
	spec := A4Page(theme)
	m := NewMeasurer(theme, opts, spec)

	placements := buildPlacements(cv, sections, m, opts)

	plan := &Plan{PageCount: 1, pageOf: map[string]int{}}
	page := 1
	cursor := spec.Padding
	threshold := opts.PageBreakThreshold

	i := 0
	for i < len(placements) {
		// A glued run ends at the first placement that does not carry glue.
		j := i
		for j < len(placements)-1 && placements[j].Glue {
			j++
		}
		run := placements[i : j+1]

		runHeight := 0.0
		for _, p := range run {
			runHeight += p.Height
		}

		remaining := spec.Bottom() - cursor
		atTop := cursor <= spec.Padding
		if !atTop && (runHeight > remaining || remaining < threshold) {
			page++
			cursor = spec.Padding
		}

		for _, p := range run {
			plan.Placements = append(plan.Placements, Placed{Placement: p, Page: page, Top: cursor})
			for _, id := range p.UnitIDs {
				plan.pageOf[id] = page
			}
			cursor += p.Height
		}
		if page > plan.PageCount {
			plan.PageCount = page
		}
		i = j + 1
	}

	return plan
}

// buildPlacements flattens the section tree into the placement sequence
// the state machine consumes.
func buildPlacements(cv *types.CV, sections []Section, m *Measurer, opts types.RenderOptions) []Placement {
	placements := []Placement{}

	if cv != nil {
		contactLines := 1
		placements = append(placements, Placement{
			Kind:   PlaceIdentity,
			Height: m.IdentityHeight(contactLines),
		})
	}

	for _, s := range sections {
		placements = append(placements, Placement{
			Kind:       PlaceHeader,
			SectionKey: s.Key,
			Height:     m.HeaderHeight(),
			Glue:       HeaderConstraint(opts).KeepWithNext,
		})

		if s.Group != nil {
			for _, row := range s.Group.Rows() {
				ids := make([]string, 0, len(row))
				for _, u := range row {
					ids = append(ids, u.ID)
				}
				placements = append(placements, Placement{
					Kind:       PlaceRow,
					SectionKey: s.Key,
					UnitIDs:    ids,
					Height:     m.RowHeight(row, s.Group.Columns),
				})
			}
			continue
		}

		for _, u := range s.Units {
			placements = append(placements, Placement{
				Kind:       PlaceUnit,
				SectionKey: s.Key,
				UnitIDs:    []string{u.ID},
				Height:     m.UnitHeight(u, m.width),
				Glue:       u.KeepWithNext,
			})
		}
	}

	return placements
}
