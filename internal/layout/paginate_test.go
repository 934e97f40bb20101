package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// longCV returns a CV with enough experience entries to span multiple A4
// pages under every built-in theme.
func longCV(experienceCount int) *types.CV {
	cv := &types.CV{
		Language: types.LangEnglish,
		PersonalInfo: types.PersonalInfo{
			Name:  "Jordan Rivera",
			Title: "Senior Software Engineer",
			Contact: types.Contact{
				Email:    "jordan@example.com",
				Phone:    "+1 555 0100",
				Location: "Lisbon, Portugal",
			},
		},
		Summary: "Backend engineer with a decade of experience building document pipelines, " +
			"storage services and rendering infrastructure for high-volume products.",
		Skills: map[string][]string{
			"backend":  {"Go", "PostgreSQL", "Redis", "gRPC"},
			"frontend": {"TypeScript", "React"},
		},
		SkillOrder: []string{"backend", "frontend"},
	}
	for i := 0; i < experienceCount; i++ {
		cv.Experience = append(cv.Experience, types.ExperienceItem{
			Title:   fmt.Sprintf("Software Engineer %d", i+1),
			Company: fmt.Sprintf("Company %d", i+1),
			Period:  "2019 - 2023",
			Responsibilities: []string{
				"Designed and operated the document rendering pipeline serving millions of requests",
				"Led the migration of the storage layer to a managed PostgreSQL cluster",
				"Mentored junior engineers and reviewed design proposals across three teams",
			},
		})
	}
	return cv
}

func paginateCV(t *testing.T, cv *types.CV, opts types.RenderOptions) *Plan {
	t.Helper()
	opts = opts.ApplyDefaults()
	sections := BuildSections(cv, opts)
	require.NotEmpty(t, sections)
	return Paginate(cv, sections, types.ThemeByName("classic"), opts)
}

func TestPaginate_LongCVSpansMultiplePages(t *testing.T) {
	cv := longCV(15)
	plan := paginateCV(t, cv, types.RenderOptions{})

	assert.GreaterOrEqual(t, plan.PageCount, 2)

	// Every experience entry lands on exactly one page.
	for i := range cv.Experience {
		_, ok := plan.PageOf(fmt.Sprintf("experience_%d", i))
		assert.True(t, ok, "experience_%d not placed", i)
	}
}

func TestPaginate_UnitsNeverSplitAcrossPages(t *testing.T) {
	opts := types.DefaultRenderOptions()
	plan := paginateCV(t, longCV(15), opts)

	spec := A4Page(types.ThemeByName("classic"))
	for _, p := range plan.Placements {
		atTop := p.Top <= spec.Padding
		if atTop {
			// The only allowed overflow is a placement taller than a page,
			// placed alone at the top.
			continue
		}
		assert.LessOrEqualf(t, p.Top+p.Height, spec.Bottom()+0.01,
			"placement %v (kind %s) crosses the page bottom", p.UnitIDs, p.Kind)
	}
}

func TestPaginate_HeaderNeverLastOnPage(t *testing.T) {
	opts := types.DefaultRenderOptions()
	require.True(t, opts.TitleSectionConnection)

	plan := paginateCV(t, longCV(15), opts)
	require.GreaterOrEqual(t, plan.PageCount, 2)

	for page := 1; page <= plan.PageCount; page++ {
		last := plan.LastOnPage(page)
		require.NotNil(t, last)
		assert.NotEqualf(t, PlaceHeader, last.Kind, "page %d ends with a bare section header", page)
	}
}

func TestPaginate_OversizedUnitPlacedAloneAtTop(t *testing.T) {
	cv := &types.CV{
		Language:     types.LangEnglish,
		PersonalInfo: types.PersonalInfo{Name: "Test"},
		Experience: []types.ExperienceItem{
			{Title: "Before", Company: "A", Responsibilities: []string{"short line"}},
			{
				Title:   "Giant",
				Company: "B",
				Responsibilities: []string{
					strings.Repeat("an extremely long responsibility line that wraps many times ", 120),
				},
			},
		},
	}
	plan := paginateCV(t, cv, types.RenderOptions{})

	spec := A4Page(types.ThemeByName("classic"))
	var giant *Placed
	for i := range plan.Placements {
		for _, id := range plan.Placements[i].UnitIDs {
			if id == "experience_1" {
				giant = &plan.Placements[i]
			}
		}
	}
	require.NotNil(t, giant)
	assert.Greater(t, giant.Height, spec.Bottom()-spec.Padding, "fixture unit should exceed a full page")
	// It overflows, but never starts mid-page.
	assert.InDelta(t, spec.Padding, giant.Top, 0.01)
}

func TestPaginate_ThresholdForcesEarlierBreaks(t *testing.T) {
	cv := longCV(12)

	tight := paginateCV(t, cv, types.RenderOptions{PageBreakThreshold: 1, TitleSectionConnection: true, TwoColumnSkills: true})
	loose := paginateCV(t, cv, types.RenderOptions{PageBreakThreshold: 400, TitleSectionConnection: true, TwoColumnSkills: true})

	assert.GreaterOrEqual(t, loose.PageCount, tight.PageCount)
	assert.Greater(t, loose.PageCount, 1)
}

func TestPaginate_Deterministic(t *testing.T) {
	cv := longCV(10)
	opts := types.DefaultRenderOptions()

	a := paginateCV(t, cv, opts)
	b := paginateCV(t, cv, opts)

	require.Equal(t, a.PageCount, b.PageCount)
	require.Equal(t, len(a.Placements), len(b.Placements))
	for i := range a.Placements {
		assert.Equal(t, a.Placements[i].UnitIDs, b.Placements[i].UnitIDs)
		assert.Equal(t, a.Placements[i].Page, b.Placements[i].Page)
		assert.InDelta(t, a.Placements[i].Top, b.Placements[i].Top, 0.001)
	}
}

func TestPaginate_IdentityBannerFirstOnPageOne(t *testing.T) {
	plan := paginateCV(t, longCV(3), types.RenderOptions{})

	require.NotEmpty(t, plan.Placements)
	first := plan.Placements[0]
	assert.Equal(t, PlaceIdentity, first.Kind)
	assert.Equal(t, 1, first.Page)
}

func TestPaginate_ColumnRowIsSinglePlacement(t *testing.T) {
	cv := longCV(2)
	cv.Certifications = []types.CertificationItem{
		{Name: "Cert A"}, {Name: "Cert B"}, {Name: "Cert C"},
	}
	plan := paginateCV(t, cv, types.RenderOptions{})

	rows := 0
	for _, p := range plan.Placements {
		if p.Kind == PlaceRow && p.SectionKey == "certifications" {
			rows++
			// Units in one row share the page by construction.
			for _, id := range p.UnitIDs {
				page, ok := plan.PageOf(id)
				require.True(t, ok)
				assert.Equal(t, p.Page, page)
			}
		}
	}
	// 3 certifications split 2/1 over two columns produce two rows.
	assert.Equal(t, 2, rows)
}
