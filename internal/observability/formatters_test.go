package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yassjustice/resumeBuilder-sub001/internal/layout"
)

func TestPrintPlan(t *testing.T) {
	plan := &layout.Plan{
		PageCount: 2,
		Placements: []layout.Placed{
			{Placement: layout.Placement{Kind: layout.PlaceIdentity}, Page: 1},
			{Placement: layout.Placement{Kind: layout.PlaceHeader, SectionKey: "professional_experience"}, Page: 1},
			{Placement: layout.Placement{Kind: layout.PlaceUnit, SectionKey: "professional_experience", UnitIDs: []string{"experience_0"}}, Page: 1},
			{Placement: layout.Placement{Kind: layout.PlaceUnit, SectionKey: "professional_experience", UnitIDs: []string{"experience_1"}}, Page: 2},
		},
	}

	var sb strings.Builder
	NewPrinter(&sb).PrintPlan(plan)
	out := sb.String()

	assert.Contains(t, out, "Pages: 2")
	assert.Contains(t, out, "Page 1:")
	assert.Contains(t, out, "Page 2:")
	assert.Contains(t, out, "professional_experience")
}

func TestPrintPlan_NilPlanIsNoop(t *testing.T) {
	var sb strings.Builder
	NewPrinter(&sb).PrintPlan(nil)
	assert.Empty(t, sb.String())
}
