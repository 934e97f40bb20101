package layout

import (
	"fmt"
	"strings"

	"github.com/yassjustice/resumeBuilder-sub001/internal/i18n"
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// MaxResponsibilities caps the detail lines rendered per experience item.
// This is a page-budget policy for rendering only; the persisted record
// keeps the full list.
const MaxResponsibilities = 4

// SkillColumns and CertificationColumns fix the column counts for the two
// column-grouped sections.
const (
	SkillColumns         = 2
	CertificationColumns = 2
)

// BuildSections maps the normalized CV into the ordered section list.
// Section order is fixed; empty sections are omitted entirely.
func BuildSections(cv *types.CV, opts types.RenderOptions) []Section {
	lang := opts.Language
	if !lang.Valid() {
		lang = cv.Language
	}

	sections := []Section{
		summarySection(cv, lang),
		skillsSection(cv, lang, opts),
		experienceSection(cv, lang),
		projectsSection(cv, lang),
		educationSection(cv, lang),
		certificationsSection(cv, lang),
		languagesSection(cv, lang),
		interestsSection(cv, lang),
	}

	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if !s.IsEmpty() {
			out = append(out, s)
		}
	}
	return out
}

func summarySection(cv *types.CV, lang types.Language) Section {
	s := Section{Key: "professional_summary", Title: i18n.Label("professional_summary", lang)}
	if cv.Summary == "" {
		return s
	}
	s.Units = []LayoutUnit{{
		ID:     "summary",
		Kind:   KindSummary,
		Atomic: true,
		Lines:  []Line{{Role: RoleBody, Text: cv.Summary}},
	}}
	return s
}

func skillsSection(cv *types.CV, lang types.Language, opts types.RenderOptions) Section {
	s := Section{Key: "technical_skills", Title: i18n.Label("technical_skills", lang)}
	units := make([]LayoutUnit, 0, len(cv.SkillOrder))
	for i, category := range cv.SkillOrder {
		list := cv.Skills[category]
		if len(list) == 0 {
			continue
		}
		units = append(units, LayoutUnit{
			ID:     fmt.Sprintf("skill_%d", i),
			Kind:   KindSkillCategory,
			Atomic: true,
			Lines: []Line{
				{Role: RoleTitle, Text: titleCase(category)},
				{Role: RoleBody, Text: strings.Join(list, " · ")},
			},
		})
	}
	if len(units) == 0 {
		return s
	}
	cols := SkillColumns
	if !opts.TwoColumnSkills {
		cols = 1
	}
	s.Group = &ColumnGroup{Columns: cols, Units: units}
	return s
}

func experienceSection(cv *types.CV, lang types.Language) Section {
	s := Section{Key: "professional_experience", Title: i18n.Label("professional_experience", lang)}
	for i, exp := range cv.Experience {
		lines := []Line{{Role: RoleTitle, Text: exp.Title, Secondary: exp.Period}}
		if exp.Company != "" {
			lines = append(lines, Line{Role: RoleSubtitle, Text: exp.Company})
		}
		resp := exp.Responsibilities
		if len(resp) > MaxResponsibilities {
			resp = resp[:MaxResponsibilities]
		}
		for _, r := range resp {
			lines = append(lines, Line{Role: RoleBullet, Text: r})
		}
		s.Units = append(s.Units, LayoutUnit{
			ID:     fmt.Sprintf("experience_%d", i),
			Kind:   KindExperience,
			Atomic: true,
			Lines:  lines,
		})
	}
	return s
}

func projectsSection(cv *types.CV, lang types.Language) Section {
	s := Section{Key: "projects", Title: i18n.Label("projects", lang)}
	for i, proj := range cv.Projects {
		lines := []Line{{Role: RoleTitle, Text: proj.Name}}
		if proj.Description != "" {
			lines = append(lines, Line{Role: RoleBody, Text: proj.Description})
		}
		if len(proj.Technologies) > 0 {
			lines = append(lines, Line{
				Role: RoleMeta,
				Text: i18n.Label("technologies", lang) + ": " + strings.Join(proj.Technologies, ", "),
			})
		}
		for _, f := range proj.KeyFeatures {
			lines = append(lines, Line{Role: RoleBullet, Text: f})
		}
		s.Units = append(s.Units, LayoutUnit{
			ID:     fmt.Sprintf("project_%d", i),
			Kind:   KindProject,
			Atomic: true,
			Lines:  lines,
		})
	}
	return s
}

func educationSection(cv *types.CV, lang types.Language) Section {
	s := Section{Key: "education", Title: i18n.Label("education", lang)}
	for i, edu := range cv.Education {
		lines := []Line{{Role: RoleTitle, Text: edu.Degree, Secondary: edu.Period}}
		if edu.Institution != "" {
			lines = append(lines, Line{Role: RoleSubtitle, Text: edu.Institution})
		}
		if edu.Details != "" {
			lines = append(lines, Line{Role: RoleBody, Text: edu.Details})
		}
		s.Units = append(s.Units, LayoutUnit{
			ID:     fmt.Sprintf("education_%d", i),
			Kind:   KindEducation,
			Atomic: true,
			Lines:  lines,
		})
	}
	return s
}

func certificationsSection(cv *types.CV, lang types.Language) Section {
	s := Section{Key: "certifications", Title: i18n.Label("certifications", lang)}
	units := make([]LayoutUnit, 0, len(cv.Certifications))
	for i, cert := range cv.Certifications {
		lines := []Line{{Role: RoleTitle, Text: cert.Name, Secondary: cert.Date}}
		if cert.Issuer != "" {
			lines = append(lines, Line{Role: RoleSubtitle, Text: cert.Issuer})
		}
		if cert.Skills != "" {
			lines = append(lines, Line{Role: RoleMeta, Text: i18n.Label("skills", lang) + ": " + cert.Skills})
		}
		units = append(units, LayoutUnit{
			ID:     fmt.Sprintf("certification_%d", i),
			Kind:   KindCertification,
			Atomic: true,
			Lines:  lines,
		})
	}
	if len(units) == 0 {
		return s
	}
	s.Group = &ColumnGroup{Columns: CertificationColumns, Units: units, SplitByCount: true}
	return s
}

func languagesSection(cv *types.CV, lang types.Language) Section {
	s := Section{Key: "languages", Title: i18n.Label("languages", lang)}
	if len(cv.Languages) == 0 {
		return s
	}
	parts := make([]string, 0, len(cv.Languages))
	for _, l := range cv.Languages {
		if l.Level != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", l.Language, l.Level))
		} else {
			parts = append(parts, l.Language)
		}
	}
	s.Units = []LayoutUnit{{
		ID:     "languages",
		Kind:   KindInlineList,
		Atomic: true,
		Lines:  []Line{{Role: RoleBody, Text: strings.Join(parts, " · ")}},
	}}
	return s
}

func interestsSection(cv *types.CV, lang types.Language) Section {
	s := Section{Key: "interests", Title: i18n.Label("interests", lang)}
	if len(cv.Interests) == 0 {
		return s
	}
	s.Units = []LayoutUnit{{
		ID:     "interests",
		Kind:   KindInlineList,
		Atomic: true,
		Lines:  []Line{{Role: RoleBody, Text: strings.Join(cv.Interests, " · ")}},
	}}
	return s
}

// titleCase capitalizes the first letter of each word in a category key,
// treating underscores and hyphens as word separators.
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	})
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
