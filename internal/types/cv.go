// Package types defines the shared data structures for the CV builder.
package types

import "encoding/json"

// Language is a supported output language for rendered documents.
type Language string

// Supported languages. English is the fallback for label lookups.
const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
)

// Valid reports whether the language is one of the supported values.
func (l Language) Valid() bool {
	return l == LangEnglish || l == LangFrench
}

// Contact holds the contact channels shown in the CV header.
type Contact struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// PersonalInfo is the identity block at the top of a CV.
type PersonalInfo struct {
	Name    string  `json:"name"`
	Title   string  `json:"title,omitempty"`
	Contact Contact `json:"contact"`
}

// ExperienceItem is one professional experience entry.
type ExperienceItem struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Period           string   `json:"period,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// ProjectItem is one project entry.
type ProjectItem struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	KeyFeatures  []string `json:"keyFeatures,omitempty"`
}

// EducationItem is one education entry.
type EducationItem struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Period      string `json:"period,omitempty"`
	Details     string `json:"details,omitempty"`
}

// CertificationItem is one certification entry.
type CertificationItem struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Type   string `json:"type,omitempty"`
	Skills string `json:"skills,omitempty"`
	Date   string `json:"date,omitempty"`
}

// LanguageItem is one spoken-language entry.
type LanguageItem struct {
	Language string `json:"language"`
	Level    string `json:"level,omitempty"`
}

// CV is the canonical, null-safe document tree consumed by the renderer.
// Every collection field is non-nil after normalization; absent sections are
// empty, never missing.
type CV struct {
	Language       Language            `json:"language"`
	PersonalInfo   PersonalInfo        `json:"personalInfo"`
	Summary        string              `json:"summary,omitempty"`
	Skills         map[string][]string `json:"skills"`
	SkillOrder     []string            `json:"-"`
	Experience     []ExperienceItem    `json:"experience"`
	Projects       []ProjectItem       `json:"projects"`
	Education      []EducationItem     `json:"education"`
	Certifications []CertificationItem `json:"certifications"`
	Languages      []LanguageItem      `json:"languages"`
	Interests      []string            `json:"interests"`
	Theme          string              `json:"theme,omitempty"`
}

// RenderOptions are the per-request pagination and layout knobs.
type RenderOptions struct {
	// PageBreakThreshold is the minimum remaining vertical space, in CSS
	// points from the page bottom, required to start a new layout unit on
	// the current page.
	PageBreakThreshold float64 `json:"pageBreakThreshold,omitempty"`
	// TitleSectionConnection glues section headers to their first child
	// and item titles to their subtitle lines.
	TitleSectionConnection bool `json:"titleSectionConnection"`
	// TwoColumnSkills lays skill categories out in a two-column wrap.
	TwoColumnSkills bool     `json:"twoColumnSkills"`
	SectionSpacing  float64  `json:"sectionSpacing,omitempty"`
	ElementSpacing  float64  `json:"elementSpacing,omitempty"`
	Language        Language `json:"language,omitempty"`
}

// renderOptionsJSON mirrors RenderOptions with optional booleans so an
// omitted knob can be told apart from an explicit false.
type renderOptionsJSON struct {
	PageBreakThreshold     float64  `json:"pageBreakThreshold"`
	TitleSectionConnection *bool    `json:"titleSectionConnection"`
	TwoColumnSkills        *bool    `json:"twoColumnSkills"`
	SectionSpacing         float64  `json:"sectionSpacing"`
	ElementSpacing         float64  `json:"elementSpacing"`
	Language               Language `json:"language"`
}

// UnmarshalJSON decodes render options with the boolean knobs defaulting
// to true when omitted. Go's zero value cannot distinguish a caller that
// disabled a knob from one that never mentioned it, and both knobs are
// documented to default on.
func (o *RenderOptions) UnmarshalJSON(data []byte) error {
	var raw renderOptionsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.PageBreakThreshold = raw.PageBreakThreshold
	o.SectionSpacing = raw.SectionSpacing
	o.ElementSpacing = raw.ElementSpacing
	o.Language = raw.Language
	o.TitleSectionConnection = raw.TitleSectionConnection == nil || *raw.TitleSectionConnection
	o.TwoColumnSkills = raw.TwoColumnSkills == nil || *raw.TwoColumnSkills
	return nil
}

// DefaultPageBreakThreshold biases unit placement away from the page bottom.
const DefaultPageBreakThreshold = 85.0

// DefaultRenderOptions returns the render options used when the caller
// supplies none.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		PageBreakThreshold:     DefaultPageBreakThreshold,
		TitleSectionConnection: true,
		TwoColumnSkills:        true,
		SectionSpacing:         16,
		ElementSpacing:         8,
		Language:               LangEnglish,
	}
}

// ApplyDefaults fills zero-valued knobs from DefaultRenderOptions.
// Boolean knobs default to true only when the whole struct is zero, so a
// caller that explicitly disables them is respected.
func (o RenderOptions) ApplyDefaults() RenderOptions {
	def := DefaultRenderOptions()
	if o == (RenderOptions{}) {
		return def
	}
	if o.PageBreakThreshold <= 0 {
		o.PageBreakThreshold = def.PageBreakThreshold
	}
	if o.SectionSpacing <= 0 {
		o.SectionSpacing = def.SectionSpacing
	}
	if o.ElementSpacing <= 0 {
		o.ElementSpacing = def.ElementSpacing
	}
	if !o.Language.Valid() {
		o.Language = def.Language
	}
	return o
}
