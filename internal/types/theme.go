package types

// Theme is an immutable bundle of visual constants consumed by the layout
// engine. It is a pure value object: looked up by name, injected into
// rendering, never mutated.
type Theme struct {
	Name string `json:"name"`

	// Colors
	PrimaryColor    string `json:"primaryColor"`
	AccentColor     string `json:"accentColor"`
	TextColor       string `json:"textColor"`
	MutedColor      string `json:"mutedColor"`
	RuleColor       string `json:"ruleColor"`
	BackgroundColor string `json:"backgroundColor"`

	// Fonts
	BodyFont    string `json:"bodyFont"`
	HeadingFont string `json:"headingFont"`

	// Font-size scale, in CSS points
	NameSize    float64 `json:"nameSize"`
	HeadingSize float64 `json:"headingSize"`
	TitleSize   float64 `json:"titleSize"`
	BodySize    float64 `json:"bodySize"`
	SmallSize   float64 `json:"smallSize"`

	// Spacing scale, in CSS points
	PagePadding    float64 `json:"pagePadding"`
	SectionSpacing float64 `json:"sectionSpacing"`
	ElementSpacing float64 `json:"elementSpacing"`
	LineHeight     float64 `json:"lineHeight"`
}

// DefaultThemeName is used when a CV references no theme or an unknown one.
const DefaultThemeName = "classic"

// builtinThemes are the themes available without any database row.
var builtinThemes = map[string]Theme{
	"classic": {
		Name:            "classic",
		PrimaryColor:    "#1a1a2e",
		AccentColor:     "#0f3460",
		TextColor:       "#222222",
		MutedColor:      "#666666",
		RuleColor:       "#d0d0d0",
		BackgroundColor: "#ffffff",
		BodyFont:        "Georgia, 'Times New Roman', serif",
		HeadingFont:     "Georgia, 'Times New Roman', serif",
		NameSize:        22,
		HeadingSize:     13,
		TitleSize:       11,
		BodySize:        10,
		SmallSize:       9,
		PagePadding:     36,
		SectionSpacing:  16,
		ElementSpacing:  8,
		LineHeight:      1.35,
	},
	"modern": {
		Name:            "modern",
		PrimaryColor:    "#16324f",
		AccentColor:     "#2e6f95",
		TextColor:       "#1f2933",
		MutedColor:      "#52606d",
		RuleColor:       "#cbd2d9",
		BackgroundColor: "#ffffff",
		BodyFont:        "'Helvetica Neue', Arial, sans-serif",
		HeadingFont:     "'Helvetica Neue', Arial, sans-serif",
		NameSize:        24,
		HeadingSize:     12,
		TitleSize:       11,
		BodySize:        10,
		SmallSize:       8.5,
		PagePadding:     32,
		SectionSpacing:  14,
		ElementSpacing:  7,
		LineHeight:      1.4,
	},
	"compact": {
		Name:            "compact",
		PrimaryColor:    "#000000",
		AccentColor:     "#333333",
		TextColor:       "#111111",
		MutedColor:      "#555555",
		RuleColor:       "#bbbbbb",
		BackgroundColor: "#ffffff",
		BodyFont:        "Arial, sans-serif",
		HeadingFont:     "Arial, sans-serif",
		NameSize:        19,
		HeadingSize:     11,
		TitleSize:       10,
		BodySize:        9,
		SmallSize:       8,
		PagePadding:     28,
		SectionSpacing:  11,
		ElementSpacing:  5,
		LineHeight:      1.25,
	},
}

// ThemeByName returns the built-in theme with the given name, falling back
// to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := builtinThemes[name]; ok {
		return t
	}
	return builtinThemes[DefaultThemeName]
}

// BuiltinThemeNames lists the built-in theme names in a stable order.
func BuiltinThemeNames() []string {
	return []string{"classic", "modern", "compact"}
}
