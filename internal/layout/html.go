package layout

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// documentTemplate is the styled document tree handed to the render
// backend. Page geometry is fixed to A4 with zero native margins; the
// theme's padding token models the margins instead, and the break
// constraints are restated as CSS hints on every unit.
const documentTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 0; }
* { margin: 0; padding: 0; box-sizing: border-box; }
html, body { background: {{.Theme.BackgroundColor}}; }
body {
  font-family: {{cssval .Theme.BodyFont}};
  font-size: {{pt .Theme.BodySize}};
  line-height: {{.Theme.LineHeight}};
  color: {{.Theme.TextColor}};
  padding: {{pt .Theme.PagePadding}};
}
.avoid-break { break-inside: avoid; page-break-inside: avoid; }
.keep-with-next { break-after: avoid; page-break-after: avoid; }
.identity { margin-bottom: {{pt .SectionSpacing}}; }
.identity .name { font-family: {{cssval .Theme.HeadingFont}}; font-size: {{pt .Theme.NameSize}}; color: {{.Theme.PrimaryColor}}; }
.identity .headline { font-size: {{pt .Theme.TitleSize}}; color: {{.Theme.AccentColor}}; }
.identity .contact { font-size: {{pt .Theme.SmallSize}}; color: {{.Theme.MutedColor}}; }
.section-header {
  font-family: {{cssval .Theme.HeadingFont}};
  font-size: {{pt .Theme.HeadingSize}};
  color: {{.Theme.PrimaryColor}};
  text-transform: uppercase;
  letter-spacing: 0.06em;
  border-bottom: 1px solid {{.Theme.RuleColor}};
  padding-bottom: 3pt;
  margin-top: {{pt .SectionSpacing}};
  margin-bottom: {{pt .ElementSpacing}};
}
.unit { margin-bottom: {{pt .ElementSpacing}}; }
.line-title { font-size: {{pt .Theme.TitleSize}}; font-weight: bold; color: {{.Theme.PrimaryColor}}; display: flex; justify-content: space-between; }
.line-title .secondary { font-weight: normal; font-size: {{pt .Theme.SmallSize}}; color: {{.Theme.MutedColor}}; }
.line-subtitle { font-size: {{pt .Theme.SmallSize}}; color: {{.Theme.AccentColor}}; }
.line-meta { font-size: {{pt .Theme.SmallSize}}; color: {{.Theme.MutedColor}}; }
.line-bullet { padding-left: 12pt; position: relative; }
.line-bullet::before { content: "\2022"; position: absolute; left: 3pt; color: {{.Theme.AccentColor}}; }
.columns-wrap { display: flex; flex-wrap: wrap; gap: {{pt .ColumnGap}}; }
.columns-wrap .unit { flex: 1 1 calc(50% - {{pt .ColumnGap}}); min-width: calc(50% - {{pt .ColumnGap}}); }
.columns-split { display: flex; gap: {{pt .ColumnGap}}; }
.columns-split .column { flex: 1 1 0; }
</style>
</head>
<body>
<div class="identity avoid-break">
  <div class="name">{{.Name}}</div>
  {{if .Headline}}<div class="headline">{{.Headline}}</div>{{end}}
  {{if .ContactLine}}<div class="contact">{{.ContactLine}}</div>{{end}}
</div>
{{range .Sections}}
<section>
  <div class="section-header {{.HeaderClass}}">{{.Title}}</div>
  {{if .SplitColumns}}
  <div class="columns-split">
    {{range .SplitColumns}}
    <div class="column">
      {{range .}}{{template "unit" .}}{{end}}
    </div>
    {{end}}
  </div>
  {{else if .Wrap}}
  <div class="columns-wrap">
    {{range .Units}}{{template "unit" .}}{{end}}
  </div>
  {{else}}
  {{range .Units}}{{template "unit" .}}{{end}}
  {{end}}
</section>
{{end}}
</body>
</html>
{{define "unit"}}<div class="unit {{.Class}}" data-unit="{{.ID}}">
{{range .Lines}}{{if eq .Role "title"}}<div class="line-title"><span>{{.Text}}</span>{{if .Secondary}}<span class="secondary">{{.Secondary}}</span>{{end}}</div>
{{else if eq .Role "subtitle"}}<div class="line-subtitle">{{.Text}}</div>
{{else if eq .Role "meta"}}<div class="line-meta">{{.Text}}</div>
{{else if eq .Role "bullet"}}<div class="line-bullet">{{.Text}}</div>
{{else}}<div class="line-body">{{.Text}}</div>
{{end}}{{end}}</div>
{{end}}`

type htmlUnit struct {
	ID    string
	Class string
	Lines []Line
}

type htmlSection struct {
	Title        string
	HeaderClass  string
	Units        []htmlUnit
	SplitColumns [][]htmlUnit
	Wrap         bool
}

type htmlDocument struct {
	Lang           string
	Theme          types.Theme
	Name           string
	Headline       string
	ContactLine    string
	Sections       []htmlSection
	SectionSpacing float64
	ElementSpacing float64
	ColumnGap      float64
}

var docTmpl = template.Must(template.New("document").Funcs(template.FuncMap{
	"pt": func(v float64) template.CSS {
		return template.CSS(fmt.Sprintf("%.2fpt", v))
	},
	"cssval": func(s string) template.CSS {
		return template.CSS(s)
	},
}).Parse(documentTemplate))

// BuildHTML renders the styled HTML document for the given sections.
func BuildHTML(cv *types.CV, sections []Section, theme types.Theme, opts types.RenderOptions) (string, error) {
	opts = opts.ApplyDefaults()

	doc := htmlDocument{
		Lang:           string(opts.Language),
		Theme:          theme,
		Name:           cv.PersonalInfo.Name,
		Headline:       cv.PersonalInfo.Title,
		ContactLine:    contactLine(cv.PersonalInfo.Contact),
		SectionSpacing: spacingOr(opts.SectionSpacing, theme.SectionSpacing),
		ElementSpacing: spacingOr(opts.ElementSpacing, theme.ElementSpacing),
		ColumnGap:      columnGap,
	}

	for _, s := range sections {
		hs := htmlSection{
			Title:       s.Title,
			HeaderClass: HeaderConstraint(opts).CSSClass(),
		}
		switch {
		case s.Group != nil && s.Group.SplitByCount:
			for _, col := range s.Group.ColumnFill() {
				units := make([]htmlUnit, 0, len(col))
				for _, u := range col {
					units = append(units, toHTMLUnit(u))
				}
				hs.SplitColumns = append(hs.SplitColumns, units)
			}
		case s.Group != nil:
			hs.Wrap = s.Group.Columns > 1
			for _, u := range s.Group.Units {
				hs.Units = append(hs.Units, toHTMLUnit(u))
			}
		default:
			for _, u := range s.Units {
				hs.Units = append(hs.Units, toHTMLUnit(u))
			}
		}
		doc.Sections = append(doc.Sections, hs)
	}

	var out strings.Builder
	if err := docTmpl.Execute(&out, doc); err != nil {
		return "", fmt.Errorf("failed to execute document template: %w", err)
	}
	return out.String(), nil
}

func toHTMLUnit(u LayoutUnit) htmlUnit {
	return htmlUnit{ID: u.ID, Class: UnitConstraint(u).CSSClass(), Lines: u.Lines}
}

func contactLine(c types.Contact) string {
	parts := []string{}
	for _, v := range []string{c.Email, c.Phone, c.Location, c.LinkedIn, c.GitHub, c.Portfolio} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "  ·  ")
}

func spacingOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
