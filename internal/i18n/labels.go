// Package i18n resolves section header labels for rendered CVs.
package i18n

import "github.com/yassjustice/resumeBuilder-sub001/internal/types"

// labels maps language → label key → localized text. English is the
// fallback language and must define every key.
var labels = map[types.Language]map[string]string{
	types.LangEnglish: {
		"professional_summary":    "Professional Summary",
		"technical_skills":        "Technical Skills",
		"professional_experience": "Professional Experience",
		"projects":                "Projects",
		"education":               "Education",
		"certifications":          "Certifications",
		"languages":               "Languages",
		"interests":               "Interests",
		"email":                   "Email",
		"phone":                   "Phone",
		"location":                "Location",
		"linkedin":                "LinkedIn",
		"github":                  "GitHub",
		"portfolio":               "Portfolio",
		"technologies":            "Technologies",
		"issuer":                  "Issuer",
		"date":                    "Date",
		"skills":                  "Skills",
	},
	types.LangFrench: {
		"professional_summary":    "Résumé Professionnel",
		"technical_skills":        "Compétences Techniques",
		"professional_experience": "Expérience Professionnelle",
		"projects":                "Projets",
		"education":               "Formation",
		"certifications":          "Certifications",
		"languages":               "Langues",
		"interests":               "Centres d'Intérêt",
		"email":                   "Email",
		"phone":                   "Téléphone",
		"location":                "Localisation",
		"linkedin":                "LinkedIn",
		"github":                  "GitHub",
		"portfolio":               "Portfolio",
		"technologies":            "Technologies",
		"issuer":                  "Émetteur",
		"date":                    "Date",
		"skills":                  "Compétences",
	},
}

// Label resolves a label key for the given language.
// Fallback chain: requested language → English → the key itself.
func Label(key string, lang types.Language) string {
	if texts, ok := labels[lang]; ok {
		if text, ok := texts[key]; ok {
			return text
		}
	}
	if text, ok := labels[types.LangEnglish][key]; ok {
		return text
	}
	return key
}
