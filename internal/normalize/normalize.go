package normalize

import (
	"log"
	"sort"
	"strings"

	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// PlaceholderName is rendered when a CV has no usable personal info.
const PlaceholderName = "CV"

// CV builds the canonical document tree from an arbitrary CV-like value.
// Every field is resolved to a zero value or empty collection rather than
// being left absent. A field that cannot be normalized degrades to its
// empty placeholder with a logged diagnostic; normalization never fails.
func CV(raw any) *types.CV {
	cv := &types.CV{
		Language:       types.LangEnglish,
		Skills:         map[string][]string{},
		SkillOrder:     []string{},
		Experience:     []types.ExperienceItem{},
		Projects:       []types.ProjectItem{},
		Education:      []types.EducationItem{},
		Certifications: []types.CertificationItem{},
		Languages:      []types.LanguageItem{},
		Interests:      []string{},
	}

	doc, ok := ToPlainValue(raw).(map[string]any)
	if !ok {
		log.Printf("[NORMALIZE] document is not an object (%T); rendering placeholder", raw)
		cv.PersonalInfo.Name = PlaceholderName
		return cv
	}

	if lang := types.Language(str(doc["language"])); lang.Valid() {
		cv.Language = lang
	}
	cv.Theme = str(doc["theme"])
	cv.Summary = strings.TrimSpace(str(doc["summary"]))

	cv.PersonalInfo = normalizePersonalInfo(doc["personalInfo"])
	cv.Skills, cv.SkillOrder = normalizeSkills(doc["skills"])
	cv.Experience = normalizeExperience(doc["experience"])
	cv.Projects = normalizeProjects(doc["projects"])
	cv.Education = normalizeEducation(doc["education"])
	cv.Certifications = normalizeCertifications(doc["certifications"])
	cv.Languages = normalizeLanguages(doc["languages"])
	cv.Interests = normalizeStringList(doc["interests"])

	return cv
}

func normalizePersonalInfo(raw any) types.PersonalInfo {
	info, ok := raw.(map[string]any)
	if !ok {
		if raw != nil {
			log.Printf("[NORMALIZE] personalInfo has unexpected shape (%T); using placeholder", raw)
		}
		return types.PersonalInfo{Name: PlaceholderName}
	}

	out := types.PersonalInfo{
		Name:  strings.TrimSpace(str(info["name"])),
		Title: strings.TrimSpace(str(info["title"])),
	}
	if out.Name == "" {
		out.Name = PlaceholderName
	}
	if contact, ok := info["contact"].(map[string]any); ok {
		out.Contact = types.Contact{
			Email:     str(contact["email"]),
			Phone:     str(contact["phone"]),
			Location:  str(contact["location"]),
			LinkedIn:  str(contact["linkedin"]),
			GitHub:    str(contact["github"]),
			Portfolio: str(contact["portfolio"]),
		}
	}
	return out
}

// normalizeSkills coerces the skills field into category → list form.
// Category keys are returned in sorted order so rendering is deterministic
// regardless of storage map iteration. Empty categories are dropped.
func normalizeSkills(raw any) (map[string][]string, []string) {
	skills := map[string][]string{}
	order := []string{}

	byCategory, ok := raw.(map[string]any)
	if !ok {
		if list, isList := raw.([]any); isList {
			// Skills stored as a flat list: one general category.
			if flat := coerceSkillList(list); len(flat) > 0 {
				skills["skills"] = flat
				order = append(order, "skills")
			}
			return skills, order
		}
		if raw != nil {
			log.Printf("[NORMALIZE] skills has unexpected shape (%T); dropping", raw)
		}
		return skills, order
	}

	for category := range byCategory {
		order = append(order, category)
	}
	sort.Strings(order)

	kept := order[:0]
	for _, category := range order {
		list := coerceSkillList(byCategory[category])
		if len(list) == 0 {
			continue
		}
		skills[category] = list
		kept = append(kept, category)
	}
	return skills, kept
}

func normalizeExperience(raw any) []types.ExperienceItem {
	out := []types.ExperienceItem{}
	for _, entry := range asList(raw, "experience") {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		exp := types.ExperienceItem{
			Title:            strings.TrimSpace(str(item["title"])),
			Company:          strings.TrimSpace(str(item["company"])),
			Period:           strings.TrimSpace(str(item["period"])),
			Responsibilities: normalizeStringList(item["responsibilities"]),
		}
		if exp.Title == "" && exp.Company == "" {
			continue
		}
		out = append(out, exp)
	}
	return out
}

func normalizeProjects(raw any) []types.ProjectItem {
	out := []types.ProjectItem{}
	for _, entry := range asList(raw, "projects") {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		proj := types.ProjectItem{
			Name:         strings.TrimSpace(str(item["name"])),
			Description:  strings.TrimSpace(str(item["description"])),
			Technologies: normalizeStringList(item["technologies"]),
			KeyFeatures:  normalizeStringList(item["keyFeatures"]),
		}
		if proj.Name == "" {
			continue
		}
		out = append(out, proj)
	}
	return out
}

func normalizeEducation(raw any) []types.EducationItem {
	out := []types.EducationItem{}
	for _, entry := range asList(raw, "education") {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		edu := types.EducationItem{
			Degree:      strings.TrimSpace(str(item["degree"])),
			Institution: strings.TrimSpace(str(item["institution"])),
			Period:      strings.TrimSpace(str(item["period"])),
			Details:     strings.TrimSpace(str(item["details"])),
		}
		if edu.Degree == "" && edu.Institution == "" {
			continue
		}
		out = append(out, edu)
	}
	return out
}

func normalizeCertifications(raw any) []types.CertificationItem {
	out := []types.CertificationItem{}
	for _, entry := range asList(raw, "certifications") {
		switch item := entry.(type) {
		case map[string]any:
			cert := types.CertificationItem{
				Name:   strings.TrimSpace(str(item["name"])),
				Issuer: strings.TrimSpace(str(item["issuer"])),
				Type:   strings.TrimSpace(str(item["type"])),
				Skills: strings.TrimSpace(str(item["skills"])),
				Date:   strings.TrimSpace(str(item["date"])),
			}
			if cert.Name == "" {
				continue
			}
			out = append(out, cert)
		case string:
			// Certification stored as a bare name.
			if name := strings.TrimSpace(item); name != "" {
				out = append(out, types.CertificationItem{Name: name})
			}
		}
	}
	return out
}

func normalizeLanguages(raw any) []types.LanguageItem {
	out := []types.LanguageItem{}
	for _, entry := range asList(raw, "languages") {
		switch item := entry.(type) {
		case map[string]any:
			lang := types.LanguageItem{
				Language: strings.TrimSpace(str(item["language"])),
				Level:    strings.TrimSpace(str(item["level"])),
			}
			if lang.Language == "" {
				continue
			}
			out = append(out, lang)
		case string:
			if name := strings.TrimSpace(item); name != "" {
				out = append(out, types.LanguageItem{Language: name})
			}
		}
	}
	return out
}

// normalizeStringList coerces a value into a list of non-empty strings.
func normalizeStringList(raw any) []string {
	out := []string{}
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			if s := strings.TrimSpace(str(item)); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// asList coerces a value into a list, wrapping a single object so that a
// record stored as one item instead of a sequence still renders.
func asList(raw any, field string) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	case map[string]any:
		return []any{v}
	default:
		log.Printf("[NORMALIZE] %s has unexpected shape (%T); dropping", field, raw)
		return nil
	}
}

// str extracts a string, tolerating nil and non-string scalars.
func str(v any) string {
	s, _ := v.(string)
	return s
}
