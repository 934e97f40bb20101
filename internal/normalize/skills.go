package normalize

import (
	"fmt"
	"sort"
	"strings"
)

// coerceSkillList coerces one skill category's value into a list of
// displayable strings. Precedence order:
//  1. sequence (of strings or {name, level} pairs)
//  2. object-of-arrays (single object treated as a one-category map;
//     a {name, level} object becomes a one-element list)
//  3. delimited string ("Go, Python" → ["Go", "Python"])
//
// Anything unrecognized yields an empty list, which callers drop silently.
func coerceSkillList(raw any) []string {
	switch v := raw.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := skillEntryText(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case map[string]any:
		// A single {name, level} object stored where a list was expected.
		if s := skillEntryText(v); s != "" {
			return []string{s}
		}
		// An object of values: collect in sorted key order for determinism.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := skillEntryText(v[k]); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
}

// skillEntryText extracts display text from one skill entry, which may be a
// bare string or a {name, level} pair.
func skillEntryText(entry any) string {
	switch v := entry.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		name, _ := v["name"].(string)
		name = strings.TrimSpace(name)
		if name == "" {
			return ""
		}
		if level, _ := v["level"].(string); level != "" {
			return fmt.Sprintf("%s (%s)", name, level)
		}
		return name
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	default:
		return ""
	}
}
