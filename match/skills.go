package match

import (
	"sort"
	"strings"

	"cofound_server/models"
)

// SkillSuggestions collects every skill seen across the given profiles as
// pill candidates, deduplicated case-insensitively (the first spelling seen
// wins) and sorted. Skills already selected as pills are left out, by exact
// match, since pills are handed back verbatim from this list.
func SkillSuggestions(profiles []models.Profile, selected []string) []string {
	seen := make(map[string]bool)
	var all []string
	for _, profile := range profiles {
		for _, skill := range profile.Skills {
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, skill)
		}
	}

	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}
	var out []string
	for _, skill := range all {
		if !chosen[skill] {
			out = append(out, skill)
		}
	}
	sort.Strings(out)
	return out
}
