package match

import (
	"strings"

	"cofound_server/models"
)

// Pipeline applies the active criteria to a collection. It only selects
// membership; ordering stays whatever the collection came in as
// (newest-first from the data layer). Only the recommendation lists sort.
//
// The zero value reproduces the reference behaviour where an active search
// term replaces the category, role and skill filters and runs over the full
// collection, and clearing the term shows the full unfiltered collection
// until a filter control is touched again. ComposeSearch instead stacks the
// search on top of the other filters and returns to them when cleared.
type Pipeline struct {
	ComposeSearch bool
}

// Posts selects the project posts to render for the given criteria.
func (p Pipeline) Posts(posts []models.ProjectPost, c *Criteria) []models.ProjectPost {
	if c == nil {
		return posts
	}
	if !c.Searching() {
		if c.ClearedSearch && !p.ComposeSearch {
			return posts
		}
		return postsByCategory(posts, c)
	}
	base := posts
	if p.ComposeSearch {
		base = postsByCategory(posts, c)
	}
	return searchPosts(base, c.SearchTerm)
}

// Profiles selects the member profiles to render for the given criteria.
func (p Pipeline) Profiles(profiles []models.Profile, c *Criteria) []models.Profile {
	if c == nil {
		return profiles
	}
	if !c.Searching() {
		if c.ClearedSearch && !p.ComposeSearch {
			return profiles
		}
		return profilesByRoleAndSkills(profiles, c)
	}
	base := profiles
	if p.ComposeSearch {
		base = profilesByRoleAndSkills(profiles, c)
	}
	return searchProfiles(base, c.SearchTerm)
}

// postsByCategory keeps posts whose category is in the selected set. The
// match is exact: categories come from a fixed vocabulary, not user input.
func postsByCategory(posts []models.ProjectPost, c *Criteria) []models.ProjectPost {
	if len(c.Categories) == 0 {
		return posts
	}
	var out []models.ProjectPost
	for _, post := range posts {
		if c.Categories[post.Category] {
			out = append(out, post)
		}
	}
	return out
}

// profilesByRoleAndSkills applies the role filter and then the skill-pill
// filter. A profile passes the skill filter when at least one of its skills
// is an exact member of the selected pills (OR semantics).
func profilesByRoleAndSkills(profiles []models.Profile, c *Criteria) []models.Profile {
	out := profiles
	if c.RoleFilterActive() {
		var kept []models.Profile
		for _, profile := range out {
			if strings.EqualFold(profile.Role, c.Role) {
				kept = append(kept, profile)
			}
		}
		out = kept
	}
	if len(c.Skills) > 0 {
		selected := make(map[string]bool, len(c.Skills))
		for _, s := range c.Skills {
			selected[s] = true
		}
		var kept []models.Profile
		for _, profile := range out {
			for _, skill := range profile.Skills {
				if selected[skill] {
					kept = append(kept, profile)
					break
				}
			}
		}
		out = kept
	}
	return out
}

func searchPosts(posts []models.ProjectPost, term string) []models.ProjectPost {
	var out []models.ProjectPost
	for _, post := range posts {
		if postMatchesTerm(post, term) {
			out = append(out, post)
		}
	}
	return out
}

func searchProfiles(profiles []models.Profile, term string) []models.Profile {
	var out []models.Profile
	for _, profile := range profiles {
		if profileMatchesTerm(profile, term) {
			out = append(out, profile)
		}
	}
	return out
}

// postMatchesTerm checks title, description, category, author name and tags.
func postMatchesTerm(post models.ProjectPost, term string) bool {
	if containsFold(post.Title, term) ||
		containsFold(post.Description, term) ||
		containsFold(post.Category, term) ||
		containsFold(post.Author, term) {
		return true
	}
	for _, tag := range post.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

// profileMatchesTerm checks name, bio, role, skills and the role/company of
// each experience entry.
func profileMatchesTerm(profile models.Profile, term string) bool {
	if containsFold(profile.Name, term) ||
		containsFold(profile.Bio, term) ||
		containsFold(profile.Role, term) {
		return true
	}
	for _, skill := range profile.Skills {
		if containsFold(skill, term) {
			return true
		}
	}
	for _, exp := range profile.Experience {
		if containsFold(exp.Role, term) || containsFold(exp.Company, term) {
			return true
		}
	}
	return false
}

// containsFold reports whether s contains term, case-insensitively. The term
// is already lower-cased by Criteria.SetSearchTerm.
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}
