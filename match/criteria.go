package match

import "strings"

// View selects which collection the feed is showing.
type View string

const (
	ViewProjects View = "projects"
	ViewPeople   View = "people"
)

// RoleAll disables the role filter.
const RoleAll = "all"

// Criteria holds the filter and search selections of one feed session. It is
// mutated by UI events and knows nothing about the collections themselves.
type Criteria struct {
	ActiveView View            `json:"activeView"`
	Categories map[string]bool `json:"categories,omitempty"`
	Role       string          `json:"role"`
	Skills     []string        `json:"skills,omitempty"`
	SearchTerm string          `json:"searchTerm,omitempty"`

	// ClearedSearch is set when an active search is cleared and lasts until
	// the next category, role or skill mutation. While set, the default
	// pipeline shows the full collection instead of reapplying the filters,
	// matching how clearing the search box rendered the whole list even with
	// checkboxes still ticked.
	ClearedSearch bool `json:"-"`
}

// NewCriteria returns criteria with nothing selected: projects view, all
// roles, no categories, no skill pills, no search.
func NewCriteria() *Criteria {
	return &Criteria{ActiveView: ViewProjects, Role: RoleAll}
}

// SetView switches the active view.
func (c *Criteria) SetView(view View) {
	if view == ViewPeople {
		c.ActiveView = ViewPeople
		return
	}
	c.ActiveView = ViewProjects
}

// SetCategories replaces the selected category set. An empty selection means
// no restriction.
func (c *Criteria) SetCategories(categories []string) {
	c.ClearedSearch = false
	if len(categories) == 0 {
		c.Categories = nil
		return
	}
	set := make(map[string]bool, len(categories))
	for _, category := range categories {
		set[category] = true
	}
	c.Categories = set
}

// SetRole sets the single-choice role filter. Empty input falls back to all.
func (c *Criteria) SetRole(role string) {
	c.ClearedSearch = false
	if role == "" {
		role = RoleAll
	}
	c.Role = role
}

// AddSkill appends a skill pill. Duplicates are ignored, so the pill list
// behaves as a set while keeping insertion order for display.
func (c *Criteria) AddSkill(skill string) {
	c.ClearedSearch = false
	for _, s := range c.Skills {
		if s == skill {
			return
		}
	}
	c.Skills = append(c.Skills, skill)
}

// RemoveSkill drops a pill by exact string match. Pills come from the
// suggestion list, which is already normalized, so no case folding here.
func (c *Criteria) RemoveSkill(skill string) {
	c.ClearedSearch = false
	kept := c.Skills[:0]
	for _, s := range c.Skills {
		if s != skill {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		c.Skills = nil
		return
	}
	c.Skills = kept
}

// SetSearchTerm stores the free-text term, trimmed and case-folded. Clearing
// an active term flips ClearedSearch; clearing an already-empty one does not.
func (c *Criteria) SetSearchTerm(term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term != "" {
		c.ClearedSearch = false
	} else if c.SearchTerm != "" {
		c.ClearedSearch = true
	}
	c.SearchTerm = term
}

// Searching reports whether a free-text search is active.
func (c *Criteria) Searching() bool {
	return c.SearchTerm != ""
}

// RoleFilterActive reports whether the role filter restricts anything.
func (c *Criteria) RoleFilterActive() bool {
	return c.Role != "" && !strings.EqualFold(c.Role, RoleAll)
}
