package match

import (
	"testing"

	"cofound_server/models"
)

func filterPosts() []models.ProjectPost {
	return []models.ProjectPost{
		{ID: "p1", Title: "AI tutor", Category: "Tech", Tags: []string{"Go", "ML"}},
		{ID: "p2", Title: "Brand studio", Category: "Design", Description: "Design systems for startups"},
		{ID: "p3", Title: "Health app", Category: "Tech", Author: "Kari"},
	}
}

func filterProfiles() []models.Profile {
	return []models.Profile{
		{ID: "u1", Name: "Ola", Role: "Founder", Skills: []string{"Go"}},
		{ID: "u2", Name: "Kari", Role: "Developer", Skills: []string{"Python"}},
		{ID: "u3", Name: "Per", Role: "Designer", Skills: []string{"Rust", "Java"}},
	}
}

func TestPostsNoCriteriaPassThrough(t *testing.T) {
	posts := filterPosts()
	var p Pipeline
	out := p.Posts(posts, NewCriteria())
	if len(out) != len(posts) {
		t.Errorf("got %d posts, want %d", len(out), len(posts))
	}
	// Ordering is preserved, never sorted.
	for i := range out {
		if out[i].ID != posts[i].ID {
			t.Errorf("post %d = %q, want %q", i, out[i].ID, posts[i].ID)
		}
	}
}

func TestPostsCategoryExactMatch(t *testing.T) {
	var p Pipeline
	c := NewCriteria()
	c.SetCategories([]string{"Tech"})
	out := p.Posts(filterPosts(), c)
	if len(out) != 2 {
		t.Fatalf("got %d posts, want 2", len(out))
	}
	if out[0].ID != "p1" || out[1].ID != "p3" {
		t.Errorf("got %q, %q; want p1, p3", out[0].ID, out[1].ID)
	}
}

func TestSearchReplacesCategoryFilter(t *testing.T) {
	// An active search runs over the full collection, not the filtered one.
	var p Pipeline
	c := NewCriteria()
	c.SetCategories([]string{"Tech"})
	c.SetSearchTerm("design")
	out := p.Posts(filterPosts(), c)
	if len(out) != 1 || out[0].ID != "p2" {
		t.Fatalf("got %v, want the Design post despite the Tech filter", ids(out))
	}
}

func TestComposeSearchStacksOnFilters(t *testing.T) {
	p := Pipeline{ComposeSearch: true}
	c := NewCriteria()
	c.SetCategories([]string{"Tech"})
	c.SetSearchTerm("design")
	out := p.Posts(filterPosts(), c)
	if len(out) != 0 {
		t.Errorf("got %v, want nothing: the Design post is outside the Tech filter", ids(out))
	}
}

func TestClearingSearchShowsFullCollection(t *testing.T) {
	// Clearing the term falls back to the whole collection, not the filtered
	// one, even though the category checkboxes are still ticked.
	var p Pipeline
	c := NewCriteria()
	c.SetCategories([]string{"Tech"})
	c.SetSearchTerm("brand")
	if out := p.Posts(filterPosts(), c); len(out) != 1 || out[0].ID != "p2" {
		t.Fatalf("search got %v, want p2", ids(out))
	}
	c.SetSearchTerm("")
	out := p.Posts(filterPosts(), c)
	if len(out) != 3 {
		t.Errorf("after clearing search got %v, want the full collection", ids(out))
	}
}

func TestClearingProfileSearchShowsFullCollection(t *testing.T) {
	var p Pipeline
	c := NewCriteria()
	c.SetRole("Founder")
	c.SetSearchTerm("kari")
	c.SetSearchTerm("")
	if out := p.Profiles(filterProfiles(), c); len(out) != 3 {
		t.Errorf("after clearing search got %d profiles, want all 3", len(out))
	}
}

func TestTouchingFiltersAfterClearReappliesThem(t *testing.T) {
	var p Pipeline
	c := NewCriteria()
	c.SetCategories([]string{"Tech"})
	c.SetSearchTerm("brand")
	c.SetSearchTerm("")
	c.SetCategories([]string{"Tech"})
	out := p.Posts(filterPosts(), c)
	if len(out) != 2 || out[0].ID != "p1" || out[1].ID != "p3" {
		t.Errorf("after re-ticking the category got %v, want the Tech posts", ids(out))
	}
}

func TestComposeSearchClearReturnsToFilters(t *testing.T) {
	p := Pipeline{ComposeSearch: true}
	c := NewCriteria()
	c.SetCategories([]string{"Tech"})
	c.SetSearchTerm("health")
	c.SetSearchTerm("")
	out := p.Posts(filterPosts(), c)
	if len(out) != 2 || out[0].ID != "p1" || out[1].ID != "p3" {
		t.Errorf("composed mode after clear got %v, want the Tech posts", ids(out))
	}
}

func TestPostSearchFields(t *testing.T) {
	var p Pipeline
	for term, want := range map[string]string{
		"tutor":   "p1", // title
		"ml":      "p1", // tag
		"systems": "p2", // description
		"kari":    "p3", // author
	} {
		c := NewCriteria()
		c.SetSearchTerm(term)
		out := p.Posts(filterPosts(), c)
		if len(out) != 1 || out[0].ID != want {
			t.Errorf("term %q got %v, want %s", term, ids(out), want)
		}
	}
}

func TestComposeSearchProfilesStacksOnFilters(t *testing.T) {
	p := Pipeline{ComposeSearch: true}
	c := NewCriteria()
	c.SetRole("Founder")
	c.AddSkill("Go")
	c.SetSearchTerm("kari") // Kari is outside the role/skill filter
	if out := p.Profiles(filterProfiles(), c); len(out) != 0 {
		t.Errorf("got %d profiles, want 0: search must stay inside the filters", len(out))
	}
	c.SetSearchTerm("ola")
	out := p.Profiles(filterProfiles(), c)
	if len(out) != 1 || out[0].ID != "u1" {
		t.Errorf("got %d profiles, want only Ola", len(out))
	}
}

func TestProfilesRoleFilterCaseInsensitive(t *testing.T) {
	var p Pipeline
	c := NewCriteria()
	c.SetView(ViewPeople)
	c.SetRole("founder")
	out := p.Profiles(filterProfiles(), c)
	if len(out) != 1 || out[0].ID != "u1" {
		t.Errorf("got %d profiles, want only the Founder", len(out))
	}
}

func TestProfilesSkillPillsOrSemantics(t *testing.T) {
	var p Pipeline
	c := NewCriteria()
	c.AddSkill("Go")
	c.AddSkill("Rust")
	out := p.Profiles(filterProfiles(), c)
	if len(out) != 2 {
		t.Fatalf("got %d profiles, want 2", len(out))
	}
	if out[0].ID != "u1" || out[1].ID != "u3" {
		t.Errorf("got %q, %q; want u1, u3", out[0].ID, out[1].ID)
	}
}

func TestProfilesSkillPillExactMatch(t *testing.T) {
	var p Pipeline
	c := NewCriteria()
	c.AddSkill("go") // lower case does not match the stored "Go"
	out := p.Profiles(filterProfiles(), c)
	if len(out) != 0 {
		t.Errorf("got %d profiles, want 0 for a wrong-case pill", len(out))
	}
}

func TestProfileSearchExperienceFields(t *testing.T) {
	profiles := []models.Profile{
		{ID: "u1", Name: "Ola", Experience: []models.Experience{{Role: "CTO", Company: "Acme"}}},
		{ID: "u2", Name: "Kari"},
	}
	var p Pipeline
	c := NewCriteria()
	c.SetSearchTerm("acme")
	out := p.Profiles(profiles, c)
	if len(out) != 1 || out[0].ID != "u1" {
		t.Errorf("got %d profiles, want the one with Acme experience", len(out))
	}
}

func ids(posts []models.ProjectPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}
