package match

import (
	"fmt"
	"testing"

	"cofound_server/models"
)

func TestPostScoreCountsSharedTags(t *testing.T) {
	skills := []string{"react", "go"}
	tags := []string{"React", "Go", "Rust"}
	if got := PostScore(skills, tags); got != 2 {
		t.Errorf("PostScore = %d, want 2", got)
	}
	if tier := PostTier(2); tier != TierHigh {
		t.Errorf("PostTier(2) = %q, want %q", tier, TierHigh)
	}
}

func TestPostScoreCaseInsensitive(t *testing.T) {
	if got := PostScore([]string{"REACT"}, []string{"react"}); got != 1 {
		t.Errorf("PostScore = %d, want 1", got)
	}
}

func TestPostScoreCountsDuplicateTags(t *testing.T) {
	if got := PostScore([]string{"Go"}, []string{"Go", "go", "GO"}); got != 3 {
		t.Errorf("PostScore = %d, want 3", got)
	}
}

func TestPostScoreEmptyInputs(t *testing.T) {
	if got := PostScore(nil, []string{"Go"}); got != 0 {
		t.Errorf("PostScore with nil skills = %d, want 0", got)
	}
	if got := PostScore([]string{}, []string{"Go"}); got != 0 {
		t.Errorf("PostScore with empty skills = %d, want 0", got)
	}
	if got := PostScore([]string{"Go"}, nil); got != 0 {
		t.Errorf("PostScore with nil tags = %d, want 0", got)
	}
}

func TestProfileScoreSelfIsZero(t *testing.T) {
	p := models.Profile{ID: "u1", Role: models.RoleFounder, Skills: []string{"Go"}}
	if got := ProfileScore(p, p); got != 0 {
		t.Errorf("ProfileScore against self = %d, want 0", got)
	}
}

func TestProfileScoreNilSkillsIsZero(t *testing.T) {
	viewer := models.Profile{ID: "u1", Role: models.RoleFounder}
	candidate := models.Profile{ID: "u2", Role: models.RoleCoFounder, Skills: []string{"Sales"}}
	if got := ProfileScore(viewer, candidate); got != 0 {
		t.Errorf("ProfileScore with nil viewer skills = %d, want 0", got)
	}
	viewer.Skills = []string{"Sales"}
	candidate.Skills = nil
	if got := ProfileScore(viewer, candidate); got != 0 {
		t.Errorf("ProfileScore with nil candidate skills = %d, want 0", got)
	}
}

func TestProfileScoreRoleBonusWithEmptySkills(t *testing.T) {
	// Empty but present skill lists still earn the Founder/Co-founder bonus.
	viewer := models.Profile{ID: "u1", Role: models.RoleFounder, Skills: []string{}}
	candidate := models.Profile{ID: "u2", Role: models.RoleCoFounder, Skills: []string{}}
	if got := ProfileScore(viewer, candidate); got != RoleBonus {
		t.Errorf("ProfileScore = %d, want %d", got, RoleBonus)
	}
}

func TestProfileScoreSharedSkillsPlusBonus(t *testing.T) {
	viewer := models.Profile{ID: "u1", Role: models.RoleCoFounder, Skills: []string{"Sales", "Marketing"}}
	candidate := models.Profile{ID: "u2", Role: models.RoleFounder, Skills: []string{"sales"}}
	if got := ProfileScore(viewer, candidate); got != 3 {
		t.Errorf("ProfileScore = %d, want 3", got)
	}
	if tier := ProfileTier(3); tier != TierHigh {
		t.Errorf("ProfileTier(3) = %q, want %q", tier, TierHigh)
	}
}

func TestProfileScoreSameRoleNoBonus(t *testing.T) {
	viewer := models.Profile{ID: "u1", Role: models.RoleFounder, Skills: []string{"Sales"}}
	candidate := models.Profile{ID: "u2", Role: models.RoleFounder, Skills: []string{"Sales"}}
	if got := ProfileScore(viewer, candidate); got != 1 {
		t.Errorf("ProfileScore = %d, want 1", got)
	}
	if tier := ProfileTier(1); tier != TierMatch {
		t.Errorf("ProfileTier(1) = %q, want %q", tier, TierMatch)
	}
}

func TestProfileScoreMonotonicInSharedSkills(t *testing.T) {
	viewer := models.Profile{ID: "u1", Role: models.RoleFounder, Skills: []string{"Go", "Rust", "Sales"}}
	base := models.Profile{ID: "u2", Role: models.RoleCoFounder, Skills: []string{"Go"}}
	more := models.Profile{ID: "u3", Role: models.RoleCoFounder, Skills: []string{"Go", "Rust"}}
	if ProfileScore(viewer, more) <= ProfileScore(viewer, base) {
		t.Errorf("adding a shared skill did not raise the score")
	}
}

func TestRecommendPostsFiltersAndCaps(t *testing.T) {
	viewer := models.Profile{ID: "u1", Skills: []string{"Go"}}
	var posts []models.ProjectPost
	for i := 0; i < 10; i++ {
		posts = append(posts, models.ProjectPost{
			ID:   fmt.Sprintf("p%d", i),
			Tags: []string{"Go"},
		})
	}
	posts = append(posts, models.ProjectPost{ID: "zero", Tags: []string{"Cobol"}})

	scored := RecommendPosts(viewer, posts)
	if len(scored) != 5 {
		t.Fatalf("got %d recommendations, want 5", len(scored))
	}
	// Equal scores keep the collection's order.
	for i, s := range scored {
		want := fmt.Sprintf("p%d", i)
		if s.Post.ID != want {
			t.Errorf("recommendation %d = %q, want %q", i, s.Post.ID, want)
		}
	}
}

func TestRecommendPostsSortsByScoreDescending(t *testing.T) {
	viewer := models.Profile{ID: "u1", Skills: []string{"Go", "Rust"}}
	posts := []models.ProjectPost{
		{ID: "one", Tags: []string{"Go"}},
		{ID: "two", Tags: []string{"Go", "Rust"}},
	}
	scored := RecommendPosts(viewer, posts)
	if len(scored) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(scored))
	}
	if scored[0].Post.ID != "two" || scored[1].Post.ID != "one" {
		t.Errorf("got order %q, %q; want two, one", scored[0].Post.ID, scored[1].Post.ID)
	}
}

func TestRecommendProfilesIncludesPureRoleMatch(t *testing.T) {
	viewer := models.Profile{ID: "u1", Role: models.RoleFounder, Skills: []string{}}
	profiles := []models.Profile{
		{ID: "u2", Role: models.RoleCoFounder, Skills: []string{}},
		{ID: "u3", Role: models.RoleFounder, Skills: []string{}},
	}
	scored := RecommendProfiles(viewer, profiles)
	if len(scored) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(scored))
	}
	if scored[0].Profile.ID != "u2" || scored[0].Score != RoleBonus {
		t.Errorf("got %q score %d, want u2 score %d", scored[0].Profile.ID, scored[0].Score, RoleBonus)
	}
}

func TestRecommendProfilesExcludesSelf(t *testing.T) {
	viewer := models.Profile{ID: "u1", Role: models.RoleFounder, Skills: []string{"Go"}}
	scored := RecommendProfiles(viewer, []models.Profile{viewer})
	if len(scored) != 0 {
		t.Errorf("got %d recommendations, want 0", len(scored))
	}
}
