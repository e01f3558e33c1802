package match

import (
	"sort"
	"strings"

	"cofound_server/models"
)

// Score thresholds for the "high match" badge tier. Profiles sit one step
// higher because the role bonus alone already contributes 2.
const (
	HighMatchPostScore    = 2
	HighMatchProfileScore = 3
)

// RoleBonus is added when a Founder and a Co-founder meet each other.
const RoleBonus = 2

// recommendationLimit caps how many entries a recommendation list shows.
const recommendationLimit = 5

// Badge tiers.
const (
	TierHigh  = "high"
	TierMatch = "match"
)

// PostScore counts how many of a post's tags the viewer also lists as
// skills. Comparison is case-insensitive and duplicate tags count each time
// they appear. Missing skills or tags score zero.
func PostScore(viewerSkills, tags []string) int {
	if len(viewerSkills) == 0 || len(tags) == 0 {
		return 0
	}
	skills := foldSet(viewerSkills)
	score := 0
	for _, tag := range tags {
		if skills[strings.ToLower(tag)] {
			score++
		}
	}
	return score
}

// ProfileScore rates a candidate profile against the viewer: +1 per shared
// skill plus the role bonus when one side is a Founder and the other a
// Co-founder. A profile never matches itself. Absent (nil) skill lists score
// zero, but a member who listed no skills yet still gets the role bonus.
func ProfileScore(viewer, candidate models.Profile) int {
	if viewer.ID == candidate.ID {
		return 0
	}
	if viewer.Skills == nil || candidate.Skills == nil {
		return 0
	}
	mine := foldSet(viewer.Skills)
	score := 0
	for _, skill := range candidate.Skills {
		if mine[strings.ToLower(skill)] {
			score++
		}
	}
	if rolesComplement(viewer.Role, candidate.Role) {
		score += RoleBonus
	}
	return score
}

// PostTier classifies a post score into a badge tier.
func PostTier(score int) string {
	if score >= HighMatchPostScore {
		return TierHigh
	}
	return TierMatch
}

// ProfileTier classifies a profile score into a badge tier.
func ProfileTier(score int) string {
	if score >= HighMatchProfileScore {
		return TierHigh
	}
	return TierMatch
}

// ScoredPost pairs a post with its match score.
type ScoredPost struct {
	Post  models.ProjectPost `json:"post"`
	Score int                `json:"score"`
}

// ScoredProfile pairs a profile with its match score.
type ScoredProfile struct {
	Profile models.Profile `json:"profile"`
	Score   int            `json:"score"`
}

// RecommendPosts returns the viewer's top five positive-scoring posts,
// strongest first. The sort is stable, so equal scores keep the collection's
// newest-first order.
func RecommendPosts(viewer models.Profile, posts []models.ProjectPost) []ScoredPost {
	var scored []ScoredPost
	for _, post := range posts {
		score := PostScore(viewer.Skills, post.Tags)
		if score > 0 {
			scored = append(scored, ScoredPost{Post: post, Score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > recommendationLimit {
		scored = scored[:recommendationLimit]
	}
	return scored
}

// RecommendProfiles returns the viewer's top five positive-scoring profiles.
// The positive filter runs after the role bonus, so a pure Founder/Co-founder
// pair with no shared skills still shows up.
func RecommendProfiles(viewer models.Profile, profiles []models.Profile) []ScoredProfile {
	var scored []ScoredProfile
	for _, profile := range profiles {
		score := ProfileScore(viewer, profile)
		if score > 0 {
			scored = append(scored, ScoredProfile{Profile: profile, Score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > recommendationLimit {
		scored = scored[:recommendationLimit]
	}
	return scored
}

// rolesComplement reports whether the two roles form a Founder/Co-founder
// pair, in either order and any casing.
func rolesComplement(a, b string) bool {
	ra := strings.ToLower(a)
	rb := strings.ToLower(b)
	if ra == rb {
		return false
	}
	return founderRole(ra) && founderRole(rb)
}

func founderRole(role string) bool {
	return role == "founder" || role == "co-founder"
}

func foldSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}
