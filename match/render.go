package match

import (
	"strings"

	"cofound_server/models"
)

// Empty-state reasons. NoData means the collection has not loaded (or the
// backend returned nothing), NoMatches means the active filters or search
// excluded everything. The front end shows different copy for each.
const (
	EmptyNoData    = "no-data"
	EmptyNoMatches = "no-matches"
)

// Status badge colours for profile availability.
const (
	StatusGreen  = "green"
	StatusYellow = "yellow"
	StatusRed    = "red"
)

// Badge is the match-score badge on a recommendation card.
type Badge struct {
	Tier  string `json:"tier"`
	Score int    `json:"score"`
}

// Record is one renderable feed entry. Exactly one of Post and Profile is
// set, unless EmptyState is true, in which case Reason says why the list is
// empty. A filtered result of zero entries renders as a single empty-state
// record rather than an empty list, so callers can tell "nothing loaded"
// from "filters matched nothing".
type Record struct {
	EmptyState  bool                `json:"emptyState,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	Post        *models.ProjectPost `json:"post,omitempty"`
	Profile     *models.Profile     `json:"profile,omitempty"`
	IsFavorite  bool                `json:"isFavorite,omitempty"`
	Badge       *Badge              `json:"badge,omitempty"`
	StatusBadge string              `json:"statusBadge,omitempty"`
}

// StatusBadge maps a profile's free-form availability status to a badge
// colour. The default is green ("actively looking"); a status mentioning
// "Åpen" turns yellow and one mentioning "Ikke" turns red, red winning when
// both appear.
func StatusBadge(status string) string {
	badge := StatusGreen
	if strings.Contains(status, "Åpen") {
		badge = StatusYellow
	}
	if strings.Contains(status, "Ikke") {
		badge = StatusRed
	}
	return badge
}

// RenderPosts converts a filtered post list into render records.
// emptyReason is used when the list is empty.
func RenderPosts(posts []models.ProjectPost, favorites map[string]bool, emptyReason string) []Record {
	if len(posts) == 0 {
		return []Record{{EmptyState: true, Reason: emptyReason}}
	}
	records := make([]Record, 0, len(posts))
	for i := range posts {
		post := posts[i]
		records = append(records, Record{
			Post:       &post,
			IsFavorite: favorites[post.ID],
		})
	}
	return records
}

// RenderProfiles converts a filtered profile list into render records with
// availability badges.
func RenderProfiles(profiles []models.Profile, favorites map[string]bool, emptyReason string) []Record {
	if len(profiles) == 0 {
		return []Record{{EmptyState: true, Reason: emptyReason}}
	}
	records := make([]Record, 0, len(profiles))
	for i := range profiles {
		profile := profiles[i]
		records = append(records, Record{
			Profile:     &profile,
			IsFavorite:  favorites[profile.ID],
			StatusBadge: StatusBadge(profile.Status),
		})
	}
	return records
}

// RenderScoredPosts renders a post recommendation list, attaching the badge
// tier for each entry.
func RenderScoredPosts(scored []ScoredPost, favorites map[string]bool, emptyReason string) []Record {
	if len(scored) == 0 {
		return []Record{{EmptyState: true, Reason: emptyReason}}
	}
	records := make([]Record, 0, len(scored))
	for i := range scored {
		entry := scored[i]
		records = append(records, Record{
			Post:       &entry.Post,
			IsFavorite: favorites[entry.Post.ID],
			Badge:      &Badge{Tier: PostTier(entry.Score), Score: entry.Score},
		})
	}
	return records
}

// RenderScoredProfiles renders a profile recommendation list.
func RenderScoredProfiles(scored []ScoredProfile, favorites map[string]bool, emptyReason string) []Record {
	if len(scored) == 0 {
		return []Record{{EmptyState: true, Reason: emptyReason}}
	}
	records := make([]Record, 0, len(scored))
	for i := range scored {
		entry := scored[i]
		records = append(records, Record{
			Profile:     &entry.Profile,
			IsFavorite:  favorites[entry.Profile.ID],
			Badge:       &Badge{Tier: ProfileTier(entry.Score), Score: entry.Score},
			StatusBadge: StatusBadge(entry.Profile.Status),
		})
	}
	return records
}
