package models

// Viewer is the signed-in member as the feed sees them: their profile plus
// the id sets of their favorites. An anonymous visitor has no Viewer at all;
// scoring and favorite flags degrade to zero in that case.
type Viewer struct {
	Profile          Profile         `json:"profile"`
	FavoriteProjects map[string]bool `json:"favoriteProjects"`
	FavoriteUsers    map[string]bool `json:"favoriteUsers"`
}

// IsFavorite reports whether the viewer has favorited the given item.
func (v *Viewer) IsFavorite(kind, itemID string) bool {
	if v == nil {
		return false
	}
	switch kind {
	case FavoriteKindProject:
		return v.FavoriteProjects[itemID]
	case FavoriteKindUser:
		return v.FavoriteUsers[itemID]
	}
	return false
}
