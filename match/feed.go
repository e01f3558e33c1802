package match

import (
	"sync"

	"cofound_server/models"
)

// Phase tracks the load lifecycle of one collection.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseStale
)

// Feed is the state of one browsing session: both collections with their
// load phases, the active criteria and the viewer context. Scoring and
// filter results are never written back into the collections; every render
// re-runs the full pipeline, so a slow fetch resolving after a filter change
// still produces the right feed (last write wins). A late fetch result is
// always applied to the cache, but only the view active at render time is
// rendered.
type Feed struct {
	mu sync.RWMutex

	pipeline Pipeline
	criteria *Criteria

	viewer           *models.Profile
	favoriteProjects map[string]bool
	favoriteUsers    map[string]bool

	posts      []models.ProjectPost
	postsPhase Phase

	profiles      []models.Profile
	profilesPhase Phase
}

// NewFeed returns an empty session with nothing selected and nothing loaded.
func NewFeed(pipeline Pipeline) *Feed {
	return &Feed{
		pipeline:         pipeline,
		criteria:         NewCriteria(),
		favoriteProjects: map[string]bool{},
		favoriteUsers:    map[string]bool{},
	}
}

// SetViewer installs the signed-in member and their favorite id sets. A nil
// profile means an anonymous session.
func (f *Feed) SetViewer(profile *models.Profile, favoriteProjects, favoriteUsers map[string]bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.viewer = profile
	if favoriteProjects == nil {
		favoriteProjects = map[string]bool{}
	}
	if favoriteUsers == nil {
		favoriteUsers = map[string]bool{}
	}
	f.favoriteProjects = favoriteProjects
	f.favoriteUsers = favoriteUsers
}

// Viewer returns the session's profile, nil when anonymous.
func (f *Feed) Viewer() *models.Profile {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.viewer
}

// ViewerContext returns the viewer with their favorite id sets, the payload
// the session endpoint hands back. Nil for anonymous sessions. The maps are
// copies; mutating them does not touch the session.
func (f *Feed) ViewerContext() *models.Viewer {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.viewer == nil {
		return nil
	}
	projects := make(map[string]bool, len(f.favoriteProjects))
	for id := range f.favoriteProjects {
		projects[id] = true
	}
	users := make(map[string]bool, len(f.favoriteUsers))
	for id := range f.favoriteUsers {
		users[id] = true
	}
	return &models.Viewer{
		Profile:          *f.viewer,
		FavoriteProjects: projects,
		FavoriteUsers:    users,
	}
}

// SetFavorite patches the session's favorite sets after an optimistic toggle,
// the same way the page kept its local favorite arrays in sync.
func (f *Feed) SetFavorite(kind, itemID string, favorite bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := f.favoriteProjects
	if kind == models.FavoriteKindUser {
		set = f.favoriteUsers
	}
	if favorite {
		set[itemID] = true
		return
	}
	delete(set, itemID)
}

// BeginPostsLoad marks the post collection as loading, or stale when data is
// already showing and a refetch is underway.
func (f *Feed) BeginPostsLoad() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.postsPhase = nextLoadPhase(f.postsPhase)
}

// BeginProfilesLoad marks the profile collection as loading or stale.
func (f *Feed) BeginProfilesLoad() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profilesPhase = nextLoadPhase(f.profilesPhase)
}

// SetPosts replaces the post collection. Late completions land here too;
// whether they show depends on the view active when Render is called.
func (f *Feed) SetPosts(posts []models.ProjectPost) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = posts
	f.postsPhase = PhaseLoaded
}

// SetProfiles replaces the profile collection.
func (f *Feed) SetProfiles(profiles []models.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles = profiles
	f.profilesPhase = PhaseLoaded
}

// PostsPhase returns the post collection's load phase.
func (f *Feed) PostsPhase() Phase {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.postsPhase
}

// ProfilesPhase returns the profile collection's load phase.
func (f *Feed) ProfilesPhase() Phase {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.profilesPhase
}

// Criteria mutators, one per UI event.

// SetView switches between the projects and people tabs.
func (f *Feed) SetView(view View) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.SetView(view)
}

// ActiveView returns the tab the session is on.
func (f *Feed) ActiveView() View {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.criteria.ActiveView
}

// SetCategories replaces the selected category set.
func (f *Feed) SetCategories(categories []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.SetCategories(categories)
}

// SetRole sets the role filter.
func (f *Feed) SetRole(role string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.SetRole(role)
}

// AddSkill adds a skill pill.
func (f *Feed) AddSkill(skill string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.AddSkill(skill)
}

// RemoveSkill removes a skill pill.
func (f *Feed) RemoveSkill(skill string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.RemoveSkill(skill)
}

// Search sets the free-text term.
func (f *Feed) Search(term string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.SetSearchTerm(term)
}

// SelectedSkills returns the pill list in insertion order.
func (f *Feed) SelectedSkills() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.criteria.Skills))
	copy(out, f.criteria.Skills)
	return out
}

// Render runs the pipeline over the active view's collection and returns
// the records to show. Nothing is cached between calls.
func (f *Feed) Render() []Record {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.criteria.ActiveView == ViewPeople {
		filtered := f.pipeline.Profiles(f.profiles, f.criteria)
		return RenderProfiles(filtered, f.favoriteUsers, f.profilesEmptyReason())
	}
	filtered := f.pipeline.Posts(f.posts, f.criteria)
	return RenderPosts(filtered, f.favoriteProjects, f.postsEmptyReason())
}

// Recommendations renders the top-5 scored list for the active view. An
// anonymous viewer scores everything at zero and gets the empty state.
func (f *Feed) Recommendations() []Record {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var viewer models.Profile
	if f.viewer != nil {
		viewer = *f.viewer
	}
	if f.criteria.ActiveView == ViewPeople {
		scored := RecommendProfiles(viewer, f.profiles)
		return RenderScoredProfiles(scored, f.favoriteUsers, f.profilesEmptyReason())
	}
	scored := RecommendPosts(viewer, f.posts)
	return RenderScoredPosts(scored, f.favoriteProjects, f.postsEmptyReason())
}

// SkillSuggestions returns the available pill candidates for the loaded
// profile collection, minus the already-selected pills.
func (f *Feed) SkillSuggestions() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return SkillSuggestions(f.profiles, f.criteria.Skills)
}

func (f *Feed) postsEmptyReason() string {
	if len(f.posts) == 0 {
		return EmptyNoData
	}
	return EmptyNoMatches
}

func (f *Feed) profilesEmptyReason() string {
	if len(f.profiles) == 0 {
		return EmptyNoData
	}
	return EmptyNoMatches
}

func nextLoadPhase(current Phase) Phase {
	if current == PhaseLoaded || current == PhaseStale {
		return PhaseStale
	}
	return PhaseLoading
}
