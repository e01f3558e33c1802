package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"cofound_server/match"
	"cofound_server/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("feed session not found")

// FeedService owns the feed sessions. Each connected client gets one
// match.Feed holding its criteria and viewer context; the collections are
// fetched here and fanned out to every session, so a refresh behaves like
// the original page reloading its globals while each tab keeps its own
// filter state.
type FeedService struct {
	Posts     *PostService
	Profiles  *ProfileService
	Favorites *FavoriteService

	pipeline match.Pipeline

	mu       sync.RWMutex
	sessions map[string]*match.Feed
	lastSeen map[string]time.Time

	// Latest snapshots, handed to newly created sessions.
	posts    []models.ProjectPost
	profiles []models.Profile
	loaded   bool
}

// NewFeedService creates the session registry. composeSearch switches every
// session's pipeline to the corrected search-plus-filters mode.
func NewFeedService(posts *PostService, profiles *ProfileService, favorites *FavoriteService, composeSearch bool) *FeedService {
	return &FeedService{
		Posts:     posts,
		Profiles:  profiles,
		Favorites: favorites,
		pipeline:  match.Pipeline{ComposeSearch: composeSearch},
		sessions:  map[string]*match.Feed{},
		lastSeen:  map[string]time.Time{},
	}
}

// CreateSession opens a feed session, anonymous when userID is empty, and
// returns its id. The signed-in viewer's profile and favorite sets load once
// here, page-session style.
func (fs *FeedService) CreateSession(ctx context.Context, userID string) (string, *match.Feed, error) {
	feed := match.NewFeed(fs.pipeline)

	if userID != "" {
		profile, err := fs.Profiles.GetProfile(ctx, userID)
		if err != nil {
			return "", nil, err
		}
		favProjects := fs.Favorites.FetchFavoriteIDs(ctx, userID, models.FavoriteKindProject)
		favUsers := fs.Favorites.FetchFavoriteIDs(ctx, userID, models.FavoriteKindUser)
		feed.SetViewer(profile, favProjects, favUsers)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.loaded {
		feed.SetPosts(fs.posts)
		feed.SetProfiles(fs.profiles)
	}
	id := uuid.NewString()
	fs.sessions[id] = feed
	fs.lastSeen[id] = time.Now()
	return id, feed, nil
}

// Session looks up a feed session by id and marks it as recently used.
func (fs *FeedService) Session(id string) (*match.Feed, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	feed, ok := fs.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	fs.lastSeen[id] = time.Now()
	return feed, nil
}

// DropSession discards a session.
func (fs *FeedService) DropSession(id string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.sessions, id)
	delete(fs.lastSeen, id)
}

// PruneSessions drops sessions not used for maxIdle and reports how many
// went. Tabs that close without sending the session delete would otherwise
// accumulate forever.
func (fs *FeedService) PruneSessions(maxIdle time.Duration) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	pruned := 0
	for id, seen := range fs.lastSeen {
		if time.Since(seen) > maxIdle {
			delete(fs.sessions, id)
			delete(fs.lastSeen, id)
			pruned++
		}
	}
	if pruned > 0 {
		log.Debug().Int("sessions", pruned).Msg("idle feed sessions pruned")
	}
	return pruned
}

// Refresh reloads both collections from the backend and applies them to
// every session. Fetch failures arrive as empty slices and are applied as
// such; the renderer shows the no-data state rather than stale results
// pretending to be fresh.
func (fs *FeedService) Refresh(ctx context.Context) {
	fs.RefreshPosts(ctx)
	fs.RefreshProfiles(ctx)
}

// RefreshPosts reloads the post collection and fans it out.
func (fs *FeedService) RefreshPosts(ctx context.Context) {
	for _, feed := range fs.snapshotSessions() {
		feed.BeginPostsLoad()
	}
	posts := fs.Posts.FetchAllPosts(ctx)

	fs.mu.Lock()
	fs.posts = posts
	fs.loaded = true
	fs.mu.Unlock()

	for _, feed := range fs.snapshotSessions() {
		feed.SetPosts(posts)
	}
	log.Debug().Int("posts", len(posts)).Msg("post collection refreshed")
}

// RefreshProfiles reloads the profile collection and fans it out.
func (fs *FeedService) RefreshProfiles(ctx context.Context) {
	for _, feed := range fs.snapshotSessions() {
		feed.BeginProfilesLoad()
	}
	profiles := fs.Profiles.FetchAllProfiles(ctx)

	fs.mu.Lock()
	fs.profiles = profiles
	fs.loaded = true
	fs.mu.Unlock()

	for _, feed := range fs.snapshotSessions() {
		feed.SetProfiles(profiles)
	}
	log.Debug().Int("profiles", len(profiles)).Msg("profile collection refreshed")
}

// FavoritePosts resolves a member's favorited posts to full records from
// the current snapshot.
func (fs *FeedService) FavoritePosts(ctx context.Context, userID string) []models.ProjectPost {
	ids := fs.Favorites.FetchFavoriteIDs(ctx, userID, models.FavoriteKindProject)
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	var out []models.ProjectPost
	for _, post := range fs.posts {
		if ids[post.ID] {
			out = append(out, post)
		}
	}
	return out
}

// FavoriteProfiles resolves a member's favorited profiles to full records.
func (fs *FeedService) FavoriteProfiles(ctx context.Context, userID string) []models.Profile {
	ids := fs.Favorites.FetchFavoriteIDs(ctx, userID, models.FavoriteKindUser)
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	var out []models.Profile
	for _, profile := range fs.profiles {
		if ids[profile.ID] {
			out = append(out, profile)
		}
	}
	return out
}

// SetSessionFavorite patches every session belonging to this viewer after a
// toggle. Sessions are keyed by id, not user, so each one carries its own
// viewer and only matching sessions are touched.
func (fs *FeedService) SetSessionFavorite(userID, kind, itemID string, favorite bool) {
	for _, feed := range fs.snapshotSessions() {
		viewer := feed.Viewer()
		if viewer != nil && viewer.ID == userID {
			feed.SetFavorite(kind, itemID, favorite)
		}
	}
}

func (fs *FeedService) snapshotSessions() []*match.Feed {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]*match.Feed, 0, len(fs.sessions))
	for _, feed := range fs.sessions {
		out = append(out, feed)
	}
	return out
}
