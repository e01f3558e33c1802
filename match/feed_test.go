package match

import (
	"testing"

	"cofound_server/models"
)

func TestFeedPhaseLifecycle(t *testing.T) {
	f := NewFeed(Pipeline{})
	if f.PostsPhase() != PhaseEmpty {
		t.Errorf("fresh feed phase = %v, want PhaseEmpty", f.PostsPhase())
	}
	f.BeginPostsLoad()
	if f.PostsPhase() != PhaseLoading {
		t.Errorf("phase = %v, want PhaseLoading", f.PostsPhase())
	}
	f.SetPosts([]models.ProjectPost{{ID: "p1"}})
	if f.PostsPhase() != PhaseLoaded {
		t.Errorf("phase = %v, want PhaseLoaded", f.PostsPhase())
	}
	// A refetch over loaded data shows stale, not a blank loading state.
	f.BeginPostsLoad()
	if f.PostsPhase() != PhaseStale {
		t.Errorf("phase = %v, want PhaseStale", f.PostsPhase())
	}
	f.SetPosts(nil)
	if f.PostsPhase() != PhaseLoaded {
		t.Errorf("phase = %v, want PhaseLoaded after refetch", f.PostsPhase())
	}
}

func TestFeedRenderEmptyReasons(t *testing.T) {
	f := NewFeed(Pipeline{})
	records := f.Render()
	if len(records) != 1 || records[0].Reason != EmptyNoData {
		t.Fatalf("unloaded feed got %+v, want one no-data record", records)
	}

	f.SetPosts([]models.ProjectPost{{ID: "p1", Category: "Tech"}})
	f.SetCategories([]string{"Design"})
	records = f.Render()
	if len(records) != 1 || records[0].Reason != EmptyNoMatches {
		t.Fatalf("filtered-out feed got %+v, want one no-matches record", records)
	}
}

func TestFeedRenderRespectsActiveView(t *testing.T) {
	f := NewFeed(Pipeline{})
	f.SetPosts([]models.ProjectPost{{ID: "p1"}})
	f.SetProfiles([]models.Profile{{ID: "u1"}, {ID: "u2"}})

	if records := f.Render(); len(records) != 1 || records[0].Post == nil {
		t.Fatalf("projects view got %+v, want the post", records)
	}
	f.SetView(ViewPeople)
	if records := f.Render(); len(records) != 2 || records[0].Profile == nil {
		t.Fatalf("people view got %d records, want 2 profiles", len(records))
	}
}

func TestFeedLateFetchAppliedButNotShown(t *testing.T) {
	// A posts fetch that resolves after the user switched to the people tab
	// still lands in the cache; the render keeps showing the active view.
	f := NewFeed(Pipeline{})
	f.SetProfiles([]models.Profile{{ID: "u1"}})
	f.SetView(ViewPeople)
	f.BeginPostsLoad()
	f.SetPosts([]models.ProjectPost{{ID: "p1"}})

	records := f.Render()
	if len(records) != 1 || records[0].Profile == nil {
		t.Fatalf("got %+v, want the people view", records)
	}
	f.SetView(ViewProjects)
	records = f.Render()
	if len(records) != 1 || records[0].Post == nil || records[0].Post.ID != "p1" {
		t.Fatalf("got %+v, want the late-fetched post", records)
	}
}

func TestFeedFilterChangeRerunsPipeline(t *testing.T) {
	f := NewFeed(Pipeline{})
	f.SetPosts([]models.ProjectPost{
		{ID: "p1", Category: "Tech"},
		{ID: "p2", Category: "Design"},
	})
	f.SetCategories([]string{"Tech"})
	if records := f.Render(); len(records) != 1 || records[0].Post.ID != "p1" {
		t.Fatalf("got %+v, want only p1", records)
	}
	f.SetCategories(nil)
	if records := f.Render(); len(records) != 2 {
		t.Fatalf("got %d records, want the full feed back", len(records))
	}
}

func TestFeedSearchClearShowsFullFeed(t *testing.T) {
	f := NewFeed(Pipeline{})
	f.SetPosts([]models.ProjectPost{
		{ID: "p1", Category: "Tech"},
		{ID: "p2", Category: "Tech"},
		{ID: "p3", Title: "Brand studio", Category: "Design"},
	})
	f.SetCategories([]string{"Tech"})
	f.Search("brand")
	if records := f.Render(); len(records) != 1 || records[0].Post.ID != "p3" {
		t.Fatalf("search got %+v, want the Design post", records)
	}
	f.Search("")
	records := f.Render()
	if len(records) != 3 {
		t.Fatalf("after clearing the search got %d records, want the full feed of 3", len(records))
	}
	// Ticking a filter again brings the filters back.
	f.SetCategories([]string{"Tech"})
	if records := f.Render(); len(records) != 2 {
		t.Errorf("after re-ticking the category got %d records, want 2", len(records))
	}
}

func TestFeedOptimisticFavoritePatch(t *testing.T) {
	f := NewFeed(Pipeline{})
	viewer := &models.Profile{ID: "u1"}
	f.SetViewer(viewer, nil, nil)
	f.SetPosts([]models.ProjectPost{{ID: "p1"}})

	if records := f.Render(); records[0].IsFavorite {
		t.Fatalf("post should not start as a favorite")
	}
	f.SetFavorite(models.FavoriteKindProject, "p1", true)
	if records := f.Render(); !records[0].IsFavorite {
		t.Errorf("favorite patch not visible in render")
	}
	f.SetFavorite(models.FavoriteKindProject, "p1", false)
	if records := f.Render(); records[0].IsFavorite {
		t.Errorf("favorite removal not visible in render")
	}
}

func TestFeedViewerContext(t *testing.T) {
	f := NewFeed(Pipeline{})
	if f.ViewerContext() != nil {
		t.Fatalf("anonymous session should have no viewer context")
	}
	f.SetViewer(&models.Profile{ID: "u1"}, map[string]bool{"p1": true}, nil)
	viewer := f.ViewerContext()
	if viewer == nil || viewer.Profile.ID != "u1" {
		t.Fatalf("viewer context = %+v, want profile u1", viewer)
	}
	if !viewer.IsFavorite(models.FavoriteKindProject, "p1") {
		t.Errorf("IsFavorite(project, p1) = false, want true")
	}
	if viewer.IsFavorite(models.FavoriteKindUser, "p1") {
		t.Errorf("IsFavorite(user, p1) = true, want false")
	}
	// The returned maps are copies.
	viewer.FavoriteProjects["p2"] = true
	if f.ViewerContext().FavoriteProjects["p2"] {
		t.Errorf("mutating the returned map leaked into the session")
	}
}

func TestFeedRecommendationsAnonymousViewer(t *testing.T) {
	f := NewFeed(Pipeline{})
	f.SetPosts([]models.ProjectPost{{ID: "p1", Tags: []string{"Go"}}})
	records := f.Recommendations()
	if len(records) != 1 || !records[0].EmptyState {
		t.Errorf("anonymous recommendations got %+v, want the empty state", records)
	}
}

func TestFeedRecommendationsForViewer(t *testing.T) {
	f := NewFeed(Pipeline{})
	f.SetViewer(&models.Profile{ID: "u1", Skills: []string{"Go"}}, nil, nil)
	f.SetPosts([]models.ProjectPost{
		{ID: "p1", Tags: []string{"Go"}},
		{ID: "p2", Tags: []string{"Cobol"}},
	})
	records := f.Recommendations()
	if len(records) != 1 || records[0].Post == nil || records[0].Post.ID != "p1" {
		t.Fatalf("got %+v, want only the matching post", records)
	}
	if records[0].Badge == nil || records[0].Badge.Score != 1 {
		t.Errorf("badge = %+v, want score 1", records[0].Badge)
	}
}

func TestFeedSkillSuggestionsExcludeSelected(t *testing.T) {
	f := NewFeed(Pipeline{})
	f.SetProfiles([]models.Profile{
		{ID: "u1", Skills: []string{"Go", "Rust"}},
		{ID: "u2", Skills: []string{"go", "Sales"}},
	})
	f.AddSkill("Go")
	got := f.SkillSuggestions()
	want := []string{"Rust", "Sales"}
	if len(got) != len(want) {
		t.Fatalf("suggestions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion %d = %q, want %q", i, got[i], want[i])
		}
	}
}
