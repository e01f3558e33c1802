package controllers

import (
	"encoding/json"
	"net/http"

	"cofound_server/match"
	"cofound_server/services"
)

// SessionHeader carries the feed session id on every feed request.
const SessionHeader = "X-Session-ID"

// FeedController serves the rendered feed and applies the filter/search
// mutations the front end's controls emit. Every mutation responds with the
// freshly rendered records for the active view, so the client never has to
// patch its own list.
type FeedController struct {
	FeedService *services.FeedService
}

// NewFeedController creates a new FeedController instance
func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{FeedService: feedService}
}

func (fc *FeedController) session(w http.ResponseWriter, r *http.Request) *match.Feed {
	feed, err := fc.FeedService.Session(r.Header.Get(SessionHeader))
	if err != nil {
		http.Error(w, "unknown feed session", http.StatusUnauthorized)
		return nil
	}
	return feed
}

func writeRecords(w http.ResponseWriter, records []match.Record) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"records": records,
	})
}

// GetFeed handles rendering the active view with the current criteria.
func (fc *FeedController) GetFeed(w http.ResponseWriter, r *http.Request) {
	feed := fc.session(w, r)
	if feed == nil {
		return
	}
	writeRecords(w, feed.Render())
}

// GetRecommended handles rendering the top-5 recommendation list for the
// active view.
func (fc *FeedController) GetRecommended(w http.ResponseWriter, r *http.Request) {
	feed := fc.session(w, r)
	if feed == nil {
		return
	}
	writeRecords(w, feed.Recommendations())
}

// GetSkillSuggestions handles listing the available skill pills.
func (fc *FeedController) GetSkillSuggestions(w http.ResponseWriter, r *http.Request) {
	feed := fc.session(w, r)
	if feed == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"selected":  feed.SelectedSkills(),
		"available": feed.SkillSuggestions(),
	})
}

// SetView handles a tab switch.
func (fc *FeedController) SetView(w http.ResponseWriter, r *http.Request) {
	feed := fc.session(w, r)
	if feed == nil {
		return
	}
	var request struct {
		View string `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	feed.SetView(match.View(request.View))
	writeRecords(w, feed.Render())
}

// SetCategories handles the category checkbox group.
func (fc *FeedController) SetCategories(w http.ResponseWriter, r *http.Request) {
	feed := fc.session(w, r)
	if feed == nil {
		return
	}
	var request struct {
		Categories []string `json:"categories"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	feed.SetCategories(request.Categories)
	writeRecords(w, feed.Render())
}

// SetRole handles the role radio group.
func (fc *FeedController) SetRole(w http.ResponseWriter, r *http.Request) {
	feed := fc.session(w, r)
	if feed == nil {
		return
	}
	var request struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	feed.SetRole(request.Role)
	writeRecords(w, feed.Render())
}

// AddSkill handles clicking an available skill pill.
func (fc *FeedController) AddSkill(w http.ResponseWriter, r *http.Request) {
	feed := fc.session(w, r)
	if feed == nil {
		return
	}
	var request struct {
		Skill string `json:"skill"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Skill == "" {
		http.Error(w, "skill is required", http.StatusBadRequest)
		return
	}
	feed.AddSkill(request.Skill)
	writeRecords(w, feed.Render())
}

// RemoveSkill handles clicking an active skill pill.
func (fc *FeedController) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	feed := fc.session(w, r)
	if feed == nil {
		return
	}
	var request struct {
		Skill string `json:"skill"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Skill == "" {
		http.Error(w, "skill is required", http.StatusBadRequest)
		return
	}
	feed.RemoveSkill(request.Skill)
	writeRecords(w, feed.Render())
}

// Search handles free-text search input.
func (fc *FeedController) Search(w http.ResponseWriter, r *http.Request) {
	feed := fc.session(w, r)
	if feed == nil {
		return
	}
	var request struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	feed.Search(request.Term)
	writeRecords(w, feed.Render())
}
