package controllers

import (
	"encoding/json"
	"net/http"

	"cofound_server/services"

	"github.com/gorilla/mux"
)

// SessionController opens and closes feed sessions. The userId, when
// present, comes from the auth layer in front of this server and is taken
// at face value here.
type SessionController struct {
	FeedService *services.FeedService
}

// NewSessionController creates a new SessionController instance
func NewSessionController(feedService *services.FeedService) *SessionController {
	return &SessionController{FeedService: feedService}
}

// CreateSession handles opening a feed session, anonymous or signed-in.
func (sc *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if r.Body != nil {
		// An empty body is fine: that is an anonymous session.
		_ = json.NewDecoder(r.Body).Decode(&request)
	}

	sessionID, feed, err := sc.FeedService.CreateSession(r.Context(), request.UserID)
	if err != nil {
		http.Error(w, "Failed to create session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sessionId": sessionID,
		"viewer":    feed.ViewerContext(),
	})
}

// DeleteSession handles discarding a feed session.
func (sc *SessionController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}
	sc.FeedService.DropSession(sessionID)
	w.WriteHeader(http.StatusNoContent)
}
