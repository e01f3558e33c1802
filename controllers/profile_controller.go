package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"cofound_server/models"
	"cofound_server/services"
	"cofound_server/socket"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// ProfileController handles HTTP requests for member profiles.
type ProfileController struct {
	ProfileService *services.ProfileService
	FeedService    *services.FeedService
	Socket         *socketio.Server
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService *services.ProfileService, feedService *services.FeedService, socketServer *socketio.Server) *ProfileController {
	return &ProfileController{ProfileService: profileService, FeedService: feedService, Socket: socketServer}
}

func (pc *ProfileController) notifyProfilesChanged(r *http.Request) {
	pc.FeedService.RefreshProfiles(r.Context())
	socket.Broadcast(pc.Socket, socket.FeedRoom, socket.EventProfilesChanged, nil)
}

// GetProfiles handles listing all public profiles.
func (pc *ProfileController) GetProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := pc.ProfileService.FetchAllProfiles(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"profiles": profiles,
	})
}

// GetProfile handles fetching one profile by user id.
func (pc *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	profile, err := pc.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpdateProfile handles saving the member's edited profile.
func (pc *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	profile.ID = mux.Vars(r)["id"]
	if err := pc.ProfileService.UpdateProfile(r.Context(), profile); err != nil {
		http.Error(w, "Failed to update profile: "+err.Error(), http.StatusInternalServerError)
		return
	}
	pc.notifyProfilesChanged(r)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// DeleteAccount handles removing a member and everything they own.
func (pc *ProfileController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	if err := pc.ProfileService.DeleteAccount(r.Context(), userID); err != nil {
		http.Error(w, "Failed to delete account: "+err.Error(), http.StatusInternalServerError)
		return
	}
	pc.FeedService.Refresh(r.Context())
	socket.Broadcast(pc.Socket, socket.FeedRoom, socket.EventProfilesChanged, nil)
	socket.Broadcast(pc.Socket, socket.FeedRoom, socket.EventPostsChanged, nil)
	w.WriteHeader(http.StatusNoContent)
}
