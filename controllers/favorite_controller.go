package controllers

import (
	"encoding/json"
	"net/http"

	"cofound_server/models"
	"cofound_server/services"
	"cofound_server/socket"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// FavoriteController handles HTTP requests for saved posts and members.
type FavoriteController struct {
	FavoriteService *services.FavoriteService
	FeedService     *services.FeedService
	Socket          *socketio.Server
}

// NewFavoriteController creates a new FavoriteController instance
func NewFavoriteController(favoriteService *services.FavoriteService, feedService *services.FeedService, socketServer *socketio.Server) *FavoriteController {
	return &FavoriteController{FavoriteService: favoriteService, FeedService: feedService, Socket: socketServer}
}

// Toggle handles flipping one favorite. Feed sessions for the same viewer
// are patched in place so the next render shows the new state without a
// round trip to the backend.
func (fc *FavoriteController) Toggle(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Kind   string `json:"kind"`
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.ItemID == "" {
		http.Error(w, "userId and itemId are required", http.StatusBadRequest)
		return
	}
	if request.Kind != models.FavoriteKindProject && request.Kind != models.FavoriteKindUser {
		http.Error(w, "kind must be project or user", http.StatusBadRequest)
		return
	}

	favorite, err := fc.FavoriteService.Toggle(r.Context(), request.UserID, request.Kind, request.ItemID)
	if err != nil {
		http.Error(w, "Failed to toggle favorite: "+err.Error(), http.StatusInternalServerError)
		return
	}

	fc.FeedService.SetSessionFavorite(request.UserID, request.Kind, request.ItemID, favorite)
	socket.Broadcast(fc.Socket, socket.FeedRoom, socket.EventFavoritesChanged, map[string]interface{}{
		"userId": request.UserID,
		"kind":   request.Kind,
		"itemId": request.ItemID,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"favorite": favorite,
	})
}

// GetFavoritePosts handles listing the member's saved posts.
func (fc *FavoriteController) GetFavoritePosts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	posts := fc.FeedService.FavoritePosts(r.Context(), userID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"posts": posts,
	})
}

// GetFavoriteProfiles handles listing the member's saved profiles.
func (fc *FavoriteController) GetFavoriteProfiles(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	profiles := fc.FeedService.FavoriteProfiles(r.Context(), userID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"profiles": profiles,
	})
}
