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

// PostController handles HTTP requests for project posts.
type PostController struct {
	PostService *services.PostService
	FeedService *services.FeedService
	Socket      *socketio.Server
}

// NewPostController creates a new PostController instance
func NewPostController(postService *services.PostService, feedService *services.FeedService, socketServer *socketio.Server) *PostController {
	return &PostController{PostService: postService, FeedService: feedService, Socket: socketServer}
}

// notifyPostsChanged refreshes every feed session and tells connected
// clients the post collection moved.
func (pc *PostController) notifyPostsChanged(r *http.Request) {
	pc.FeedService.RefreshPosts(r.Context())
	socket.Broadcast(pc.Socket, socket.FeedRoom, socket.EventPostsChanged, nil)
}

// GetPosts handles listing all posts, or one member's posts with ?userId=.
func (pc *PostController) GetPosts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	var posts []models.ProjectPost
	if userID != "" {
		posts = pc.PostService.GetPostsByUser(r.Context(), userID)
	} else {
		posts = pc.PostService.FetchAllPosts(r.Context())
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"posts": posts,
	})
}

// GetPost handles fetching a single post by id.
func (pc *PostController) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	post, err := pc.PostService.GetPostByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(post)
}

// CreatePost handles publishing a new post.
func (pc *PostController) CreatePost(w http.ResponseWriter, r *http.Request) {
	var post models.ProjectPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := pc.PostService.AddPost(r.Context(), post)
	if err != nil {
		http.Error(w, "Failed to create post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	pc.notifyPostsChanged(r)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// UpdatePost handles editing an existing post. The body's userId must match
// the post's owner.
func (pc *PostController) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var post models.ProjectPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	post.ID = mux.Vars(r)["id"]
	updated, err := pc.PostService.UpdatePost(r.Context(), post)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotPostOwner):
			http.Error(w, "post does not belong to this user", http.StatusForbidden)
		case errors.Is(err, services.ErrItemNotFound):
			http.Error(w, "post not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	pc.notifyPostsChanged(r)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// DeletePost handles removing a post.
func (pc *PostController) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	if err := pc.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotPostOwner):
			http.Error(w, "post does not belong to this user", http.StatusForbidden)
		case errors.Is(err, services.ErrItemNotFound):
			http.Error(w, "post not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	pc.notifyPostsChanged(r)
	w.WriteHeader(http.StatusNoContent)
}
