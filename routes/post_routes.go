package routes

import (
	"cofound_server/controllers"
	"cofound_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterPostRoutes sets up routes for project post operations under /api/posts
func RegisterPostRoutes(r *mux.Router, postService *services.PostService, feedService *services.FeedService, socketServer *socketio.Server) {
	controller := controllers.NewPostController(postService, feedService, socketServer)

	postRouter := r.PathPrefix("/api/posts").Subrouter()
	postRouter.HandleFunc("", controller.GetPosts).Methods("GET")
	postRouter.HandleFunc("", controller.CreatePost).Methods("POST")
	postRouter.HandleFunc("/{id}", controller.GetPost).Methods("GET")
	postRouter.HandleFunc("/{id}", controller.UpdatePost).Methods("PUT")
	postRouter.HandleFunc("/{id}", controller.DeletePost).Methods("DELETE")
}
