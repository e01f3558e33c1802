package routes

import (
	"cofound_server/controllers"
	"cofound_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterFavoriteRoutes sets up routes for favorites under /api/favorites
func RegisterFavoriteRoutes(r *mux.Router, favoriteService *services.FavoriteService, feedService *services.FeedService, socketServer *socketio.Server) {
	controller := controllers.NewFavoriteController(favoriteService, feedService, socketServer)

	favoriteRouter := r.PathPrefix("/api/favorites").Subrouter()
	favoriteRouter.HandleFunc("/toggle", controller.Toggle).Methods("POST")
	favoriteRouter.HandleFunc("/{userId}/posts", controller.GetFavoritePosts).Methods("GET")
	favoriteRouter.HandleFunc("/{userId}/profiles", controller.GetFavoriteProfiles).Methods("GET")
}
