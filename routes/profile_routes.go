package routes

import (
	"cofound_server/controllers"
	"cofound_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for member profile operations under /api/profiles
func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService, feedService *services.FeedService, socketServer *socketio.Server) {
	controller := controllers.NewProfileController(profileService, feedService, socketServer)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.GetProfiles).Methods("GET")
	profileRouter.HandleFunc("/{id}", controller.GetProfile).Methods("GET")
	profileRouter.HandleFunc("/{id}", controller.UpdateProfile).Methods("PUT")
	profileRouter.HandleFunc("/{id}", controller.DeleteAccount).Methods("DELETE")
}
