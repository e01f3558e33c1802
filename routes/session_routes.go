package routes

import (
	"cofound_server/controllers"
	"cofound_server/services"

	"github.com/gorilla/mux"
)

// RegisterSessionRoutes sets up routes for feed session lifecycle under /api/session
func RegisterSessionRoutes(r *mux.Router, feedService *services.FeedService) {
	controller := controllers.NewSessionController(feedService)

	sessionRouter := r.PathPrefix("/api/session").Subrouter()
	sessionRouter.HandleFunc("", controller.CreateSession).Methods("POST")
	sessionRouter.HandleFunc("/{id}", controller.DeleteSession).Methods("DELETE")
}
