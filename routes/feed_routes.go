package routes

import (
	"cofound_server/controllers"
	"cofound_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up routes for the rendered feed and its filter
// controls under /api/feed. All of them read the session from X-Session-ID.
func RegisterFeedRoutes(r *mux.Router, feedService *services.FeedService) {
	controller := controllers.NewFeedController(feedService)

	feedRouter := r.PathPrefix("/api/feed").Subrouter()
	feedRouter.HandleFunc("", controller.GetFeed).Methods("GET")
	feedRouter.HandleFunc("/recommended", controller.GetRecommended).Methods("GET")
	feedRouter.HandleFunc("/skills", controller.GetSkillSuggestions).Methods("GET")
	feedRouter.HandleFunc("/view", controller.SetView).Methods("PUT")
	feedRouter.HandleFunc("/categories", controller.SetCategories).Methods("PUT")
	feedRouter.HandleFunc("/role", controller.SetRole).Methods("PUT")
	feedRouter.HandleFunc("/skills", controller.AddSkill).Methods("POST")
	feedRouter.HandleFunc("/skills", controller.RemoveSkill).Methods("DELETE")
	feedRouter.HandleFunc("/search", controller.Search).Methods("PUT")
}
