package routes

import (
	"cofound_server/controllers"
	"cofound_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterMessageRoutes sets up routes for direct messages under /api/messages
func RegisterMessageRoutes(r *mux.Router, messageService *services.MessageService, socketServer *socketio.Server) {
	controller := controllers.NewMessageController(messageService, socketServer)

	messageRouter := r.PathPrefix("/api/messages").Subrouter()
	messageRouter.HandleFunc("", controller.SendMessage).Methods("POST")
	messageRouter.HandleFunc("/inbox/{userId}", controller.GetInbox).Methods("GET")
	messageRouter.HandleFunc("/unread/{userId}", controller.GetUnreadCount).Methods("GET")
	messageRouter.HandleFunc("/{userId}/{otherId}", controller.GetConversation).Methods("GET")
	messageRouter.HandleFunc("/{userId}/{otherId}/read", controller.MarkRead).Methods("PUT")
}
