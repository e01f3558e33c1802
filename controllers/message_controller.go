package controllers

import (
	"encoding/json"
	"net/http"

	"cofound_server/services"
	"cofound_server/socket"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// MessageController handles HTTP requests for direct messages.
type MessageController struct {
	MessageService *services.MessageService
	Socket         *socketio.Server
}

// NewMessageController creates a new MessageController instance
func NewMessageController(messageService *services.MessageService, socketServer *socketio.Server) *MessageController {
	return &MessageController{MessageService: messageService, Socket: socketServer}
}

// SendMessage handles posting a new message. The conversation room gets the
// message pushed so an open thread updates without polling.
func (mc *MessageController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FromID    string `json:"fromId"`
		ToID      string `json:"toId"`
		Subject   string `json:"subject"`
		Content   string `json:"content"`
		PostTitle string `json:"postTitle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := mc.MessageService.Send(r.Context(), request.FromID, request.ToID, request.Subject, request.Content, request.PostTitle)
	if err != nil {
		http.Error(w, "Failed to send message: "+err.Error(), http.StatusBadRequest)
		return
	}

	socket.Broadcast(mc.Socket, msg.ConversationID, socket.EventNewMessage, msg)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}

// GetConversation handles fetching the full thread between two members.
func (mc *MessageController) GetConversation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messages, err := mc.MessageService.Conversation(r.Context(), vars["userId"], vars["otherId"])
	if err != nil {
		http.Error(w, "Failed to fetch conversation: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"messages": messages,
	})
}

// MarkRead handles marking a thread read for the viewing member.
func (mc *MessageController) MarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := mc.MessageService.MarkConversationRead(r.Context(), vars["userId"], vars["otherId"]); err != nil {
		http.Error(w, "Failed to mark conversation read: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetInbox handles listing every message the member sent or received.
func (mc *MessageController) GetInbox(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	messages, err := mc.MessageService.Inbox(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch inbox: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"messages": messages,
	})
}

// GetUnreadCount handles the navbar badge count.
func (mc *MessageController) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	count := mc.MessageService.UnreadCount(r.Context(), userID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"unread": count,
	})
}
