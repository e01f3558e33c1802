package socket

import (
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"
)

// Room and event names shared with the front end. The feed room gets
// collection-change notifications; conversation rooms get new messages.
const (
	FeedRoom = "feed"

	EventPostsChanged     = "postsChanged"
	EventProfilesChanged  = "profilesChanged"
	EventFavoritesChanged = "favoritesChanged"
	EventNewMessage       = "newMessage"
)

// NewServer initializes the realtime hub. Clients join the feed room for
// change notifications and a conversation room per open chat.
func NewServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(conn socketio.Conn) error {
		log.Debug().Str("socket", conn.ID()).Msg("socket connected")
		return nil
	})

	server.OnEvent("/", "join", func(conn socketio.Conn, room string) {
		if room == "" {
			log.Warn().Str("socket", conn.ID()).Msg("join request without a room")
			return
		}
		conn.Join(room)
	})

	server.OnEvent("/", "leave", func(conn socketio.Conn, room string) {
		if room != "" {
			conn.Leave(room)
		}
	})

	server.OnError("/", func(conn socketio.Conn, err error) {
		log.Error().Err(err).Msg("socket error")
	})

	server.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		log.Debug().Str("socket", conn.ID()).Str("reason", reason).Msg("socket disconnected")
	})

	return server
}

// Broadcast sends an event to one room.
func Broadcast(server *socketio.Server, room, event string, payload interface{}) {
	if server == nil {
		return
	}
	server.BroadcastToRoom("/", room, event, payload)
}
