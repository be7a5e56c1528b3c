package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/WarubiSports/scout-backend/pkg/logger"
	"github.com/WarubiSports/scout-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
)

var SocketServer *socketio.Server

// Presence tracking
var (
	onlineScouts   = make(map[string]string) // scoutId -> socketId
	onlineScoutsMu sync.RWMutex
)

// IsScoutOnline checks if a scout has a live session
func IsScoutOnline(scoutID string) bool {
	onlineScoutsMu.RLock()
	defer onlineScoutsMu.RUnlock()
	_, exists := onlineScouts[scoutID]
	return exists
}

// SendNotificationToScout pushes a real-time notification to a specific scout
func SendNotificationToScout(scoutID string, notification map[string]interface{}) {
	if SocketServer != nil {
		SocketServer.BroadcastToRoom("/", scoutID, "notification", notification)
	}
}

func InitSocketServer() *socketio.Server {
	server := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&websocket.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
			&polling.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
		},
	})

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		url := s.URL()

		token := url.Query().Get("token")
		if token == "" {
			token = url.Query().Get("auth_token") // Fallback
		}

		if token == "" {
			logger.Warn().Str("socket", s.ID()).Msg("Socket connection rejected: no token")
			return fmt.Errorf("authentication required")
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			logger.Warn().Str("socket", s.ID()).Msg("Socket connection rejected: invalid token")
			return fmt.Errorf("invalid token")
		}

		scoutID := claims.ScoutID
		s.SetContext(scoutID)

		onlineScoutsMu.Lock()
		onlineScouts[scoutID] = s.ID()
		onlineScoutsMu.Unlock()

		// Personal room for notification pushes
		s.Join(scoutID)

		logger.Info().Str("socket", s.ID()).Str("scout", scoutID).Msg("Socket authenticated")
		return nil
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		onlineScoutsMu.Lock()
		for scoutID, socketID := range onlineScouts {
			if socketID == s.ID() {
				delete(onlineScouts, scoutID)
				break
			}
		}
		onlineScoutsMu.Unlock()
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logger.Warn().Err(e).Msg("Socket error")
	})

	go server.Serve()
	SocketServer = server
	return server
}

// SocketHandler wraps the socket.io server for Gin
func SocketHandler(server *socketio.Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		server.ServeHTTP(c.Writer, c.Request)
	}
}
