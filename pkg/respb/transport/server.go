package transport

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/yourusername/respb/pkg/respb/protocol"
	"github.com/yourusername/respb/pkg/respb/transport/socket"
)

// Handler processes one accepted RESPB connection. Implementations
// typically loop on ReceiveOne and hand each ParsedCommand to a consumer
// (the bench harness, a test, or a real executor outside this repo's
// scope).
type Handler func(*Conn)

// Server upgrades incoming HTTP connections to WebSocket and hands each
// one to Handler as a *Conn, mirroring shockwave's own websocket server
// wiring (an http.Handler that performs the upgrade, then dispatches to a
// connection-level callback) but framed for RESPB instead of RFC 6455
// text/binary application messages.
type Server struct {
	Handler     Handler
	ReaderOpts  protocol.ReaderOptions
	SocketConfig socket.Config
	Log         *slog.Logger

	upgrader websocket.Upgrader
}

// NewServer constructs a Server with sensible socket tuning defaults for
// long-lived multiplexed connections and a permissive origin check,
// suitable for the benchmark harness's own loopback use rather than a
// public deployment.
func NewServer(h Handler) *Server {
	return &Server{
		Handler:      h,
		SocketConfig: socket.DefaultConfig(),
		Log:          slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP implements http.Handler, upgrading the connection and handing
// it off to Server.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Log.Warn("transport: upgrade failed", "error", err)
		return
	}

	if tcpConn, ok := ws.UnderlyingConn().(net.Conn); ok {
		if err := socket.Apply(tcpConn, s.SocketConfig); err != nil {
			s.Log.Warn("transport: socket tuning failed", "error", err)
		}
	}

	conn := NewConn(ws, s.ReaderOpts)
	defer conn.Close()

	if s.Handler != nil {
		s.Handler(conn)
	}
}
