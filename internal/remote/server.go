package remote

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Path is where the websocket endpoint is mounted.
const Path = "/input"

// Server accepts websocket clients and applies their commands to a Target.
// Commands are handed to run, which must execute them one at a time on the
// goroutine that owns the target and return once done.
type Server struct {
	target   Target
	run      func(func())
	upgrader websocket.Upgrader

	peers map[*websocket.Conn]string
	mu    sync.RWMutex
}

func NewServer(target Target, run func(func())) *Server {
	return &Server{
		target: target,
		run:    run,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameOrigin,
		},
		peers: make(map[*websocket.Conn]string),
	}
}

// sameOrigin accepts clients that send no Origin, such as other devices on the
// LAN, and browser pages served by this host. Any other page is refused so it
// cannot drive the canvas through a local browser.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// Handler routes Path to the websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.serveWS)
	return mux
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		s.closePeers()
	}()
	log.Printf("[REMOTE] listening on %s", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Peers returns the number of connected clients.
func (s *Server) Peers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

func (s *Server) add(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	addr := conn.RemoteAddr().String()
	s.peers[conn] = addr
	log.Printf("[REMOTE] client connected from %s", addr)
}

func (s *Server) remove(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.Printf("[REMOTE] client %s disconnected", s.peers[conn])
	delete(s.peers, conn)
}

func (s *Server) closePeers() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for conn := range s.peers {
		conn.Close()
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[REMOTE] upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	s.add(conn)
	defer s.remove(conn)

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[REMOTE] read from %s: %v", conn.RemoteAddr(), err)
			}
			return
		}

		var (
			ok     bool
			runErr error
		)
		s.run(func() { ok, runErr = cmd.Apply(s.target) })

		reply := Reply{OK: ok}
		if runErr != nil {
			reply.Error = runErr.Error()
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("[REMOTE] write to %s: %v", conn.RemoteAddr(), err)
			return
		}
	}
}
