// Package server exposes the branch graph over HTTP and pushes live
// updates to websocket clients whenever the repository changes.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bjulian5/braid/internal/braid"
)

// MessageType tags websocket payloads so frontends can route them.
type MessageType string

const (
	// MessageGraph carries a full model.BranchGraph snapshot.
	MessageGraph MessageType = "graph"
)

// UpdateMessage is the envelope for every websocket push.
type UpdateMessage struct {
	Type MessageType `json:"type"`
	Data any         `json:"data"`
}

// Server watches a repository and serves its branch graph. HTTP handlers
// answer on demand; websocket clients receive a push whenever the graph
// actually changes.
type Server struct {
	client *braid.Client
	addr   string

	upgrader websocket.Upgrader

	// mu guards last, the most recent graph payload sent to clients.
	mu   sync.RWMutex
	last []byte

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]bool

	broadcast chan []byte
}

// New creates a server for client, listening on addr.
func New(client *braid.Client, addr string) *Server {
	return &Server{
		client: client,
		addr:   addr,
		upgrader: websocket.Upgrader{
			// The server binds to loopback by default; an origin check
			// would only reject local file:// frontends.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 16),
	}
}

// Run serves until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.routes(),
	}

	go s.broadcastLoop(ctx)
	go s.pollLoop(ctx)
	go s.watchLoop(ctx)

	// Prime the snapshot so the first websocket client does not wait
	// for a poll tick.
	go s.refresh(false)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Printf("braid serving on http://%s", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("failed to serve: %w", err)
	}
}

// refresh rebuilds the graph and broadcasts it if it differs from the
// last payload clients saw. Safe to call from any goroutine.
func (s *Server) refresh(force bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered while refreshing graph: %v", r)
		}
	}()

	g, err := s.client.BuildBranchGraph(force)
	if err != nil {
		log.Printf("failed to refresh graph: %v", err)
		return
	}

	payload, err := json.Marshal(UpdateMessage{Type: MessageGraph, Data: g})
	if err != nil {
		log.Printf("failed to encode graph update: %v", err)
		return
	}

	s.mu.Lock()
	changed := !bytes.Equal(s.last, payload)
	if changed {
		s.last = payload
	}
	s.mu.Unlock()
	if !changed {
		return
	}

	select {
	case s.broadcast <- payload:
	default:
		log.Println("broadcast queue full, dropping graph update")
	}
}

// broadcastLoop fans queued payloads out to every connected client.
func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload := <-s.broadcast:
			s.clientsMu.Lock()
			conns := make([]*websocket.Conn, 0, len(s.clients))
			for conn := range s.clients {
				conns = append(conns, conn)
			}
			s.clientsMu.Unlock()

			for _, conn := range conns {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					s.drop(conn)
				}
			}
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.clientsMu.Lock()
	_, ok := s.clients[conn]
	if ok {
		delete(s.clients, conn)
	}
	n := len(s.clients)
	s.clientsMu.Unlock()

	if ok {
		conn.Close()
		log.Printf("websocket client disconnected (%d active)", n)
	}
}
