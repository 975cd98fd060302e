package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/graph", s.handleGraph)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/branches", s.handleBranches)
	mux.HandleFunc("/api/ledger", s.handleLedger)
	mux.HandleFunc("/api/ws", s.handleWS)
	return mux
}

// handleGraph serves the current branch graph. ?refresh=1 bypasses the
// cache. A failed build degrades to an empty graph so frontends keep a
// consistent shape.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "1"

	g, err := s.client.BuildBranchGraph(force)
	if err != nil {
		log.Printf("failed to build graph: %v", err)
		g = s.client.EmptyGraph()
	}
	writeJSON(w, g)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.client.Status()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, status)
}

func (s *Server) handleBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := s.client.Branches()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, branches)
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	entries, err := s.client.LedgerEntries()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries)
}

// handleWS upgrades the connection, sends the latest snapshot, then
// parks until the peer goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	// Send the snapshot before registering. The connection supports a
	// single concurrent writer, so it must not be visible to the
	// broadcast loop until this write finishes.
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()
	if len(last) > 0 {
		if err := conn.WriteMessage(websocket.TextMessage, last); err != nil {
			conn.Close()
			return
		}
	}

	s.clientsMu.Lock()
	s.clients[conn] = true
	n := len(s.clients)
	s.clientsMu.Unlock()
	log.Printf("websocket client connected (%d active)", n)

	// Clients never send application messages; the read loop exists to
	// notice disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.drop(conn)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
