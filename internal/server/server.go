package server

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"word-wolf/internal/config"
	"word-wolf/internal/theme"

	"gorm.io/gorm"
)

type Server struct {
	registry *Registry
	db       *gorm.DB
	cfg      config.Config
	themes   theme.Source

	dbMu  sync.Mutex
	dbIDs map[string]uint
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		registry: NewRegistry(),
		db:       conn,
		cfg:      cfg,
		themes:   theme.NewCatalog(rand.New(rand.NewSource(time.Now().UnixNano()))),
		dbIDs:    make(map[string]uint),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /rooms/{id}", s.handleRoomView)

	mux.HandleFunc("POST /api/rooms", s.handleCreateRoom)
	mux.HandleFunc("GET /api/rooms", s.handleListRooms)
	mux.HandleFunc("GET /api/rooms/{id}", s.handleGetRoom)
	mux.HandleFunc("DELETE /api/rooms/{id}", s.handleDeleteRoom)
	mux.HandleFunc("POST /api/rooms/{id}/join", s.handleJoin)
	mux.HandleFunc("POST /api/rooms/{id}/leave", s.handleLeave)
	mux.HandleFunc("POST /api/rooms/{id}/ready", s.handleReady)
	mux.HandleFunc("POST /api/rooms/{id}/confirm", s.handleConfirmTheme)
	mux.HandleFunc("POST /api/rooms/{id}/start-vote", s.handleStartVote)
	mux.HandleFunc("POST /api/rooms/{id}/vote", s.handleVote)
	mux.HandleFunc("POST /api/rooms/{id}/chat", s.handleChat)
	mux.HandleFunc("POST /api/rooms/{id}/restart", s.handleRestart)
	mux.HandleFunc("GET /api/rooms/{id}/timer", s.handleTimer)
	mux.HandleFunc("GET /api/rooms/{id}/players/{player_id}/theme", s.handlePlayerTheme)

	mux.HandleFunc("GET /api/rooms/{id}/events", s.handleEvents)
	mux.HandleFunc("GET /ws/rooms/{id}", s.handleWebsocket)

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}

// updateRoom runs a mutation under the room's exclusive access and, when
// it succeeds, pushes a fresh snapshot to every subscriber before the
// access window closes. Publishing inside the window is what makes the
// stream order match the mutation order.
func (s *Server) updateRoom(id string, fn func(*Room) error) error {
	return s.registry.WithRoom(id, func(room *Room) error {
		if err := fn(room); err != nil {
			return err
		}
		room.PublishState()
		return nil
	})
}
