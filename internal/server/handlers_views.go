package server

import (
	"errors"
	"log"
	"net/http"

	"word-wolf/internal/web"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	summaries := s.registry.ListRooms()
	rooms := make([]web.RoomSummary, 0, len(summaries))
	for _, summary := range summaries {
		rooms = append(rooms, web.RoomSummary{
			ID:          summary.ID,
			Name:        summary.Name,
			PlayerCount: summary.PlayerCount,
			MaxPlayers:  summary.MaxPlayers,
			Phase:       summary.Phase,
		})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Home(rooms).Render(r.Context(), w); err != nil {
		log.Printf("render home failed error=%v", err)
	}
}

func (s *Server) handleRoomView(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	var name string
	err := s.registry.WithRoom(roomID, func(room *Room) error {
		name = room.Config.Name
		return nil
	})
	if errors.Is(err, ErrRoomNotFound) {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.RoomPage(roomID, name).Render(r.Context(), w); err != nil {
		log.Printf("render room failed room_id=%s error=%v", roomID, err)
	}
}
