package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// handleEvents streams a room's events as Server-Sent Events. The first
// event is the current snapshot so a late joiner can render immediately;
// after that the client sees every successful mutation in order. The
// stream ends only when the client disconnects or the room is deleted.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal", "streaming unsupported")
		return
	}

	var sub *subscriber
	var initial []byte
	err := s.registry.WithRoom(roomID, func(room *Room) error {
		sub = room.Subscribe(s.cfg.SubscriberBuffer)
		data, err := json.Marshal(map[string]any{
			"type": "state",
			"room": snapshot(room),
		})
		if err != nil {
			return err
		}
		initial = data
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	defer func() {
		// Ignore RoomNotFound: room deletion already closed the channel.
		_ = s.registry.WithRoom(roomID, func(room *Room) error {
			room.Unsubscribe(sub)
			return nil
		})
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "data: %s\n\n", initial)
	flusher.Flush()
	log.Printf("sse connected room_id=%s remote=%s", roomID, r.RemoteAddr)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			log.Printf("sse disconnected room_id=%s remote=%s", roomID, r.RemoteAddr)
			return
		case data, open := <-sub.ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}
