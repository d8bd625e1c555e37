package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// handleWebsocket serves the same one-way snapshot stream over a
// websocket for clients that cannot hold an SSE connection. Inbound
// messages are ignored; the read loop exists only to notice disconnects.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
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

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		_ = s.registry.WithRoom(roomID, func(room *Room) error {
			room.Unsubscribe(sub)
			return nil
		})
		return
	}
	log.Printf("ws connected room_id=%s remote=%s", roomID, r.RemoteAddr)

	go s.writeWS(conn, initial, sub)
	s.readWS(roomID, conn, sub)
}

func (s *Server) writeWS(conn *websocket.Conn, initial []byte, sub *subscriber) {
	defer conn.Close()
	if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
		return
	}
	for data := range sub.ch {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (s *Server) readWS(roomID string, conn *websocket.Conn, sub *subscriber) {
	defer func() {
		_ = conn.Close()
		_ = s.registry.WithRoom(roomID, func(room *Room) error {
			room.Unsubscribe(sub)
			return nil
		})
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("ws disconnected room_id=%s error=%v", roomID, err)
			return
		}
	}
}
