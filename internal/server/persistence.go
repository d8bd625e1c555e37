package server

import (
	"encoding/json"
	"log"
	"time"

	"word-wolf/internal/db"
	"word-wolf/internal/game"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// The archive is best-effort and write-through. Every helper is a no-op
// without a database connection, and a failed write is logged rather than
// surfaced: the in-memory room is the source of truth.

func (s *Server) persistRoomCreated(roomID string, cfg RoomConfig) {
	if s.db == nil {
		return
	}
	record := db.Room{
		RoomID:            roomID,
		Name:              cfg.Name,
		MaxPlayers:        cfg.MaxPlayers,
		WolfCount:         cfg.WolfCount,
		Category:          cfg.Category,
		DiscussionSeconds: cfg.DiscussionSeconds,
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		log.Printf("persist room failed room_id=%s error=%v", roomID, err)
		return
	}
	s.dbMu.Lock()
	s.dbIDs[roomID] = record.ID
	s.dbMu.Unlock()
	s.persistEvent(roomID, "room_created", EventPayload{RoomID: roomID})
}

func (s *Server) persistPlayerJoined(roomID, playerID, name string) {
	if s.db == nil {
		return
	}
	dbID, ok := s.roomDBID(roomID)
	if !ok {
		return
	}
	record := db.Player{
		RoomID:   dbID,
		PlayerID: playerID,
		Name:     name,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		log.Printf("persist player failed room_id=%s player_id=%s error=%v", roomID, playerID, err)
		return
	}
	s.persistEvent(roomID, "player_joined", EventPayload{RoomID: roomID, PlayerID: playerID, PlayerName: name})
}

func (s *Server) persistEvent(roomID, eventType string, payload EventPayload) {
	if s.db == nil {
		return
	}
	dbID, ok := s.roomDBID(roomID)
	if !ok {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	record := db.Event{
		RoomID:  dbID,
		Type:    eventType,
		Payload: datatypes.JSON(data),
	}
	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("persist event failed room_id=%s type=%s error=%v", roomID, eventType, err)
	}
}

func (s *Server) persistOutcome(roomID string, result game.Result) {
	if s.db == nil {
		return
	}
	dbID, ok := s.roomDBID(roomID)
	if !ok {
		return
	}
	wolves, err := json.Marshal(result.WolfIDs)
	if err != nil {
		return
	}
	record := db.Outcome{
		RoomID:       dbID,
		Winner:       string(result.Winner),
		EliminatedID: result.Eliminated,
		Tie:          result.Tie,
		WolfIDs:      datatypes.JSON(wolves),
	}
	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("persist outcome failed room_id=%s error=%v", roomID, err)
		return
	}
	s.persistEvent(roomID, "game_finished", EventPayload{
		RoomID: roomID,
		Winner: string(result.Winner),
		Tie:    result.Tie,
	})
}

func (s *Server) roomDBID(roomID string) (uint, bool) {
	s.dbMu.Lock()
	defer s.dbMu.Unlock()
	id, ok := s.dbIDs[roomID]
	return id, ok
}

// forgetRoomDBID drops the cached archive id once a room is gone, after
// any final events for it were written.
func (s *Server) forgetRoomDBID(roomID string) {
	s.dbMu.Lock()
	delete(s.dbIDs, roomID)
	s.dbMu.Unlock()
}
