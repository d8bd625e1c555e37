package server

import (
	"log"
	"net/http"
	"time"

	"word-wolf/internal/game"

	"github.com/google/uuid"
)

type createRoomRequest struct {
	RoomID            string `json:"room_id"`
	Name              string `json:"name"`
	MaxPlayers        int    `json:"max_players"`
	WolfCount         int    `json:"wolf_count"`
	Category          string `json:"category"`
	DiscussionSeconds int    `json:"discussion_seconds"`
}

type joinRequest struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type playerRequest struct {
	PlayerID string `json:"player_id"`
}

type voteRequest struct {
	PlayerID string `json:"player_id"`
	TargetID string `json:"target_id"`
}

type chatRequest struct {
	PlayerID string `json:"player_id"`
	Message  string `json:"message"`
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	roomID := req.RoomID
	if roomID == "" {
		roomID = uuid.NewString()[:8]
	}
	roomID, err := validateRoomID(roomID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	category := req.Category
	if category == "" {
		category = "food"
	}
	// Fail fast on categories the theme source cannot serve.
	if _, err := s.themes.Pick(category); err != nil {
		writeDomainError(w, err)
		return
	}
	discussion := req.DiscussionSeconds
	if discussion <= 0 {
		discussion = s.cfg.DefaultDiscussionSeconds
	}
	cfg := RoomConfig{
		Name:              normalizeText(req.Name),
		MaxPlayers:        req.MaxPlayers,
		WolfCount:         req.WolfCount,
		Category:          category,
		DiscussionSeconds: discussion,
	}
	room, err := NewRoom(roomID, cfg, newRoomRand(), s.themes)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.registry.Create(room); err != nil {
		writeDomainError(w, err)
		return
	}
	log.Printf("room created room_id=%s max_players=%d wolf_count=%d category=%s", roomID, cfg.MaxPlayers, cfg.WolfCount, cfg.Category)
	s.persistRoomCreated(roomID, cfg)
	writeJSON(w, http.StatusCreated, map[string]string{"room_id": roomID})
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rooms": s.registry.ListRooms(),
	})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	var payload map[string]any
	err := s.registry.WithRoom(roomID, func(room *Room) error {
		payload = snapshot(room)
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	if err := s.registry.Delete(roomID); err != nil {
		writeDomainError(w, err)
		return
	}
	log.Printf("room deleted room_id=%s", roomID)
	s.persistEvent(roomID, "room_deleted", EventPayload{RoomID: roomID})
	s.forgetRoomDBID(roomID)
	writeJSON(w, http.StatusOK, map[string]string{"room_id": roomID})
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	var req joinRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	playerID := req.PlayerID
	if playerID == "" {
		playerID = uuid.NewString()
	}
	err = s.updateRoom(roomID, func(room *Room) error {
		_, err := room.Join(playerID, name)
		return err
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	log.Printf("player joined room_id=%s player_id=%s name=%s", roomID, playerID, name)
	s.persistPlayerJoined(roomID, playerID, name)
	writeJSON(w, http.StatusOK, map[string]string{
		"room_id":   roomID,
		"player_id": playerID,
	})
}

func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	var emptyLobby bool
	err := s.updateRoom(roomID, func(room *Room) error {
		if err := room.Leave(req.PlayerID); err != nil {
			return err
		}
		emptyLobby = room.PlayerCount() == 0 && room.Phase() == game.PhaseLobby
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	log.Printf("player left room_id=%s player_id=%s", roomID, req.PlayerID)
	if emptyLobby {
		// An emptied lobby has nobody left to re-join it.
		if err := s.registry.Delete(roomID); err == nil {
			log.Printf("room removed room_id=%s reason=empty", roomID)
			s.forgetRoomDBID(roomID)
		}
	}
	s.persistEvent(roomID, "player_left", EventPayload{RoomID: roomID, PlayerID: req.PlayerID})
	writeJSON(w, http.StatusOK, map[string]string{"room_id": roomID})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	var phase game.Phase
	err := s.updateRoom(roomID, func(room *Room) error {
		if err := room.MarkReady(req.PlayerID); err != nil {
			return err
		}
		phase = room.Phase()
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if phase == game.PhaseThemeSubmission {
		log.Printf("game started room_id=%s", roomID)
		s.persistEvent(roomID, "game_started", EventPayload{RoomID: roomID})
	}
	s.persistEvent(roomID, "player_ready", EventPayload{RoomID: roomID, PlayerID: req.PlayerID})
	writeJSON(w, http.StatusOK, map[string]string{"phase": string(phase)})
}

func (s *Server) handleConfirmTheme(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	var req playerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	var phase game.Phase
	err := s.updateRoom(roomID, func(room *Room) error {
		if err := room.ConfirmTheme(req.PlayerID); err != nil {
			return err
		}
		phase = room.Phase()
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if phase == game.PhaseDiscussion {
		log.Printf("discussion started room_id=%s", roomID)
		s.persistEvent(roomID, "discussion_started", EventPayload{RoomID: roomID})
	}
	writeJSON(w, http.StatusOK, map[string]string{"phase": string(phase)})
}

func (s *Server) handleStartVote(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	err := s.updateRoom(roomID, func(room *Room) error {
		return room.StartVoting()
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	log.Printf("voting started room_id=%s reason=manual", roomID)
	s.persistEvent(roomID, "voting_started", EventPayload{RoomID: roomID, Reason: "manual"})
	writeJSON(w, http.StatusOK, map[string]string{"phase": string(game.PhaseVoting)})
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	var req voteRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	var phase game.Phase
	var result game.Result
	var finished bool
	err := s.updateRoom(roomID, func(room *Room) error {
		if err := room.CastVote(req.PlayerID, req.TargetID); err != nil {
			return err
		}
		phase = room.Phase()
		result, finished = room.state.Result()
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.persistEvent(roomID, "vote_cast", EventPayload{RoomID: roomID, PlayerID: req.PlayerID, TargetID: req.TargetID})
	if finished {
		log.Printf("game finished room_id=%s winner=%s tie=%v", roomID, result.Winner, result.Tie)
		s.persistOutcome(roomID, result)
	}
	writeJSON(w, http.StatusOK, map[string]string{"phase": string(phase)})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	var req chatRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	message, err := validateMessage(req.Message)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	err = s.registry.WithRoom(roomID, func(room *Room) error {
		player, ok := room.FindPlayer(req.PlayerID)
		if !ok {
			return game.ErrUnknownPlayer
		}
		room.PublishChat(player.Name, message)
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"room_id": roomID})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	err := s.updateRoom(roomID, func(room *Room) error {
		return room.Restart()
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	log.Printf("room restarted room_id=%s", roomID)
	s.persistEvent(roomID, "room_restarted", EventPayload{RoomID: roomID})
	writeJSON(w, http.StatusOK, map[string]string{"phase": string(game.PhaseLobby)})
}

func (s *Server) handleTimer(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	var remaining int
	var active bool
	err := s.registry.WithRoom(roomID, func(room *Room) error {
		remaining, active = room.RemainingDiscussion(time.Now())
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"active":            active,
		"remaining_seconds": remaining,
	})
}

// handlePlayerTheme serves a player's private role and theme word. Only
// that player's identifier unlocks it; the broadcast snapshots never carry
// another player's theme.
func (s *Server) handlePlayerTheme(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	playerID := r.PathValue("player_id")
	var role game.Role
	var word string
	err := s.registry.WithRoom(roomID, func(room *Room) error {
		player, ok := room.FindPlayer(playerID)
		if !ok {
			return game.ErrUnknownPlayer
		}
		if player.Role == "" {
			return game.ErrInvalidTransition
		}
		role = player.Role
		word = player.Theme
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"player_id": playerID,
		"role":      string(role),
		"theme":     word,
	})
}
