package server

import (
	"context"
	"errors"
	"log"
	"time"

	"word-wolf/internal/game"
)

// errDeadlineNotDue makes a sweep visit a no-op without publishing a
// snapshot for rooms whose discussion is still running.
var errDeadlineNotDue = errors.New("discussion deadline not due")

// RunPhaseTimer periodically forces the discussion -> voting transition
// for rooms whose deadline elapsed. It runs until the context is
// canceled. Each room check is its own WithRoom call, so the sweep never
// holds more than one room at a time, and a room deleted between the id
// snapshot and the check is skipped as an ordinary RoomNotFound.
func (s *Server) RunPhaseTimer(ctx context.Context) {
	interval := time.Duration(s.cfg.TimerIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweepDeadlines(now)
		}
	}
}

func (s *Server) sweepDeadlines(now time.Time) {
	for _, roomID := range s.registry.RoomIDs() {
		err := s.updateRoom(roomID, func(room *Room) error {
			if !room.DeadlineElapsed(now) {
				return errDeadlineNotDue
			}
			return room.StartVoting()
		})
		switch {
		case err == nil:
			log.Printf("voting started room_id=%s reason=timeout", roomID)
			s.persistEvent(roomID, "voting_started", EventPayload{RoomID: roomID, Reason: "timeout"})
		case errors.Is(err, errDeadlineNotDue),
			errors.Is(err, ErrRoomNotFound),
			errors.Is(err, game.ErrInvalidTransition):
			// Raced with a delete or a manual start-vote; nothing to do.
		default:
			log.Printf("timer sweep failed room_id=%s error=%v", roomID, err)
		}
	}
}
