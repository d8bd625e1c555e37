package server

import (
	"time"

	"word-wolf/internal/game"
)

// snapshot renders a room's publicly visible state. Roles, themes and
// wolf ids stay hidden until the game is finished; a player's own theme is
// served only through the private theme endpoint.
func snapshot(room *Room) map[string]any {
	players := make([]map[string]any, 0, len(room.Players()))
	for _, p := range room.Players() {
		players = append(players, map[string]any{
			"player_id":  p.ID,
			"name":       p.Name,
			"ready":      room.state.IsReady(p.ID),
			"confirmed":  room.state.IsConfirmed(p.ID),
			"voted":      room.state.HasVoted(p.ID),
			"eliminated": p.Eliminated,
		})
	}

	payload := map[string]any{
		"room_id":            room.ID,
		"name":               room.Config.Name,
		"phase":              string(room.Phase()),
		"players":            players,
		"max_players":        room.Config.MaxPlayers,
		"wolf_count":         room.Config.WolfCount,
		"category":           room.Config.Category,
		"discussion_seconds": room.Config.DiscussionSeconds,
	}

	switch room.Phase() {
	case game.PhaseLobby:
		payload["ready_count"] = room.state.ReadyCount()
	case game.PhaseThemeSubmission:
		payload["confirmed_count"] = room.state.ConfirmedCount()
	case game.PhaseDiscussion:
		if deadline := room.state.Deadline(); !deadline.IsZero() {
			payload["discussion_ends_at"] = deadline.UTC().Format(time.RFC3339)
			if remaining, ok := room.RemainingDiscussion(time.Now()); ok {
				payload["remaining_seconds"] = remaining
			}
		}
	case game.PhaseVoting:
		payload["voted_count"] = room.state.VotedCount()
	case game.PhaseFinished:
		if result, ok := room.state.Result(); ok {
			outcome := map[string]any{
				"winner":   string(result.Winner),
				"tie":      result.Tie,
				"wolf_ids": result.WolfIDs,
			}
			if result.Eliminated != "" {
				outcome["eliminated_id"] = result.Eliminated
			}
			payload["outcome"] = outcome
		}
	}
	return payload
}
