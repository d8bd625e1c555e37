package server

// EventPayload is the JSON payload archived with each room event.
type EventPayload struct {
	RoomID     string `json:"room_id,omitempty"`
	PlayerID   string `json:"player_id,omitempty"`
	PlayerName string `json:"player,omitempty"`
	TargetID   string `json:"target_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Winner     string `json:"winner,omitempty"`
	Tie        bool   `json:"tie,omitempty"`
}
