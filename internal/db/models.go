package db

import (
	"time"

	"gorm.io/datatypes"
)

// The archive is write-through only: room state is never restored from
// these tables across restarts.

type Room struct {
	ID                uint      `gorm:"primaryKey"`
	RoomID            string    `gorm:"size:32;uniqueIndex;not null"`
	Name              string    `gorm:"size:64"`
	MaxPlayers        int       `gorm:"not null"`
	WolfCount         int       `gorm:"not null"`
	Category          string    `gorm:"size:32;not null"`
	DiscussionSeconds int       `gorm:"not null"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
	Players           []Player
	Events            []Event
	Outcomes          []Outcome
}

type Player struct {
	ID        uint      `gorm:"primaryKey"`
	RoomID    uint      `gorm:"index;not null;uniqueIndex:idx_players_room_player"`
	PlayerID  string    `gorm:"size:64;not null;uniqueIndex:idx_players_room_player"`
	Name      string    `gorm:"size:64;not null"`
	JoinedAt  time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	RoomID    uint           `gorm:"index;not null"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}

type Outcome struct {
	ID           uint           `gorm:"primaryKey"`
	RoomID       uint           `gorm:"index;not null"`
	Winner       string         `gorm:"size:16;not null"`
	EliminatedID string         `gorm:"size:64"`
	Tie          bool           `gorm:"not null;default:false"`
	WolfIDs      datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time      `gorm:"not null"`
}
