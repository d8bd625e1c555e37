package server

import (
	"testing"

	"word-wolf/internal/config"
)

func TestForgetRoomDBID(t *testing.T) {
	srv := New(nil, config.Default())
	srv.dbMu.Lock()
	srv.dbIDs["r1"] = 7
	srv.dbMu.Unlock()

	srv.forgetRoomDBID("r1")

	if _, ok := srv.roomDBID("r1"); ok {
		t.Fatalf("expected cached archive id dropped after room removal")
	}
}

func TestPersistenceNoopsWithoutDB(t *testing.T) {
	srv := New(nil, config.Default())
	srv.persistRoomCreated("r1", testRoomConfig())
	srv.persistPlayerJoined("r1", "p1", "Ada")
	srv.persistEvent("r1", "player_ready", EventPayload{RoomID: "r1", PlayerID: "p1"})
	if len(srv.dbIDs) != 0 {
		t.Fatalf("expected no cached ids without a database, got %d", len(srv.dbIDs))
	}
}
