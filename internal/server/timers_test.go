package server

import (
	"testing"
	"time"

	"word-wolf/internal/config"
	"word-wolf/internal/game"
)

func roomInDiscussion(t *testing.T, srv *Server, id string, discussionSeconds int) {
	t.Helper()
	cfg := testRoomConfig()
	cfg.DiscussionSeconds = discussionSeconds
	room := newTestRoom(t, id, cfg)
	if err := srv.registry.Create(room); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := srv.registry.WithRoom(id, func(r *Room) error {
		fillReadyRoom(t, r, "p1", "p2", "p3")
		for _, pid := range []string{"p1", "p2", "p3"} {
			if err := r.ConfirmTheme(pid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("drive to discussion: %v", err)
	}
}

func TestSweepForcesVoteAfterDeadline(t *testing.T) {
	srv := New(nil, config.Default())
	roomInDiscussion(t, srv, "r1", 1)

	srv.sweepDeadlines(time.Now().Add(5 * time.Second))

	var phase game.Phase
	_ = srv.registry.WithRoom("r1", func(r *Room) error {
		phase = r.Phase()
		return nil
	})
	if phase != game.PhaseVoting {
		t.Fatalf("expected voting after elapsed deadline, got %s", phase)
	}
}

func TestSweepLeavesRunningDiscussionAlone(t *testing.T) {
	srv := New(nil, config.Default())
	roomInDiscussion(t, srv, "r1", 3600)

	srv.sweepDeadlines(time.Now())

	var phase game.Phase
	_ = srv.registry.WithRoom("r1", func(r *Room) error {
		phase = r.Phase()
		return nil
	})
	if phase != game.PhaseDiscussion {
		t.Fatalf("expected discussion untouched, got %s", phase)
	}
}

func TestSweepSkipsRoomsOutsideDiscussion(t *testing.T) {
	srv := New(nil, config.Default())
	room := newTestRoom(t, "r1", testRoomConfig())
	if err := srv.registry.Create(room); err != nil {
		t.Fatalf("create: %v", err)
	}

	srv.sweepDeadlines(time.Now().Add(time.Hour))

	var phase game.Phase
	_ = srv.registry.WithRoom("r1", func(r *Room) error {
		phase = r.Phase()
		return nil
	})
	if phase != game.PhaseLobby {
		t.Fatalf("expected lobby untouched, got %s", phase)
	}
}

func TestSweepPublishesSnapshotOnTransition(t *testing.T) {
	srv := New(nil, config.Default())
	roomInDiscussion(t, srv, "r1", 1)

	var sub *subscriber
	_ = srv.registry.WithRoom("r1", func(r *Room) error {
		sub = r.Subscribe(4)
		return nil
	})

	srv.sweepDeadlines(time.Now().Add(5 * time.Second))

	select {
	case data := <-sub.ch:
		if len(data) == 0 {
			t.Fatalf("expected a snapshot event")
		}
	default:
		t.Fatalf("expected the forced transition to publish a snapshot")
	}
}
