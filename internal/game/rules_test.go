package game

import (
	"math/rand"
	"testing"
)

func testPlayers(ids ...string) []*Player {
	players := make([]*Player, 0, len(ids))
	for _, id := range ids {
		players = append(players, &Player{ID: id, Name: "Player " + id})
	}
	return players
}

func TestAssignRolesCounts(t *testing.T) {
	for _, tc := range []struct {
		players int
		wolves  int
	}{
		{3, 1},
		{5, 2},
		{8, 3},
	} {
		players := make([]*Player, 0, tc.players)
		for i := 0; i < tc.players; i++ {
			players = append(players, &Player{ID: string(rune('a' + i))})
		}
		wolfIDs := AssignRoles(rand.New(rand.NewSource(7)), players, tc.wolves)
		if len(wolfIDs) != tc.wolves {
			t.Fatalf("%d/%d: expected %d wolf ids, got %d", tc.players, tc.wolves, tc.wolves, len(wolfIDs))
		}
		wolves, citizens := 0, 0
		for _, p := range players {
			switch p.Role {
			case RoleWolf:
				wolves++
			case RoleCitizen:
				citizens++
			default:
				t.Fatalf("player %s has no role", p.ID)
			}
		}
		if wolves != tc.wolves || citizens != tc.players-tc.wolves {
			t.Fatalf("%d/%d: got %d wolves, %d citizens", tc.players, tc.wolves, wolves, citizens)
		}
	}
}

func TestAssignRolesDeterministicWithSeed(t *testing.T) {
	first := testPlayers("a", "b", "c", "d", "e")
	second := testPlayers("a", "b", "c", "d", "e")
	wolvesA := AssignRoles(rand.New(rand.NewSource(99)), first, 2)
	wolvesB := AssignRoles(rand.New(rand.NewSource(99)), second, 2)
	if len(wolvesA) != len(wolvesB) {
		t.Fatalf("seeded runs diverged: %v vs %v", wolvesA, wolvesB)
	}
	for i := range wolvesA {
		if wolvesA[i] != wolvesB[i] {
			t.Fatalf("seeded runs diverged: %v vs %v", wolvesA, wolvesB)
		}
	}
}

func TestAssignRolesRejectsBadWolfCount(t *testing.T) {
	players := testPlayers("a", "b", "c")
	if got := AssignRoles(rand.New(rand.NewSource(1)), players, 3); got != nil {
		t.Fatalf("wolf count equal to player count must assign nothing, got %v", got)
	}
	if got := AssignRoles(rand.New(rand.NewSource(1)), players, 0); got != nil {
		t.Fatalf("zero wolves must assign nothing, got %v", got)
	}
}

func TestAssignThemes(t *testing.T) {
	players := testPlayers("a", "b", "c")
	players[0].Role = RoleCitizen
	players[1].Role = RoleWolf
	players[2].Role = RoleCitizen
	AssignThemes(players, "apple", "orange")
	if players[0].Theme != "apple" || players[2].Theme != "apple" {
		t.Fatal("citizens should get the citizen word")
	}
	if players[1].Theme != "orange" {
		t.Fatal("wolf should get the wolf word")
	}
}

func TestCountVotesAndTopTarget(t *testing.T) {
	votes := map[string]string{"a": "x", "b": "x", "c": "y"}
	tally := CountVotes(votes)
	if tally["x"] != 2 || tally["y"] != 1 {
		t.Fatalf("unexpected tally %v", tally)
	}
	target, tie := tally.TopTarget()
	if tie || target != "x" {
		t.Fatalf("expected x eliminated, got target=%q tie=%v", target, tie)
	}
}

func TestTopTargetTie(t *testing.T) {
	tally := CountVotes(map[string]string{"a": "x", "b": "y"})
	target, tie := tally.TopTarget()
	if !tie || target != "" {
		t.Fatalf("expected tie with no target, got target=%q tie=%v", target, tie)
	}
}

func TestComputeOutcomeWolfEliminated(t *testing.T) {
	players := testPlayers("a", "b", "c")
	players[0].Role = RoleCitizen
	players[1].Role = RoleWolf
	players[2].Role = RoleCitizen

	result := ComputeOutcome(players, map[string]string{"a": "b", "b": "c", "c": "b"})
	if result.Winner != WinnerCitizens {
		t.Fatalf("eliminating the wolf should be a citizen win, got %s", result.Winner)
	}
	if result.Eliminated != "b" || result.Tie {
		t.Fatalf("unexpected result %#v", result)
	}
	if len(result.WolfIDs) != 1 || result.WolfIDs[0] != "b" {
		t.Fatalf("wolf ids should be revealed, got %v", result.WolfIDs)
	}
}

func TestComputeOutcomeCitizenEliminated(t *testing.T) {
	players := testPlayers("a", "b", "c")
	players[0].Role = RoleCitizen
	players[1].Role = RoleWolf
	players[2].Role = RoleCitizen

	result := ComputeOutcome(players, map[string]string{"a": "c", "b": "c", "c": "b"})
	if result.Winner != WinnerWolves {
		t.Fatalf("eliminating a citizen should be a wolf win, got %s", result.Winner)
	}
	if result.Eliminated != "c" {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestComputeOutcomeTieMeansWolvesWin(t *testing.T) {
	players := testPlayers("a", "b")
	players[0].Role = RoleCitizen
	players[1].Role = RoleWolf

	result := ComputeOutcome(players, map[string]string{"a": "b", "b": "a"})
	if !result.Tie || result.Eliminated != "" {
		t.Fatalf("expected tie without elimination, got %#v", result)
	}
	if result.Winner != WinnerWolves {
		t.Fatalf("tie should be a wolf win, got %s", result.Winner)
	}
}
