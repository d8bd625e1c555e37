package game

import (
	"math/rand"
	"sort"
)

// Tally is the vote count per target for one voting round.
type Tally map[string]int

// CountVotes builds the tally from the voter -> target ledger.
func CountVotes(votes map[string]string) Tally {
	tally := make(Tally, len(votes))
	for _, target := range votes {
		tally[target]++
	}
	return tally
}

// TopTarget returns the target with the strictly highest vote count. When
// two or more targets share the highest count no majority exists and tie
// is true; nobody is eliminated on a tie.
func (t Tally) TopTarget() (target string, tie bool) {
	best := 0
	holders := 0
	for id, count := range t {
		switch {
		case count > best:
			best = count
			holders = 1
			target = id
		case count == best:
			holders++
		}
	}
	if holders != 1 {
		return "", holders > 1
	}
	return target, false
}

// ComputeOutcome derives the result of the single voting round from the
// vote ledger and player roles. Citizens win only when the eliminated
// player was a wolf; a tie means the wolf escaped and wolves win.
func ComputeOutcome(players []*Player, votes map[string]string) Result {
	result := Result{Winner: WinnerWolves}
	for _, p := range players {
		if p.IsWolf() {
			result.WolfIDs = append(result.WolfIDs, p.ID)
		}
	}
	sort.Strings(result.WolfIDs)

	target, tie := CountVotes(votes).TopTarget()
	if tie {
		result.Tie = true
		return result
	}
	if target == "" {
		return result
	}
	result.Eliminated = target
	for _, p := range players {
		if p.ID == target && p.IsWolf() {
			result.Winner = WinnerCitizens
			break
		}
	}
	return result
}

// AssignRoles picks wolfCount distinct players uniformly at random to be
// wolves and makes everyone else a citizen. The random source is supplied
// by the caller so tests can seed it. Returns the wolf ids.
func AssignRoles(rnd *rand.Rand, players []*Player, wolfCount int) []string {
	if wolfCount <= 0 || wolfCount >= len(players) {
		return nil
	}
	order := rnd.Perm(len(players))
	wolfIDs := make([]string, 0, wolfCount)
	for i, idx := range order {
		if i < wolfCount {
			players[idx].Role = RoleWolf
			wolfIDs = append(wolfIDs, players[idx].ID)
		} else {
			players[idx].Role = RoleCitizen
		}
	}
	sort.Strings(wolfIDs)
	return wolfIDs
}

// AssignThemes hands the citizen word to citizens and the wolf word to
// wolves. Roles must already be assigned.
func AssignThemes(players []*Player, citizenWord, wolfWord string) {
	for _, p := range players {
		if p.IsWolf() {
			p.Theme = wolfWord
		} else {
			p.Theme = citizenWord
		}
	}
}
