package server

import (
	"fmt"
	"math/rand"
	"time"

	"word-wolf/internal/game"
	"word-wolf/internal/theme"
)

// RoomConfig is the immutable configuration chosen at room creation.
type RoomConfig struct {
	Name              string
	MaxPlayers        int
	WolfCount         int
	Category          string
	DiscussionSeconds int
}

func (c RoomConfig) Validate() error {
	if c.MaxPlayers < 2 {
		return fmt.Errorf("%w: max_players must be at least 2", game.ErrInvalidConfig)
	}
	if c.WolfCount < 1 {
		return fmt.Errorf("%w: wolf_count must be at least 1", game.ErrInvalidConfig)
	}
	if c.WolfCount >= c.MaxPlayers {
		return fmt.Errorf("%w: wolf_count must be less than max_players", game.ErrInvalidConfig)
	}
	return nil
}

// Room is one isolated game session. All fields are guarded by the
// registry: mutation happens only inside a WithRoom closure.
type Room struct {
	ID        string
	Config    RoomConfig
	CreatedAt time.Time

	players []*game.Player
	state   *game.State
	votes   map[string]string
	subs    []*subscriber
	rnd     *rand.Rand
	themes  theme.Source
}

func NewRoom(id string, cfg RoomConfig, rnd *rand.Rand, themes theme.Source) (*Room, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Room{
		ID:        id,
		Config:    cfg,
		CreatedAt: time.Now().UTC(),
		state:     game.NewState(),
		votes:     make(map[string]string),
		rnd:       rnd,
		themes:    themes,
	}, nil
}

func (r *Room) Phase() game.Phase {
	return r.state.Phase()
}

func (r *Room) PlayerCount() int {
	return len(r.players)
}

func (r *Room) IsFull() bool {
	return len(r.players) >= r.Config.MaxPlayers
}

// Players returns the members in join order.
func (r *Room) Players() []*game.Player {
	return r.players
}

func (r *Room) FindPlayer(playerID string) (*game.Player, bool) {
	for _, p := range r.players {
		if p.ID == playerID {
			return p, true
		}
	}
	return nil, false
}

// Join adds a player during the lobby phase. Re-joining with an existing
// id claims the existing seat instead of failing, so a reconnecting client
// keeps its identity.
func (r *Room) Join(playerID, name string) (*game.Player, error) {
	if existing, ok := r.FindPlayer(playerID); ok {
		return existing, nil
	}
	if r.state.Phase() != game.PhaseLobby {
		return nil, game.ErrInvalidTransition
	}
	if r.IsFull() {
		return nil, ErrRoomFull
	}
	player := &game.Player{ID: playerID, Name: name}
	r.players = append(r.players, player)
	return player, nil
}

// Leave removes a player in any phase and discards their pending ready,
// confirm and vote entries. Votes cast at the leaver are void and their
// voters may choose again; otherwise a finished game could eliminate a
// player who is no longer in the room. The remaining players' completion
// condition is re-checked so a departure cannot strand a phase.
func (r *Room) Leave(playerID string) error {
	idx := -1
	for i, p := range r.players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return game.ErrUnknownPlayer
	}
	r.players = append(r.players[:idx], r.players[idx+1:]...)
	r.state.DropPlayer(playerID)
	delete(r.votes, playerID)
	for voter, target := range r.votes {
		if target != playerID {
			continue
		}
		delete(r.votes, voter)
		r.state.UnrecordVote(voter)
		if p, ok := r.FindPlayer(voter); ok {
			p.Vote = ""
		}
	}
	return r.maybeAdvance()
}

// MarkReady records a ready flag and starts the game once every player is
// ready. A room below the minimum stays in the lobby: wolves must remain
// a strict minority, so player count must exceed the wolf count and be at
// least 2.
func (r *Room) MarkReady(playerID string) error {
	if _, ok := r.FindPlayer(playerID); !ok {
		return game.ErrUnknownPlayer
	}
	if err := r.state.MarkReady(playerID); err != nil {
		return err
	}
	if err := r.maybeAdvance(); err != nil {
		// A failed game start must not leave the triggering mark behind.
		r.state.UnmarkReady(playerID)
		return err
	}
	return nil
}

// ConfirmTheme records that a player saw their theme; once everyone has,
// the discussion begins.
func (r *Room) ConfirmTheme(playerID string) error {
	if _, ok := r.FindPlayer(playerID); !ok {
		return game.ErrUnknownPlayer
	}
	if err := r.state.ConfirmTheme(playerID); err != nil {
		return err
	}
	return r.maybeAdvance()
}

// StartVoting ends the discussion early, or is invoked by the phase timer
// when the deadline elapses.
func (r *Room) StartVoting() error {
	if err := r.state.StartVoting(); err != nil {
		return err
	}
	r.votes = make(map[string]string)
	return nil
}

// CastVote records one vote; the game finishes as soon as every
// non-eliminated player has voted.
func (r *Room) CastVote(voterID, targetID string) error {
	voter, ok := r.FindPlayer(voterID)
	if !ok {
		return game.ErrUnknownPlayer
	}
	if _, ok := r.FindPlayer(targetID); !ok {
		return game.ErrUnknownPlayer
	}
	if voter.Eliminated {
		return game.ErrInvalidTransition
	}
	if err := r.state.RecordVote(voterID); err != nil {
		return err
	}
	r.votes[voterID] = targetID
	voter.Vote = targetID
	return r.maybeAdvance()
}

// Restart begins a new game in a finished room: fresh lobby state, player
// game fields cleared, membership and config kept.
func (r *Room) Restart() error {
	if r.state.Phase() != game.PhaseFinished {
		return game.ErrInvalidTransition
	}
	r.state = game.NewState()
	r.votes = make(map[string]string)
	for _, p := range r.players {
		p.ResetForNewGame()
	}
	return nil
}

// RemainingDiscussion reports the seconds left in the discussion phase.
func (r *Room) RemainingDiscussion(now time.Time) (int, bool) {
	if r.state.Phase() != game.PhaseDiscussion || r.state.Deadline().IsZero() {
		return 0, false
	}
	remaining := r.state.Deadline().Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining / time.Second), true
}

// DeadlineElapsed reports whether the timer should force the vote.
func (r *Room) DeadlineElapsed(now time.Time) bool {
	return r.state.DeadlineElapsed(now)
}

func (r *Room) activeVoterCount() int {
	count := 0
	for _, p := range r.players {
		if !p.Eliminated {
			count++
		}
	}
	return count
}

// maybeAdvance applies whichever phase transition has become due. Each
// branch checks its own completion condition so the same helper is safe
// to call after ready marks, confirms, votes and departures.
func (r *Room) maybeAdvance() error {
	switch r.state.Phase() {
	case game.PhaseLobby:
		if !r.state.AllReady(len(r.players)) {
			return nil
		}
		if len(r.players) < 2 || len(r.players) <= r.Config.WolfCount {
			return nil
		}
		return r.startGame()
	case game.PhaseThemeSubmission:
		if !r.state.AllConfirmed(len(r.players)) {
			return nil
		}
		deadline := time.Time{}
		if r.Config.DiscussionSeconds > 0 {
			deadline = time.Now().UTC().Add(time.Duration(r.Config.DiscussionSeconds) * time.Second)
		}
		return r.state.StartDiscussion(deadline)
	case game.PhaseVoting:
		if !r.state.AllVoted(r.activeVoterCount()) {
			return nil
		}
		return r.finishGame()
	default:
		return nil
	}
}

// startGame assigns roles and themes exactly once, on the transition into
// theme submission.
func (r *Room) startGame() error {
	pair, err := r.themes.Pick(r.Config.Category)
	if err != nil {
		return err
	}
	if err := r.state.StartThemeSubmission(); err != nil {
		return err
	}
	game.AssignRoles(r.rnd, r.players, r.Config.WolfCount)
	game.AssignThemes(r.players, pair.CitizenWord, pair.WolfWord)
	return nil
}

// finishGame tallies the ledger, applies the elimination and freezes the
// outcome into the finished phase.
func (r *Room) finishGame() error {
	result := game.ComputeOutcome(r.players, r.votes)
	if result.Eliminated != "" {
		if target, ok := r.FindPlayer(result.Eliminated); ok {
			target.Eliminated = true
		}
	}
	return r.state.Finish(result)
}
