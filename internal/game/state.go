package game

import "time"

// Phase is the current stage of a room's game. Transitions only ever move
// forward: lobby -> theme-submission -> discussion -> voting -> finished.
type Phase string

const (
	PhaseLobby           Phase = "lobby"
	PhaseThemeSubmission Phase = "theme-submission"
	PhaseDiscussion      Phase = "discussion"
	PhaseVoting          Phase = "voting"
	PhaseFinished        Phase = "finished"
)

// Winner names the side that won a finished game.
type Winner string

const (
	WinnerCitizens Winner = "citizens"
	WinnerWolves   Winner = "wolves"
)

// Result is the frozen outcome of the single voting round.
type Result struct {
	Winner     Winner
	Eliminated string
	Tie        bool
	WolfIDs    []string
}

// State is the phase machine plus the data scoped to the active phase.
// Each accessor and mutator checks the phase tag first; a call that is not
// valid for the current phase fails with ErrInvalidTransition and leaves
// the state untouched.
type State struct {
	phase     Phase
	ready     map[string]struct{}
	confirmed map[string]struct{}
	deadline  time.Time
	voted     map[string]struct{}
	result    Result
}

func NewState() *State {
	return &State{
		phase: PhaseLobby,
		ready: make(map[string]struct{}),
	}
}

func (s *State) Phase() Phase {
	return s.phase
}

// MarkReady records a lobby player as ready.
func (s *State) MarkReady(playerID string) error {
	if s.phase != PhaseLobby {
		return ErrInvalidTransition
	}
	s.ready[playerID] = struct{}{}
	return nil
}

// UnmarkReady withdraws a ready mark, for callers that must undo a mark
// whose follow-up work failed.
func (s *State) UnmarkReady(playerID string) {
	delete(s.ready, playerID)
}

func (s *State) IsReady(playerID string) bool {
	_, ok := s.ready[playerID]
	return ok
}

func (s *State) ReadyCount() int {
	return len(s.ready)
}

func (s *State) AllReady(totalPlayers int) bool {
	return s.phase == PhaseLobby && totalPlayers > 0 && len(s.ready) >= totalPlayers
}

// DropPlayer discards any pending ready / confirmed / vote entry for a
// player who left the room.
func (s *State) DropPlayer(playerID string) {
	delete(s.ready, playerID)
	delete(s.confirmed, playerID)
	delete(s.voted, playerID)
}

// StartThemeSubmission advances lobby -> theme-submission.
func (s *State) StartThemeSubmission() error {
	if s.phase != PhaseLobby {
		return ErrInvalidTransition
	}
	s.phase = PhaseThemeSubmission
	s.ready = nil
	s.confirmed = make(map[string]struct{})
	return nil
}

// ConfirmTheme records that a player has seen their assigned theme.
func (s *State) ConfirmTheme(playerID string) error {
	if s.phase != PhaseThemeSubmission {
		return ErrInvalidTransition
	}
	s.confirmed[playerID] = struct{}{}
	return nil
}

func (s *State) IsConfirmed(playerID string) bool {
	_, ok := s.confirmed[playerID]
	return ok
}

func (s *State) ConfirmedCount() int {
	return len(s.confirmed)
}

func (s *State) AllConfirmed(totalPlayers int) bool {
	return s.phase == PhaseThemeSubmission && totalPlayers > 0 && len(s.confirmed) >= totalPlayers
}

// StartDiscussion advances theme-submission -> discussion. A zero deadline
// means the discussion has no time limit and only an explicit start-vote
// ends it.
func (s *State) StartDiscussion(deadline time.Time) error {
	if s.phase != PhaseThemeSubmission {
		return ErrInvalidTransition
	}
	s.phase = PhaseDiscussion
	s.confirmed = nil
	s.deadline = deadline
	return nil
}

func (s *State) Deadline() time.Time {
	return s.deadline
}

// DeadlineElapsed reports whether the discussion deadline has passed.
func (s *State) DeadlineElapsed(now time.Time) bool {
	return s.phase == PhaseDiscussion && !s.deadline.IsZero() && !now.Before(s.deadline)
}

// StartVoting advances discussion -> voting.
func (s *State) StartVoting() error {
	if s.phase != PhaseDiscussion {
		return ErrInvalidTransition
	}
	s.phase = PhaseVoting
	s.deadline = time.Time{}
	s.voted = make(map[string]struct{})
	return nil
}

// RecordVote marks a voter as having voted. Each voter may vote once.
func (s *State) RecordVote(playerID string) error {
	if s.phase != PhaseVoting {
		return ErrInvalidTransition
	}
	if _, ok := s.voted[playerID]; ok {
		return ErrAlreadyVoted
	}
	s.voted[playerID] = struct{}{}
	return nil
}

// UnrecordVote clears a voter's mark so they may vote again, used when
// their chosen target left the room.
func (s *State) UnrecordVote(playerID string) {
	delete(s.voted, playerID)
}

func (s *State) HasVoted(playerID string) bool {
	_, ok := s.voted[playerID]
	return ok
}

func (s *State) VotedCount() int {
	return len(s.voted)
}

func (s *State) AllVoted(totalVoters int) bool {
	return s.phase == PhaseVoting && totalVoters > 0 && len(s.voted) >= totalVoters
}

// Finish advances voting -> finished and freezes the outcome.
func (s *State) Finish(result Result) error {
	if s.phase != PhaseVoting {
		return ErrInvalidTransition
	}
	s.phase = PhaseFinished
	s.voted = nil
	s.result = result
	return nil
}

// Result returns the frozen outcome; ok is false before the game finished.
func (s *State) Result() (Result, bool) {
	if s.phase != PhaseFinished {
		return Result{}, false
	}
	return s.result, true
}
