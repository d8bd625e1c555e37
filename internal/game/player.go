package game

// Role is a player's hidden side for one game.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleWolf    Role = "wolf"
)

// Player is one participant in a room. Role, Theme, Vote and Eliminated
// are game-scoped and cleared when a new game starts in the same room.
type Player struct {
	ID         string
	Name       string
	Role       Role
	Theme      string
	Vote       string
	Eliminated bool
}

func (p *Player) IsWolf() bool {
	return p.Role == RoleWolf
}

// ResetForNewGame clears everything assigned during a game while keeping
// identity and membership.
func (p *Player) ResetForNewGame() {
	p.Role = ""
	p.Theme = ""
	p.Vote = ""
	p.Eliminated = false
}
