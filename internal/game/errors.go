package game

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid room config")
	ErrInvalidTransition = errors.New("action not valid in current phase")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrAlreadyVoted      = errors.New("player already voted")
)
