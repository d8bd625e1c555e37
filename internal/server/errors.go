package server

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrDuplicateID  = errors.New("room id already exists")
	ErrRoomFull     = errors.New("room is full")
)
